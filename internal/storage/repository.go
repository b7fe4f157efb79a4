package storage

import (
	"errors"

	"github.com/ericogr/hexcrusade/internal/game"
)

// ErrMatchNotFound is returned when no result was recorded for a game id.
var ErrMatchNotFound = errors.New("match not found")

// Repository is the ledger of finished matches.
type Repository interface {
	// SaveMatchResult stores rec and credits every participant's profile.
	// Saving the same GameID twice is a no-op.
	SaveMatchResult(rec *game.MatchRecord) error
	GetMatchResult(gameID string) (*game.MatchRecord, error)
	// Leaderboard
	GetTopPlayers(limit int) ([]game.PlayerProfile, error)
	// GetStatsByName returns a zero profile for unknown players.
	GetStatsByName(name string) (*game.PlayerProfile, error)
}
