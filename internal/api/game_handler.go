package api

import (
	"github.com/ericogr/hexcrusade/internal/engine"
	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
	"github.com/ericogr/hexcrusade/internal/storage"
)

// GameService is the slice of service.Manager the handlers need.
type GameService interface {
	CreateGame(players []engine.PlayerSetup, swordPos *hex.Coord) (string, game.GameState, error)
	GetGame(gameID string) (game.GameState, error)
	ExecuteAction(gameID string, a game.GameAction, playerID string) (game.ActionResult, error)
	ValidActions(gameID, playerID string) ([]game.ValidAction, error)
	Validate(gameID string, a game.GameAction, playerID string) (game.ValidationResult, error)
	Reachable(gameID, playerID string) ([]hex.Coord, error)
}

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	games GameService
	// repo is nil when the match ledger is disabled.
	repo storage.Repository
}

// NewGameHandler creates a new GameHandler over the live games and the
// optional match ledger.
func NewGameHandler(games GameService, repo storage.Repository) *GameHandler {
	return &GameHandler{games: games, repo: repo}
}
