package storage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ericogr/hexcrusade/internal/dedupe"
	"github.com/ericogr/hexcrusade/internal/game"
)

const defaultLeaderboardLimit = 10

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveMatchResult(rec *game.MatchRecord) error {
	if rec == nil || rec.GameID == "" {
		return gorm.ErrInvalidData
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&game.MatchRecord{}).Where("game_id = ?", rec.GameID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		for _, p := range rec.Participants {
			wins := 0
			if p.Winner {
				wins = 1
			}
			if err := upsertProfile(tx, p.PlayerName, 1, wins); err != nil {
				return fmt.Errorf("update profile %q: %w", p.PlayerName, err)
			}
		}
		return nil
	})
}

// profileKey is the case-insensitive identity of a player name.
func profileKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// upsertProfile adds the deltas to the named profile, creating it first.
// The first spelling seen is kept for display.
func upsertProfile(tx *gorm.DB, name string, played, wins int) error {
	var ps game.PlayerProfile
	if err := tx.Where("lower(player_name) = ?", profileKey(name)).First(&ps).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ps = game.PlayerProfile{PlayerName: strings.TrimSpace(name)}
		} else {
			return err
		}
	}
	ps.GamesPlayed += played
	ps.Wins += wins
	return tx.Save(&ps).Error
}

func (r *sqliteRepository) GetMatchResult(gameID string) (*game.MatchRecord, error) {
	var rec game.MatchRecord
	err := r.db.Preload("Participants").Where("game_id = ?", gameID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetTopPlayers returns top N players ordered by Wins desc, then GamesPlayed desc
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerProfile, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	v, err, _ := dedupe.LeaderboardGroup.Do(fmt.Sprintf("top:%d", limit), func() (interface{}, error) {
		var profiles []game.PlayerProfile
		if err := r.db.Model(&game.PlayerProfile{}).
			Order("wins DESC").
			Order("games_played DESC").
			Order("player_name ASC").
			Limit(limit).
			Find(&profiles).Error; err != nil {
			return nil, err
		}
		return profiles, nil
	})
	if err != nil {
		return nil, err
	}
	shared := v.([]game.PlayerProfile)
	out := make([]game.PlayerProfile, len(shared))
	copy(out, shared)
	return out, nil
}

func (r *sqliteRepository) GetStatsByName(name string) (*game.PlayerProfile, error) {
	key := profileKey(name)
	v, err, _ := dedupe.StatsGroup.Do("stats:"+key, func() (interface{}, error) {
		var ps game.PlayerProfile
		if err := r.db.Where("lower(player_name) = ?", key).First(&ps).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.PlayerProfile{PlayerName: name}, nil
			}
			return nil, err
		}
		return ps, nil
	})
	if err != nil {
		return nil, err
	}
	ps := v.(game.PlayerProfile)
	return &ps, nil
}
