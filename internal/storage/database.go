package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/logging"
)

// OpenAndMigrate opens the sqlite ledger at dataSourceName and keeps its
// schema current. The parent directory of a file path is created.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Keep schema updated via AutoMigrate; remove the file to start over.
	if err := db.AutoMigrate(&game.MatchRecord{}, &game.MatchParticipant{}, &game.PlayerProfile{}); err != nil {
		return nil, err
	}
	logging.Info("match ledger ready", logging.Fields{constants.LogFieldDSN: dataSourceName})
	return db, nil
}
