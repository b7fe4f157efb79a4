package main

import (
	"github.com/ericogr/hexcrusade/internal/config"
	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/logging"
	"github.com/ericogr/hexcrusade/internal/storage"
)

func loadConfigOrExit(envFiles ...string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(envFiles...)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{constants.LogFieldEnvFiles: envFiles, constants.LogFieldHint: "see HEXCRUSADE_* variables"})
	}
	return cfg
}

func setupLoggingOrExit(cfg *config.LoadedConfig) {
	if err := logging.Setup(logging.Options{Level: cfg.LogLevel, Encoding: cfg.LogEncoding}); err != nil {
		logging.Fatal("Failed to configure logging", err, nil)
	}
}

// createRepositoryOrExit opens the match ledger; an empty path disables it
// and returns nil.
func createRepositoryOrExit(dbPath string) storage.Repository {
	if dbPath == "" {
		logging.Warn("match ledger disabled; results and leaderboard are not kept", nil)
		return nil
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldDSN: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
