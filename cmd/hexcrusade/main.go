package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/hexcrusade/internal/api"
	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/engine"
	"github.com/ericogr/hexcrusade/internal/logging"
	"github.com/ericogr/hexcrusade/internal/service"
	"github.com/ericogr/hexcrusade/internal/version"
)

func main() {
	cfg := loadConfigOrExit(".env")
	setupLoggingOrExit(cfg)
	defer logging.Sync()
	logging.Info("hexcrusade starting", logging.Fields{constants.LogFieldVersion: version.Version, constants.LogFieldCommit: version.Commit})

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	repo := createRepositoryOrExit(cfg.DBPath)
	var recorder service.ResultRecorder
	if repo != nil {
		recorder = repo
	}
	mgr := service.NewManager(engine.New(engine.NewRandomRoller(cfg.RandomSeed)), recorder)

	sweeper := startSweeperOrExit(mgr, cfg.SweepSchedule, cfg.IdleTTL)
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           api.NewRouter(api.NewGameHandler(mgr, repo)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serve(srv)
}
