package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/logging"
	"github.com/ericogr/hexcrusade/internal/service"
)

const shutdownGrace = 10 * time.Second

// startSweeperOrExit expires idle games on schedule.
func startSweeperOrExit(mgr *service.Manager, schedule string, ttl time.Duration) *cron.Cron {
	c, err := mgr.StartSweeper(schedule, ttl)
	if err != nil {
		logging.Fatal("Failed to start idle sweeper", err, logging.Fields{constants.LogFieldSchedule: schedule})
	}
	return c
}

// serve runs srv until SIGINT or SIGTERM, then drains in-flight requests.
func serve(srv *http.Server) {
	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Failed to start server", err, nil)
		}
		return
	case sig := <-stop:
		logging.Info("Shutting down", logging.Fields{constants.LogFieldSignal: sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Graceful shutdown failed", err, nil)
	}
}
