package service

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/logging"
)

// SweepIdle drops games untouched for longer than ttl and returns how many
// were removed. Finished games expire the same way.
func (m *Manager) SweepIdle(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			removed++
			logging.Debug("idle game expired", logging.Fields{constants.LogFieldGameID: id})
		}
	}
	return removed
}

// StartSweeper runs SweepIdle on a cron schedule such as "@every 5m".
// The caller stops the returned scheduler.
func (m *Manager) StartSweeper(schedule string, ttl time.Duration) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if n := m.SweepIdle(ttl); n > 0 {
			logging.Info("expired idle games", logging.Fields{constants.LogFieldCount: n})
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	c.Start()
	logging.Info("idle sweeper started", logging.Fields{constants.LogFieldSchedule: schedule})
	return c, nil
}
