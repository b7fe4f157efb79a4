package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/engine"
	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
	"github.com/ericogr/hexcrusade/internal/logging"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidPlayers  = errors.New("invalid players")
	ErrPlayerNotInGame = errors.New("player not in game")
)

// ResultRecorder persists finished matches. storage.Repository satisfies it.
type ResultRecorder interface {
	SaveMatchResult(rec *game.MatchRecord) error
}

type session struct {
	mu         sync.Mutex
	state      game.GameState
	lastActive time.Time
	recorded   bool
}

// Manager keeps live games in memory and serializes access per game.
type Manager struct {
	engine   *engine.Engine
	recorder ResultRecorder
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewManager returns a manager driving games with e. A nil recorder skips
// the match ledger.
func NewManager(e *engine.Engine, recorder ResultRecorder) *Manager {
	return &Manager{
		engine:   e,
		recorder: recorder,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// CreateGame starts a new game and returns its id with the initial state.
func (m *Manager) CreateGame(players []engine.PlayerSetup, swordPos *hex.Coord) (string, game.GameState, error) {
	st, err := m.engine.CreateGame(players, swordPos)
	if err != nil {
		return "", game.GameState{}, fmt.Errorf("%w: %w", ErrInvalidPlayers, err)
	}
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = &session{state: st, lastActive: m.now()}
	m.mu.Unlock()
	logging.Info("game created", logging.Fields{constants.LogFieldGameID: id, constants.LogFieldCount: len(players)})
	return id, st, nil
}

func (m *Manager) lookup(gameID string) (*session, error) {
	m.mu.RLock()
	s, ok := m.sessions[gameID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// GetGame returns the current snapshot of a game.
func (m *Manager) GetGame(gameID string) (game.GameState, error) {
	s, err := m.lookup(gameID)
	if err != nil {
		return game.GameState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, nil
}

// ExecuteAction runs a on behalf of playerID. Rule violations come back as
// an unsuccessful ActionResult; the error is reserved for unknown games and
// players. The first finished state is recorded in the ledger.
func (m *Manager) ExecuteAction(gameID string, a game.GameAction, playerID string) (game.ActionResult, error) {
	s, err := m.lookup(gameID)
	if err != nil {
		return game.ActionResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Player(playerID) == nil {
		return game.ActionResult{}, ErrPlayerNotInGame
	}

	res := m.engine.ExecuteAction(s.state, a, playerID)
	s.lastActive = m.now()
	if !res.Success {
		logging.Debug("action rejected", logging.Fields{
			constants.LogFieldGameID:   gameID,
			constants.LogFieldPlayerID: playerID,
			constants.LogFieldAction:   a.Type,
			constants.LogFieldReason:   res.Message,
		})
		return res, nil
	}
	s.state = res.NewState
	if s.state.Result != nil && !s.recorded {
		m.record(gameID, s)
	}
	return res, nil
}

// record stores the finished match once; ledger failures are logged only.
func (m *Manager) record(gameID string, s *session) {
	s.recorded = true
	result := s.state.Result
	logging.Info("game over", logging.Fields{
		constants.LogFieldGameID:   gameID,
		constants.LogFieldVictory:  result.VictoryType,
		constants.LogFieldWinnerID: result.WinnerID,
	})
	if m.recorder == nil {
		return
	}
	rec, ok := game.NewMatchRecord(gameID, s.state)
	if !ok {
		return
	}
	if err := m.recorder.SaveMatchResult(&rec); err != nil {
		logging.Error("failed to record match", err, logging.Fields{constants.LogFieldGameID: gameID})
	}
}

// ValidActions lists the legal actions of playerID.
func (m *Manager) ValidActions(gameID, playerID string) ([]game.ValidAction, error) {
	st, err := m.playerState(gameID, playerID)
	if err != nil {
		return nil, err
	}
	return m.engine.GetValidActions(st, playerID), nil
}

// Validate runs the cheap actor and turn pre-check for a.
func (m *Manager) Validate(gameID string, a game.GameAction, playerID string) (game.ValidationResult, error) {
	st, err := m.GetGame(gameID)
	if err != nil {
		return game.ValidationResult{}, err
	}
	return engine.ValidateAction(st, a, playerID), nil
}

// Reachable lists the tiles playerID can still walk to this turn.
func (m *Manager) Reachable(gameID, playerID string) ([]hex.Coord, error) {
	st, err := m.playerState(gameID, playerID)
	if err != nil {
		return nil, err
	}
	return engine.ReachableTiles(st, playerID), nil
}

func (m *Manager) playerState(gameID, playerID string) (game.GameState, error) {
	st, err := m.GetGame(gameID)
	if err != nil {
		return game.GameState{}, err
	}
	if st.Player(playerID) == nil {
		return game.GameState{}, ErrPlayerNotInGame
	}
	return st, nil
}

// Len reports how many games are held in memory.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
