package engine

import (
	"fmt"

	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// Player limits for a new game.
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// Engine is the rules engine. It holds no game state; every call takes a
// snapshot and returns a new one.
type Engine struct {
	roller Roller
}

// New returns an engine drawing randomness from r.
func New(r Roller) *Engine {
	if r == nil {
		r = NewRandomRoller(0)
	}
	return &Engine{roller: r}
}

// PlayerSetup is one seat of a new game.
type PlayerSetup struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	HeroClass game.HeroClass `json:"heroClass"`
}

// CreateGame seats the players on the default board, deals one angel card
// each and opens round 1. swordPos nil uses the default sword tile.
func (e *Engine) CreateGame(players []PlayerSetup, swordPos *hex.Coord) (game.GameState, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return game.GameState{}, ErrInvalidPlayerCount
	}
	seen := make(map[string]bool, len(players))
	for _, ps := range players {
		if ps.ID == "" || ps.ID == game.MonsterTurn || seen[ps.ID] {
			return game.GameState{}, ErrDuplicatePlayer
		}
		seen[ps.ID] = true
		if _, ok := game.ClassByID(ps.HeroClass); !ok {
			return game.GameState{}, fmt.Errorf("%w: %q", ErrUnknownClass, ps.HeroClass)
		}
	}

	board := game.DefaultBoard()
	sword := game.DefaultDemonSwordPosition
	if swordPos != nil {
		if !board.Contains(*swordPos) {
			return game.GameState{}, ErrOffBoard
		}
		sword = *swordPos
	}

	st := game.GameState{
		Board:              board,
		Monsters:           game.NewMonsters(board),
		RoundNumber:        1,
		RevelationDeck:     game.NewRevelationDeck(),
		DemonSwordPosition: &sword,
		Players:            make([]game.Player, 0, len(players)),
	}
	tc := newTurnContext(&st, e.roller)
	for _, ps := range players {
		level := game.StartingStats.Strength.Total()
		maxHealth := game.MaxHealthFor(ps.HeroClass, level)
		st.Players = append(st.Players, game.Player{
			ID:             ps.ID,
			Name:           ps.Name,
			HeroClass:      ps.HeroClass,
			State:          game.StateHoly,
			Stats:          game.StartingStats,
			Health:         maxHealth,
			MaxHealth:      maxHealth,
			TurnPhase:      game.PhaseMove,
			SkillCooldowns: map[string]int{},
		})
		p := &st.Players[len(st.Players)-1]
		pos, ok := tc.spawnPoint(p.HeroClass)
		if !ok {
			return game.GameState{}, ErrNoLanding
		}
		p.Position = pos
	}
	for i := range st.Players {
		tc.drawRevelation(&st.Players[i], game.SourceAngel)
	}
	st.RoundTurnOrder = TurnOrder(st.Players)
	st.CurrentTurnIndex = 0
	if first := st.CurrentPlayer(); first != nil {
		tc.startTurn(first)
	}
	return st, nil
}

// GetCurrentTurnEntry returns the current player id or the monster entry.
func GetCurrentTurnEntry(st game.GameState) string { return st.CurrentTurnEntry() }

// GetCurrentPlayer returns a copy of the acting player.
func GetCurrentPlayer(st game.GameState) (game.Player, bool) {
	p := st.CurrentPlayer()
	if p == nil {
		return game.Player{}, false
	}
	return *p, true
}

// ExecuteAction applies a to st. Illegal actions return Success=false, the
// untouched input state and no events.
func (e *Engine) ExecuteAction(st game.GameState, a game.GameAction, actingPlayerID string) game.ActionResult {
	return e.execute(st, a, actingPlayerID, e.roller)
}

func (e *Engine) execute(st game.GameState, a game.GameAction, actingPlayerID string, r Roller) game.ActionResult {
	fail := func(err error) game.ActionResult {
		return game.ActionResult{Success: false, NewState: st, Message: err.Error(), Events: []game.Event{}}
	}
	actorID, err := resolveActor(st, a, actingPlayerID)
	if err != nil {
		return fail(err)
	}
	handler, ok := actionHandlers[a.Type]
	if !ok {
		return fail(ErrUnknownAction)
	}

	next := st.Clone()
	tc := newTurnContext(&next, r)
	msg, err := handler(tc, next.Player(actorID), a)
	if err != nil {
		return fail(err)
	}
	tc.settle()
	return game.ActionResult{Success: true, NewState: next, Message: msg, Events: tc.events}
}

// settle runs after every successful action: a hero who died on their own
// turn hands it over, then victory is evaluated.
func (tc *turnContext) settle() {
	if tc.st.Result != nil {
		return
	}
	if p := tc.st.CurrentPlayer(); p != nil && p.IsDead {
		tc.advanceTurn()
	}
	if res := EvaluateVictory(*tc.st); res != nil {
		tc.st.Result = res
		tc.emit(game.Event{Type: game.EventGameOver, PlayerID: res.TriggerPlayerID, Result: res})
	}
}

// ValidateAction is the cheap pre-check: the game is running, the actor
// exists and is alive, and turn-gated actions come from the current player.
func ValidateAction(st game.GameState, a game.GameAction, actingPlayerID string) game.ValidationResult {
	if _, err := resolveActor(st, a, actingPlayerID); err != nil {
		return game.ValidationResult{Valid: false, Reason: err.Error()}
	}
	return game.ValidationResult{Valid: true}
}

func resolveActor(st game.GameState, a game.GameAction, actingPlayerID string) (string, error) {
	if st.Result != nil {
		return "", ErrGameOver
	}
	if !a.Type.Known() {
		return "", ErrUnknownAction
	}
	entry := st.CurrentTurnEntry()
	if a.Type.TurnGated() {
		if entry == game.MonsterTurn || entry == "" {
			return "", ErrMonsterTurn
		}
		if actingPlayerID != "" && actingPlayerID != entry {
			if st.Player(actingPlayerID) == nil {
				return "", ErrUnknownPlayer
			}
			return "", ErrNotYourTurn
		}
		actingPlayerID = entry
	} else if actingPlayerID == "" {
		actingPlayerID = entry
	}
	p := st.Player(actingPlayerID)
	if p == nil {
		return "", ErrUnknownPlayer
	}
	if p.IsDead {
		return "", ErrPlayerDead
	}
	return p.ID, nil
}

// ReachableTiles lists the tiles the player can still walk to this turn,
// excluding the tile it stands on.
func ReachableTiles(st game.GameState, playerID string) []hex.Coord {
	p := st.Player(playerID)
	if p == nil || p.IsDead || p.TurnPhase != game.PhaseMove || p.RemainingMovement == nil || st.Board == nil {
		return nil
	}
	set := hex.Reachable(p.Position, *p.RemainingMovement, func(_, to hex.Coord, remaining int) (int, bool) {
		return stepCost(&st, p, to, remaining)
	})
	delete(set, p.Position)
	return hex.Sorted(set)
}

// stepCost is the price of stepping onto to with remaining movement left.
func stepCost(st *game.GameState, p *game.Player, to hex.Coord, remaining int) (int, bool) {
	cost := st.Board.MoveCost(to, p.State, p.HasDemonSword)
	if cost == game.CostBlocked || st.Occupied(to) {
		return 0, false
	}
	if cost == game.CostAll {
		return remaining, remaining > 0
	}
	return cost, cost <= remaining
}
