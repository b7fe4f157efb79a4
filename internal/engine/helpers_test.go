package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// newGame creates a game with players p1..pN of the given classes.
func newGame(t *testing.T, r Roller, classes ...game.HeroClass) (*Engine, game.GameState) {
	t.Helper()
	e := New(r)
	players := make([]PlayerSetup, len(classes))
	for i, c := range classes {
		players[i] = PlayerSetup{ID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("P%d", i+1), HeroClass: c}
	}
	st, err := e.CreateGame(players, nil)
	require.NoError(t, err)
	return e, st
}

func at(q, r int) hex.Coord { return hex.Coord{Q: q, R: r} }

func place(st *game.GameState, id string, q, r int) {
	st.Player(id).Position = at(q, r)
}

// actionPhase puts the current player straight into its action phase.
func actionPhase(st *game.GameState) *game.Player {
	p := st.CurrentPlayer()
	zero := 0
	p.RemainingMovement = &zero
	p.TurnPhase = game.PhaseAction
	return p
}

func countEvents(events []game.Event, et game.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == et {
			n++
		}
	}
	return n
}

func intPtr(v int) *int { return &v }

func statPtr(s game.StatKey) *game.StatKey { return &s }

func sixOf(face int) []int { return []int{face, face, face, face, face, face} }
