package engine

import (
	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// --- Action context ---------------------------------------------------
// turnContext carries the working clone of one action and the events it
// produced. Everything below mutates tc.st in place; callers clone first.
type turnContext struct {
	st     *game.GameState
	roller Roller
	events []game.Event
}

func newTurnContext(st *game.GameState, r Roller) *turnContext {
	if r == nil {
		r = fixedRoller{face: 1}
	}
	return &turnContext{st: st, roller: r, events: make([]game.Event, 0, 8)}
}

func (tc *turnContext) emit(e game.Event) { tc.events = append(tc.events, e) }

func (tc *turnContext) tile(c hex.Coord) (game.Tile, bool) {
	if tc.st.Board == nil {
		return game.Tile{}, false
	}
	return tc.st.Board.Tile(c)
}

func (tc *turnContext) tileType(c hex.Coord) game.TileType {
	t, ok := tc.tile(c)
	if !ok {
		return ""
	}
	return t.Type
}

// adjacentLivingPlayers returns living heroes next to c in player order.
func (tc *turnContext) adjacentLivingPlayers(c hex.Coord) []*game.Player {
	var out []*game.Player
	for i := range tc.st.Players {
		p := &tc.st.Players[i]
		if !p.IsDead && hex.Distance(p.Position, c) == 1 {
			out = append(out, p)
		}
	}
	return out
}

// freeTileNear returns the closest on-board, enterable, unoccupied tile to
// center, scanning rings outward.
func (tc *turnContext) freeTileNear(center hex.Coord) (hex.Coord, bool) {
	for n := 0; n <= 2*game.BoardRadius; n++ {
		var ring []hex.Coord
		if n == 0 {
			ring = []hex.Coord{center}
		} else {
			ring = hex.Ring(center, n)
		}
		for _, c := range ring {
			if tc.standable(c) {
				return c, true
			}
		}
	}
	return hex.Coord{}, false
}

// standable reports whether a hero could be placed on c.
func (tc *turnContext) standable(c hex.Coord) bool {
	if tc.st.Board == nil || !tc.st.Board.Passable(c) {
		return false
	}
	return !tc.st.Occupied(c)
}

// withState clones st, runs fn on the clone and returns it with the events.
func withState(st game.GameState, fn func(tc *turnContext)) (game.GameState, []game.Event) {
	next := st.Clone()
	tc := newTurnContext(&next, nil)
	fn(tc)
	return next, tc.events
}
