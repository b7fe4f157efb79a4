package engine

import (
	"sort"

	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// TurnOrder sorts living heroes by leftover movement (descending), then
// class initiative, then seat, and appends the monster entry.
func TurnOrder(players []game.Player) []string {
	idx := make([]int, 0, len(players))
	for i := range players {
		if !players[i].IsDead {
			idx = append(idx, i)
		}
	}
	initiative := func(p game.Player) int {
		if c, ok := game.ClassByID(p.HeroClass); ok {
			return c.Initiative
		}
		return len(game.Classes)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := players[idx[a]], players[idx[b]]
		if pa.LeftoverMovement != pb.LeftoverMovement {
			return pa.LeftoverMovement > pb.LeftoverMovement
		}
		return initiative(pa) < initiative(pb)
	})
	order := make([]string, 0, len(idx)+1)
	for _, i := range idx {
		order = append(order, players[i].ID)
	}
	return append(order, game.MonsterTurn)
}

// startTurn resets per-turn bookkeeping for the hero about to act.
func (tc *turnContext) startTurn(p *game.Player) {
	p.TurnPhase = game.PhaseMove
	p.RemainingMovement = nil
	p.UsedSkillCost = 0
	p.BasicAttackUsed = false
	p.Stealthed = false
	p.IronStanceActive = false
	tc.removeClones(p.ID)
}

func (tc *turnContext) removeClones(ownerID string) {
	clones := tc.st.Clones[:0:0]
	for _, c := range tc.st.Clones {
		if c.OwnerID != ownerID {
			clones = append(clones, c)
		}
	}
	tc.st.Clones = clones
}

// advanceTurn moves to the next living hero, running the monster phase and
// the end of round when the monster entry comes up. The loop is bounded so
// a board of dead heroes cannot spin forever.
func (tc *turnContext) advanceTurn() {
	st := tc.st
	limit := (len(st.Players) + 1) * (RespawnTurns + 2)
	for step := 0; step < limit; step++ {
		st.CurrentTurnIndex++
		entry := st.CurrentTurnEntry()
		if entry == "" || entry == game.MonsterTurn {
			tc.monsterPhase()
			tc.endRound()
			entry = st.CurrentTurnEntry()
			if entry == game.MonsterTurn {
				// nobody alive this round; keep ticking rounds
				st.CurrentTurnIndex = -1
				continue
			}
		}
		p := st.Player(entry)
		if p == nil || p.IsDead {
			continue
		}
		tc.startTurn(p)
		return
	}
}

// endRound ticks death counters, decays cooldowns and builds the next
// round's order.
func (tc *turnContext) endRound() {
	st := tc.st
	for i := range st.Players {
		p := &st.Players[i]
		if p.IsDead {
			p.DeathTurnsRemaining--
			if p.DeathTurnsRemaining <= 0 {
				tc.respawnPlayer(p)
			}
		}
		for id, cd := range p.SkillCooldowns {
			if cd > 0 {
				p.SkillCooldowns[id] = cd - 1
			}
		}
	}
	st.RoundNumber++
	st.RoundTurnOrder = TurnOrder(st.Players)
	st.CurrentTurnIndex = 0
	tc.emit(game.Event{Type: game.EventRoundStarted, Round: st.RoundNumber})
}

// respawnPlayer revives a hero at half health on a free starting village of
// its class.
func (tc *turnContext) respawnPlayer(p *game.Player) {
	pos, ok := tc.spawnPoint(p.HeroClass)
	if !ok {
		// no free tile anywhere; try again next round
		p.DeathTurnsRemaining = 1
		return
	}
	p.IsDead = false
	p.DeathTurnsRemaining = 0
	p.Health = max(1, p.MaxHealth/2)
	p.Position = pos
	p.TurnPhase = game.PhaseMove
	p.RemainingMovement = nil
	tc.emit(game.Event{Type: game.EventPlayerRespawned, PlayerID: p.ID, To: game.CoordPtr(pos), Amount: p.Health})
}

func (tc *turnContext) spawnPoint(hc game.HeroClass) (hex.Coord, bool) {
	villages := tc.st.Board.VillagesFor(hc)
	for _, v := range villages {
		if !tc.st.Occupied(v.Coord) {
			return v.Coord, true
		}
	}
	if len(villages) == 0 {
		return tc.freeTileNear(game.CastleCoord)
	}
	return tc.freeTileNear(villages[0].Coord)
}
