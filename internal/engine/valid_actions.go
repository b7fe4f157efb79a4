package engine

import (
	"fmt"

	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// GetValidActions lists the actions playerID could take right now. An empty
// playerID means the current player. A player whose turn it is not only
// gets the actions that are not turn-gated. Every candidate is dry-run on a
// copy with fixed dice, so the result never disagrees with ExecuteAction
// about legality.
func (e *Engine) GetValidActions(st game.GameState, playerID string) []game.ValidAction {
	if st.Result != nil {
		return nil
	}
	current := st.CurrentTurnEntry()
	if playerID == "" {
		playerID = current
	}
	p := st.Player(playerID)
	if p == nil || p.IsDead {
		return nil
	}
	isCurrent := playerID == current

	var out []game.ValidAction
	for _, c := range candidateActions(st, *p) {
		if c.Action.Type.TurnGated() && !isCurrent {
			continue
		}
		res := e.execute(st, c.Action, playerID, fixedRoller{face: 6})
		if res.Success {
			out = append(out, c)
		}
	}
	return out
}

func candidateActions(st game.GameState, p game.Player) []game.ValidAction {
	var out []game.ValidAction
	add := func(a game.GameAction, format string, args ...any) {
		out = append(out, game.ValidAction{Action: a, Description: fmt.Sprintf(format, args...)})
	}

	add(game.GameAction{Type: game.ActionRollMoveDice}, "Roll movement dice")
	for _, c := range hex.Neighbors(p.Position) {
		add(game.GameAction{Type: game.ActionMove, Position: game.CoordPtr(c)}, "Move to %s", c)
	}
	add(game.GameAction{Type: game.ActionEndMovePhase}, "End movement")

	targets := targetIDs(st, p.ID)
	for _, id := range targets {
		add(game.GameAction{Type: game.ActionBasicAttack, TargetID: id}, "Attack %s", id)
	}
	for _, s := range game.SkillsFor(p.HeroClass) {
		for _, a := range skillCandidates(st, p, s, targets) {
			label := s.Name
			switch {
			case a.TargetID != "":
				label = fmt.Sprintf("%s on %s", s.Name, a.TargetID)
			case a.Position != nil:
				label = fmt.Sprintf("%s at %s", s.Name, *a.Position)
			}
			add(a, "%s", label)
		}
	}
	for _, stat := range game.StatKeys {
		add(game.GameAction{Type: game.ActionRollStatDice, Stat: stat}, "Upgrade %s (costs %d essence)", stat, p.Level())
	}
	for _, r := range p.Revelations {
		add(game.GameAction{Type: game.ActionCompleteRevelation, RevelationID: r.ID}, "Complete %s", r.Name)
	}
	add(game.GameAction{Type: game.ActionEndTurn}, "End turn")
	for _, stat := range game.StatKeys {
		add(game.GameAction{Type: game.ActionApplyCorruptDice, Stat: stat}, "Bind the corrupt die to %s", stat)
	}
	add(game.GameAction{Type: game.ActionChooseHoly}, "Return to the holy path")
	return out
}

// targetIDs returns every living hero except self, then every living monster.
func targetIDs(st game.GameState, self string) []string {
	var ids []string
	for _, q := range st.Players {
		if q.ID != self && !q.IsDead {
			ids = append(ids, q.ID)
		}
	}
	for _, m := range st.Monsters {
		if !m.IsDead {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// skillCandidates expands a skill into the argument shapes it accepts.
func skillCandidates(st game.GameState, p game.Player, s game.Skill, targets []string) []game.GameAction {
	base := game.GameAction{Type: game.ActionUseSkill, SkillID: s.ID}
	var out []game.GameAction
	withTarget := func(id string) game.GameAction {
		a := base
		a.TargetID = id
		return a
	}
	withPos := func(c hex.Coord) game.GameAction {
		a := base
		a.Position = game.CoordPtr(c)
		return a
	}

	switch s.ID {
	case game.SkillPowerStrike, game.SkillCharge, game.SkillFireball, game.SkillBind:
		for _, id := range targets {
			out = append(out, withTarget(id))
		}
	case game.SkillSwordWave, game.SkillShuriken:
		for _, c := range hex.Range(p.Position, LineSkillRange) {
			if c != p.Position && st.Board.Contains(c) {
				out = append(out, withPos(c))
			}
		}
	case game.SkillTrap, game.SkillShadowClone:
		for _, c := range hex.Neighbors(p.Position) {
			out = append(out, withPos(c))
		}
	case game.SkillMeteor:
		for i := range st.Players {
			if q := st.Players[i]; !q.IsDead && q.ID != p.ID {
				out = append(out, withPos(q.Position))
			}
		}
		for _, m := range st.Monsters {
			if !m.IsDead {
				out = append(out, withPos(m.Position))
			}
		}
	case game.SkillBlessing:
		out = append(out, withTarget(p.ID))
		for _, q := range st.Players {
			if q.ID != p.ID && !q.IsDead && hex.Distance(p.Position, q.Position) == 1 {
				out = append(out, withTarget(q.ID))
			}
		}
	default:
		out = append(out, base)
	}
	return out
}
