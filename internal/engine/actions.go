package engine

import (
	"fmt"

	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// actionHandler applies one action for actor p on the working clone and
// returns the success message.
type actionHandler func(tc *turnContext, p *game.Player, a game.GameAction) (string, error)

var actionHandlers = map[game.ActionType]actionHandler{
	game.ActionRollMoveDice:       rollMoveDice,
	game.ActionMove:               move,
	game.ActionEndMovePhase:       endMovePhase,
	game.ActionBasicAttack:        basicAttack,
	game.ActionUseSkill:           useSkillAction,
	game.ActionRollStatDice:       rollStatDice,
	game.ActionEndTurn:            endTurn,
	game.ActionCompleteRevelation: completeRevelationAction,
	game.ActionApplyCorruptDice:   applyCorruptDice,
	game.ActionChooseHoly:         chooseHoly,
}

func rollMoveDice(tc *turnContext, p *game.Player, _ game.GameAction) (string, error) {
	if p.TurnPhase != game.PhaseMove {
		return "", ErrWrongPhase
	}
	if p.RemainingMovement != nil {
		return "", ErrAlreadyRolled
	}
	if p.IsBound {
		p.IsBound = false
		zero := 0
		p.RemainingMovement = &zero
		tc.emit(game.Event{Type: game.EventMoveDiceRolled, PlayerID: p.ID, Amount: 0})
		return fmt.Sprintf("%s is bound and cannot move", p.Name), nil
	}
	d1, d2 := tc.roller.D6(), tc.roller.D6()
	movement := d1 + d2 + p.StatTotal(game.StatDexterity)
	p.RemainingMovement = &movement
	tc.emit(game.Event{Type: game.EventMoveDiceRolled, PlayerID: p.ID, Dice: []int{d1, d2}, Amount: movement})
	return fmt.Sprintf("%s rolled %d and %d for %d movement", p.Name, d1, d2, movement), nil
}

func move(tc *turnContext, p *game.Player, a game.GameAction) (string, error) {
	if p.TurnPhase != game.PhaseMove {
		return "", ErrWrongPhase
	}
	if p.RemainingMovement == nil {
		return "", ErrNotRolled
	}
	if a.Position == nil {
		return "", ErrMissingPosition
	}
	to := *a.Position
	if hex.Distance(p.Position, to) != 1 {
		return "", ErrNotAdjacent
	}
	if !tc.st.Board.Contains(to) {
		return "", ErrOffBoard
	}
	remaining := *p.RemainingMovement
	cost := tc.st.Board.MoveCost(to, p.State, p.HasDemonSword)
	switch {
	case cost == game.CostBlocked:
		return "", ErrTileBlocked
	case tc.st.Occupied(to):
		return "", ErrTileOccupied
	case cost == game.CostAll:
		if remaining <= 0 {
			return "", ErrNotEnoughMovement
		}
		cost = remaining
	case cost > remaining:
		return "", ErrNotEnoughMovement
	}

	from := p.Position
	p.Position = to
	remaining -= cost
	p.RemainingMovement = &remaining
	tc.emit(game.Event{Type: game.EventPlayerMoved, PlayerID: p.ID, From: game.CoordPtr(from), To: game.CoordPtr(to), Amount: cost})

	stop := tc.enterTile(p)
	if tc.tileType(to) == game.TileHill || stop {
		tc.closeMovePhase(p)
	}
	return fmt.Sprintf("%s moved to %s", p.Name, to), nil
}

// enterTile applies the effects of stepping onto the hero's tile and
// reports whether movement must stop.
func (tc *turnContext) enterTile(p *game.Player) bool {
	stop := false
	if owner := tc.trapOwnerAt(p.Position, p.ID); owner != nil {
		owner.Traps = removeCoord(owner.Traps, p.Position)
		tc.damagePlayer(p.ID, TrapDamage, owner.ID)
		stop = true
	}
	if !p.IsDead {
		tc.fireDamage(p)
	}
	if !p.IsDead && p.KnowsDemonSwordPosition && tc.st.DemonSwordPosition != nil && *tc.st.DemonSwordPosition == p.Position {
		p.HasDemonSword = true
		tc.st.DemonSwordPosition = nil
		tc.emit(game.Event{Type: game.EventDemonSwordTaken, PlayerID: p.ID, To: game.CoordPtr(p.Position)})
	}
	return stop || p.IsDead
}

func (tc *turnContext) trapOwnerAt(c hex.Coord, victimID string) *game.Player {
	for i := range tc.st.Players {
		owner := &tc.st.Players[i]
		if owner.ID == victimID {
			continue
		}
		for _, t := range owner.Traps {
			if t == c {
				return owner
			}
		}
	}
	return nil
}

func removeCoord(cs []hex.Coord, c hex.Coord) []hex.Coord {
	out := cs[:0:0]
	for _, x := range cs {
		if x != c {
			out = append(out, x)
		}
	}
	return out
}

// closeMovePhase records leftover movement and opens the action phase.
func (tc *turnContext) closeMovePhase(p *game.Player) {
	leftover := 0
	if p.RemainingMovement != nil {
		leftover = *p.RemainingMovement
	}
	if tc.tileType(p.Position) == game.TileHill {
		leftover = 0
	}
	p.LeftoverMovement = leftover
	p.TurnPhase = game.PhaseAction
}

func endMovePhase(tc *turnContext, p *game.Player, _ game.GameAction) (string, error) {
	if p.TurnPhase != game.PhaseMove {
		return "", ErrWrongPhase
	}
	if p.RemainingMovement == nil {
		return "", ErrNotRolled
	}
	tc.closeMovePhase(p)
	return fmt.Sprintf("%s ends movement with %d left", p.Name, p.LeftoverMovement), nil
}

func basicAttack(tc *turnContext, p *game.Player, a game.GameAction) (string, error) {
	if p.TurnPhase != game.PhaseAction {
		return "", ErrWrongPhase
	}
	if p.BasicAttackUsed {
		return "", ErrAttackUsed
	}
	if err := tc.targetWithin(p, a.TargetID, 1, 1); err != nil {
		return "", err
	}
	if t := tc.st.Player(a.TargetID); t != nil && t.Stealthed {
		return "", ErrTargetStealthed
	}
	if m := tc.st.Monster(a.TargetID); m != nil {
		if p.HasDemonSword {
			return "", ErrSwordVsMonster
		}
		if m.ID == game.MonsterGolem && tc.st.MonsterRoundBuffs.GolemBasicAttackImmune {
			return "", ErrGolemImmune
		}
	}
	dmg := p.StatTotal(game.StatStrength)
	if p.PoisonActive {
		dmg += PoisonBonus
		p.PoisonActive = false
	}
	p.Stealthed = false
	p.BasicAttackUsed = true
	if err := tc.strike(p, a.TargetID, dmg, true); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s attacks %s for %d", p.Name, a.TargetID, dmg), nil
}

func useSkillAction(tc *turnContext, p *game.Player, a game.GameAction) (string, error) {
	if p.TurnPhase != game.PhaseAction {
		return "", ErrWrongPhase
	}
	if err := tc.useSkill(p, a); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s uses %s", p.Name, a.SkillID), nil
}

// rollStatDice spends essence equal to the hero's level for one d6. A roll
// above the stat's lower die replaces it; a level band change resyncs
// maxHealth and moves health by the same delta.
func rollStatDice(tc *turnContext, p *game.Player, a game.GameAction) (string, error) {
	if p.TurnPhase != game.PhaseAction {
		return "", ErrWrongPhase
	}
	if !game.ValidStat(a.Stat) {
		return "", ErrInvalidStat
	}
	cost := p.Level()
	if p.MonsterEssence < cost {
		return "", ErrNotEnoughEssence
	}
	p.MonsterEssence -= cost

	roll := tc.roller.D6()
	dice := p.Stats.Get(a.Stat)
	low := dice.LowerIndex()
	success := roll > dice[low]
	if success {
		dice[low] = roll
		p.Stats = p.Stats.With(a.Stat, dice)
		if newMax := game.MaxHealthFor(p.HeroClass, p.Level()); newMax != p.MaxHealth {
			delta := newMax - p.MaxHealth
			p.MaxHealth = newMax
			p.Health = min(newMax, max(1, p.Health+delta))
		}
	}
	tc.emit(game.Event{Type: game.EventStatUpgraded, PlayerID: p.ID, Stat: a.Stat, Dice: []int{roll}, Success: success, Amount: p.StatTotal(a.Stat)})
	if !success {
		return fmt.Sprintf("%s rolled %d: no upgrade", p.Name, roll), nil
	}
	return fmt.Sprintf("%s rolled %d: %s is now %d", p.Name, roll, a.Stat, p.StatTotal(a.Stat)), nil
}

func endTurn(tc *turnContext, p *game.Player, _ game.GameAction) (string, error) {
	if p.TurnPhase == game.PhaseMove {
		tc.closeMovePhase(p)
	}
	tc.healAtVillage(p)
	if tc.tileType(p.Position) == game.TileTemple && len(p.Revelations) < MaxRevelationsHeld {
		tc.drawRevelation(p, game.SourceFor(p.State))
	}
	tc.advanceTurn()
	return fmt.Sprintf("%s ends the turn", p.Name), nil
}

func completeRevelationAction(tc *turnContext, p *game.Player, a game.GameAction) (string, error) {
	if err := tc.completeRevelation(p, a.RevelationID); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s completes %s", p.Name, a.RevelationID), nil
}

func applyCorruptDice(tc *turnContext, p *game.Player, a game.GameAction) (string, error) {
	if p.CorruptDice == nil {
		return "", ErrNoCorruptDie
	}
	if p.CorruptDiceTarget != nil {
		return "", ErrCorruptDieBound
	}
	if !game.ValidStat(a.Stat) {
		return "", ErrInvalidStat
	}
	stat := a.Stat
	p.CorruptDiceTarget = &stat
	tc.emit(game.Event{Type: game.EventStatUpgraded, PlayerID: p.ID, Stat: stat, Dice: []int{*p.CorruptDice}, Success: true, Amount: p.StatTotal(stat)})
	return fmt.Sprintf("%s binds the corrupt die to %s", p.Name, stat), nil
}

func chooseHoly(tc *turnContext, p *game.Player, _ game.GameAction) (string, error) {
	if p.State != game.StateCorrupt {
		return "", ErrNotCorrupt
	}
	if p.HasDemonSword {
		return "", ErrHoldingDemonSword
	}
	p.State = game.StateHoly
	tc.emit(game.Event{Type: game.EventStateChanged, PlayerID: p.ID, Amount: p.CorruptDiceValue()})
	return fmt.Sprintf("%s returns to the light", p.Name), nil
}
