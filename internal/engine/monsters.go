package engine

import (
	"sort"

	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// monsterEffect resolves one monster's turn for the phase's dice sum.
// adjacent holds the living heroes next to the monster in player order.
type monsterEffect func(tc *turnContext, m *game.Monster, sum int, adjacent []*game.Player)

// monsterEffects maps monster ids to their resolver. Monsters without an
// entry use defaultMonsterEffect.
var monsterEffects = map[string]monsterEffect{
	game.MonsterTroll:  trollEffect,
	game.MonsterHarpy:  harpyEffect,
	game.MonsterGolem:  golemEffect,
	game.MonsterHydra:  hydraEffect,
	game.MonsterLich:   lichEffect,
	game.MonsterBalrog: defaultMonsterEffect,
}

// RunMonsterPhase resolves a monster phase on a copy of st.
func RunMonsterPhase(st game.GameState, r Roller) (game.GameState, []game.Event) {
	next := st.Clone()
	tc := newTurnContext(&next, r)
	tc.monsterPhase()
	return next, tc.events
}

func (tc *turnContext) monsterPhase() {
	st := tc.st
	// last phase's buffs stay in force until right now
	st.MonsterRoundBuffs = game.MonsterRoundBuffs{}
	tc.respawnMonsters()

	dice := make([]int, game.MonsterDiceCount)
	for i := range dice {
		dice[i] = tc.roller.D6()
	}
	sort.Ints(dice)
	st.MonsterDice = dice
	tc.emit(game.Event{Type: game.EventMonsterPhase, Dice: append([]int(nil), dice...), Round: st.RoundNumber})

	for i := range st.Monsters {
		m := &st.Monsters[i]
		if m.IsDead {
			continue
		}
		sum := 0
		for _, idx := range m.DiceIndices {
			if idx >= 0 && idx < len(dice) {
				sum += dice[idx]
			}
		}
		adjacent := tc.adjacentLivingPlayers(m.Position)
		if len(adjacent) == 0 {
			continue
		}
		effect, ok := monsterEffects[m.ID]
		if !ok {
			effect = defaultMonsterEffect
		}
		effect(tc, m, sum, adjacent)
	}
}

// respawnMonsters ticks dead monsters. The end monster always returns at the
// first check after its death.
func (tc *turnContext) respawnMonsters() {
	for i := range tc.st.Monsters {
		m := &tc.st.Monsters[i]
		if !m.IsDead {
			continue
		}
		if m.ID != game.EndMonsterID {
			m.RespawnCountdown--
			if m.RespawnCountdown > 0 {
				continue
			}
		}
		m.IsDead = false
		m.Health = m.MaxHealth
		m.RespawnCountdown = 0
		tc.emit(game.Event{Type: game.EventMonsterRespawned, MonsterID: m.ID, To: game.CoordPtr(m.Position)})
	}
}

// pickTarget selects adjacent[sum % len(adjacent)].
func pickTarget(sum int, adjacent []*game.Player) *game.Player {
	if len(adjacent) == 0 {
		return nil
	}
	return adjacent[sum%len(adjacent)]
}

// shielded reports whether a hero is out of a monster's reach this phase.
func shielded(p *game.Player) bool {
	return p.Stealthed || p.HasDemonSword
}

// monsterHit deals sum to target, reduced by iron stance, and returns the
// health removed.
func (tc *turnContext) monsterHit(m *game.Monster, target *game.Player, sum int) int {
	dmg := sum
	if target.IronStanceActive {
		dmg = max(0, dmg-target.StatTotal(game.StatStrength))
	}
	tc.emit(game.Event{Type: game.EventMonsterAttacked, MonsterID: m.ID, TargetID: target.ID, TargetKind: game.TargetPlayer, Amount: dmg})
	dealt, _ := tc.damagePlayer(target.ID, dmg, "")
	return dealt
}

// attack runs the shared targeting rules and returns the hit hero, or nil
// when the attack was skipped.
func (tc *turnContext) attack(m *game.Monster, sum int, adjacent []*game.Player) (*game.Player, int) {
	target := pickTarget(sum, adjacent)
	if target == nil || shielded(target) {
		return nil, 0
	}
	return target, tc.monsterHit(m, target, sum)
}

func defaultMonsterEffect(tc *turnContext, m *game.Monster, sum int, adjacent []*game.Player) {
	tc.attack(m, sum, adjacent)
}

func trollEffect(tc *turnContext, m *game.Monster, sum int, adjacent []*game.Player) {
	target := pickTarget(sum, adjacent)
	if target == nil || shielded(target) {
		return
	}
	if target.State == game.StateCorrupt && sum%2 == 0 {
		return
	}
	tc.monsterHit(m, target, sum)
}

func harpyEffect(tc *turnContext, m *game.Monster, sum int, adjacent []*game.Player) {
	target, _ := tc.attack(m, sum, adjacent)
	if target == nil || target.IsDead || sum < game.HarpyPushThreshold {
		return
	}
	dir, ok := hex.DirectionTo(m.Position, target.Position)
	if !ok {
		return
	}
	dest := hex.Neighbor(target.Position, dir)
	if !tc.standable(dest) {
		return
	}
	from := target.Position
	target.Position = dest
	tc.emit(game.Event{Type: game.EventPlayerMoved, PlayerID: target.ID, SourceID: m.ID, From: game.CoordPtr(from), To: game.CoordPtr(dest)})
	tc.enterTile(target)
}

func golemEffect(tc *turnContext, m *game.Monster, sum int, adjacent []*game.Player) {
	tc.attack(m, sum, adjacent)
	if sum >= game.GolemImmuneThreshold {
		tc.st.MonsterRoundBuffs.GolemBasicAttackImmune = true
	}
}

func hydraEffect(tc *turnContext, m *game.Monster, sum int, adjacent []*game.Player) {
	if sum < game.HydraAttackThreshold {
		return
	}
	if _, dealt := tc.attack(m, sum, adjacent); dealt > 0 {
		m.Health = min(m.MaxHealth, m.Health+2*dealt)
	}
}

func lichEffect(tc *turnContext, m *game.Monster, sum int, adjacent []*game.Player) {
	tc.attack(m, sum, adjacent)
	if sum >= game.LichImmuneThreshold {
		tc.st.MonsterRoundBuffs.MeteorImmune = true
	}
}
