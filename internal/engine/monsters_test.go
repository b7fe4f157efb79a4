package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/hexcrusade/internal/game"
)

// monsterGame returns a warrior (p1) and a rogue (p2) with p1 moved to q,r.
func monsterGame(t *testing.T, q, r int) game.GameState {
	t.Helper()
	_, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)
	place(&st, "p1", q, r)
	return st
}

func TestMonsterPhase_DiceSortedAndTrollHits(t *testing.T) {
	st := monsterGame(t, 4, 0)
	next, events := RunMonsterPhase(st, &ScriptedRoller{Dice: []int{6, 1, 5, 2, 4, 1}})

	assert.Equal(t, []int{1, 1, 2, 4, 5, 6}, next.MonsterDice)
	// troll draws dice 0 and 1
	assert.Equal(t, 30-2, next.Player("p1").Health)
	require.Equal(t, 1, countEvents(events, game.EventMonsterAttacked))
	assert.Equal(t, 1, countEvents(events, game.EventMonsterPhase))
}

func TestMonsterPhase_TrollIgnoresCorruptOnEvenSum(t *testing.T) {
	st := monsterGame(t, 4, 0)
	st.Player("p1").State = game.StateCorrupt

	next, _ := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(1)})
	assert.Equal(t, 30, next.Player("p1").Health)

	next, _ = RunMonsterPhase(st, &ScriptedRoller{Dice: []int{1, 2, 6, 6, 6, 6}})
	assert.Equal(t, 30-3, next.Player("p1").Health)
}

func TestMonsterPhase_ShieldedTargetsAreSkipped(t *testing.T) {
	st := monsterGame(t, 4, 0)
	st.Player("p1").Stealthed = true
	next, _ := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(3)})
	assert.Equal(t, 30, next.Player("p1").Health)

	st.Player("p1").Stealthed = false
	st.Player("p1").HasDemonSword = true
	next, _ = RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(3)})
	assert.Equal(t, 30, next.Player("p1").Health)
}

func TestMonsterPhase_IronStanceReducesDamage(t *testing.T) {
	st := monsterGame(t, 4, 0)
	st.Player("p1").IronStanceActive = true

	next, _ := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(3)})
	// troll sum 6 minus strength 2
	assert.Equal(t, 30-4, next.Player("p1").Health)

	next, _ = RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(1)})
	assert.Equal(t, 30, next.Player("p1").Health, "floored at zero")
}

func TestMonsterPhase_TargetPickedBySumModulo(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)
	place(&st, "p1", 4, 0)
	place(&st, "p2", 4, -1)

	// sum 3 over two adjacent heroes hits index 1
	next, _ := RunMonsterPhase(st, &ScriptedRoller{Dice: []int{1, 2, 6, 6, 6, 6}})
	assert.Equal(t, 30, next.Player("p1").Health)
	assert.Equal(t, 25-3, next.Player("p2").Health)
}

func TestMonsterPhase_HydraThresholdAndHeal(t *testing.T) {
	st := monsterGame(t, -4, 0)
	st.Monster(game.MonsterHydra).Health = 20

	next, _ := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(4)})
	assert.Equal(t, 30, next.Player("p1").Health, "sum 12 is below the hydra threshold")
	assert.Equal(t, 20, next.Monster(game.MonsterHydra).Health)

	next, _ = RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(5)})
	assert.Equal(t, 30-15, next.Player("p1").Health)
	assert.Equal(t, 50, next.Monster(game.MonsterHydra).Health, "heals twice the damage, capped")
}

func TestMonsterPhase_HarpyPushesAway(t *testing.T) {
	st := monsterGame(t, 0, 4)

	next, events := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(4)})
	p1 := next.Player("p1")
	assert.Equal(t, 30-8, p1.Health)
	assert.Equal(t, at(0, 5), p1.Position)
	assert.Equal(t, 1, countEvents(events, game.EventPlayerMoved))

	next, _ = RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(3)})
	assert.Equal(t, at(0, 4), next.Player("p1").Position, "sum 6 does not push")
}

func TestMonsterPhase_HarpyPushTriggersTrap(t *testing.T) {
	st := monsterGame(t, 0, 4)
	p2 := st.Player("p2")
	p2.Traps = append(p2.Traps, at(0, 5))

	next, _ := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(4)})
	p1 := next.Player("p1")
	assert.Equal(t, at(0, 5), p1.Position)
	assert.Equal(t, 30-8-TrapDamage, p1.Health)
	assert.Empty(t, next.Player("p2").Traps, "the trap is spent")
}

func TestMonsterPhase_RoundBuffs(t *testing.T) {
	// p1 next to the golem at (-3,3), p2 next to the lich at (0,-3)
	st := monsterGame(t, -2, 3)
	place(&st, "p2", 0, -4)
	st.MonsterRoundBuffs = game.MonsterRoundBuffs{GolemBasicAttackImmune: true, MeteorImmune: true, FireTileDisabled: true}

	next, _ := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(1)})
	assert.Equal(t, game.MonsterRoundBuffs{}, next.MonsterRoundBuffs, "buffs reset at the start of the phase")

	next, _ = RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(4)})
	assert.True(t, next.MonsterRoundBuffs.GolemBasicAttackImmune)
	assert.False(t, next.MonsterRoundBuffs.MeteorImmune)

	next, _ = RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(5)})
	assert.True(t, next.MonsterRoundBuffs.MeteorImmune)
}

func TestMonsterPhase_IdleMonstersSetNoBuffs(t *testing.T) {
	st := monsterGame(t, 1, -1)

	next, events := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(6)})
	assert.Equal(t, game.MonsterRoundBuffs{}, next.MonsterRoundBuffs)
	assert.Zero(t, countEvents(events, game.EventMonsterAttacked))
}

func TestMonsterPhase_Respawns(t *testing.T) {
	st := monsterGame(t, 1, -1)
	balrog := st.Monster(game.MonsterBalrog)
	balrog.IsDead = true
	balrog.Health = 0
	st.MonsterRoundBuffs.FireTileDisabled = true
	troll := st.Monster(game.MonsterTroll)
	troll.IsDead = true
	troll.Health = 0
	troll.RespawnCountdown = game.MonsterRespawnPhases

	next, events := RunMonsterPhase(st, &ScriptedRoller{Dice: sixOf(1)})
	assert.False(t, next.Monster(game.MonsterBalrog).IsDead, "the balrog never stays dead across a phase")
	assert.Equal(t, 80, next.Monster(game.MonsterBalrog).Health)
	assert.False(t, next.MonsterRoundBuffs.FireTileDisabled)
	assert.True(t, next.Monster(game.MonsterTroll).IsDead)
	assert.Equal(t, 2, next.Monster(game.MonsterTroll).RespawnCountdown)
	assert.Equal(t, 1, countEvents(events, game.EventMonsterRespawned))

	next, _ = RunMonsterPhase(next, &ScriptedRoller{Dice: sixOf(1)})
	next, _ = RunMonsterPhase(next, &ScriptedRoller{Dice: sixOf(1)})
	assert.False(t, next.Monster(game.MonsterTroll).IsDead)
	assert.Equal(t, 30, next.Monster(game.MonsterTroll).Health)
}
