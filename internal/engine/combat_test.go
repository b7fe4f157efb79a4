package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/hexcrusade/internal/game"
)

func TestApplyDamageToPlayer_ClampsAndKills(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)

	next, events := ApplyDamageToPlayer(st, "p2", 12, "p1")
	p2 := next.Player("p2")
	assert.Equal(t, 18, p2.Health)
	assert.False(t, p2.IsDead)
	assert.Equal(t, 1, countEvents(events, game.EventPlayerAttacked))
	assert.Equal(t, 30, st.Player("p2").Health, "input state must not change")

	next, events = ApplyDamageToPlayer(next, "p2", 100, "p1")
	p2 = next.Player("p2")
	assert.Equal(t, 0, p2.Health)
	assert.True(t, p2.IsDead)
	assert.Equal(t, RespawnTurns, p2.DeathTurnsRemaining)
	assert.Equal(t, 1, countEvents(events, game.EventPlayerDied))
}

func TestApplyDamageToPlayer_MissingOrDeadTargetIsNoop(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)

	next, events := ApplyDamageToPlayer(st, "nobody", 5, "p1")
	assert.Equal(t, st, next)
	assert.Empty(t, events)

	st.Player("p2").IsDead = true
	st.Player("p2").Health = 0
	next, events = ApplyDamageToPlayer(st, "p2", 5, "p1")
	assert.Equal(t, st, next)
	assert.Empty(t, events)
}

func TestApplyDamageToPlayer_NoAttackerEmitsNoAttackEvent(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	next, events := ApplyDamageToPlayer(st, "p1", 4, "")
	assert.Equal(t, 21, next.Player("p1").Health)
	assert.Zero(t, countEvents(events, game.EventPlayerAttacked))
}

func TestApplyDamageToPlayer_DropsDemonSword(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	st.DemonSwordPosition = nil
	st.Player("p2").HasDemonSword = true
	place(&st, "p2", 1, 1)

	next, _ := ApplyDamageToPlayer(st, "p2", 100, "p1")
	require.NotNil(t, next.DemonSwordPosition)
	assert.Equal(t, at(1, 1), *next.DemonSwordPosition)
	assert.False(t, next.Player("p2").HasDemonSword)
}

func TestApplyDamageToPlayer_DeathRemovesClones(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)
	st.Clones = []game.Clone{{OwnerID: "p2", Position: at(1, 0)}, {OwnerID: "p1", Position: at(-1, 0)}}

	next, _ := ApplyDamageToPlayer(st, "p2", 100, "p1")
	require.True(t, next.Player("p2").IsDead)
	assert.Equal(t, []game.Clone{{OwnerID: "p1", Position: at(-1, 0)}}, next.Clones)
	assert.Len(t, st.Clones, 2, "input state untouched")
}

func TestApplyDamageToMonster_EssenceNeverExceedsHealth(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	troll := st.Monster(game.MonsterTroll)
	// below 10 max health the sacrifice pool is empty
	troll.MaxHealth = 9
	troll.Health = 3

	next, events := ApplyDamageToMonster(st, game.MonsterTroll, 100, "p1")
	assert.Equal(t, 3, next.Player("p1").MonsterEssence)
	assert.True(t, next.Monster(game.MonsterTroll).IsDead)
	assert.Equal(t, 0, next.Monster(game.MonsterTroll).Health)
	assert.Equal(t, 1, countEvents(events, game.EventMonsterDied))
}

func TestApplyDamageToMonster_SacrificeSplit(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior, game.ClassMage)
	troll := st.Monster(game.MonsterTroll)
	troll.Health = 4
	// troll sits on (3,0); p2 stands next to it, p3 does not
	place(&st, "p1", 4, 0)
	place(&st, "p2", 4, -1)
	place(&st, "p3", -1, 1)

	next, _ := ApplyDamageToMonster(st, game.MonsterTroll, 10, "p1")
	// pool = 30/10 = 3: killer 2, helper gets the remaining 1
	assert.Equal(t, 4+2, next.Player("p1").MonsterEssence)
	assert.Equal(t, 1, next.Player("p2").MonsterEssence)
	assert.Equal(t, 0, next.Player("p3").MonsterEssence)
	assert.Equal(t, game.MonsterRespawnPhases, next.Monster(game.MonsterTroll).RespawnCountdown)
}

func TestApplyDamageToMonster_SacrificeRemainderUnclaimed(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior, game.ClassMage)
	st.Monster(game.MonsterTroll).Health = 1
	place(&st, "p1", 4, 0)
	place(&st, "p2", 4, -1)
	place(&st, "p3", 2, 1)

	next, _ := ApplyDamageToMonster(st, game.MonsterTroll, 5, "p1")
	// remaining 1 split between two helpers floors to 0
	assert.Equal(t, 1+2, next.Player("p1").MonsterEssence)
	assert.Equal(t, 0, next.Player("p2").MonsterEssence)
	assert.Equal(t, 0, next.Player("p3").MonsterEssence)
}

func TestApplyDamageToMonster_BalrogDeathQuenchesFire(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	st.Monster(game.MonsterBalrog).Health = 1
	next, _ := ApplyDamageToMonster(st, game.MonsterBalrog, 1, "p1")
	assert.True(t, next.MonsterRoundBuffs.FireTileDisabled)
}

func TestHealAtVillage(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	rogue := st.Player("p1")
	require.Equal(t, at(-5, 0), rogue.Position)

	rogue.Health = 10
	next, healed := HealAtVillage(st, "p1")
	assert.Equal(t, 10, healed)
	assert.Equal(t, 20, next.Player("p1").Health)

	rogue.Health = 20
	next, healed = HealAtVillage(st, "p1")
	assert.Equal(t, 5, healed, "clamped to max health")
	assert.Equal(t, 25, next.Player("p1").Health)

	place(&st, "p1", 5, -5)
	rogue = st.Player("p1")
	rogue.Health = 10
	_, healed = HealAtVillage(st, "p1")
	assert.Equal(t, 5, healed, "other class village")

	place(&st, "p1", 1, -1)
	next, healed = HealAtVillage(st, "p1")
	assert.Equal(t, 0, healed)
	assert.Equal(t, st, next)
}

func TestApplyFireTileDamage(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p2", 4, -3)
	st.Player("p2").CorruptDice = intPtr(3)

	next, _ := ApplyFireTileDamage(st, "p2")
	assert.Equal(t, 30-7, next.Player("p2").Health)

	st.Player("p2").State = game.StateCorrupt
	next, _ = ApplyFireTileDamage(st, "p2")
	assert.Equal(t, 30, next.Player("p2").Health)

	st.Player("p2").State = game.StateHoly
	st.MonsterRoundBuffs.FireTileDisabled = true
	next, _ = ApplyFireTileDamage(st, "p2")
	assert.Equal(t, 30, next.Player("p2").Health)

	st.MonsterRoundBuffs.FireTileDisabled = false
	place(&st, "p2", 1, -1)
	next, _ = ApplyFireTileDamage(st, "p2")
	assert.Equal(t, 30, next.Player("p2").Health)
}

func TestCorruptionChain_HolyKillerTurnsCorrupt(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p1", 1, -1)
	place(&st, "p2", 1, 0)
	st.Player("p2").Health = 1
	st.Player("p2").Revelations = nil
	actionPhase(&st)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionBasicAttack, TargetID: "p2"}, "p1")
	require.True(t, res.Success, res.Message)
	p1 := res.NewState.Player("p1")
	assert.Equal(t, game.StateCorrupt, p1.State)
	require.NotNil(t, p1.CorruptDice)
	assert.Equal(t, 1, *p1.CorruptDice)
	assert.Nil(t, p1.CorruptDiceTarget)
	assert.True(t, p1.HasRevelation("demon-1"), "a new corrupt hero draws a demon card")
	assert.True(t, res.NewState.Player("p2").IsDead)
}

func TestCorruptionChain_CorruptKillerRaisesDie(t *testing.T) {
	cases := []struct{ before, after int }{
		{2, 3},
		{6, 6},
	}
	for _, c := range cases {
		e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
		place(&st, "p1", 1, -1)
		place(&st, "p2", 1, 0)
		p1 := st.Player("p1")
		p1.State = game.StateCorrupt
		p1.CorruptDice = intPtr(c.before)
		st.Player("p2").Health = 2
		st.Player("p2").Revelations = nil
		actionPhase(&st)

		res := e.ExecuteAction(st, game.GameAction{Type: game.ActionBasicAttack, TargetID: "p2"}, "")
		require.True(t, res.Success, res.Message)
		assert.Equal(t, c.after, *res.NewState.Player("p1").CorruptDice)
	}
}

func TestCorruptionChain_RangedKillDoesNotCorrupt(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p1", 1, -1)
	place(&st, "p2", 1, 1)
	st.Player("p2").Health = 1
	actionPhase(&st)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionUseSkill, SkillID: game.SkillShuriken, Position: game.CoordPtr(at(1, 1))}, "p1")
	require.True(t, res.Success, res.Message)
	assert.True(t, res.NewState.Player("p2").IsDead)
	assert.Equal(t, game.StateHoly, res.NewState.Player("p1").State)
}
