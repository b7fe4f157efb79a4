package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/hexcrusade/internal/game"
)

func TestCreateGame_Validation(t *testing.T) {
	e := New(&ScriptedRoller{})

	_, err := e.CreateGame([]PlayerSetup{{ID: "a", Name: "A", HeroClass: game.ClassMage}}, nil)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)

	_, err = e.CreateGame([]PlayerSetup{
		{ID: "a", Name: "A", HeroClass: game.ClassMage},
		{ID: "a", Name: "B", HeroClass: game.ClassRogue},
	}, nil)
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	_, err = e.CreateGame([]PlayerSetup{
		{ID: "a", Name: "A", HeroClass: game.ClassMage},
		{ID: "b", Name: "B", HeroClass: "bard"},
	}, nil)
	assert.ErrorIs(t, err, ErrUnknownClass)

	off := at(9, 9)
	_, err = e.CreateGame([]PlayerSetup{
		{ID: "a", Name: "A", HeroClass: game.ClassMage},
		{ID: "b", Name: "B", HeroClass: game.ClassRogue},
	}, &off)
	assert.ErrorIs(t, err, ErrOffBoard)
}

func TestCreateGame_InitialState(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue, game.ClassMage)

	assert.Equal(t, []string{"p2", "p1", "p3", game.MonsterTurn}, st.RoundTurnOrder)
	assert.Equal(t, "p2", st.CurrentTurnEntry())
	assert.Equal(t, 1, st.RoundNumber)
	assert.Len(t, st.Monsters, len(game.MonsterDefinitions))
	require.NotNil(t, st.DemonSwordPosition)
	assert.Equal(t, game.DefaultDemonSwordPosition, *st.DemonSwordPosition)
	assert.Len(t, st.RevelationDeck, len(game.Revelations)-3)

	for _, p := range st.Players {
		assert.Equal(t, game.StateHoly, p.State)
		assert.Equal(t, p.MaxHealth, p.Health)
		require.Len(t, p.Revelations, 1)
		assert.Equal(t, game.SourceAngel, p.Revelations[0].Source)
		tile, ok := st.Board.Tile(p.Position)
		require.True(t, ok)
		assert.Equal(t, game.TileVillage, tile.Type)
		assert.Equal(t, p.HeroClass, tile.VillageClass)
	}
}

func TestExecuteAction_RollAndMove(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{Dice: []int{3, 3}}, game.ClassWarrior, game.ClassRogue, game.ClassMage)
	require.Equal(t, at(-5, 0), st.Player("p2").Position)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionRollMoveDice}, "p2")
	require.True(t, res.Success, res.Message)
	require.Equal(t, 1, countEvents(res.Events, game.EventMoveDiceRolled))
	assert.Equal(t, []int{3, 3}, res.Events[0].Dice)
	assert.Equal(t, 8, *res.NewState.Player("p2").RemainingMovement)

	res = e.ExecuteAction(res.NewState, game.GameAction{Type: game.ActionMove, Position: game.CoordPtr(at(-4, 0))}, "p2")
	require.True(t, res.Success, res.Message)
	p2 := res.NewState.Player("p2")
	assert.Equal(t, at(-4, 0), p2.Position)
	assert.Equal(t, 5, *p2.RemainingMovement)
	require.Len(t, res.Events, 1)
	ev := res.Events[0]
	assert.Equal(t, game.EventPlayerMoved, ev.Type)
	assert.Equal(t, at(-5, 0), *ev.From)
	assert.Equal(t, at(-4, 0), *ev.To)

	res = e.ExecuteAction(res.NewState, game.GameAction{Type: game.ActionEndMovePhase}, "p2")
	require.True(t, res.Success, res.Message)
	p2 = res.NewState.Player("p2")
	assert.Equal(t, game.PhaseAction, p2.TurnPhase)
	assert.Equal(t, 5, p2.LeftoverMovement)
}

func TestExecuteAction_FailureLeavesStateUntouched(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionMove, Position: game.CoordPtr(at(-4, 0))}, "p2")
	assert.False(t, res.Success)
	assert.Equal(t, ErrNotRolled.Error(), res.Message)
	assert.Equal(t, st, res.NewState)
	assert.NotNil(t, res.Events)
	assert.Empty(t, res.Events)

	res = e.ExecuteAction(st, game.GameAction{Type: "DANCE"}, "p2")
	assert.False(t, res.Success)
	assert.Equal(t, ErrUnknownAction.Error(), res.Message)
}

func TestExecuteAction_TurnGating(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionRollMoveDice}, "p1")
	assert.False(t, res.Success)
	assert.Equal(t, ErrNotYourTurn.Error(), res.Message)

	res = e.ExecuteAction(st, game.GameAction{Type: game.ActionRollMoveDice}, "ghost")
	assert.Equal(t, ErrUnknownPlayer.Error(), res.Message)

	p1 := st.Player("p1")
	p1.State = game.StateCorrupt
	p1.CorruptDice = intPtr(2)
	res = e.ExecuteAction(st, game.GameAction{Type: game.ActionApplyCorruptDice, Stat: game.StatDexterity}, "p1")
	require.True(t, res.Success, res.Message)
	assert.Equal(t, game.StatDexterity, *res.NewState.Player("p1").CorruptDiceTarget)
	assert.Equal(t, 4, res.NewState.Player("p1").StatTotal(game.StatDexterity))

	res = e.ExecuteAction(res.NewState, game.GameAction{Type: game.ActionApplyCorruptDice, Stat: game.StatStrength}, "p1")
	assert.Equal(t, ErrCorruptDieBound.Error(), res.Message)
}

func TestExecuteAction_GameOverRejectsEverything(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)
	st.Result = &game.VictoryResult{VictoryType: game.VictoryAngel, TriggerPlayerID: "p1", WinnerID: "p1"}

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionRollMoveDice}, "p2")
	assert.False(t, res.Success)
	assert.Equal(t, ErrGameOver.Error(), res.Message)

	v := ValidateAction(st, game.GameAction{Type: game.ActionEndTurn}, "p2")
	assert.False(t, v.Valid)
	assert.Empty(t, e.GetValidActions(st, "p2"))
}

func TestValidateAction(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)

	assert.True(t, ValidateAction(st, game.GameAction{Type: game.ActionEndTurn}, "p2").Valid)
	v := ValidateAction(st, game.GameAction{Type: game.ActionEndTurn}, "p1")
	assert.False(t, v.Valid)
	assert.Equal(t, ErrNotYourTurn.Error(), v.Reason)
	assert.True(t, ValidateAction(st, game.GameAction{Type: game.ActionChooseHoly}, "p1").Valid, "phase rules are left to execution")
}

func TestEndTurn_FullRoundRunsMonsterPhase(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)
	st.Player("p1").SkillCooldowns[game.SkillCharge] = 2

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionEndTurn}, "p2")
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "p1", res.NewState.CurrentTurnEntry())
	assert.Zero(t, countEvents(res.Events, game.EventMonsterPhase))

	res = e.ExecuteAction(res.NewState, game.GameAction{Type: game.ActionEndTurn}, "p1")
	require.True(t, res.Success, res.Message)
	next := res.NewState
	assert.Equal(t, 2, next.RoundNumber)
	assert.Equal(t, 1, countEvents(res.Events, game.EventMonsterPhase))
	assert.Equal(t, 1, countEvents(res.Events, game.EventRoundStarted))
	assert.Equal(t, sixOf(1), next.MonsterDice)
	assert.Equal(t, "p2", next.CurrentTurnEntry())
	assert.Equal(t, game.PhaseMove, next.Player("p2").TurnPhase)
	assert.Equal(t, 1, next.Player("p1").SkillCooldowns[game.SkillCharge])
}

func TestEndTurn_LeftoverMovementOrdersNextRound(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{Dice: []int{1, 1, 6, 6}}, game.ClassWarrior, game.ClassRogue)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionRollMoveDice}, "p2")
	require.True(t, res.Success, res.Message)
	res = e.ExecuteAction(res.NewState, game.GameAction{Type: game.ActionEndTurn}, "p2")
	require.True(t, res.Success, res.Message)
	res = e.ExecuteAction(res.NewState, game.GameAction{Type: game.ActionRollMoveDice}, "p1")
	require.True(t, res.Success, res.Message)
	res = e.ExecuteAction(res.NewState, game.GameAction{Type: game.ActionEndTurn}, "p1")
	require.True(t, res.Success, res.Message)

	assert.Equal(t, 4, res.NewState.Player("p2").LeftoverMovement)
	assert.Equal(t, 14, res.NewState.Player("p1").LeftoverMovement)
	assert.Equal(t, []string{"p1", "p2", game.MonsterTurn}, res.NewState.RoundTurnOrder)
}

func TestEndTurn_TempleDrawsACard(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p1", 2, -4)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionEndTurn}, "p1")
	require.True(t, res.Success, res.Message)
	hand := res.NewState.Player("p1").Revelations
	require.Len(t, hand, 2)
	assert.Equal(t, "angel-3", hand[1].ID)
	assert.Equal(t, 1, countEvents(res.Events, game.EventRevelationDrawn))
}

func TestEndRound_RespawnsAfterTwoRounds(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)
	st, _ = ApplyDamageToPlayer(st, "p1", 100, "")
	require.True(t, st.Player("p1").IsDead)
	place(&st, "p1", 1, 1)

	tc := newTurnContext(&st, nil)
	tc.endRound()
	assert.True(t, st.Player("p1").IsDead)
	assert.NotContains(t, st.RoundTurnOrder, "p1")

	tc.endRound()
	p1 := st.Player("p1")
	assert.False(t, p1.IsDead)
	assert.Equal(t, 15, p1.Health)
	assert.Equal(t, at(5, -5), p1.Position)
	assert.Equal(t, 1, countEvents(tc.events, game.EventPlayerRespawned))
	assert.Contains(t, st.RoundTurnOrder, "p1")
}

func TestExecuteAction_DyingOnOwnTurnPassesTheTurn(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p1", 1, -1)
	p1 := st.Player("p1")
	p1.Health = 3
	p1.RemainingMovement = intPtr(6)
	st.Player("p2").Traps = append(st.Player("p2").Traps, at(1, 0))

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionMove, Position: game.CoordPtr(at(1, 0))}, "p1")
	require.True(t, res.Success, res.Message)
	assert.True(t, res.NewState.Player("p1").IsDead)
	assert.Empty(t, res.NewState.Player("p2").Traps)
	assert.Equal(t, "p2", res.NewState.CurrentTurnEntry())
}

func TestMove_TrapStopsMovement(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p1", 1, -1)
	st.Player("p1").RemainingMovement = intPtr(6)
	st.Player("p2").Traps = append(st.Player("p2").Traps, at(1, 0))

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionMove, Position: game.CoordPtr(at(1, 0))}, "p1")
	require.True(t, res.Success, res.Message)
	p1 := res.NewState.Player("p1")
	assert.Equal(t, 25-TrapDamage, p1.Health)
	assert.Equal(t, game.PhaseAction, p1.TurnPhase)
	assert.Equal(t, 3, p1.LeftoverMovement)
	assert.Equal(t, 1, countEvents(res.Events, game.EventPlayerAttacked))
}

func TestMove_HillEndsMovement(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p1", 5, -1)
	st.Player("p1").RemainingMovement = intPtr(8)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionMove, Position: game.CoordPtr(at(4, -1))}, "p1")
	require.True(t, res.Success, res.Message)
	p1 := res.NewState.Player("p1")
	assert.Equal(t, 0, *p1.RemainingMovement)
	assert.Equal(t, 0, p1.LeftoverMovement)
	assert.Equal(t, game.PhaseAction, p1.TurnPhase)
	assert.Equal(t, 8, res.Events[0].Amount)
}

func TestMove_Rejections(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p1", 1, -1)
	place(&st, "p2", 1, 0)
	st.Player("p1").RemainingMovement = intPtr(2)

	cases := []struct {
		to   *hexPos
		want error
	}{
		{nil, ErrMissingPosition},
		{&hexPos{3, -1}, ErrNotAdjacent},
		{&hexPos{2, -2}, ErrTileBlocked},
		{&hexPos{1, 0}, ErrTileOccupied},
		{&hexPos{0, -1}, ErrNotEnoughMovement},
	}
	for _, c := range cases {
		a := game.GameAction{Type: game.ActionMove}
		if c.to != nil {
			a.Position = game.CoordPtr(at(c.to.q, c.to.r))
		}
		res := e.ExecuteAction(st, a, "p1")
		assert.False(t, res.Success)
		assert.Equal(t, c.want.Error(), res.Message)
	}
}

type hexPos struct{ q, r int }

func TestMove_PicksUpKnownSword(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassRogue, game.ClassWarrior)
	place(&st, "p1", 1, -1)
	st.DemonSwordPosition = game.CoordPtr(at(1, 0))
	st.Player("p1").RemainingMovement = intPtr(6)
	a := game.GameAction{Type: game.ActionMove, Position: game.CoordPtr(at(1, 0))}

	res := e.ExecuteAction(st, a, "p1")
	require.True(t, res.Success, res.Message)
	assert.False(t, res.NewState.Player("p1").HasDemonSword, "an unknown sword stays hidden")

	st.Player("p1").KnowsDemonSwordPosition = true
	res = e.ExecuteAction(st, a, "p1")
	require.True(t, res.Success, res.Message)
	assert.True(t, res.NewState.Player("p1").HasDemonSword)
	assert.Nil(t, res.NewState.DemonSwordPosition)
	assert.Equal(t, 1, countEvents(res.Events, game.EventDemonSwordTaken))
}

func TestRollStatDice(t *testing.T) {
	r := &ScriptedRoller{Dice: []int{6, 1}}
	e, st := newGame(t, r, game.ClassWarrior, game.ClassMage)
	p1 := actionPhase(&st)
	p1.MonsterEssence = 5
	a := game.GameAction{Type: game.ActionRollStatDice, Stat: game.StatStrength}

	res := e.ExecuteAction(st, a, "p1")
	require.True(t, res.Success, res.Message)
	p1 = res.NewState.Player("p1")
	assert.Equal(t, 7, p1.StatTotal(game.StatStrength))
	assert.Equal(t, 3, p1.MonsterEssence)
	assert.Equal(t, 40, p1.MaxHealth)
	assert.Equal(t, 40, p1.Health)
	require.Equal(t, 1, countEvents(res.Events, game.EventStatUpgraded))
	assert.True(t, res.Events[0].Success)

	// level is now 7, so the next roll costs more than what is left
	res2 := e.ExecuteAction(res.NewState, a, "p1")
	assert.Equal(t, ErrNotEnoughEssence.Error(), res2.Message)

	res.NewState.Player("p1").MonsterEssence = 7
	res = e.ExecuteAction(res.NewState, a, "p1")
	require.True(t, res.Success, res.Message)
	p1 = res.NewState.Player("p1")
	assert.False(t, res.Events[0].Success)
	assert.Equal(t, 7, p1.StatTotal(game.StatStrength))
	assert.Equal(t, 0, p1.MonsterEssence)

	res = e.ExecuteAction(st, game.GameAction{Type: game.ActionRollStatDice, Stat: "luck"}, "p1")
	assert.Equal(t, ErrInvalidStat.Error(), res.Message)
}

func TestChooseHoly(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)
	p1 := st.Player("p1")

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionChooseHoly}, "p1")
	assert.Equal(t, ErrNotCorrupt.Error(), res.Message)

	p1.State = game.StateCorrupt
	p1.CorruptDice = intPtr(4)
	p1.HasDemonSword = true
	res = e.ExecuteAction(st, game.GameAction{Type: game.ActionChooseHoly}, "p1")
	assert.Equal(t, ErrHoldingDemonSword.Error(), res.Message)

	p1.HasDemonSword = false
	res = e.ExecuteAction(st, game.GameAction{Type: game.ActionChooseHoly}, "p1")
	require.True(t, res.Success, res.Message)
	assert.Equal(t, game.StateHoly, res.NewState.Player("p1").State)
	assert.Equal(t, 4, res.NewState.Player("p1").CorruptDiceValue())
}

func TestGetValidActions(t *testing.T) {
	e, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)

	types := func(vs []game.ValidAction) map[game.ActionType]int {
		m := map[game.ActionType]int{}
		for _, v := range vs {
			m[v.Action.Type]++
		}
		return m
	}

	current := types(e.GetValidActions(st, ""))
	assert.Equal(t, 1, current[game.ActionRollMoveDice])
	assert.Equal(t, 1, current[game.ActionEndTurn])
	assert.Zero(t, current[game.ActionMove])
	assert.Zero(t, current[game.ActionBasicAttack])

	assert.Empty(t, e.GetValidActions(st, "p1"), "a holy bystander has nothing to do")

	p1 := st.Player("p1")
	p1.State = game.StateCorrupt
	p1.CorruptDice = intPtr(2)
	other := types(e.GetValidActions(st, "p1"))
	assert.Equal(t, map[game.ActionType]int{
		game.ActionApplyCorruptDice: len(game.StatKeys),
		game.ActionChooseHoly:       1,
	}, other)

	res := e.ExecuteAction(st, game.GameAction{Type: game.ActionRollMoveDice}, "p2")
	require.True(t, res.Success, res.Message)
	rolled := types(e.GetValidActions(res.NewState, "p2"))
	assert.Zero(t, rolled[game.ActionRollMoveDice])
	assert.Positive(t, rolled[game.ActionMove])
	assert.Equal(t, 1, rolled[game.ActionEndMovePhase])

	for _, v := range e.GetValidActions(res.NewState, "p2") {
		assert.NotEmpty(t, v.Description)
		check := e.ExecuteAction(res.NewState, v.Action, "p2")
		assert.True(t, check.Success, "%s: %s", v.Description, check.Message)
	}
}

func TestReachableTiles(t *testing.T) {
	_, st := newGame(t, &ScriptedRoller{}, game.ClassWarrior, game.ClassRogue)
	assert.Nil(t, ReachableTiles(st, "p2"), "nothing before the roll")

	place(&st, "p2", -4, 0)
	st.Player("p2").RemainingMovement = intPtr(3)
	tiles := ReachableTiles(st, "p2")

	assert.Contains(t, tiles, at(-5, 0))
	assert.Contains(t, tiles, at(-4, 1), "a hill takes whatever is left")
	assert.NotContains(t, tiles, at(-4, 0))
	assert.NotContains(t, tiles, at(-3, 0), "monster tile")
	assert.NotContains(t, tiles, at(-2, -1), "needs more than one step")
	for _, c := range tiles {
		assert.True(t, st.Board.Contains(c))
	}
}
