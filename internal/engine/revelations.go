package engine

import (
	"github.com/ericogr/hexcrusade/internal/game"
)

// revelationTask is the completion predicate of a card, checked at the
// moment of completion.
type revelationTask func(tc *turnContext, p *game.Player) bool

var revelationTasks = map[string]revelationTask{
	"angel-1": func(tc *turnContext, p *game.Player) bool {
		return tc.tileType(p.Position) == game.TileTemple
	},
	"angel-2": func(tc *turnContext, p *game.Player) bool {
		t, ok := tc.tile(p.Position)
		return ok && t.Type == game.TileVillage && t.VillageClass == p.HeroClass
	},
	"angel-3": func(_ *turnContext, p *game.Player) bool { return p.StatTotal(game.StatStrength) >= 6 },
	"angel-4": func(_ *turnContext, p *game.Player) bool { return p.StatTotal(game.StatIntelligence) >= 6 },
	"angel-5": func(_ *turnContext, _ *game.Player) bool { return true },
	"angel-9": func(tc *turnContext, p *game.Player) bool {
		return tc.tileType(p.Position) == game.TileCastle && p.Health == p.MaxHealth
	},
	game.RevelationAngelSeal: func(tc *turnContext, p *game.Player) bool {
		return p.State == game.StateHoly && p.HasDemonSword && tc.tileType(p.Position) == game.TileTemple
	},

	"demon-1": func(_ *turnContext, p *game.Player) bool { return p.Health*2 <= p.MaxHealth },
	"demon-2": func(_ *turnContext, p *game.Player) bool { return p.CorruptDiceValue() >= 3 },
	"demon-3": func(tc *turnContext, p *game.Player) bool {
		return tc.tileType(p.Position) == game.TileFire
	},
	"demon-4": func(tc *turnContext, p *game.Player) bool {
		t, ok := tc.tile(p.Position)
		return ok && t.Type == game.TileVillage && t.VillageClass != p.HeroClass
	},
	"demon-5": func(_ *turnContext, _ *game.Player) bool { return true },
	"demon-6": func(_ *turnContext, p *game.Player) bool { return p.CorruptDiceTarget != nil },
	"demon-7": func(_ *turnContext, p *game.Player) bool { return p.HasDemonSword },
	game.RevelationDemonCoronation: func(tc *turnContext, p *game.Player) bool {
		return p.State == game.StateCorrupt && p.HasDemonSword &&
			tc.tileType(p.Position) == game.TileCastle && p.DevilScore >= 3
	},
}

// DrawRevelation moves a uniformly random card of source from the shared
// deck into the player's hand. An empty pool leaves the state unchanged.
func DrawRevelation(st game.GameState, r Roller, playerID string, source game.RevelationSource) (game.GameState, []game.Event) {
	if p := st.Player(playerID); p == nil {
		return st, nil
	}
	next := st.Clone()
	tc := newTurnContext(&next, r)
	if !tc.drawRevelation(tc.st.Player(playerID), source) {
		return st, nil
	}
	return next, tc.events
}

// CompleteRevelation re-checks the card's task and, when met, moves it to
// the completed list and pays its reward.
func CompleteRevelation(st game.GameState, playerID, revelationID string) (game.GameState, []game.Event, error) {
	next := st.Clone()
	tc := newTurnContext(&next, nil)
	p := tc.st.Player(playerID)
	if p == nil {
		return st, nil, ErrUnknownPlayer
	}
	if err := tc.completeRevelation(p, revelationID); err != nil {
		return st, nil, err
	}
	return next, tc.events, nil
}

// CheckAngel7Protection reports whether a fatal hit from attackerID on
// targetID would be absorbed by the death-prevention card, and returns the
// protected state when it is.
func CheckAngel7Protection(st game.GameState, targetID, attackerID string) (game.GameState, []game.Event, bool) {
	next := st.Clone()
	tc := newTurnContext(&next, nil)
	t := tc.st.Player(targetID)
	if t == nil || t.IsDead {
		return st, nil, false
	}
	if !tc.preventDeath(t, tc.st.Player(attackerID)) {
		return st, nil, false
	}
	return next, tc.events, true
}

func (tc *turnContext) drawRevelation(p *game.Player, source game.RevelationSource) bool {
	if p == nil {
		return false
	}
	var pool []int
	for i, r := range tc.st.RevelationDeck {
		if r.Source == source {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return false
	}
	idx := pool[tc.roller.Intn(len(pool))]
	card := tc.st.RevelationDeck[idx]
	deck := make([]game.Revelation, 0, len(tc.st.RevelationDeck)-1)
	deck = append(deck, tc.st.RevelationDeck[:idx]...)
	deck = append(deck, tc.st.RevelationDeck[idx+1:]...)
	tc.st.RevelationDeck = deck
	p.Revelations = append(p.Revelations, card)
	tc.emit(game.Event{Type: game.EventRevelationDrawn, PlayerID: p.ID, RevelationID: card.ID})
	return true
}

func (tc *turnContext) completeRevelation(p *game.Player, revelationID string) error {
	if _, ok := game.RevelationByID(revelationID); !ok {
		return ErrUnknownRevelation
	}
	idx := handIndex(p, revelationID)
	if idx < 0 {
		return ErrRevelationNotHeld
	}
	card := p.Revelations[idx]
	if card.EventDriven() {
		return ErrRevelationEvent
	}
	task, ok := revelationTasks[card.ID]
	if !ok || !task(tc, p) {
		return ErrRevelationUnmet
	}
	if p.MonsterEssence < card.EssenceCost {
		return ErrNotEnoughEssence
	}
	p.MonsterEssence -= card.EssenceCost
	tc.finishRevelation(p, idx)
	return nil
}

// finishRevelation pays the card at hand index idx and moves it to the
// completed list. Game-end cards crown the completer directly.
func (tc *turnContext) finishRevelation(p *game.Player, idx int) {
	card := p.Revelations[idx]
	p.Revelations = append(p.Revelations[:idx:idx], p.Revelations[idx+1:]...)
	p.CompletedRevelations = append(p.CompletedRevelations, card)
	p.FaithScore += card.FaithReward
	p.DevilScore += card.DevilReward
	if card.Effect == game.EffectRevealSword {
		p.KnowsDemonSwordPosition = true
	}
	tc.emit(game.Event{Type: game.EventRevelationCompleted, PlayerID: p.ID, RevelationID: card.ID})
	if card.IsGameEnd && tc.st.Result == nil {
		res := game.VictoryResult{VictoryType: game.VictoryRevelation, TriggerPlayerID: p.ID, WinnerID: p.ID}
		tc.st.Result = &res
		tc.emit(game.Event{Type: game.EventGameOver, PlayerID: p.ID, Result: &res})
	}
}

// processEventRevelations completes every card in p's hand bound to trigger.
func (tc *turnContext) processEventRevelations(p *game.Player, trigger game.RevelationTrigger) {
	for i := 0; i < len(p.Revelations); {
		if p.Revelations[i].Trigger == trigger {
			tc.finishRevelation(p, i)
			continue
		}
		i++
	}
}

// processKillRevelations runs the kill triggers for the killer's state at
// the time of the kill.
func (tc *turnContext) processKillRevelations(killer *game.Player) {
	if killer.State == game.StateCorrupt {
		tc.processEventRevelations(killer, game.TriggerCorruptKill)
		return
	}
	tc.processEventRevelations(killer, game.TriggerHolyKill)
}

// preventDeath absorbs a fatal hit from a corrupt hero on a holder of the
// guardian card: health is left at 1 and the card completes.
func (tc *turnContext) preventDeath(target, attacker *game.Player) bool {
	if attacker == nil || attacker.State != game.StateCorrupt {
		return false
	}
	idx := handIndex(target, game.RevelationAngelProtection)
	if idx < 0 {
		return false
	}
	target.Health = 1
	tc.finishRevelation(target, idx)
	return true
}

func handIndex(p *game.Player, id string) int {
	for i, r := range p.Revelations {
		if r.ID == id {
			return i
		}
	}
	return -1
}
