package engine

import (
	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// Combat tuning.
const (
	// RespawnTurns is how many end-of-round checks a dead hero waits.
	RespawnTurns       = 2
	FireDamage         = 10
	OwnVillageHeal     = 10
	OtherVillageHeal   = 5
	TrapDamage         = 5
	PoisonBonus        = 3
	MaxCorruptDie      = 6
	MaxRevelationsHeld = 3
)

// ApplyDamageToPlayer deals amount to a hero. attackerID may be empty for
// environmental damage. A missing or dead target leaves the state unchanged.
func ApplyDamageToPlayer(st game.GameState, targetID string, amount int, attackerID string) (game.GameState, []game.Event) {
	if t := st.Player(targetID); t == nil || t.IsDead {
		return st, nil
	}
	return withState(st, func(tc *turnContext) {
		tc.damagePlayer(targetID, amount, attackerID)
	})
}

// ApplyDamageToMonster deals amount to a monster and pays the attacker
// essence for the health actually removed.
func ApplyDamageToMonster(st game.GameState, monsterID string, amount int, attackerID string) (game.GameState, []game.Event) {
	if m := st.Monster(monsterID); m == nil || m.IsDead {
		return st, nil
	}
	return withState(st, func(tc *turnContext) {
		tc.damageMonster(monsterID, amount, attackerID)
	})
}

// HealAtVillage heals a hero standing on a village and returns the amount
// actually restored.
func HealAtVillage(st game.GameState, playerID string) (game.GameState, int) {
	healed := 0
	next, _ := withState(st, func(tc *turnContext) {
		if p := tc.st.Player(playerID); p != nil {
			healed = tc.healAtVillage(p)
		}
	})
	if healed == 0 {
		return st, 0
	}
	return next, healed
}

// ApplyFireTileDamage burns a holy hero standing on a fire tile.
func ApplyFireTileDamage(st game.GameState, playerID string) (game.GameState, []game.Event) {
	p := st.Player(playerID)
	if p == nil || p.IsDead {
		return st, nil
	}
	return withState(st, func(tc *turnContext) {
		tc.fireDamage(tc.st.Player(playerID))
	})
}

// damagePlayer applies amount to the target and returns the health removed
// and whether the hit was fatal.
func (tc *turnContext) damagePlayer(targetID string, amount int, attackerID string) (int, bool) {
	t := tc.st.Player(targetID)
	if t == nil || t.IsDead {
		return 0, false
	}
	if amount < 0 {
		amount = 0
	}
	attacker := tc.st.Player(attackerID)
	before := t.Health

	if before-amount <= 0 && tc.preventDeath(t, attacker) {
		tc.emit(game.Event{Type: game.EventPlayerAttacked, PlayerID: attackerID, TargetID: t.ID, TargetKind: game.TargetPlayer, Amount: before - t.Health})
		return before - t.Health, false
	}

	t.Health = max(0, before-amount)
	dealt := before - t.Health
	if attacker != nil {
		tc.emit(game.Event{Type: game.EventPlayerAttacked, PlayerID: attackerID, TargetID: t.ID, TargetKind: game.TargetPlayer, Amount: dealt})
	}
	if t.Health > 0 {
		return dealt, false
	}

	tc.killPlayer(t, attackerID)
	if attacker != nil {
		tc.processKillRevelations(attacker)
	}
	return dealt, true
}

func (tc *turnContext) killPlayer(p *game.Player, killerID string) {
	p.IsDead = true
	p.Health = 0
	p.DeathTurnsRemaining = RespawnTurns
	p.RemainingMovement = nil
	p.Stealthed = false
	p.IronStanceActive = false
	p.PoisonActive = false
	p.IsEnhanced = false
	p.IsBound = false
	tc.removeClones(p.ID)
	if p.HasDemonSword {
		p.HasDemonSword = false
		pos := p.Position
		tc.st.DemonSwordPosition = &pos
		tc.emit(game.Event{Type: game.EventDemonSwordDropped, PlayerID: p.ID, To: game.CoordPtr(pos)})
	}
	tc.emit(game.Event{Type: game.EventPlayerDied, PlayerID: p.ID, SourceID: killerID})
}

// corruptAfterKill advances the corruption chain for a hero who just killed
// another hero in melee.
func (tc *turnContext) corruptAfterKill(attacker *game.Player) {
	if attacker == nil {
		return
	}
	if attacker.State == game.StateCorrupt {
		die := min(attacker.CorruptDiceValue()+1, MaxCorruptDie)
		attacker.CorruptDice = &die
		return
	}
	die := 1
	attacker.State = game.StateCorrupt
	attacker.CorruptDice = &die
	attacker.CorruptDiceTarget = nil
	tc.emit(game.Event{Type: game.EventStateChanged, PlayerID: attacker.ID, Amount: die})
	tc.drawRevelation(attacker, game.SourceDemon)
}

// damageMonster applies amount to the monster. The attacker earns essence
// equal to the health removed, never more.
func (tc *turnContext) damageMonster(monsterID string, amount int, attackerID string) (int, bool) {
	m := tc.st.Monster(monsterID)
	if m == nil || m.IsDead {
		return 0, false
	}
	if amount < 0 {
		amount = 0
	}
	attacker := tc.st.Player(attackerID)
	dealt := min(amount, m.Health)
	m.Health -= dealt
	if attacker != nil {
		attacker.MonsterEssence += dealt
	}
	tc.emit(game.Event{Type: game.EventPlayerAttacked, PlayerID: attackerID, TargetID: m.ID, TargetKind: game.TargetMonster, Amount: dealt})
	if attacker != nil && m.ID == game.EndMonsterID {
		tc.processEventRevelations(attacker, game.TriggerEndMonsterAttack)
	}
	if m.Health > 0 {
		return dealt, false
	}

	m.IsDead = true
	m.RespawnCountdown = game.MonsterRespawnPhases
	if m.ID == game.EndMonsterID {
		tc.st.MonsterRoundBuffs.FireTileDisabled = true
	}
	tc.emit(game.Event{Type: game.EventMonsterDied, MonsterID: m.ID, SourceID: attackerID})
	tc.distributeSacrifice(m, attacker)
	return dealt, true
}

// distributeSacrifice pays out floor(maxHealth/10) essence: the killer takes
// the larger half, the rest is split evenly between the other heroes next
// to the monster. Remainders are lost.
func (tc *turnContext) distributeSacrifice(m *game.Monster, killer *game.Player) {
	pool := m.MaxHealth / game.SacrificePoolDivisor
	killerShare := (pool + 1) / 2
	if killer != nil {
		killer.MonsterEssence += killerShare
	}
	rest := pool - killerShare
	var helpers []*game.Player
	for _, p := range tc.adjacentLivingPlayers(m.Position) {
		if killer == nil || p.ID != killer.ID {
			helpers = append(helpers, p)
		}
	}
	if len(helpers) == 0 {
		return
	}
	share := rest / len(helpers)
	for _, p := range helpers {
		p.MonsterEssence += share
	}
}

func (tc *turnContext) healAtVillage(p *game.Player) int {
	if p == nil || p.IsDead {
		return 0
	}
	t, ok := tc.tile(p.Position)
	if !ok || t.Type != game.TileVillage {
		return 0
	}
	amount := OtherVillageHeal
	if t.VillageClass == p.HeroClass {
		amount = OwnVillageHeal
	}
	return tc.heal(p, amount, "")
}

// heal restores up to amount and returns what was actually restored.
func (tc *turnContext) heal(p *game.Player, amount int, sourceID string) int {
	healed := max(0, min(amount, p.MaxHealth-p.Health))
	if healed == 0 {
		return 0
	}
	p.Health += healed
	tc.emit(game.Event{Type: game.EventHealed, PlayerID: p.ID, SourceID: sourceID, Amount: healed})
	return healed
}

// fireDamage burns holy heroes on a fire tile. The corrupt die softens the
// burn. Nothing burns while the balrog is dead.
func (tc *turnContext) fireDamage(p *game.Player) int {
	if p == nil || p.IsDead || p.State == game.StateCorrupt {
		return 0
	}
	if tc.tileType(p.Position) != game.TileFire || tc.st.MonsterRoundBuffs.FireTileDisabled {
		return 0
	}
	dmg := max(0, FireDamage-p.CorruptDiceValue())
	dealt, _ := tc.damagePlayer(p.ID, dmg, "")
	return dealt
}

// strike resolves hero damage against a hero or monster id. Melee kills of
// heroes drive the corruption chain.
func (tc *turnContext) strike(attacker *game.Player, targetID string, amount int, melee bool) error {
	if t := tc.st.Player(targetID); t != nil {
		if t.IsDead {
			return ErrUnknownTarget
		}
		if t.ID == attacker.ID {
			return ErrTargetSelf
		}
		_, killed := tc.damagePlayer(t.ID, amount, attacker.ID)
		if killed && melee {
			tc.corruptAfterKill(attacker)
		}
		return nil
	}
	if m := tc.st.Monster(targetID); m != nil && !m.IsDead {
		tc.damageMonster(m.ID, amount, attacker.ID)
		return nil
	}
	return ErrUnknownTarget
}

// targetPosition returns the position of a living hero or monster.
func (tc *turnContext) targetPosition(id string) (hex.Coord, bool) {
	if p := tc.st.Player(id); p != nil && !p.IsDead {
		return p.Position, true
	}
	if m := tc.st.Monster(id); m != nil && !m.IsDead {
		return m.Position, true
	}
	return hex.Coord{}, false
}
