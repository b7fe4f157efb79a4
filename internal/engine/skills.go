package engine

import (
	"errors"

	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

// Skill geometry.
const (
	LineSkillRange = 3
	FireballRange  = 3
	BindRange      = 3
	ChargeDistance = 2
)

// skillHandler resolves one skill. Cooldown and cost are applied by
// useSkill after a handler succeeds.
type skillHandler func(tc *turnContext, p *game.Player, a game.GameAction) error

var skillHandlers = map[string]skillHandler{
	game.SkillPowerStrike: powerStrike,
	game.SkillCharge:      charge,
	game.SkillSwordWave:   swordWave,
	game.SkillIronStance:  ironStance,
	game.SkillWhirlwind:   whirlwind,
	game.SkillShuriken:    shuriken,
	game.SkillStealth:     stealth,
	game.SkillPoison:      poison,
	game.SkillTrap:        trap,
	game.SkillShadowClone: shadowClone,
	game.SkillMeteor:      meteor,
	game.SkillFireball:    fireball,
	game.SkillEnhance:     enhance,
	game.SkillBind:        bind,
	game.SkillBlessing:    blessing,
}

// CanUseSkill checks, in order: the skill exists, belongs to the hero's
// class, is off cooldown and fits in the turn's intelligence budget.
func CanUseSkill(p game.Player, skillID string) error {
	s, ok := game.SkillByID(skillID)
	if !ok {
		return ErrUnknownSkill
	}
	if s.HeroClass != p.HeroClass {
		return ErrWrongClass
	}
	if p.SkillCooldowns[skillID] > 0 {
		return ErrSkillCooldown
	}
	if p.UsedSkillCost+s.Cost > p.StatTotal(game.StatIntelligence) {
		return ErrSkillBudget
	}
	return nil
}

func (tc *turnContext) useSkill(p *game.Player, a game.GameAction) error {
	if err := CanUseSkill(*p, a.SkillID); err != nil {
		return err
	}
	handler, ok := skillHandlers[a.SkillID]
	if !ok {
		return ErrUnknownSkill
	}
	if err := handler(tc, p, a); err != nil {
		return err
	}
	s, _ := game.SkillByID(a.SkillID)
	if p.SkillCooldowns == nil {
		p.SkillCooldowns = map[string]int{}
	}
	p.SkillCooldowns[s.ID] = s.Cooldown
	p.UsedSkillCost += s.Cost
	tc.emit(game.Event{Type: game.EventSkillUsed, PlayerID: p.ID, SkillID: s.ID, TargetID: a.TargetID, To: a.Position})
	return nil
}

// enhanced consumes the enhance flag and returns the output multiplier.
func enhanced(p *game.Player) int {
	if p.IsEnhanced {
		p.IsEnhanced = false
		return 2
	}
	return 1
}

// targetWithin validates a living target id within dist of the caster.
func (tc *turnContext) targetWithin(p *game.Player, id string, minDist, maxDist int) error {
	if id == p.ID {
		return ErrTargetSelf
	}
	pos, ok := tc.targetPosition(id)
	if !ok {
		return ErrUnknownTarget
	}
	d := hex.Distance(p.Position, pos)
	if d < minDist || d > maxDist {
		if maxDist == 1 {
			return ErrNotAdjacent
		}
		return ErrOutOfRange
	}
	return nil
}

// lineStrike sends a projectile along the hex line to a.Position and hits
// the first hero or monster on it. Clones absorb the shot; blocked tiles
// stop it.
func (tc *turnContext) lineStrike(p *game.Player, a game.GameAction, amount int) error {
	if a.Position == nil {
		return ErrMissingPosition
	}
	d := hex.Distance(p.Position, *a.Position)
	if d < 1 || d > LineSkillRange {
		return ErrOutOfRange
	}
	for _, c := range hex.Line(p.Position, *a.Position)[1:] {
		if t := tc.st.LivingPlayerAt(c); t != nil {
			p.Stealthed = false
			return tc.strike(p, t.ID, amount, false)
		}
		if m := tc.st.LivingMonsterAt(c); m != nil {
			p.Stealthed = false
			return tc.strike(p, m.ID, amount, false)
		}
		if tc.st.CloneAt(c) {
			tc.removeCloneAt(c)
			return nil
		}
		if !tc.st.Board.Passable(c) {
			break
		}
	}
	return ErrNothingHit
}

func (tc *turnContext) removeCloneAt(c hex.Coord) {
	out := tc.st.Clones[:0:0]
	for _, cl := range tc.st.Clones {
		if cl.Position != c {
			out = append(out, cl)
		}
	}
	tc.st.Clones = out
}

// adjacentFreeTile validates a.Position as an empty enterable neighbor.
func (tc *turnContext) adjacentFreeTile(p *game.Player, a game.GameAction) (hex.Coord, error) {
	if a.Position == nil {
		return hex.Coord{}, ErrMissingPosition
	}
	pos := *a.Position
	if hex.Distance(p.Position, pos) != 1 {
		return hex.Coord{}, ErrNotAdjacent
	}
	if !tc.st.Board.Contains(pos) {
		return hex.Coord{}, ErrOffBoard
	}
	if !tc.st.Board.Passable(pos) {
		return hex.Coord{}, ErrTileBlocked
	}
	if tc.st.Occupied(pos) {
		return hex.Coord{}, ErrTileOccupied
	}
	return pos, nil
}

// --- warrior ---

func powerStrike(tc *turnContext, p *game.Player, a game.GameAction) error {
	if err := tc.targetWithin(p, a.TargetID, 1, 1); err != nil {
		return err
	}
	p.Stealthed = false
	return tc.strike(p, a.TargetID, 2*p.StatTotal(game.StatStrength), true)
}

func charge(tc *turnContext, p *game.Player, a game.GameAction) error {
	if err := tc.targetWithin(p, a.TargetID, ChargeDistance, ChargeDistance); err != nil {
		return err
	}
	reduce, err := chargeReduction(p, a.SecondarySkillID)
	if err != nil {
		return err
	}
	targetPos, _ := tc.targetPosition(a.TargetID)
	landing, err := tc.chargeLanding(p, targetPos, a.Position)
	if err != nil {
		return err
	}
	from := p.Position
	p.Position = landing
	tc.emit(game.Event{Type: game.EventPlayerMoved, PlayerID: p.ID, From: game.CoordPtr(from), To: game.CoordPtr(landing)})
	p.Stealthed = false
	if err := tc.strike(p, a.TargetID, p.StatTotal(game.StatStrength), true); err != nil {
		return err
	}
	if reduce != "" && p.SkillCooldowns[reduce] > 0 {
		p.SkillCooldowns[reduce]--
	}
	return nil
}

// chargeLanding picks the tile between caster and target. The hex line's
// first step is preferred; any other shared neighbor is the fallback.
func (tc *turnContext) chargeLanding(p *game.Player, target hex.Coord, want *hex.Coord) (hex.Coord, error) {
	ok := func(c hex.Coord) bool {
		return hex.Distance(c, p.Position) == 1 && hex.Distance(c, target) == 1 &&
			p.CanEnter(tc.st.Board, c) && !tc.st.Occupied(c)
	}
	if want != nil {
		if !ok(*want) {
			return hex.Coord{}, ErrNoLanding
		}
		return *want, nil
	}
	if line := hex.Line(p.Position, target); len(line) > 1 && ok(line[1]) {
		return line[1], nil
	}
	for _, c := range hex.Neighbors(p.Position) {
		if ok(c) {
			return c, nil
		}
	}
	return hex.Coord{}, ErrNoLanding
}

// chargeReduction returns the skill whose cooldown charge shortens: the
// requested one, or the hero's other skill with the highest cooldown.
func chargeReduction(p *game.Player, requested string) (string, error) {
	if requested != "" {
		s, ok := game.SkillByID(requested)
		if !ok || s.ID == game.SkillCharge {
			return "", ErrUnknownSkill
		}
		if s.HeroClass != p.HeroClass {
			return "", ErrWrongClass
		}
		return requested, nil
	}
	best, bestCD := "", 0
	for _, s := range game.SkillsFor(p.HeroClass) {
		if s.ID == game.SkillCharge {
			continue
		}
		if cd := p.SkillCooldowns[s.ID]; cd > bestCD {
			best, bestCD = s.ID, cd
		}
	}
	return best, nil
}

func swordWave(tc *turnContext, p *game.Player, a game.GameAction) error {
	return tc.lineStrike(p, a, p.StatTotal(game.StatStrength))
}

func ironStance(_ *turnContext, p *game.Player, _ game.GameAction) error {
	p.IronStanceActive = true
	return nil
}

func whirlwind(tc *turnContext, p *game.Player, _ game.GameAction) error {
	var targets []string
	for _, c := range hex.Neighbors(p.Position) {
		if t := tc.st.LivingPlayerAt(c); t != nil {
			targets = append(targets, t.ID)
		} else if m := tc.st.LivingMonsterAt(c); m != nil {
			targets = append(targets, m.ID)
		}
	}
	if len(targets) == 0 {
		return ErrNothingHit
	}
	p.Stealthed = false
	dmg := p.StatTotal(game.StatStrength)
	for _, id := range targets {
		if err := tc.strike(p, id, dmg, true); err != nil && !errors.Is(err, ErrUnknownTarget) {
			return err
		}
	}
	return nil
}

// --- rogue ---

func shuriken(tc *turnContext, p *game.Player, a game.GameAction) error {
	return tc.lineStrike(p, a, p.StatTotal(game.StatDexterity))
}

func stealth(_ *turnContext, p *game.Player, _ game.GameAction) error {
	p.Stealthed = true
	return nil
}

func poison(_ *turnContext, p *game.Player, _ game.GameAction) error {
	p.PoisonActive = true
	return nil
}

func trap(tc *turnContext, p *game.Player, a game.GameAction) error {
	pos, err := tc.adjacentFreeTile(p, a)
	if err != nil {
		return err
	}
	for _, t := range p.Traps {
		if t == pos {
			return ErrTileOccupied
		}
	}
	p.Traps = append(p.Traps, pos)
	return nil
}

func shadowClone(tc *turnContext, p *game.Player, a game.GameAction) error {
	pos, err := tc.adjacentFreeTile(p, a)
	if err != nil {
		return err
	}
	clones := tc.st.Clones[:0:0]
	for _, c := range tc.st.Clones {
		if c.OwnerID != p.ID {
			clones = append(clones, c)
		}
	}
	tc.st.Clones = append(clones, game.Clone{OwnerID: p.ID, Position: pos})
	return nil
}

// --- mage ---

func meteor(tc *turnContext, p *game.Player, a game.GameAction) error {
	if a.Position == nil {
		return ErrMissingPosition
	}
	pos := *a.Position
	if !tc.st.Board.Contains(pos) {
		return ErrOffBoard
	}
	if pos == p.Position {
		return ErrTargetSelf
	}
	dmg := 2 * p.StatTotal(game.StatIntelligence) * enhanced(p)
	p.Stealthed = false
	if t := tc.st.LivingPlayerAt(pos); t != nil {
		return tc.strike(p, t.ID, dmg, false)
	}
	if m := tc.st.LivingMonsterAt(pos); m != nil {
		if tc.st.MonsterRoundBuffs.MeteorImmune {
			// warded: the skill is spent for nothing
			return nil
		}
		return tc.strike(p, m.ID, dmg, false)
	}
	if tc.st.CloneAt(pos) {
		tc.removeCloneAt(pos)
	}
	return nil
}

func fireball(tc *turnContext, p *game.Player, a game.GameAction) error {
	if err := tc.targetWithin(p, a.TargetID, 1, FireballRange); err != nil {
		return err
	}
	p.Stealthed = false
	return tc.strike(p, a.TargetID, p.StatTotal(game.StatIntelligence)*enhanced(p), false)
}

func enhance(_ *turnContext, p *game.Player, _ game.GameAction) error {
	p.IsEnhanced = true
	return nil
}

func bind(tc *turnContext, p *game.Player, a game.GameAction) error {
	t := tc.st.Player(a.TargetID)
	if t == nil || t.IsDead {
		return ErrUnknownTarget
	}
	if err := tc.targetWithin(p, a.TargetID, 1, BindRange); err != nil {
		return err
	}
	t.IsBound = true
	return nil
}

func blessing(tc *turnContext, p *game.Player, a game.GameAction) error {
	target := p
	if a.TargetID != "" && a.TargetID != p.ID {
		target = tc.st.Player(a.TargetID)
		if target == nil || target.IsDead {
			return ErrUnknownTarget
		}
		if hex.Distance(p.Position, target.Position) != 1 {
			return ErrNotAdjacent
		}
	}
	tc.heal(target, p.StatTotal(game.StatIntelligence)*enhanced(p), p.ID)
	return nil
}
