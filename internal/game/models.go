package game

import (
	"github.com/ericogr/hexcrusade/internal/hex"
)

// HeroClass is the fixed class a player picks when the game is created.
type HeroClass string

const (
	ClassWarrior HeroClass = "warrior"
	ClassRogue   HeroClass = "rogue"
	ClassMage    HeroClass = "mage"
)

// HeroState is the holy/corrupt branch a hero is on.
type HeroState string

const (
	StateHoly    HeroState = "holy"
	StateCorrupt HeroState = "corrupt"
)

// StatKey names one of the three hero stats.
type StatKey string

const (
	StatStrength     StatKey = "strength"
	StatDexterity    StatKey = "dexterity"
	StatIntelligence StatKey = "intelligence"
)

// StatKeys lists stats in their canonical order.
var StatKeys = []StatKey{StatStrength, StatDexterity, StatIntelligence}

// TurnPhase is the part of a player's turn currently being played.
type TurnPhase string

const (
	PhaseMove   TurnPhase = "move"
	PhaseAction TurnPhase = "action"
)

// MonsterTurn is the turn-order sentinel for the end-of-round monster phase.
const MonsterTurn = "monster"

// StatDice is a pair of die faces; the stat total is their sum.
type StatDice [2]int

// Total returns the sum of both faces.
func (d StatDice) Total() int { return d[0] + d[1] }

// LowerIndex returns the index of the smaller face (the first one on ties).
func (d StatDice) LowerIndex() int {
	if d[1] < d[0] {
		return 1
	}
	return 0
}

// Stats holds the three stat dice pairs.
type Stats struct {
	Strength     StatDice `json:"strength"`
	Dexterity    StatDice `json:"dexterity"`
	Intelligence StatDice `json:"intelligence"`
}

// Get returns the dice pair for key.
func (s Stats) Get(key StatKey) StatDice {
	switch key {
	case StatDexterity:
		return s.Dexterity
	case StatIntelligence:
		return s.Intelligence
	default:
		return s.Strength
	}
}

// With returns a copy of s with the dice pair for key replaced.
func (s Stats) With(key StatKey, d StatDice) Stats {
	switch key {
	case StatStrength:
		s.Strength = d
	case StatDexterity:
		s.Dexterity = d
	case StatIntelligence:
		s.Intelligence = d
	}
	return s
}

// ValidStat reports whether key is one of the three stats.
func ValidStat(key StatKey) bool {
	return key == StatStrength || key == StatDexterity || key == StatIntelligence
}

type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	HeroClass HeroClass `json:"heroClass"`
	State     HeroState `json:"state"`
	Stats     Stats     `json:"stats"`
	// CorruptDice is nil until the hero first turns corrupt.
	CorruptDice *int `json:"corruptDice"`
	// CorruptDiceTarget may only be set while CorruptDice is set.
	CorruptDiceTarget *StatKey `json:"corruptDiceTarget"`

	Health              int       `json:"health"`
	MaxHealth           int       `json:"maxHealth"`
	Position            hex.Coord `json:"position"`
	MonsterEssence      int       `json:"monsterEssence"`
	DevilScore          int       `json:"devilScore"`
	FaithScore          int       `json:"faithScore"`
	IsDead              bool      `json:"isDead"`
	DeathTurnsRemaining int       `json:"deathTurnsRemaining"`

	SkillCooldowns map[string]int `json:"skillCooldowns"`
	UsedSkillCost  int            `json:"usedSkillCost"`

	TurnPhase         TurnPhase `json:"turnPhase"`
	RemainingMovement *int      `json:"remainingMovement"`
	LeftoverMovement  int       `json:"leftoverMovement"`
	BasicAttackUsed   bool      `json:"basicAttackUsed"`

	Stealthed               bool `json:"stealthed"`
	IronStanceActive        bool `json:"ironStanceActive"`
	PoisonActive            bool `json:"poisonActive"`
	IsEnhanced              bool `json:"isEnhanced"`
	IsBound                 bool `json:"isBound"`
	HasDemonSword           bool `json:"hasDemonSword"`
	KnowsDemonSwordPosition bool `json:"knowsDemonSwordPosition"`

	Traps                []hex.Coord  `json:"traps"`
	Revelations          []Revelation `json:"revelations"`
	CompletedRevelations []Revelation `json:"completedRevelations"`
}

// StatTotal returns the stat total including the corrupt die when it is
// bound to key.
func (p *Player) StatTotal(key StatKey) int {
	total := p.Stats.Get(key).Total()
	if p.CorruptDice != nil && p.CorruptDiceTarget != nil && *p.CorruptDiceTarget == key {
		total += *p.CorruptDice
	}
	return total
}

// Level is the highest of the three stat dice totals.
func (p *Player) Level() int {
	return max(p.Stats.Strength.Total(), p.Stats.Dexterity.Total(), p.Stats.Intelligence.Total())
}

// CanEnter reports whether the hero may step onto c at all.
func (p *Player) CanEnter(b *Board, c hex.Coord) bool {
	return b != nil && b.MoveCost(c, p.State, p.HasDemonSword) != CostBlocked
}

// CorruptDiceValue returns the corrupt die face or 0 when unset.
func (p *Player) CorruptDiceValue() int {
	if p.CorruptDice == nil {
		return 0
	}
	return *p.CorruptDice
}

// HasRevelation reports whether id is in the player's hand.
func (p *Player) HasRevelation(id string) bool {
	for _, r := range p.Revelations {
		if r.ID == id {
			return true
		}
	}
	return false
}

type Monster struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Position    hex.Coord `json:"position"`
	Health      int       `json:"health"`
	MaxHealth   int       `json:"maxHealth"`
	DiceIndices []int     `json:"diceIndices"`
	IsDead      bool      `json:"isDead"`
	// RespawnCountdown counts monster phases left before a dead monster
	// returns at full health.
	RespawnCountdown int `json:"respawnCountdown"`
}

// Clone is a rogue decoy occupying a tile until its owner's next turn.
type Clone struct {
	OwnerID  string    `json:"ownerId"`
	Position hex.Coord `json:"position"`
}

// MonsterRoundBuffs are set during a monster phase and cleared at the start
// of the next one.
type MonsterRoundBuffs struct {
	GolemBasicAttackImmune bool `json:"golemBasicAttackImmune"`
	MeteorImmune           bool `json:"meteorImmune"`
	FireTileDisabled       bool `json:"fireTileDisabled"`
}

// VictoryType names the condition that ended the game.
type VictoryType string

const (
	VictoryDemonKing  VictoryType = "demon_king"
	VictoryAngel      VictoryType = "angel"
	VictoryRevelation VictoryType = "revelation"
)

// VictoryResult records who triggered the end and who won; the two may differ.
type VictoryResult struct {
	VictoryType     VictoryType `json:"victoryType"`
	TriggerPlayerID string      `json:"triggerPlayerId"`
	WinnerID        string      `json:"winnerId"`
}

// GameState is the root snapshot. Engine operations never mutate a state
// they receive; they work on a Clone and return it.
type GameState struct {
	Players            []Player          `json:"players"`
	Monsters           []Monster         `json:"monsters"`
	Board              *Board            `json:"-"`
	RoundNumber        int               `json:"roundNumber"`
	RoundTurnOrder     []string          `json:"roundTurnOrder"`
	CurrentTurnIndex   int               `json:"currentTurnIndex"`
	MonsterDice        []int             `json:"monsterDice"`
	RevelationDeck     []Revelation      `json:"revelationDeck"`
	DemonSwordPosition *hex.Coord        `json:"demonSwordPosition"`
	MonsterRoundBuffs  MonsterRoundBuffs `json:"monsterRoundBuffs"`
	Clones             []Clone           `json:"clones"`
	Result             *VictoryResult    `json:"result"`
}

// Clone returns a deep copy of the state. The board is shared since it is
// never mutated.
func (s GameState) Clone() GameState {
	out := s
	out.Players = make([]Player, len(s.Players))
	for i := range s.Players {
		out.Players[i] = s.Players[i].clone()
	}
	out.Monsters = make([]Monster, len(s.Monsters))
	for i := range s.Monsters {
		m := s.Monsters[i]
		m.DiceIndices = append([]int(nil), m.DiceIndices...)
		out.Monsters[i] = m
	}
	out.RoundTurnOrder = append([]string(nil), s.RoundTurnOrder...)
	out.MonsterDice = append([]int(nil), s.MonsterDice...)
	out.RevelationDeck = append([]Revelation(nil), s.RevelationDeck...)
	out.Clones = append([]Clone(nil), s.Clones...)
	if s.DemonSwordPosition != nil {
		pos := *s.DemonSwordPosition
		out.DemonSwordPosition = &pos
	}
	if s.Result != nil {
		r := *s.Result
		out.Result = &r
	}
	return out
}

func (p Player) clone() Player {
	out := p
	if p.CorruptDice != nil {
		v := *p.CorruptDice
		out.CorruptDice = &v
	}
	if p.CorruptDiceTarget != nil {
		v := *p.CorruptDiceTarget
		out.CorruptDiceTarget = &v
	}
	if p.RemainingMovement != nil {
		v := *p.RemainingMovement
		out.RemainingMovement = &v
	}
	out.SkillCooldowns = make(map[string]int, len(p.SkillCooldowns))
	for k, v := range p.SkillCooldowns {
		out.SkillCooldowns[k] = v
	}
	out.Traps = append([]hex.Coord(nil), p.Traps...)
	out.Revelations = append([]Revelation(nil), p.Revelations...)
	out.CompletedRevelations = append([]Revelation(nil), p.CompletedRevelations...)
	return out
}

// PlayerIndex returns the index of the player with id, or -1.
func (s *GameState) PlayerIndex(id string) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// Player returns a pointer into s.Players for id, or nil.
func (s *GameState) Player(id string) *Player {
	if i := s.PlayerIndex(id); i >= 0 {
		return &s.Players[i]
	}
	return nil
}

// Monster returns a pointer into s.Monsters for id, or nil.
func (s *GameState) Monster(id string) *Monster {
	for i := range s.Monsters {
		if s.Monsters[i].ID == id {
			return &s.Monsters[i]
		}
	}
	return nil
}

// LivingPlayerAt returns the living hero standing on c, or nil.
func (s *GameState) LivingPlayerAt(c hex.Coord) *Player {
	for i := range s.Players {
		if !s.Players[i].IsDead && s.Players[i].Position == c {
			return &s.Players[i]
		}
	}
	return nil
}

// LivingMonsterAt returns the living monster standing on c, or nil.
func (s *GameState) LivingMonsterAt(c hex.Coord) *Monster {
	for i := range s.Monsters {
		if !s.Monsters[i].IsDead && s.Monsters[i].Position == c {
			return &s.Monsters[i]
		}
	}
	return nil
}

// CloneAt reports whether a clone stands on c.
func (s *GameState) CloneAt(c hex.Coord) bool {
	for _, cl := range s.Clones {
		if cl.Position == c {
			return true
		}
	}
	return false
}

// Occupied reports whether c holds a living hero, a living monster or a clone.
func (s *GameState) Occupied(c hex.Coord) bool {
	return s.LivingPlayerAt(c) != nil || s.LivingMonsterAt(c) != nil || s.CloneAt(c)
}

// CurrentTurnEntry returns the active turn entry: a player id or MonsterTurn.
func (s *GameState) CurrentTurnEntry() string {
	if s.CurrentTurnIndex < 0 || s.CurrentTurnIndex >= len(s.RoundTurnOrder) {
		return ""
	}
	return s.RoundTurnOrder[s.CurrentTurnIndex]
}

// CurrentPlayer returns the player whose turn it is, or nil on the monster
// entry.
func (s *GameState) CurrentPlayer() *Player {
	entry := s.CurrentTurnEntry()
	if entry == "" || entry == MonsterTurn {
		return nil
	}
	return s.Player(entry)
}
