package game

// RevelationSource is the deck a card belongs to.
type RevelationSource string

const (
	SourceAngel RevelationSource = "angel"
	SourceDemon RevelationSource = "demon"
)

// RevelationTrigger marks cards that complete on a combat event instead of
// an explicit player action.
type RevelationTrigger string

const (
	TriggerNone             RevelationTrigger = ""
	TriggerEndMonsterAttack RevelationTrigger = "end_monster_attacked"
	TriggerHolyKill         RevelationTrigger = "holy_hero_killed_hero"
	TriggerCorruptKill      RevelationTrigger = "corrupt_hero_killed_hero"
	TriggerDeathPrevention  RevelationTrigger = "death_prevented"
)

// RevelationEffect is a side effect applied with the reward.
type RevelationEffect string

const (
	EffectRevealSword RevelationEffect = "reveal_demon_sword"
)

// Revelation ids with engine-specific handling.
const (
	RevelationAngelProtection = "angel-7"
	RevelationAngelSeal       = "angel-10"
	RevelationDemonCoronation = "demon-9"
)

// Revelation is a goal card. Instances are value copies moved between the
// shared deck, a player's hand and the completed list. Task predicates live
// in the engine, keyed by ID.
type Revelation struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Source      RevelationSource  `json:"source"`
	Description string            `json:"description"`
	FaithReward int               `json:"faithReward"`
	DevilReward int               `json:"devilReward"`
	EssenceCost int               `json:"essenceCost"`
	Effect      RevelationEffect  `json:"effect,omitempty"`
	Trigger     RevelationTrigger `json:"trigger,omitempty"`
	IsGameEnd   bool              `json:"isGameEnd"`
}

// EventDriven reports whether the card can only complete through its trigger.
func (r Revelation) EventDriven() bool { return r.Trigger != TriggerNone }

// Revelations is the full deck in id order.
var Revelations = []Revelation{
	{ID: "angel-1", Name: "Pilgrimage", Source: SourceAngel, Description: "Stand on the temple. Learn where the demon sword lies.", FaithReward: 1, Effect: EffectRevealSword},
	{ID: "angel-2", Name: "Hearth Keeper", Source: SourceAngel, Description: "Stand on a village of your own class.", FaithReward: 1},
	{ID: "angel-3", Name: "Trial of Strength", Source: SourceAngel, Description: "Reach a strength total of 6.", FaithReward: 1},
	{ID: "angel-4", Name: "Trial of Wisdom", Source: SourceAngel, Description: "Reach an intelligence total of 6.", FaithReward: 1},
	{ID: "angel-5", Name: "Tithe", Source: SourceAngel, Description: "Offer 10 monster essence.", FaithReward: 2, EssenceCost: 10},
	{ID: "angel-6", Name: "Face the Abyss", Source: SourceAngel, Description: "Attack the Balrog.", FaithReward: 2, Trigger: TriggerEndMonsterAttack},
	{ID: RevelationAngelProtection, Name: "Guardian Angel", Source: SourceAngel, Description: "The first fatal blow from a corrupt hero leaves you at 1 health.", FaithReward: 2, Trigger: TriggerDeathPrevention},
	{ID: "angel-8", Name: "Righteous Fury", Source: SourceAngel, Description: "Defeat a hero while holy.", FaithReward: 1, Trigger: TriggerHolyKill},
	{ID: "angel-9", Name: "Castle Vigil", Source: SourceAngel, Description: "Stand on the castle at full health.", FaithReward: 1},
	{ID: RevelationAngelSeal, Name: "Seal the Sword", Source: SourceAngel, Description: "Carry the demon sword to the temple while holy. Ends the game.", IsGameEnd: true},

	{ID: "demon-1", Name: "Blood Price", Source: SourceDemon, Description: "Fall to half your maximum health or less.", DevilReward: 1},
	{ID: "demon-2", Name: "Dark Pact", Source: SourceDemon, Description: "Raise your corrupt die to 3.", DevilReward: 1},
	{ID: "demon-3", Name: "Ashen Path", Source: SourceDemon, Description: "Stand on a fire tile.", DevilReward: 1},
	{ID: "demon-4", Name: "Raze", Source: SourceDemon, Description: "Stand on a village of another class.", DevilReward: 1},
	{ID: "demon-5", Name: "Hoard", Source: SourceDemon, Description: "Sacrifice 10 monster essence.", DevilReward: 2, EssenceCost: 10},
	{ID: "demon-6", Name: "Whispers of the Blade", Source: SourceDemon, Description: "Bind your corrupt die to a stat. Learn where the demon sword lies.", DevilReward: 1, Effect: EffectRevealSword},
	{ID: "demon-7", Name: "Sword Bearer", Source: SourceDemon, Description: "Hold the demon sword.", DevilReward: 2},
	{ID: "demon-8", Name: "Slaughter", Source: SourceDemon, Description: "Defeat a hero while corrupt.", DevilReward: 1, Trigger: TriggerCorruptKill},
	{ID: RevelationDemonCoronation, Name: "Dark Coronation", Source: SourceDemon, Description: "Hold the demon sword on the castle with 3 devil score. Ends the game.", IsGameEnd: true},
}

// RevelationByID returns the static card with id.
func RevelationByID(id string) (Revelation, bool) {
	for _, r := range Revelations {
		if r.ID == id {
			return r, true
		}
	}
	return Revelation{}, false
}

// NewRevelationDeck returns a fresh copy of the full deck.
func NewRevelationDeck() []Revelation {
	return append([]Revelation(nil), Revelations...)
}

// SourceFor returns the deck a hero in state draws from.
func SourceFor(state HeroState) RevelationSource {
	if state == StateCorrupt {
		return SourceDemon
	}
	return SourceAngel
}
