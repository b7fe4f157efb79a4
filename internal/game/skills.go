package game

// Skill ids.
const (
	SkillPowerStrike = "power-strike"
	SkillCharge      = "charge"
	SkillSwordWave   = "sword-wave"
	SkillIronStance  = "iron-stance"
	SkillWhirlwind   = "whirlwind"

	SkillShuriken    = "shuriken"
	SkillStealth     = "stealth"
	SkillPoison      = "poison"
	SkillTrap        = "trap"
	SkillShadowClone = "shadow-clone"

	SkillMeteor   = "meteor"
	SkillFireball = "fireball"
	SkillEnhance  = "enhance"
	SkillBind     = "bind"
	SkillBlessing = "blessing"
)

// Skill is a static skill definition. Cost is charged against the
// intelligence budget of the turn.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cost        int       `json:"cost"`
	Cooldown    int       `json:"cooldown"`
	HeroClass   HeroClass `json:"heroClass"`
	// Melee skills drive the corruption chain like a basic attack.
	Melee bool `json:"melee"`
	// Enhanceable skills double their output while the caster is enhanced.
	Enhanceable bool `json:"enhanceable"`
}

// Skills is the full skill table in class order.
var Skills = []Skill{
	{ID: SkillPowerStrike, Name: "Power Strike", Description: "Deal twice your strength to an adjacent target.", Cost: 1, Cooldown: 1, HeroClass: ClassWarrior, Melee: true},
	{ID: SkillCharge, Name: "Charge", Description: "Rush a target two tiles away, land next to it and strike with your strength. Shortens another skill's cooldown by 1.", Cost: 2, Cooldown: 2, HeroClass: ClassWarrior, Melee: true},
	{ID: SkillSwordWave, Name: "Sword Wave", Description: "Send a wave up to three tiles; the first target in line takes your strength.", Cost: 2, Cooldown: 2, HeroClass: ClassWarrior},
	{ID: SkillIronStance, Name: "Iron Stance", Description: "Until your next turn, monster hits are reduced by your strength.", Cost: 1, Cooldown: 2, HeroClass: ClassWarrior},
	{ID: SkillWhirlwind, Name: "Whirlwind", Description: "Hit every adjacent hero and monster with your strength.", Cost: 3, Cooldown: 3, HeroClass: ClassWarrior, Melee: true},

	{ID: SkillShuriken, Name: "Shuriken", Description: "Throw up to three tiles; the first target in line takes your dexterity.", Cost: 1, Cooldown: 1, HeroClass: ClassRogue},
	{ID: SkillStealth, Name: "Stealth", Description: "Become untargetable by basic attacks and monsters until you attack or your next turn.", Cost: 2, Cooldown: 3, HeroClass: ClassRogue},
	{ID: SkillPoison, Name: "Poison", Description: "Your next basic attack deals 3 extra damage.", Cost: 1, Cooldown: 2, HeroClass: ClassRogue},
	{ID: SkillTrap, Name: "Trap", Description: "Hide a trap on an adjacent tile; the next rival to enter takes 5 damage and stops.", Cost: 1, Cooldown: 2, HeroClass: ClassRogue},
	{ID: SkillShadowClone, Name: "Shadow Clone", Description: "Leave a decoy on an adjacent tile until your next turn.", Cost: 2, Cooldown: 3, HeroClass: ClassRogue},

	{ID: SkillMeteor, Name: "Meteor", Description: "Strike any tile for twice your intelligence.", Cost: 3, Cooldown: 3, HeroClass: ClassMage, Enhanceable: true},
	{ID: SkillFireball, Name: "Fireball", Description: "Hit a target within three tiles for your intelligence.", Cost: 1, Cooldown: 1, HeroClass: ClassMage, Enhanceable: true},
	{ID: SkillEnhance, Name: "Enhance", Description: "Double the output of your next meteor, fireball or blessing.", Cost: 1, Cooldown: 2, HeroClass: ClassMage},
	{ID: SkillBind, Name: "Bind", Description: "A hero within three tiles rolls no movement on its next turn.", Cost: 2, Cooldown: 3, HeroClass: ClassMage},
	{ID: SkillBlessing, Name: "Blessing", Description: "Heal yourself or an adjacent hero by your intelligence.", Cost: 2, Cooldown: 2, HeroClass: ClassMage, Enhanceable: true},
}

var skillsByID = func() map[string]Skill {
	m := make(map[string]Skill, len(Skills))
	for _, s := range Skills {
		m[s.ID] = s
	}
	return m
}()

// SkillByID returns the skill with id.
func SkillByID(id string) (Skill, bool) {
	s, ok := skillsByID[id]
	return s, ok
}

// SkillsFor returns the skills of class hc in table order.
func SkillsFor(hc HeroClass) []Skill {
	var out []Skill
	for _, s := range Skills {
		if s.HeroClass == hc {
			out = append(out, s)
		}
	}
	return out
}
