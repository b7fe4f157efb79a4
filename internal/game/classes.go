package game

// ClassDefinition holds the static per-class numbers.
type ClassDefinition struct {
	Class HeroClass `json:"class"`
	Name  string    `json:"name"`
	// Initiative breaks turn-order ties; lower goes first.
	Initiative int `json:"initiative"`
	// HealthByBand is maxHealth for each level band (see LevelBand).
	HealthByBand [5]int `json:"healthByBand"`
}

// Classes is the class table, ordered by initiative.
var Classes = []ClassDefinition{
	{Class: ClassRogue, Name: "Rogue", Initiative: 0, HealthByBand: [5]int{25, 28, 32, 36, 40}},
	{Class: ClassWarrior, Name: "Warrior", Initiative: 1, HealthByBand: [5]int{30, 35, 40, 45, 50}},
	{Class: ClassMage, Name: "Mage", Initiative: 2, HealthByBand: [5]int{20, 24, 28, 32, 36}},
}

// StartingStats are the dice every hero begins with.
var StartingStats = Stats{
	Strength:     StatDice{1, 1},
	Dexterity:    StatDice{1, 1},
	Intelligence: StatDice{1, 1},
}

// ClassByID returns the definition for hc.
func ClassByID(hc HeroClass) (ClassDefinition, bool) {
	for _, c := range Classes {
		if c.Class == hc {
			return c, true
		}
	}
	return ClassDefinition{}, false
}

// LevelBand maps a level (2..12) to its health band: 2-4, 5-6, 7-8, 9-10, 11-12.
func LevelBand(level int) int {
	switch {
	case level <= 4:
		return 0
	case level <= 6:
		return 1
	case level <= 8:
		return 2
	case level <= 10:
		return 3
	default:
		return 4
	}
}

// MaxHealthFor returns the class maxHealth at level, or 0 for unknown classes.
func MaxHealthFor(hc HeroClass, level int) int {
	c, ok := ClassByID(hc)
	if !ok {
		return 0
	}
	return c.HealthByBand[LevelBand(level)]
}
