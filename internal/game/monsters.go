package game

// Monster ids.
const (
	MonsterTroll  = "troll"
	MonsterHarpy  = "harpy"
	MonsterGolem  = "golem"
	MonsterHydra  = "hydra"
	MonsterLich   = "lich"
	MonsterBalrog = "balrog"
)

// EndMonsterID is the boss whose attack completes event revelations.
const EndMonsterID = MonsterBalrog

// Monster tuning.
const (
	MonsterDiceCount     = 6
	MonsterRespawnPhases = 3
	HydraAttackThreshold = 15
	HarpyPushThreshold   = 7
	GolemImmuneThreshold = 8
	LichImmuneThreshold  = 9
	SacrificePoolDivisor = 10
)

// MonsterDefinition is the static data a Monster is created from.
type MonsterDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxHealth   int    `json:"maxHealth"`
	DiceIndices []int  `json:"diceIndices"`
	Description string `json:"description"`
}

// MonsterDefinitions lists every monster; positions come from the board.
var MonsterDefinitions = []MonsterDefinition{
	{ID: MonsterTroll, Name: "Troll", MaxHealth: 30, DiceIndices: []int{0, 1}, Description: "Ignores corrupt heroes on an even roll."},
	{ID: MonsterHarpy, Name: "Harpy", MaxHealth: 20, DiceIndices: []int{1, 2}, Description: "Pushes its target one tile away on 7 or more."},
	{ID: MonsterGolem, Name: "Golem", MaxHealth: 40, DiceIndices: []int{2, 3}, Description: "Shrugs off basic attacks for the round on 8 or more."},
	{ID: MonsterHydra, Name: "Hydra", MaxHealth: 50, DiceIndices: []int{3, 4, 5}, Description: "Only strikes on 15 or more and heals twice the damage dealt."},
	{ID: MonsterLich, Name: "Lich", MaxHealth: 35, DiceIndices: []int{4, 5}, Description: "Wards every monster against meteors for the round on 9 or more."},
	{ID: MonsterBalrog, Name: "Balrog", MaxHealth: 80, DiceIndices: []int{0, 5}, Description: "Its death quenches the fire tiles until it returns next round."},
}

// MonsterDefinitionByID returns the definition for id.
func MonsterDefinitionByID(id string) (MonsterDefinition, bool) {
	for _, d := range MonsterDefinitions {
		if d.ID == id {
			return d, true
		}
	}
	return MonsterDefinition{}, false
}

// NewMonsters places every defined monster on its board tile. Monsters
// without a tile are left out.
func NewMonsters(b *Board) []Monster {
	tiles := b.TilesOfType(TileMonster)
	out := make([]Monster, 0, len(MonsterDefinitions))
	for _, d := range MonsterDefinitions {
		for _, t := range tiles {
			if t.MonsterID != d.ID {
				continue
			}
			out = append(out, Monster{
				ID:          d.ID,
				Name:        d.Name,
				Position:    t.Coord,
				Health:      d.MaxHealth,
				MaxHealth:   d.MaxHealth,
				DiceIndices: append([]int(nil), d.DiceIndices...),
			})
			break
		}
	}
	return out
}
