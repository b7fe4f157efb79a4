package game

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ericogr/hexcrusade/internal/hex"
)

// TileType classifies a board tile.
type TileType string

const (
	TilePlain    TileType = "plain"
	TileVillage  TileType = "village"
	TileMountain TileType = "mountain"
	TileLake     TileType = "lake"
	TileHill     TileType = "hill"
	TileSwamp    TileType = "swamp"
	TileFire     TileType = "fire"
	TileTemple   TileType = "temple"
	TileCastle   TileType = "castle"
	TileMonster  TileType = "monster"
)

// Tile is a single board hex.
type Tile struct {
	Coord        hex.Coord `json:"-"`
	Type         TileType  `json:"type"`
	VillageClass HeroClass `json:"villageClass,omitempty"`
	MonsterID    string    `json:"monsterId,omitempty"`
}

// Movement cost sentinels.
const (
	// CostAll consumes all remaining movement and ends the move phase.
	CostAll = -1
	// CostBlocked marks tiles that can never be entered.
	CostBlocked = -2
)

// MovementCosts maps each tile type to its entry cost.
var MovementCosts = map[TileType]int{
	TilePlain:    3,
	TileVillage:  2,
	TileMountain: CostBlocked,
	TileLake:     CostBlocked,
	TileHill:     CostAll,
	TileSwamp:    5,
	TileFire:     3,
	TileTemple:   3,
	TileCastle:   3,
	TileMonster:  CostBlocked,
}

// BoardRadius is the radius of the default board around the castle.
const BoardRadius = 5

// CastleCoord is the single castle tile.
var CastleCoord = hex.Coord{Q: 0, R: 0}

// DefaultDemonSwordPosition is used when a game does not place the sword.
var DefaultDemonSwordPosition = hex.Coord{Q: -2, R: -3}

var boardLayout = []Tile{
	{Coord: hex.Coord{Q: 0, R: 0}, Type: TileCastle},
	{Coord: hex.Coord{Q: 2, R: -4}, Type: TileTemple},

	{Coord: hex.Coord{Q: 5, R: -5}, Type: TileVillage, VillageClass: ClassWarrior},
	{Coord: hex.Coord{Q: -5, R: 5}, Type: TileVillage, VillageClass: ClassWarrior},
	{Coord: hex.Coord{Q: 5, R: 0}, Type: TileVillage, VillageClass: ClassRogue},
	{Coord: hex.Coord{Q: -5, R: 0}, Type: TileVillage, VillageClass: ClassRogue},
	{Coord: hex.Coord{Q: 0, R: 5}, Type: TileVillage, VillageClass: ClassMage},
	{Coord: hex.Coord{Q: 0, R: -5}, Type: TileVillage, VillageClass: ClassMage},

	{Coord: hex.Coord{Q: 3, R: 0}, Type: TileMonster, MonsterID: MonsterTroll},
	{Coord: hex.Coord{Q: 0, R: 3}, Type: TileMonster, MonsterID: MonsterHarpy},
	{Coord: hex.Coord{Q: -3, R: 3}, Type: TileMonster, MonsterID: MonsterGolem},
	{Coord: hex.Coord{Q: -3, R: 0}, Type: TileMonster, MonsterID: MonsterHydra},
	{Coord: hex.Coord{Q: 0, R: -3}, Type: TileMonster, MonsterID: MonsterLich},
	{Coord: hex.Coord{Q: 3, R: -3}, Type: TileMonster, MonsterID: MonsterBalrog},

	{Coord: hex.Coord{Q: 2, R: 0}, Type: TileMountain},
	{Coord: hex.Coord{Q: -2, R: 2}, Type: TileMountain},
	{Coord: hex.Coord{Q: 0, R: -2}, Type: TileMountain},
	{Coord: hex.Coord{Q: 2, R: -2}, Type: TileLake},
	{Coord: hex.Coord{Q: -2, R: 0}, Type: TileLake},
	{Coord: hex.Coord{Q: 0, R: 2}, Type: TileLake},

	{Coord: hex.Coord{Q: 4, R: -1}, Type: TileHill},
	{Coord: hex.Coord{Q: -4, R: 1}, Type: TileHill},
	{Coord: hex.Coord{Q: 1, R: 3}, Type: TileHill},
	{Coord: hex.Coord{Q: -1, R: -3}, Type: TileHill},

	{Coord: hex.Coord{Q: -4, R: 2}, Type: TileSwamp},
	{Coord: hex.Coord{Q: 4, R: -2}, Type: TileSwamp},
	{Coord: hex.Coord{Q: -2, R: -2}, Type: TileSwamp},
	{Coord: hex.Coord{Q: 2, R: 2}, Type: TileSwamp},

	{Coord: hex.Coord{Q: 4, R: -3}, Type: TileFire},
	{Coord: hex.Coord{Q: 3, R: -4}, Type: TileFire},
	{Coord: hex.Coord{Q: -4, R: 4}, Type: TileFire},
}

// Board is an immutable coordinate to tile map.
type Board struct {
	tiles map[hex.Coord]Tile
}

// NewBoard builds a board from tiles. Duplicate coordinates are rejected.
func NewBoard(tiles []Tile) (*Board, error) {
	m := make(map[hex.Coord]Tile, len(tiles))
	for _, t := range tiles {
		if _, dup := m[t.Coord]; dup {
			return nil, fmt.Errorf("duplicate tile at %s", t.Coord)
		}
		if t.Type == "" {
			return nil, fmt.Errorf("tile at %s has no type", t.Coord)
		}
		m[t.Coord] = t
	}
	return &Board{tiles: m}, nil
}

var defaultBoard = buildDefaultBoard()

// DefaultBoard returns the shared standard board.
func DefaultBoard() *Board { return defaultBoard }

func buildDefaultBoard() *Board {
	overrides := make(map[hex.Coord]Tile, len(boardLayout))
	for _, t := range boardLayout {
		overrides[t.Coord] = t
	}
	coords := hex.Range(CastleCoord, BoardRadius)
	tiles := make([]Tile, 0, len(coords))
	for _, c := range coords {
		if t, ok := overrides[c]; ok {
			tiles = append(tiles, t)
			continue
		}
		tiles = append(tiles, Tile{Coord: c, Type: TilePlain})
	}
	b, err := NewBoard(tiles)
	if err != nil {
		panic(err)
	}
	return b
}

// Tile returns the tile at c.
func (b *Board) Tile(c hex.Coord) (Tile, bool) {
	t, ok := b.tiles[c]
	return t, ok
}

// Contains reports whether c is on the board.
func (b *Board) Contains(c hex.Coord) bool {
	_, ok := b.tiles[c]
	return ok
}

// Len returns the number of tiles.
func (b *Board) Len() int { return len(b.tiles) }

// Tiles returns all tiles ordered by r then q.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.R != out[j].Coord.R {
			return out[i].Coord.R < out[j].Coord.R
		}
		return out[i].Coord.Q < out[j].Coord.Q
	})
	return out
}

// TilesOfType returns the tiles of type tt ordered by r then q.
func (b *Board) TilesOfType(tt TileType) []Tile {
	var out []Tile
	for _, t := range b.Tiles() {
		if t.Type == tt {
			out = append(out, t)
		}
	}
	return out
}

// VillagesFor returns the villages of class hc ordered by r then q.
func (b *Board) VillagesFor(hc HeroClass) []Tile {
	var out []Tile
	for _, t := range b.TilesOfType(TileVillage) {
		if t.VillageClass == hc {
			out = append(out, t)
		}
	}
	return out
}

// MoveCost returns the entry cost of c for a hero. Temple tiles are blocked
// for corrupt heroes unless they hold the demon sword.
func (b *Board) MoveCost(c hex.Coord, state HeroState, hasDemonSword bool) int {
	t, ok := b.tiles[c]
	if !ok {
		return CostBlocked
	}
	if t.Type == TileTemple && state == StateCorrupt && !hasDemonSword {
		return CostBlocked
	}
	cost, ok := MovementCosts[t.Type]
	if !ok {
		return CostBlocked
	}
	return cost
}

// Passable reports whether a line or push may pass through c.
func (b *Board) Passable(c hex.Coord) bool {
	t, ok := b.tiles[c]
	if !ok {
		return false
	}
	return MovementCosts[t.Type] != CostBlocked
}

// SerializedTile is the flat-array wire shape of a tile.
type SerializedTile struct {
	Q            int       `json:"q"`
	R            int       `json:"r"`
	Type         TileType  `json:"type"`
	VillageClass HeroClass `json:"villageClass,omitempty"`
	MonsterID    string    `json:"monsterId,omitempty"`
}

// Serialize flattens the board to an array ordered by r then q.
func (b *Board) Serialize() []SerializedTile {
	tiles := b.Tiles()
	out := make([]SerializedTile, len(tiles))
	for i, t := range tiles {
		out[i] = SerializedTile{Q: t.Coord.Q, R: t.Coord.R, Type: t.Type, VillageClass: t.VillageClass, MonsterID: t.MonsterID}
	}
	return out
}

// DeserializeBoard rebuilds a board from its flat-array form.
func DeserializeBoard(tiles []SerializedTile) (*Board, error) {
	in := make([]Tile, len(tiles))
	for i, t := range tiles {
		in[i] = Tile{Coord: hex.Coord{Q: t.Q, R: t.R}, Type: t.Type, VillageClass: t.VillageClass, MonsterID: t.MonsterID}
	}
	return NewBoard(in)
}

// MarshalJSON encodes the board as its flat array.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Serialize())
}

// UnmarshalJSON decodes a flat array into the board.
func (b *Board) UnmarshalJSON(data []byte) error {
	var tiles []SerializedTile
	if err := json.Unmarshal(data, &tiles); err != nil {
		return err
	}
	nb, err := DeserializeBoard(tiles)
	if err != nil {
		return err
	}
	b.tiles = nb.tiles
	return nil
}
