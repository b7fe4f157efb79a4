// Package hex implements axial coordinate math for a flat-top hex grid.
// The third cube coordinate s is derived as s = -q - r.
package hex

import "fmt"

// Coord is an axial (q, r) position on the grid.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int { return -c.Q - c.R }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Q, c.R) }

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{Q: c.Q + o.Q, R: c.R + o.R} }

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{Q: c.Q - o.Q, R: c.R - o.R} }

// Direction indexes Directions.
type Direction int

// Directions lists the six neighbor offsets, counter-clockwise from east.
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbor returns the coordinate one step from c in direction dir.
// Directions outside 0..5 wrap around.
func Neighbor(c Coord, dir Direction) Coord {
	d := int(dir) % 6
	if d < 0 {
		d += 6
	}
	return c.Add(Directions[d])
}

// Neighbors returns the six adjacent coordinates in Directions order.
func Neighbors(c Coord) [6]Coord {
	var out [6]Coord
	for i := range Directions {
		out[i] = c.Add(Directions[i])
	}
	return out
}

// DirectionTo returns the direction whose offset equals to - from, if the two
// coordinates are adjacent.
func DirectionTo(from, to Coord) (Direction, bool) {
	diff := to.Sub(from)
	for i, d := range Directions {
		if d == diff {
			return Direction(i), true
		}
	}
	return 0, false
}

// Distance returns the hex distance between a and b.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// Range returns every coordinate within n steps of center, ordered by r then q.
func Range(center Coord, n int) []Coord {
	if n < 0 {
		return nil
	}
	out := make([]Coord, 0, 3*n*(n+1)+1)
	for dr := -n; dr <= n; dr++ {
		qMin := max(-n, -dr-n)
		qMax := min(n, -dr+n)
		for dq := qMin; dq <= qMax; dq++ {
			out = append(out, Coord{Q: center.Q + dq, R: center.R + dr})
		}
	}
	return out
}

// Ring returns the coordinates exactly n steps from center, walking
// counter-clockwise and starting from the tile n steps in direction 4.
func Ring(center Coord, n int) []Coord {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []Coord{center}
	}
	out := make([]Coord, 0, 6*n)
	cur := center
	for i := 0; i < n; i++ {
		cur = Neighbor(cur, 4)
	}
	for side := 0; side < 6; side++ {
		for step := 0; step < n; step++ {
			out = append(out, cur)
			cur = Neighbor(cur, Direction(side))
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
