package hex

import "math"

// Round converts fractional cube coordinates to the nearest hex. The axis
// with the largest rounding error is recomputed from the other two; on equal
// errors q is corrected before r, and r before s.
func Round(q, r, s float64) Coord {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	switch {
	case dq >= dr && dq >= ds:
		rq = -rr - rs
	case dr >= ds:
		rr = -rq - rs
	}
	return Coord{Q: int(rq), R: int(rr)}
}

// Line returns the hexes on the straight line from a to b, both included.
func Line(a, b Coord) []Coord {
	n := Distance(a, b)
	if n == 0 {
		return []Coord{a}
	}
	out := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		q := lerp(float64(a.Q), float64(b.Q), t)
		r := lerp(float64(a.R), float64(b.R), t)
		s := lerp(float64(a.S()), float64(b.S()), t)
		out = append(out, Round(q, r, s))
	}
	return out
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
