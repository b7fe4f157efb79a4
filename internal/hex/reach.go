package hex

import "sort"

// StepCost reports the cost of stepping from one hex onto an adjacent one
// given the budget left before the step. ok=false marks the step as blocked.
type StepCost func(from, to Coord, remaining int) (cost int, ok bool)

// Reachable returns every hex reachable from start within budget, mapped to
// the cheapest total cost of getting there. The start hex is included at
// cost 0. Zero-cost steps are treated as cost 1 so the search terminates.
func Reachable(start Coord, budget int, step StepCost) map[Coord]int {
	best := map[Coord]int{start: 0}
	frontier := []Coord{start}
	for len(frontier) > 0 {
		// expand cheapest first; ties by r then q for deterministic output
		sort.Slice(frontier, func(i, j int) bool {
			ci, cj := best[frontier[i]], best[frontier[j]]
			if ci != cj {
				return ci < cj
			}
			if frontier[i].R != frontier[j].R {
				return frontier[i].R < frontier[j].R
			}
			return frontier[i].Q < frontier[j].Q
		})
		cur := frontier[0]
		frontier = frontier[1:]
		spent := best[cur]
		for _, next := range Neighbors(cur) {
			cost, ok := step(cur, next, budget-spent)
			if !ok {
				continue
			}
			if cost <= 0 {
				cost = 1
			}
			total := spent + cost
			if total > budget {
				continue
			}
			if prev, seen := best[next]; seen && prev <= total {
				continue
			}
			best[next] = total
			frontier = append(frontier, next)
		}
	}
	return best
}

// Sorted returns the keys of a reachable set ordered by r then q.
func Sorted(set map[Coord]int) []Coord {
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].R != out[j].R {
			return out[i].R < out[j].R
		}
		return out[i].Q < out[j].Q
	})
	return out
}
