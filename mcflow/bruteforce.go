package mcflow

import "math"

// bruteForce enumerates every assignment of each item to either its
// self-edge or one of its outgoing match-edges, keeping the cheapest
// assignment that uses every in-node exactly once. It exists as the
// "trivial optimal solver for small cases" the design notes call for
// (spec §9) — a reference oracle to check successiveShortestPaths against
// in tests, never meant for production-sized instances.
func bruteForce(in *Instance) (Flow, error) {
	byOut := make(map[int][]int, in.NumItems) // out-node -> candidate MatchArc indices
	for i, m := range in.MatchArcs {
		byOut[in.outNode(m.Source)] = append(byOut[in.outNode(m.Source)], i)
	}

	usedIn := make([]bool, in.numNodes())
	chosen := make([]bool, len(in.MatchArcs))
	best := make([]bool, len(in.MatchArcs))
	bestCost := int64(math.MaxInt64)

	var assign func(item int, cost int64)
	assign = func(item int, cost int64) {
		if cost >= bestCost {
			return // prune: can only get worse from here
		}
		if item == in.NumItems {
			bestCost = cost
			copy(best, chosen)

			return
		}

		selfIn := in.inNode(item)
		if !usedIn[selfIn] {
			usedIn[selfIn] = true
			assign(item+1, cost+in.flat[in.selfArc[item]].cost)
			usedIn[selfIn] = false
		}

		for _, mi := range byOut[in.outNode(item)] {
			m := in.MatchArcs[mi]
			inNode := in.inNode(m.Target)
			if usedIn[inNode] {
				continue
			}
			usedIn[inNode] = true
			chosen[mi] = true
			assign(item+1, cost+m.Cost)
			chosen[mi] = false
			usedIn[inNode] = false
		}
	}
	assign(0, 0)

	if bestCost == math.MaxInt64 {
		return Flow{}, ErrInfeasible
	}

	return Flow{Chosen: best, TotalCost: bestCost}, nil
}
