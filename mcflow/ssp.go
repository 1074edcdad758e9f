package mcflow

import "math"

// successiveShortestPaths computes the min-cost flow of value in.NumItems
// from SourceNode to SinkNode by repeatedly sending one unit along the
// cheapest augmenting path in the residual network (Bellman-Ford/SPFA,
// spec §4.7). Every Build-produced Instance is feasible (each item's
// self-edge alone satisfies its supply/demand), so this never reports
// ErrInfeasible in practice — the check exists for hand-built instances.
//
// Complexity: O(NumItems * V * E) — SPFA per augmentation. Reduced-graph
// instances from real want-files are small enough (hundreds to low
// thousands of items) that this dominates neither memory nor wall time;
// see Options for selecting a different oracle when that stops holding.
func successiveShortestPaths(in *Instance) (Flow, error) {
	flat := in.flat
	nodes := in.numNodes()

	var totalCost int64
	for unit := 0; unit < in.NumItems; unit++ {
		dist := make([]int64, nodes)
		inQueue := make([]bool, nodes)
		prevArc := make([]int, nodes)
		for i := range dist {
			dist[i] = math.MaxInt64
			prevArc[i] = -1
		}
		dist[in.SourceNode] = 0

		queue := []int{in.SourceNode}
		inQueue[in.SourceNode] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			inQueue[u] = false

			for _, ai := range in.adj[u] {
				e := flat[ai]
				if e.cap <= 0 {
					continue
				}
				nd := dist[u] + e.cost
				if nd < dist[e.to] {
					dist[e.to] = nd
					prevArc[e.to] = ai
					if !inQueue[e.to] {
						queue = append(queue, e.to)
						inQueue[e.to] = true
					}
				}
			}
		}

		if dist[in.SinkNode] == math.MaxInt64 {
			return Flow{}, ErrInfeasible
		}

		// Every arc has capacity 1 in this reduction, so the bottleneck
		// along the path is always exactly 1 unit.
		for v := in.SinkNode; v != in.SourceNode; {
			ai := prevArc[v]
			flat[ai].cap--
			flat[ai^1].cap++
			v = flat[ai^1].to
		}
		totalCost += dist[in.SinkNode]
	}

	chosen := make([]bool, len(in.MatchArcs))
	for i, m := range in.MatchArcs {
		chosen[i] = flat[m.arcIdx].cap == 0
	}

	return Flow{Chosen: chosen, TotalCost: totalCost}, nil
}
