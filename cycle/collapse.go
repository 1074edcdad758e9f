package cycle

import "github.com/katalvlaran/mathtrade/tradegraph"

// Collapse merges every dummy chain in res into a direct sender→receiver
// link (spec §4.8 "Dummy-collapse"). It returns a new Result with the same
// shape as res: dummy items are left with their original (dummy-to-dummy)
// Send/Receive entries untouched — callers (package report) simply skip
// dummy items when walking the item list — but every real item at a chain's
// boundary is rewired to point directly at its new real counterpart.
//
// A chain of only dummies (a cycle with no real item on it) is left
// entirely alone, per spec step 2: it never traded with anything real, so
// it has no sender/receiver to splice and is ignored.
func Collapse(g *tradegraph.Graph, res *Result) *Result {
	n := len(res.Send)
	out := &Result{
		Send:          append([]int(nil), res.Send...),
		Receive:       append([]int(nil), res.Receive...),
		CollapsedRank: make(map[int]int),
	}

	rank := buildRankLookup(g)
	visited := make([]bool, n)

	for d := 0; d < n; d++ {
		if !g.Item(d).IsDummy || !res.Trades(d) || visited[d] {
			continue
		}

		firstDummy, sender, dummyOnlyBack := walkBack(g, res, d)
		lastDummy, receiver, dummyOnlyFwd := walkForward(g, res, d)

		for cur := firstDummy; ; {
			visited[cur] = true
			if cur == lastDummy {
				break
			}
			cur = res.Send[cur]
		}

		if dummyOnlyBack || dummyOnlyFwd {
			continue // pure-dummy cycle: nothing real to splice (spec §4.8 step 2)
		}

		out.Send[sender] = receiver
		out.Receive[receiver] = sender
		out.CollapsedRank[sender] = rank[[2]int{sender, firstDummy}]
	}

	return out
}

// walkBack follows Receive from start while the current node is a dummy,
// returning the first dummy in the chain and the non-dummy item that sends
// into it (the "sender"). dummyOnly is true if the walk returns to start
// without ever leaving dummy items (a pure-dummy cycle).
func walkBack(g *tradegraph.Graph, res *Result, start int) (firstDummy, sender int, dummyOnly bool) {
	cur := start
	for {
		prev := res.Receive[cur]
		if prev == none {
			return cur, none, true
		}
		if !g.Item(prev).IsDummy {
			return cur, prev, false
		}
		cur = prev
		if cur == start {
			return cur, none, true
		}
	}
}

// walkForward follows Send from start while the current node is a dummy,
// returning the last dummy in the chain and the non-dummy item it sends to
// (the "receiver").
func walkForward(g *tradegraph.Graph, res *Result, start int) (lastDummy, receiver int, dummyOnly bool) {
	cur := start
	for {
		next := res.Send[cur]
		if next == none {
			return cur, none, true
		}
		if !g.Item(next).IsDummy {
			return cur, next, false
		}
		cur = next
		if cur == start {
			return cur, none, true
		}
	}
}

// buildRankLookup indexes every recorded arc by (source, target) item index
// for O(1) rank recovery during collapse.
func buildRankLookup(g *tradegraph.Graph) map[[2]int]int {
	m := make(map[[2]int]int, g.ArcCount())
	for _, a := range g.Arcs() {
		m[[2]int{a.Source, a.Target}] = a.Rank
	}

	return m
}
