package tradegraph

import "sort"

// AddItem inserts a new Item with the given normalized id if none exists yet,
// and returns its index either way. Complexity: O(1) amortized.
func (g *Graph) AddItem(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyItemID
	}
	if idx, ok := g.index[id]; ok {
		return idx, nil
	}
	idx := len(g.items)
	g.items = append(g.items, Item{ID: id})
	g.index[id] = idx

	return idx, nil
}

// Lookup returns the index of the item with the given id and whether it
// exists. It never creates a record: this is how the parser distinguishes a
// "known" target (present in the registry) from an unknown one (spec §4.3).
func (g *Graph) Lookup(id string) (int, bool) {
	idx, ok := g.index[id]

	return idx, ok
}

// Item returns a pointer to the item at idx for in-place mutation by the
// parser (flipping HasWantlist/IsDummy, setting OfficialName/Owner).
// Panics on an out-of-range index: callers only ever pass indices this Graph
// itself returned.
func (g *Graph) Item(idx int) *Item {
	return &g.items[idx]
}

// ItemByID is a convenience wrapper combining Lookup and Item.
func (g *Graph) ItemByID(id string) (*Item, bool) {
	idx, ok := g.index[id]
	if !ok {
		return nil, false
	}

	return &g.items[idx], true
}

// NodeCount returns the number of items registered in the Graph.
func (g *Graph) NodeCount() int { return len(g.items) }

// ArcCount returns the total number of arcs ever recorded (including those
// whose target has no want-list; see TradableArcs for the filtered view used
// downstream).
func (g *Graph) ArcCount() int { return len(g.arcs) }

// AddArc appends a new arc from source to target at the given rank, in
// declaration order, and returns its arc id. Duplicate-target handling
// (spec §4.4 invariant 2: first declaration's rank wins) is the caller's
// (wantparser's) responsibility — Graph itself never rejects or merges arcs.
func (g *Graph) AddArc(source, target, rank int) int {
	id := len(g.arcs)
	g.arcs = append(g.arcs, Arc{ID: id, Source: source, Target: target, Rank: rank})
	g.bundles[source] = append(g.bundles[source], id)

	return id
}

// Bundle returns the arcs declared for the given source item index, in the
// order they were added — the "wantlist bundle" of spec §3.
func (g *Graph) Bundle(source int) []Arc {
	ids := g.bundles[source]
	out := make([]Arc, len(ids))
	for i, id := range ids {
		out[i] = g.arcs[id]
	}

	return out
}

// Arcs returns every arc ever recorded, in declaration order.
func (g *Graph) Arcs() []Arc {
	return g.arcs
}

// SortedIDs returns every item id in the Graph, sorted lexicographically —
// the teacher library's convention (core.Vertices) for deterministic
// iteration independent of map order.
func (g *Graph) SortedIDs() []string {
	ids := make([]string, len(g.items))
	for i, it := range g.items {
		ids[i] = it.ID
	}
	sort.Strings(ids)

	return ids
}

// TradableArcs returns, in declaration order, every arc whose target is
// known and whose target item itself has a registered want-list. This is
// the filtered view the canonical graph export (spec §4.4 "Output") and the
// min-cost-flow reduction both consume: unknown-target arcs and arcs into a
// want-list-less item are dropped from the downstream graph (they remain
// visible only via diagnostics, never here).
func (g *Graph) TradableArcs() []Arc {
	out := make([]Arc, 0, len(g.arcs))
	for _, a := range g.arcs {
		if a.Target < 0 || a.Target >= len(g.items) {
			continue
		}
		if g.items[a.Target].HasWantlist {
			out = append(out, a)
		}
	}

	return out
}

// TradableItemIndices returns, sorted by id, the indices of every item that
// has a want-list — one node row per item in the canonical export (spec §6).
func (g *Graph) TradableItemIndices() []int {
	out := make([]int, 0, len(g.items))
	for i, it := range g.items {
		if it.HasWantlist {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return g.items[out[i]].ID < g.items[out[j]].ID })

	return out
}
