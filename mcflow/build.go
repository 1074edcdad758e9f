package mcflow

import (
	"fmt"

	"github.com/katalvlaran/mathtrade/costmodel"
	"github.com/katalvlaran/mathtrade/tradegraph"
)

// Build reduces g to a node-split min-cost-flow Instance (spec §4.6), using
// scheme to price every match-edge (§4.5) and nontradeCost as the self-edge
// cost for non-dummy items.
//
// Only tradable arcs (g.TradableArcs: known target, target itself has a
// want-list) become match-edges; an arc into an item without a want-list is
// left out here, and a target with no item record was already dropped
// upstream by the parser's deferred bookkeeping (wantparser.Finalize).
func Build(g *tradegraph.Graph, scheme string, nontradeCost int64) (*Instance, error) {
	n := g.NodeCount()
	in := &Instance{
		NumItems:   n,
		SourceNode: 2*n + 0,
		SinkNode:   2*n + 1,
		selfArc:    make([]int, n),
	}
	in.adj = make([][]int, in.numNodes())

	for i := 0; i < n; i++ {
		in.addArc(in.SourceNode, in.outNode(i), 1, 0)
		in.addArc(in.inNode(i), in.SinkNode, 1, 0)

		item := g.Item(i)
		selfCost := nontradeCost
		if item.IsDummy {
			selfCost = 0
		}
		in.selfArc[i] = in.addArc(in.outNode(i), in.inNode(i), 1, selfCost)
	}

	for _, a := range g.TradableArcs() {
		source := g.Item(a.Source)
		cost, err := costmodel.Cost(scheme, int64(a.Rank), source.IsDummy)
		if err != nil {
			return nil, fmt.Errorf("mcflow: building match-edge %d->%d: %w", a.Source, a.Target, err)
		}

		idx := in.addArc(in.outNode(a.Source), in.inNode(a.Target), 1, cost)
		in.MatchArcs = append(in.MatchArcs, MatchArc{
			Source: a.Source,
			Target: a.Target,
			Rank:   a.Rank,
			Cost:   cost,
			arcIdx: idx,
		})
	}

	return in, nil
}
