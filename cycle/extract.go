package cycle

import (
	"fmt"

	"github.com/katalvlaran/mathtrade/mcflow"
)

// Extract converts a solved Flow back into item-graph terms (spec §4.8
// extractor algorithm): for every chosen match-edge u⁺→v⁻ it marks u.send=v
// and v.receive=u. numItems must equal the Instance's NumItems the Flow was
// solved against.
//
// Returns ErrDoubleAssignment if two chosen arcs share a source or a
// target — an internal-invariant failure the reduction in package mcflow
// should make structurally impossible; Extract validates it defensively
// rather than trusting the oracle.
func Extract(numItems int, matchArcs []mcflow.MatchArc, flow mcflow.Flow) (*Result, error) {
	res := &Result{
		Send:    make([]int, numItems),
		Receive: make([]int, numItems),
	}
	for i := range res.Send {
		res.Send[i] = none
		res.Receive[i] = none
	}

	for i, m := range matchArcs {
		if !flow.Chosen[i] {
			continue
		}
		if res.Send[m.Source] != none {
			return nil, fmt.Errorf("%w: item %d already sends to %d", ErrDoubleAssignment, m.Source, res.Send[m.Source])
		}
		if res.Receive[m.Target] != none {
			return nil, fmt.Errorf("%w: item %d already receives from %d", ErrDoubleAssignment, m.Target, res.Receive[m.Target])
		}
		res.Send[m.Source] = m.Target
		res.Receive[m.Target] = m.Source
	}

	return res, nil
}
