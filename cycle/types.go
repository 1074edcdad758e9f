package cycle

import "errors"

// ErrDoubleAssignment is an internal-invariant failure: the solved flow
// assigned two chosen match-edges to the same source or the same target,
// which a correctly built mcflow.Instance makes structurally impossible
// (spec §4.7 contract, §7 "Solver" error class).
var ErrDoubleAssignment = errors.New("cycle: internal invariant violated: double assignment")

// none marks an absent Send/Receive item index.
const none = -1

// Result holds, per item index (parallel to the owning tradegraph.Graph's
// item arena), the outcome of extraction: whether it trades and, if so,
// which item it sends to and which it receives from (spec §4.7 step 1,
// §4.8 postcondition invariants).
type Result struct {
	Send    []int // Send[i] = item index i sends to, or none
	Receive []int // Receive[i] = item index i receives from, or none

	// CollapsedRank records, for each sender item whose dummy chain was
	// spliced away by Collapse, the rank of its original arc to the first
	// dummy in that chain (spec §4.8 step 3). Populated only by Collapse;
	// nil on a Result fresh from Extract.
	CollapsedRank map[int]int
}

// Trades reports whether item i trades.
func (r *Result) Trades(i int) bool { return r.Send[i] != none }

// NumTrades returns the number of items, dummy or not, with a chosen
// outgoing arc. Collapse leaves dummy items' entries in place, so on a
// collapsed Result this still counts dummies; the "N total trades" figure
// in package report's TRADE LOOPS header counts only the non-dummy items on
// decoded cycles.
func (r *Result) NumTrades() int {
	n := 0
	for _, s := range r.Send {
		if s != none {
			n++
		}
	}

	return n
}
