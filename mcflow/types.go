package mcflow

import "errors"

// Sentinel errors for mcflow operations.
var (
	// ErrInfeasible is returned by an Oracle when no flow saturating every
	// supply/demand node exists. Build never produces an infeasible
	// Instance (spec §4.6: every node has its self-edge), so this only
	// fires against a hand-built Instance.
	ErrInfeasible = errors.New("mcflow: instance is infeasible")

	// ErrUnsupportedAlgorithm is returned when Options.Algo selects an
	// oracle this build does not implement.
	ErrUnsupportedAlgorithm = errors.New("mcflow: unsupported algorithm")

	// ErrDoubleAssignment is an internal-invariant failure: two chosen
	// match-edges landed on the same node, which the reduction in Build
	// should make structurally impossible.
	ErrDoubleAssignment = errors.New("mcflow: internal invariant violated: double assignment")
)

// arc is one direction of a residual edge. Arcs are stored in forward/
// reverse pairs at indices 2k and 2k+1, so an arc's reverse is always
// flat[i^1] — the classic residual-network encoding.
type arc struct {
	to   int
	cap  int64 // remaining residual capacity
	cost int64 // cost of sending one unit along this direction
}

// MatchArc identifies one match-edge u⁺→v⁻ of the reduced graph (spec
// §4.6 step 3), keyed by item index rather than by node-split id, so
// downstream packages never need to know the node-splitting encoding.
type MatchArc struct {
	Source int // item index of u
	Target int // item index of v
	Rank   int
	Cost   int64

	arcIdx int // index into Instance.flat of the forward direction
}

// Instance is a node-split flow network built from a tradegraph.Graph
// (spec §4.6). Nodes [0, 2*NumItems) are the split item nodes (out-node at
// 2*i, in-node at 2*i+1); node SourceNode has supply +1 to every out-node,
// node SinkNode absorbs -1 from every in-node.
type Instance struct {
	NumItems   int
	SourceNode int
	SinkNode   int

	adj  [][]int // adj[v] = indices into flat for arcs leaving v
	flat []arc   // flat forward/reverse arc pairs, indexed as described on arc

	selfArc   []int      // selfArc[i] = flat index of item i's v⁺→v⁻ self-edge
	MatchArcs []MatchArc // every match-edge, in Build's declaration order
}

func (in *Instance) outNode(item int) int { return 2 * item }
func (in *Instance) inNode(item int) int  { return 2*item + 1 }

// numNodes returns the total node count including the super source/sink.
func (in *Instance) numNodes() int { return 2*in.NumItems + 2 }

// addArc appends a forward/reverse pair from u to v with the given forward
// capacity and cost (reverse starts at zero capacity, negative cost), and
// returns the forward arc's flat index.
func (in *Instance) addArc(u, v int, cap, cost int64) int {
	fwd := len(in.flat)
	in.flat = append(in.flat, arc{to: v, cap: cap, cost: cost})
	in.flat = append(in.flat, arc{to: u, cap: 0, cost: -cost})
	in.adj[u] = append(in.adj[u], fwd)
	in.adj[v] = append(in.adj[v], fwd+1)

	return fwd
}

// Flow is the result of a successful Oracle run: for each MatchArc whether
// it carries flow, plus the total cost (spec §4.7).
type Flow struct {
	Chosen    []bool // parallel to the Instance's MatchArcs
	TotalCost int64
}
