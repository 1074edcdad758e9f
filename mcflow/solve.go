package mcflow

// Algorithm selects among the interchangeable oracle implementations spec
// §4.7 requires at least one of. The reference design names four
// (network-simplex, cost-scaling, capacity-scaling, cycle-canceling); this
// build ships a successive-shortest-paths oracle as its production
// algorithm and a brute-force oracle as the "trivial optimal solver for
// small cases" the design notes call for (spec §9).
type Algorithm int

const (
	// SuccessiveShortestPaths augments one unit of flow at a time along the
	// cheapest residual path (Bellman-Ford/SPFA). Production default.
	SuccessiveShortestPaths Algorithm = iota

	// BruteForce enumerates every assignment exhaustively. Intended only
	// for small instances in tests, as a ground truth for
	// SuccessiveShortestPaths.
	BruteForce
)

// Options configures Solve. The zero value selects SuccessiveShortestPaths.
type Options struct {
	Algo Algorithm
}

// Solve runs the selected oracle against in and returns the resulting Flow
// (spec §4.7). Every MatchArc in in.MatchArcs gets exactly one entry in
// Flow.Chosen, in the same order.
func Solve(in *Instance, opts Options) (Flow, error) {
	switch opts.Algo {
	case SuccessiveShortestPaths:
		return successiveShortestPaths(in)
	case BruteForce:
		return bruteForce(in)
	default:
		return Flow{}, ErrUnsupportedAlgorithm
	}
}
