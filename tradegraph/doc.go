// Package tradegraph defines the central Item, Arc, and Graph types shared by
// the want-list parser, the min-cost-flow solver, and the reporter.
//
// An Item is a tradable object identified by a normalized id. An Arc is a
// directed, ranked "would accept" relation from one item to another. A Graph
// is an arena of Items addressed by integer index plus parallel arc slices —
// the node-splitting min-cost-flow reduction in package mcflow derives its
// two-node-per-item view from this arena on the fly rather than materializing
// a second graph structure.
//
// Normalization rules (case folding, dummy-item scoping, official-name
// whitespace handling) live here because both the parser (which produces
// normalized ids) and the reporter (which must reproduce them byte-for-byte)
// depend on the same rules.
package tradegraph
