// Package trade wires the pipeline spec §9 describes: want-file text goes
// through wantparser into a tradegraph.Graph, mcflow reduces and solves it,
// cycle extracts and collapses the chosen match-edges, and report renders
// the result. Run (from want-file text) and RunFromGraph (from an
// already-built graph) are the entry points; everything they produce is a
// plain value threaded through the call, never a package-level singleton
// (spec §5: "Global options are read-only after parsing and passed by
// reference; no process-wide singletons").
package trade
