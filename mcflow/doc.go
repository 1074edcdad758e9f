// Package mcflow implements spec §4.6 (the node-splitting min-cost-flow
// reduction) and §4.7 (the solver oracle contract).
//
// An Instance is an arena of nodes and arcs addressed by integer index —
// the same representation discipline as package tradegraph, per the design
// notes on graph representations: node-splitting doubles each item index
// into an out-node and an in-node rather than building a second pointer
// graph. Build derives an Instance from a *tradegraph.Graph; Solve runs one
// of the interchangeable oracle algorithms against it.
//
// Every node has out-degree ≥ 1 via its self-edge, so every Instance built
// by Build is feasible (spec §4.6): Solve never reports infeasibility for a
// Build-produced Instance, though the Oracle contract itself allows for it
// in case a future caller constructs a pathological Instance by hand.
package mcflow
