// Package report implements spec §4.9: rendering a solved, collapsed trade
// result as the three-section plain-text output (TRADE LOOPS, ITEM SUMMARY,
// TRADE STATISTICS), preceded by an options echo, an ERRORS section, and an
// optional MISSING ITEMS section (spec §7).
//
// The Reporter only ever reads its inputs (tradegraph.Graph, cycle.Result,
// diagnostics, missing-item counts) — per spec §5's shared-resource policy,
// nothing here mutates pipeline state.
package report
