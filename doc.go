// Package mathtrade is a math trade solver: it parses OLWLG-style want-lists,
// reduces the resulting want graph to a min-cost flow instance, solves it for
// the lowest-total-cost set of trade cycles, and reports the result.
//
// The pipeline is a chain of single-purpose packages, each independently
// testable:
//
//	lexer      — line classification / tokenization of want-file text
//	option     — the runtime option registry ("#!" directive state)
//	tradegraph — the Item/Arc graph and its canonical export/import codec
//	wantparser — item registry + want-list parser, built on lexer/option/tradegraph
//	costmodel  — rank-to-cost conversion (NONE/LINEAR/TRIANGLE/SQUARE priority schemes)
//	mcflow     — node-splitting flow reduction + solver oracles (successive
//	             shortest paths, brute force)
//	cycle      — cycle extraction from a solved flow, dummy-item collapse
//	report     — renders a solved, collapsed result as text
//	trade      — orchestrates the above into one Run/RunFromGraph call
//
// cmd/mathtrade is the command-line entry point; everything else is an
// importable library with no process-wide state.
package mathtrade
