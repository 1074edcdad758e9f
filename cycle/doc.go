// Package cycle implements spec §4.8: converting a solved mcflow.Flow back
// into item-graph terms (Extract), merging dummy chains into their
// real-item endpoints (Collapse), and decoding the result into the
// vertex-disjoint simple cycles the reporter walks (Decode).
//
// Cyclic send/receive relationships are represented as a pair of item
// indices per item (spec §9, "represent by a pair of optional arc ids,
// never as raw pointers"): Result.Send/Receive hold item indices, -1 when
// absent, and decoding a cycle is an index walk rather than pointer chasing.
package cycle
