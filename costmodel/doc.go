// Package costmodel implements spec §4.5: mapping a want-arc's rank and its
// source item's dummy flag to an integer min-cost-flow arc cost, under one
// of the priority schemes selectable via the "#!" option lines of package
// option.
//
// SCALED-PRIORITIES is declared as syntactically valid by package option
// (anything matching "*-PRIORITIES") but is deliberately not implemented
// here: spec §9 calls its formula unspecified in the original source and
// says not to guess it. Selecting it is a fatal, explicit error rather than
// a silently wrong number.
package costmodel
