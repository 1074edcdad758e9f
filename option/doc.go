// Package option implements the typed option registry of spec §4.2: boolean
// flags, integer knobs with defaults, and the priority-scheme selector, all
// set from "#!" lines before parsing proper has begun.
//
// Unlike the teacher library's functional-options pattern (dijkstra.Option,
// builder.BuilderOption), which configures a single call at construction
// time, an options-store here is a long-lived, string-keyed registry that is
// mutated incrementally as option lines stream in and is later read by both
// the want-list parser and the reporter (spec §9, "Global options ... single
// configuration record passed by reference, no process-wide singletons").
package option
