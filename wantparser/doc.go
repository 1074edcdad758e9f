// Package wantparser implements spec §4.3 (item registry) and §4.4 (the
// want-list parser), the hardest and most interacting component of the
// pipeline: it consumes want-file text line by line, maintains an item
// registry and an "official names declared" flag across the whole run, and
// emits a tradegraph.Graph plus a diagnostics log.
//
// Errors are data, not control flow (spec §9): a malformed line is recorded
// as a line-tagged Diagnostic and discarded whole — parsing continues with
// the next line, never partially committing a want-list. Of the two
// bookkeeping passes, only one is deferred until the entire file has been
// read, because its correct classification depends on registry state that
// is not final until then:
//
//   - duplicate targets within one want-list are detected immediately
//     (they only ever depend on the current line), but
//   - missing targets can only be confirmed once every line — including
//     want-lists declared later in the file that might register the very
//     id currently being referenced — has been processed. See Finalize.
package wantparser
