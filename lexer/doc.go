// Package lexer classifies a single logical line of a want-file and splits
// it into tokens, per spec §4.1.
//
// Classification never looks beyond the current line: whether a payload line
// is an official-name declaration or a want-list line depends on parser mode
// (tracked by package wantparser), not on anything lexer can see.
//
// Token extraction uses an "FPAT" scheme grounded on the original C++
// implementation's regex (original_source/mathtrader/iograph/src/wantparser*.cpp):
// a quoted string, a parenthesized group, a bracketed group, or a maximal run
// of non-whitespace, with bare ':' and ';' always split out as their own
// single-character tokens.
package lexer
