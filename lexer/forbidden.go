package lexer

import "strings"

// forbiddenRunes is the punctuation set disallowed inside a want-list item
// token (source or target), per spec §4.1. It explicitly excludes ':', '-',
// '%', and alphanumerics.
const forbiddenRunes = "`~!@#$^&*=+(){}[]\\|;'\",.<>/?"

// FindForbidden returns the first forbidden rune found in tok and true, or
// (0, false) if tok contains none. Callers run this over individual item
// tokens (source/target ids), not over the full line — the line-level
// grammar legitimately uses '(', ')', ';' and ':' as structural punctuation
// that TokenizePayload already peeled off into their own tokens.
func FindForbidden(tok string) (rune, bool) {
	if idx := strings.IndexAny(tok, forbiddenRunes); idx >= 0 {
		return rune(tok[idx]), true
	}

	return 0, false
}
