package lexer

import "strings"

// TokenizeOptionTerms re-tokenizes the remainder of a "#!" option line
// (spec §4.1 rule 3) by splitting on runs of whitespace and '='. This turns
// "SMALL-STEP=1", "SMALL-STEP = 1", and "SMALL-STEP  1" all into the same
// two terms: ["SMALL-STEP", "1"].
func TokenizeOptionTerms(remainder string) []string {
	return strings.FieldsFunc(remainder, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '='
	})
}
