package lexer

import "strings"

// Kind classifies a single logical input line (spec §4.1).
type Kind int

const (
	// KindIgnore covers empty/whitespace-only lines, "#pragma" lines, and
	// ordinary "#" comments: all are dropped before parsing proper.
	KindIgnore Kind = iota

	// KindOption marks a "#! ..." line: an option-store directive.
	KindOption

	// KindDirective marks a "!..." line: a parser-mode directive such as
	// !BEGIN-OFFICIAL-NAMES.
	KindDirective

	// KindPayload marks everything else: an official-name declaration or a
	// want-list line, disambiguated by the parser's current mode.
	KindPayload
)

// Classify applies spec §4.1's ordered rules to a single logical line (no
// embedded newline; CRLF should already be stripped by the caller) and
// returns its Kind plus, for KindOption, KindDirective and KindPayload
// lines, the remainder of the line with the leading marker removed.
//
// Rules, evaluated in order:
//  1. Empty or whitespace-only -> KindIgnore.
//  2. Begins with "#pragma" -> KindIgnore (reserved).
//  3. Begins with "#!" -> KindOption; remainder is everything after "#!".
//  4. Begins with "#" -> KindIgnore (comment).
//  5. Begins with "!" -> KindDirective; remainder is everything after "!".
//  6. Otherwise -> KindPayload; remainder is the line itself.
func Classify(line string) (Kind, string) {
	trimmed := strings.TrimSpace(line)

	// Rule 1: empty or whitespace-only.
	if trimmed == "" {
		return KindIgnore, ""
	}

	// Rule 2: reserved pragma marker.
	if strings.HasPrefix(trimmed, "#pragma") {
		return KindIgnore, ""
	}

	// Rule 3: option line "#! ...".
	if strings.HasPrefix(trimmed, "#!") {
		return KindOption, strings.TrimSpace(trimmed[len("#!"):])
	}

	// Rule 4: ordinary comment.
	if strings.HasPrefix(trimmed, "#") {
		return KindIgnore, ""
	}

	// Rule 5: directive "!...".
	if strings.HasPrefix(trimmed, "!") {
		return KindDirective, strings.TrimSpace(trimmed[len("!"):])
	}

	// Rule 6: payload (official-name or want-list line).
	return KindPayload, trimmed
}
