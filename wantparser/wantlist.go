package wantparser

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/mathtrade/lexer"
	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/tradegraph"
)

// handleWantlist parses one want-list line (spec §4.4):
//
//	(USERNAME)? SOURCE [:] TARGET1 TARGET2 ... [; TARGET...]...
//
// Any violation discards the whole line as a single Diagnostic: no tentative
// arc is ever committed, and the source item's HasWantlist flag is only set
// once every token has validated successfully.
func (p *Parser) handleWantlist(lineNo int, rest string) {
	tokens := lexer.TokenizePayload(rest)
	if len(tokens) == 0 {
		p.addDiag(lineNo, "empty want-list line")

		return
	}

	if bad, msg := firstMalformedGroup(tokens); bad {
		p.addDiag(lineNo, msg)

		return
	}

	caseSensitive := p.opts.Bool(option.CaseSensitive)
	i := 0

	var rawUsername string
	if len(tokens[0]) >= 2 && tokens[0][0] == '(' && tokens[0][len(tokens[0])-1] == ')' {
		rawUsername = tokens[0][1 : len(tokens[0])-1]
		i++
	} else if p.opts.Bool(option.RequireUsernames) {
		p.addDiag(lineNo, "want-list line is missing a required (USERNAME) prefix")

		return
	}

	if i >= len(tokens) {
		p.addDiag(lineNo, "want-list line is missing a source item")

		return
	}
	rawSource := tokens[i]
	i++

	if r, bad := lexer.FindForbidden(rawSource); bad {
		p.addDiag(lineNo, "source item contains a forbidden character: "+strconv.QuoteRune(r))

		return
	}

	normUsername := ""
	if rawUsername != "" {
		normUsername = tradegraph.NormalizeID(rawUsername, caseSensitive)
	}

	isDummy := tradegraph.IsDummyRaw(rawSource)
	var sourceID string
	if isDummy {
		if !p.opts.Bool(option.AllowDummies) {
			p.addDiag(lineNo, "dummy item used but ALLOW-DUMMIES is not set: "+rawSource)

			return
		}
		if normUsername == "" {
			p.addDiag(lineNo, "dummy item requires an owning (USERNAME): "+rawSource)

			return
		}
		sourceID = tradegraph.NormalizeDummyID(rawSource[1:], normUsername, caseSensitive)
	} else {
		sourceID = tradegraph.NormalizeID(rawSource, caseSensitive)
	}

	_, existed := p.graph.Lookup(sourceID)
	if !existed && p.officialNamesDeclared && !isDummy {
		p.addDiag(lineNo, "source item was never declared in OFFICIAL-NAMES, likely a typo: "+sourceID)

		return
	}

	sourceIdx, err := p.graph.AddItem(sourceID)
	if err != nil {
		p.addDiag(lineNo, err.Error())

		return
	}
	item := p.graph.Item(sourceIdx)

	if normUsername != "" {
		if item.Owner == "" {
			item.Owner = normUsername
		} else if item.Owner != normUsername {
			p.addDiag(lineNo, "want-list owner does not match the declared owner of "+sourceID)

			return
		}
	}
	if item.IsDummy != isDummy && existed {
		p.addDiag(lineNo, "item "+sourceID+" was declared dummy/non-dummy inconsistently")

		return
	}
	item.IsDummy = item.IsDummy || isDummy

	if item.HasWantlist {
		p.addDiag(lineNo, "duplicate want-list for "+sourceID)

		return
	}

	if i < len(tokens) && tokens[i] == ":" {
		i++
	} else if p.opts.Bool(option.RequireColons) {
		p.addDiag(lineNo, "want-list line is missing the required ':' after the source item")

		return
	}

	for _, t := range tokens[i:] {
		if t == ":" {
			p.addDiag(lineNo, "want-list line has more than one ':'")

			return
		}
	}

	type tentative struct {
		target string
		rank   int64
	}
	var arcs []tentative
	seen := make(map[string]int)
	var dups []Duplicate

	rank := int64(1)
	smallStep := p.opts.Int(option.SmallStep)
	bigStep := p.opts.Int(option.BigStep)

	for _, t := range tokens[i:] {
		if t == ";" {
			rank += bigStep

			continue
		}

		if r, bad := lexer.FindForbidden(t); bad {
			p.addDiag(lineNo, "target item contains a forbidden character: "+strconv.QuoteRune(r))

			return
		}

		targetID := tradegraph.NormalizeID(t, caseSensitive)
		if tradegraph.IsDummyRaw(t) {
			if normUsername == "" {
				p.addDiag(lineNo, "dummy target requires an owning (USERNAME): "+t)

				return
			}
			targetID = tradegraph.NormalizeDummyID(t[1:], normUsername, caseSensitive)
		}

		if n, ok := seen[targetID]; ok {
			seen[targetID] = n + 1

			continue
		}
		seen[targetID] = 0
		arcs = append(arcs, tentative{target: targetID, rank: rank})
		rank += smallStep
	}

	for target, extra := range seen {
		if extra > 0 {
			dups = append(dups, Duplicate{Source: sourceID, Target: target, Count: extra})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Target < dups[j].Target })

	item.HasWantlist = true
	for _, a := range arcs {
		p.pending = append(p.pending, pendingArc{source: sourceIdx, target: a.target, rank: a.rank})
	}
	p.duplicates = append(p.duplicates, dups...)
}

// firstMalformedGroup reports the first token that looks like an unterminated
// quoted/paren/bracket group — TokenizePayload emits such a token verbatim
// (including its unmatched opening character) instead of silently dropping
// it, so the parser can surface a precise diagnostic.
func firstMalformedGroup(tokens []string) (bool, string) {
	for _, t := range tokens {
		if len(t) == 0 {
			continue
		}
		switch t[0] {
		case '"':
			if len(t) < 2 || t[len(t)-1] != '"' {
				return true, "unterminated quoted string: " + t
			}
		case '(':
			if t[len(t)-1] != ')' {
				return true, "unterminated parenthesized group: " + t
			}
		case '[':
			if t[len(t)-1] != ']' {
				return true, "unterminated bracketed group: " + t
			}
		}
	}

	return false, ""
}
