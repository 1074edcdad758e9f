package wantparser

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/mathtrade/lexer"
	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/tradegraph"
)

// handleOfficialName parses one line inside a !BEGIN-OFFICIAL-NAMES /
// !END-OFFICIAL-NAMES block (spec §4.1, §4.3):
//
//	ITEM-ID ==> "Display Name" (from USERNAME) [copy K of N]
//
// the bracketed copy clause is optional. A malformed line, or a second
// declaration of the same item id, is discarded whole as a Diagnostic — it
// never partially registers the item.
func (p *Parser) handleOfficialName(lineNo int, rest string) {
	tokens := lexer.TokenizePayload(rest)
	if len(tokens) < 4 {
		p.addDiag(lineNo, "official-name line has too few tokens")

		return
	}
	if tokens[1] != "==>" {
		p.addDiag(lineNo, `official-name line is missing "==>"`)

		return
	}

	rawID := tokens[0]
	if r, bad := lexer.FindForbidden(rawID); bad {
		p.addDiag(lineNo, "item id contains a forbidden character: "+strconv.QuoteRune(r))

		return
	}

	name := tokens[2]
	if len(name) < 2 || name[0] != '"' || name[len(name)-1] != '"' {
		p.addDiag(lineNo, "official-name line is missing a quoted display name")

		return
	}

	owner, ok := parseFromClause(tokens[3])
	if !ok {
		p.addDiag(lineNo, `official-name line is missing "(from USERNAME)"`)

		return
	}

	copyIndex, copyTotal := 0, 0
	if len(tokens) >= 5 {
		ci, ct, ok := parseCopyClause(tokens[4])
		if !ok {
			p.addDiag(lineNo, `official-name line has a malformed "[copy K of N]" clause`)

			return
		}
		copyIndex, copyTotal = ci, ct
	}

	caseSensitive := p.opts.Bool(option.CaseSensitive)
	normOwner := tradegraph.NormalizeID(owner, caseSensitive)

	var id string
	isDummy := tradegraph.IsDummyRaw(rawID)
	if isDummy {
		id = tradegraph.NormalizeDummyID(rawID[1:], normOwner, caseSensitive)
	} else {
		id = tradegraph.NormalizeID(rawID, caseSensitive)
	}

	if _, exists := p.graph.Lookup(id); exists {
		p.addDiag(lineNo, "duplicate official-name declaration for "+id)

		return
	}

	idx, err := p.graph.AddItem(id)
	if err != nil {
		p.addDiag(lineNo, err.Error())

		return
	}

	item := p.graph.Item(idx)
	item.OfficialName = tradegraph.NormalizeOfficialName(name)
	item.Owner = normOwner
	item.IsDummy = isDummy
	item.CopyIndex = copyIndex
	item.CopyTotal = copyTotal
}

// parseFromClause unwraps a "(from USERNAME)" token and returns the raw
// username.
func parseFromClause(tok string) (string, bool) {
	if len(tok) < 2 || tok[0] != '(' || tok[len(tok)-1] != ')' {
		return "", false
	}
	fields := strings.Fields(tok[1 : len(tok)-1])
	if len(fields) != 2 || !strings.EqualFold(fields[0], "from") {
		return "", false
	}

	return fields[1], true
}

// parseCopyClause unwraps a "[copy K of N]" token into its 1-based index and
// total.
func parseCopyClause(tok string) (int, int, bool) {
	if len(tok) < 2 || tok[0] != '[' || tok[len(tok)-1] != ']' {
		return 0, 0, false
	}
	fields := strings.Fields(tok[1 : len(tok)-1])
	if len(fields) != 4 || !strings.EqualFold(fields[0], "copy") || !strings.EqualFold(fields[2], "of") {
		return 0, 0, false
	}
	k, err1 := strconv.Atoi(fields[1])
	n, err2 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || k <= 0 || n <= 0 || k > n {
		return 0, 0, false
	}

	return k, n, true
}
