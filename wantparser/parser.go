package wantparser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mathtrade/lexer"
	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/tradegraph"
)

// Parser consumes a want-file and builds a tradegraph.Graph, collecting
// diagnostics instead of stopping at the first error (spec §4.4, §7, §9).
//
// A Parser is single-use: construct one with New, call Run once, then read
// Graph/Diagnostics/Result.
type Parser struct {
	opts  *option.Store
	graph *tradegraph.Graph
	log   zerolog.Logger

	diagnostics []Diagnostic
	pending     []pendingArc
	duplicates  []Duplicate
	missing     map[string]int // normalized target id -> cross-file reference count

	inOfficialNames       bool
	officialNamesDeclared bool
	anyWantlistSeen       bool
}

// pendingArc is a tentative arc whose target's final "known" status cannot
// be determined until the whole file has been read (see Finalize).
type pendingArc struct {
	source int
	target string
	rank   int64
}

// New returns a Parser reading options from opts (already primed with
// defaults; the caller may pre-populate it, though in normal use option
// lines in the want-file itself populate it as Run progresses) and logging
// to log. A zero zerolog.Logger is a valid, silent default.
func New(opts *option.Store, log zerolog.Logger) *Parser {
	return &Parser{
		opts:    opts,
		graph:   tradegraph.NewGraph(),
		log:     log,
		missing: make(map[string]int),
	}
}

// Graph returns the Graph built so far. Call only after Run/Finalize.
func (p *Parser) Graph() *tradegraph.Graph { return p.graph }

// Diagnostics returns every collected line-tagged error, in the order
// encountered.
func (p *Parser) Diagnostics() []Diagnostic { return p.diagnostics }

// Options returns the option store the want-file's "#!" lines populated.
func (p *Parser) Options() *option.Store { return p.opts }

// Run reads every logical line from r (LF or CRLF line endings, spec §6),
// classifies and dispatches each one, then finalizes duplicate/missing
// bookkeeping. It never returns an error for malformed input — malformed
// lines become Diagnostics — only for I/O failure reading r.
func (p *Parser) Run(r io.Reader) (Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r") // tolerate CRLF
		p.processLine(lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("wantparser: reading input: %w", err)
	}

	return p.Finalize(), nil
}

func (p *Parser) processLine(lineNo int, line string) {
	kind, rest := lexer.Classify(line)

	switch kind {
	case lexer.KindIgnore:
		return

	case lexer.KindOption:
		p.handleOption(lineNo, rest)

	case lexer.KindDirective:
		p.opts.MarkParsingStarted()
		p.handleDirective(lineNo, rest)

	case lexer.KindPayload:
		p.opts.MarkParsingStarted()
		if p.inOfficialNames {
			p.handleOfficialName(lineNo, rest)
		} else {
			p.anyWantlistSeen = true
			p.handleWantlist(lineNo, rest)
		}
	}
}

func (p *Parser) handleOption(lineNo int, rest string) {
	terms := lexer.TokenizeOptionTerms(rest)
	if len(terms) == 0 {
		p.addDiag(lineNo, "empty option line")

		return
	}
	if err := p.opts.Apply(terms); err != nil {
		p.addDiag(lineNo, err.Error())
	}
}

func (p *Parser) handleDirective(lineNo int, name string) {
	switch strings.ToUpper(name) {
	case "BEGIN-OFFICIAL-NAMES":
		if p.anyWantlistSeen {
			p.addDiag(lineNo, "BEGIN-OFFICIAL-NAMES after a want-list has already been declared")

			return
		}
		p.inOfficialNames = true
		p.officialNamesDeclared = true

	case "END-OFFICIAL-NAMES":
		p.inOfficialNames = false

	default:
		p.addDiag(lineNo, fmt.Sprintf("unknown directive !%s", name))
	}
}

func (p *Parser) addDiag(lineNo int, msg string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Line: lineNo, Message: msg})
	p.log.Debug().Int("line", lineNo).Str("message", msg).Msg("wantparser: diagnostic")
}
