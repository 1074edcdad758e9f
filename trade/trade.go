package trade

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mathtrade/cycle"
	"github.com/katalvlaran/mathtrade/mcflow"
	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/report"
	"github.com/katalvlaran/mathtrade/tradegraph"
	"github.com/katalvlaran/mathtrade/wantparser"
)

// Result bundles every artifact a Run produces, enough to drive either
// report.Write or a canonical graph export without re-running any stage.
type Result struct {
	Graph       *tradegraph.Graph
	Parse       wantparser.Result
	Diagnostics []wantparser.Diagnostic
	Instance    *mcflow.Instance
	Flow        mcflow.Flow
	Cycles      *cycle.Result // dummy-collapsed
	Options     *option.Store
}

// Run drives the full pipeline over r: parse, reduce, solve, extract,
// collapse. opts is populated by the want-file's own "#!" lines as parsing
// proceeds (spec §4.2); pass a fresh option.NewStore() for default
// behavior. algo selects the mcflow oracle; the zero value is the
// production successive-shortest-paths solver.
//
// Run never returns an error for malformed want-file content — those
// become Diagnostics in the Result — only for I/O failure reading r, a
// priority scheme the cost model cannot price (such as SCALED-PRIORITIES),
// or an internal invariant violation in the solver/extractor (spec §7's
// "Solver"/"I-O" error classes).
func Run(r io.Reader, opts *option.Store, algo mcflow.Algorithm, log zerolog.Logger) (*Result, error) {
	p := wantparser.New(opts, log)
	parseResult, err := p.Run(r)
	if err != nil {
		return nil, fmt.Errorf("trade: reading want-file: %w", err)
	}

	res, err := solve(p.Graph(), opts, algo)
	if err != nil {
		return nil, err
	}
	res.Parse = parseResult
	res.Diagnostics = p.Diagnostics()

	return res, nil
}

// RunFromGraph drives the reduce/solve/extract/collapse stages directly
// over an already-built Graph, skipping the want-list parser entirely —
// the "pre-built graph file" input mode of the CLI surface (spec §6),
// fed by tradegraph.ReadCanonical. There are no Diagnostics or Missing
// entries in this mode: both are a parser concept.
func RunFromGraph(g *tradegraph.Graph, opts *option.Store, algo mcflow.Algorithm) (*Result, error) {
	return solve(g, opts, algo)
}

func solve(g *tradegraph.Graph, opts *option.Store, algo mcflow.Algorithm) (*Result, error) {
	in, err := mcflow.Build(g, opts.Priority(), opts.Int(option.NontradeCost))
	if err != nil {
		return nil, fmt.Errorf("trade: reducing graph to flow instance: %w", err)
	}

	flow, err := mcflow.Solve(in, mcflow.Options{Algo: algo})
	if err != nil {
		return nil, fmt.Errorf("trade: solving flow instance: %w", err)
	}

	extracted, err := cycle.Extract(g.NodeCount(), in.MatchArcs, flow)
	if err != nil {
		return nil, fmt.Errorf("trade: extracting cycles: %w", err)
	}

	return &Result{
		Graph:    g,
		Instance: in,
		Flow:     flow,
		Cycles:   cycle.Collapse(g, extracted),
		Options:  opts,
	}, nil
}

// Report renders res through package report to w.
func Report(w io.Writer, res *Result) error {
	return report.Write(w, report.Input{
		Graph:       res.Graph,
		Result:      res.Cycles,
		Diagnostics: res.Diagnostics,
		Missing:     res.Parse.Missing,
		TotalCost:   res.Flow.TotalCost,
		Options:     res.Options,
	})
}
