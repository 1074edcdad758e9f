package report

import (
	"github.com/katalvlaran/mathtrade/cycle"
	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/tradegraph"
	"github.com/katalvlaran/mathtrade/wantparser"
)

// Input bundles everything the Reporter needs, gathered from every earlier
// pipeline stage (spec §4.9). Result must already be the dummy-collapsed
// cycle.Result (cycle.Collapse's return value): the Reporter itself never
// walks dummy chains.
type Input struct {
	Graph       *tradegraph.Graph
	Result      *cycle.Result
	Diagnostics []wantparser.Diagnostic
	Missing     []wantparser.Missing
	TotalCost   int64
	Options     *option.Store
}
