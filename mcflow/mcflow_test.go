package mcflow_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathtrade/costmodel"
	"github.com/katalvlaran/mathtrade/mcflow"
	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/wantparser"
)

func buildGraph(t *testing.T, input string) *mcflow.Instance {
	t.Helper()
	p := wantparser.New(option.NewStore(), zerolog.Nop())
	_, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, p.Diagnostics())

	in, err := mcflow.Build(p.Graph(), p.Options().Priority(), p.Options().Int(option.NontradeCost))
	require.NoError(t, err)

	return in
}

// TestTwoWaySwap_BothOraclesAgree is spec.md Scenario 1: A and B both trade.
func TestTwoWaySwap_BothOraclesAgree(t *testing.T) {
	in := buildGraph(t, "(alice) A : B\n(bob) B : A\n")

	ssp, err := mcflow.Solve(in, mcflow.Options{Algo: mcflow.SuccessiveShortestPaths})
	require.NoError(t, err)

	bf, err := mcflow.Solve(in, mcflow.Options{Algo: mcflow.BruteForce})
	require.NoError(t, err)

	require.Equal(t, bf.TotalCost, ssp.TotalCost)
	require.Equal(t, 2, countChosen(ssp.Chosen))
	require.Equal(t, 2, countChosen(bf.Chosen))
}

// TestThreeCycle_AllTradeUnderLinearPriorities is spec.md Scenario 2.
func TestThreeCycle_AllTradeUnderLinearPriorities(t *testing.T) {
	in := buildGraph(t, "#! LINEAR-PRIORITIES\n"+
		"(u1) A : C B\n"+
		"(u2) B : A C\n"+
		"(u3) C : B A\n")

	ssp, err := mcflow.Solve(in, mcflow.Options{Algo: mcflow.SuccessiveShortestPaths})
	require.NoError(t, err)
	require.Equal(t, 3, countChosen(ssp.Chosen))
	require.Equal(t, int64(3), ssp.TotalCost) // 1+1+1, per the scenario's worked cost
}

// TestNoWantlistOverlap_NobodyTrades verifies the self-edge ("does not
// trade") dominates when no match is cheaper — spec §4.6's feasibility
// guarantee and two-level objective.
func TestNoWantlistOverlap_NobodyTrades(t *testing.T) {
	in := buildGraph(t, "(u1) A : Z\n(u2) B : Z\n")

	ssp, err := mcflow.Solve(in, mcflow.Options{Algo: mcflow.SuccessiveShortestPaths})
	require.NoError(t, err)
	require.Equal(t, 0, countChosen(ssp.Chosen))
	require.Equal(t, 2*option.DefaultNontradeCost, ssp.TotalCost)
}

func TestCostModelRejectsScaledBeforeSolving(t *testing.T) {
	p := wantparser.New(option.NewStore(), zerolog.Nop())
	_, err := p.Run(strings.NewReader("(u1) A : B\n(u2) B : A\n"))
	require.NoError(t, err)

	_, err = mcflow.Build(p.Graph(), costmodel.Scaled, option.DefaultNontradeCost)
	require.ErrorIs(t, err, costmodel.ErrScaledNotImplemented)
}

func countChosen(chosen []bool) int {
	n := 0
	for _, c := range chosen {
		if c {
			n++
		}
	}

	return n
}
