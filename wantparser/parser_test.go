package wantparser_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/wantparser"
)

func newParser() *wantparser.Parser {
	return wantparser.New(option.NewStore(), zerolog.Nop())
}

// TestTwoWaySwap is spec.md Scenario 1.
func TestTwoWaySwap(t *testing.T) {
	p := newParser()
	input := "(alice) A : B\n(bob)   B : A\n"

	res, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, p.Diagnostics())
	require.Empty(t, res.Missing)
	require.Empty(t, res.Duplicates)

	g := p.Graph()
	require.Equal(t, 2, g.NodeCount())
	require.Len(t, g.TradableArcs(), 2)

	a, ok := g.ItemByID("A")
	require.True(t, ok)
	require.Equal(t, "ALICE", a.Owner)
	require.True(t, a.HasWantlist)

	b, ok := g.ItemByID("B")
	require.True(t, ok)
	require.Equal(t, "BOB", b.Owner)
}

// TestThreeCycleWithLinearPriorities is spec.md Scenario 2.
func TestThreeCycleWithLinearPriorities(t *testing.T) {
	p := newParser()
	input := "#! LINEAR-PRIORITIES\n" +
		"(u1) A : C B\n" +
		"(u2) B : A C\n" +
		"(u3) C : B A\n"

	res, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, p.Diagnostics())
	require.Empty(t, res.Missing)

	require.Equal(t, "LINEAR-PRIORITIES", p.Options().Priority())
	require.Len(t, p.Graph().TradableArcs(), 6)
}

// TestDummyChainIsParsedAsTwoArcs is spec.md Scenario 3 (the parser's half:
// the cycle package performs the actual collapse downstream).
func TestDummyChainIsParsedAsTwoArcs(t *testing.T) {
	p := newParser()
	input := "#! ALLOW-DUMMIES\n" +
		"(u1) A : %D\n" +
		"(u1) %D : B\n" +
		"(u2) B : A\n"

	res, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, p.Diagnostics())
	require.Empty(t, res.Missing)

	g := p.Graph()
	dummy, ok := g.ItemByID("D-U1")
	require.True(t, ok)
	require.True(t, dummy.IsDummy)
	require.Equal(t, "U1", dummy.Owner)
	require.True(t, dummy.HasWantlist)

	require.Len(t, g.TradableArcs(), 3)
}

// TestMissingTargetIsReportedAndArcDropped is spec.md Scenario 4.
func TestMissingTargetIsReportedAndArcDropped(t *testing.T) {
	p := newParser()
	input := "(u1) A : B C\n(u2) B : A\n"

	res, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, p.Diagnostics())

	require.Len(t, res.Missing, 1)
	require.Equal(t, "C", res.Missing[0].Target)
	require.Equal(t, 1, res.Missing[0].Count)

	// C has no item record, so Finalize never records the tentative arc
	// A->C at all: only A->B and B->A reach the graph.
	g := p.Graph()
	require.Len(t, g.TradableArcs(), 2)
}

// TestDuplicateWantlistKeepsFirstDeclaration is spec.md Scenario 5.
func TestDuplicateWantlistKeepsFirstDeclaration(t *testing.T) {
	p := newParser()
	input := "(u1) A : B\n(u1) A : C\n(u2) B : A\n"

	res, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, p.Diagnostics(), 1)
	require.Contains(t, p.Diagnostics()[0].Message, "duplicate want-list")
	require.Equal(t, 2, p.Diagnostics()[0].Line)

	g := p.Graph()
	require.Len(t, g.TradableArcs(), 2) // A->B and B->A only; A->C never recorded
	require.Empty(t, res.Missing)
}

// TestRankAdvancesBySmallStepAndBigStep is spec.md Scenario 6's rank half
// (costmodel_test.go covers the cost half).
func TestRankAdvancesBySmallStepAndBigStep(t *testing.T) {
	p := newParser()
	input := "(u1) A : B ; C\n(u2) B : A\n(u3) C : A\n"

	_, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, p.Diagnostics())

	g := p.Graph()
	aIdx, ok := g.Lookup("A")
	require.True(t, ok)
	bundle := g.Bundle(aIdx)
	require.Len(t, bundle, 2)
	require.Equal(t, 1, bundle[0].Rank)
	require.Equal(t, 11, bundle[1].Rank)
}

func TestOfficialNamesTypoDetection(t *testing.T) {
	p := newParser()
	input := "!BEGIN-OFFICIAL-NAMES\n" +
		`1001-PUERTO-RICO ==> "Puerto Rico" (from alice)` + "\n" +
		"!END-OFFICIAL-NAMES\n" +
		"(alice) 1001-PUERT-RICO : 1001-PUERTO-RICO\n"

	_, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, p.Diagnostics(), 1)
	require.Contains(t, p.Diagnostics()[0].Message, "likely a typo")
}

func TestOfficialNamesWithCopyClause(t *testing.T) {
	p := newParser()
	input := "!BEGIN-OFFICIAL-NAMES\n" +
		`1001-GAME ==> "Game" (from alice) [copy 1 of 2]` + "\n" +
		"!END-OFFICIAL-NAMES\n"

	_, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, p.Diagnostics())

	item, ok := p.Graph().ItemByID("1001-GAME")
	require.True(t, ok)
	require.Equal(t, 1, item.CopyIndex)
	require.Equal(t, 2, item.CopyTotal)
	require.Equal(t, "Game", item.OfficialName)
}

func TestZeroTargetWantlistProducesNoOutgoingArcs(t *testing.T) {
	p := newParser()
	input := "(u1) A :\n"

	_, err := p.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, p.Diagnostics())

	item, ok := p.Graph().ItemByID("A")
	require.True(t, ok)
	require.True(t, item.HasWantlist)
	require.Empty(t, p.Graph().Bundle(0))
}
