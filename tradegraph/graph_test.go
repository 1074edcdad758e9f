package tradegraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathtrade/tradegraph"
)

func TestAddItem_CreatesOnceReturnsSameIndex(t *testing.T) {
	g := tradegraph.NewGraph()

	idx1, err := g.AddItem("A")
	require.NoError(t, err)

	idx2, err := g.AddItem("A")
	require.NoError(t, err)
	require.Equal(t, idx1, idx2)

	_, err = g.AddItem("")
	require.ErrorIs(t, err, tradegraph.ErrEmptyItemID)
}

func TestLookup_DistinguishesKnownFromUnknown(t *testing.T) {
	g := tradegraph.NewGraph()
	_, _ = g.AddItem("A")

	_, ok := g.Lookup("A")
	require.True(t, ok)

	_, ok = g.Lookup("B")
	require.False(t, ok)
}

func TestNormalizeID_Idempotent(t *testing.T) {
	once := tradegraph.NormalizeID("foo", false)
	twice := tradegraph.NormalizeID(once, false)
	require.Equal(t, once, twice)
	require.Equal(t, "FOO", once)

	require.Equal(t, "foo", tradegraph.NormalizeID("foo", true))
}

func TestNormalizeDummyID_ScopesPerOwner(t *testing.T) {
	a := tradegraph.NormalizeDummyID("%FOO", "ALICE", false)
	b := tradegraph.NormalizeDummyID("%FOO", "BOB", false)
	require.NotEqual(t, a, b)
	require.Equal(t, "%FOO-ALICE", a)
}

func TestNormalizeOfficialName_StripsQuotesAndBackslashes(t *testing.T) {
	require.Equal(t, "Pandemic/v2", tradegraph.NormalizeOfficialName(`"Pandemic\v2"`))
	require.Equal(t, "no quotes", tradegraph.NormalizeOfficialName("no quotes"))
}

func TestTradableArcs_DropsUnknownAndWantlistlessTargets(t *testing.T) {
	g := tradegraph.NewGraph()
	a, _ := g.AddItem("A")
	b, _ := g.AddItem("B")
	g.Item(a).HasWantlist = true
	g.Item(b).HasWantlist = true
	_, _ = g.AddItem("C") // no want-list

	cIdx, _ := g.Lookup("C")
	g.AddArc(a, b, 1)    // kept: B has a want-list
	g.AddArc(a, cIdx, 2) // dropped: C has no want-list
	g.AddArc(a, 99, 3)   // dropped: no item at index 99

	arcs := g.TradableArcs()
	require.Len(t, arcs, 1)
	require.Equal(t, b, arcs[0].Target)
}

func TestWriteCanonical_IsByteIdenticalAcrossRuns(t *testing.T) {
	g := tradegraph.NewGraph()
	a, _ := g.AddItem("A")
	b, _ := g.AddItem("B")
	g.Item(a).HasWantlist = true
	g.Item(b).HasWantlist = true
	g.Item(a).Owner = "ALICE"
	g.Item(b).Owner = "BOB"
	g.AddArc(a, b, 1)

	var out1, out2 strings.Builder
	require.NoError(t, g.WriteCanonical(&out1))
	require.NoError(t, g.WriteCanonical(&out2))
	require.Equal(t, out1.String(), out2.String())
	require.Contains(t, out1.String(), "@nodes")
	require.Contains(t, out1.String(), "@arcs")
}
