package tradegraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathtrade/tradegraph"
)

func TestReadCanonical_RoundTripsWriteCanonical(t *testing.T) {
	g := tradegraph.NewGraph()
	a, err := g.AddItem("A")
	require.NoError(t, err)
	b, err := g.AddItem("B")
	require.NoError(t, err)
	g.Item(a).Owner = "alice"
	g.Item(a).HasWantlist = true
	g.Item(a).CopyIndex = 1
	g.Item(a).CopyTotal = 2
	g.Item(b).Owner = "bob"
	g.Item(b).HasWantlist = true
	g.AddArc(a, b, 1)
	g.AddArc(b, a, 1)

	var buf strings.Builder
	require.NoError(t, g.WriteCanonical(&buf))

	g2, err := tradegraph.ReadCanonical(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, 1, g2.Item(a).CopyIndex)
	require.Equal(t, 2, g2.Item(a).CopyTotal)

	var buf2 strings.Builder
	require.NoError(t, g2.WriteCanonical(&buf2))
	require.Equal(t, buf.String(), buf2.String())
}

func TestReadCanonical_RejectsMissingHeader(t *testing.T) {
	_, err := tradegraph.ReadCanonical(strings.NewReader("not a canonical export\n"))
	require.ErrorIs(t, err, tradegraph.ErrMalformedCanonicalInput)
}
