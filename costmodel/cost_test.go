package costmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathtrade/costmodel"
)

func TestCost_DummySourceIsAlwaysFree(t *testing.T) {
	c, err := costmodel.Cost(costmodel.Square, 50, true)
	require.NoError(t, err)
	require.Equal(t, int64(0), c)
}

func TestCost_Schemes(t *testing.T) {
	cases := []struct {
		scheme string
		rank   int64
		want   int64
	}{
		{costmodel.None, 7, 1},
		{costmodel.Linear, 7, 7},
		{costmodel.Triangle, 1, 1},
		{costmodel.Triangle, 11, 66},
		{costmodel.Square, 4, 16},
	}
	for _, tc := range cases {
		c, err := costmodel.Cost(tc.scheme, tc.rank, false)
		require.NoError(t, err)
		require.Equal(t, tc.want, c)
	}
}

func TestCost_ScaledRefusesToGuess(t *testing.T) {
	_, err := costmodel.Cost(costmodel.Scaled, 1, false)
	require.ErrorIs(t, err, costmodel.ErrScaledNotImplemented)
}

func TestCost_UnsupportedScheme(t *testing.T) {
	_, err := costmodel.Cost("MYSTERY-PRIORITIES", 1, false)
	require.ErrorIs(t, err, costmodel.ErrUnsupportedScheme)
}
