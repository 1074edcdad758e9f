package option_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathtrade/option"
)

func TestDefaults(t *testing.T) {
	s := option.NewStore()
	require.False(t, s.Bool(option.AllowDummies))
	require.Equal(t, option.DefaultSmallStep, s.Int(option.SmallStep))
	require.Equal(t, option.DefaultBigStep, s.Int(option.BigStep))
	require.Equal(t, option.DefaultNontradeCost, s.Int(option.NontradeCost))
	require.Equal(t, "", s.Priority())
}

func TestApply_Boolean_IdempotentRepeat(t *testing.T) {
	s := option.NewStore()
	require.NoError(t, s.Apply([]string{option.AllowDummies}))
	require.NoError(t, s.Apply([]string{option.AllowDummies}))
	require.True(t, s.Bool(option.AllowDummies))
}

func TestApply_Integer_AcceptsZero(t *testing.T) {
	s := option.NewStore()
	require.NoError(t, s.Apply([]string{option.SmallStep, "0"}))
	require.Equal(t, int64(0), s.Int(option.SmallStep))
}

func TestApply_Priority_LastWins(t *testing.T) {
	s := option.NewStore()
	require.NoError(t, s.Apply([]string{"LINEAR-PRIORITIES"}))
	require.NoError(t, s.Apply([]string{"SQUARE-PRIORITIES"}))
	require.Equal(t, "SQUARE-PRIORITIES", s.Priority())
}

func TestApply_UnknownOption(t *testing.T) {
	s := option.NewStore()
	err := s.Apply([]string{"NOT-A-REAL-OPTION"})
	require.ErrorIs(t, err, option.ErrUnknownOption)
}

func TestApply_AfterParsingStarted(t *testing.T) {
	s := option.NewStore()
	s.MarkParsingStarted()
	err := s.Apply([]string{option.AllowDummies})
	require.ErrorIs(t, err, option.ErrParsingAlreadyStarted)
}

func TestApply_IntegerMissingValue(t *testing.T) {
	s := option.NewStore()
	err := s.Apply([]string{option.SmallStep})
	require.ErrorIs(t, err, option.ErrMissingIntegerValue)
}

func TestApply_IntegerBadValue(t *testing.T) {
	s := option.NewStore()
	err := s.Apply([]string{option.SmallStep, "not-a-number"})
	require.ErrorIs(t, err, option.ErrBadIntegerValue)
}
