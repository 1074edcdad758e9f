package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathtrade/lexer"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		line string
		kind lexer.Kind
		rest string
	}{
		{"empty", "   ", lexer.KindIgnore, ""},
		{"pragma", "#pragma foo", lexer.KindIgnore, ""},
		{"comment", "# just a comment", lexer.KindIgnore, ""},
		{"option", "#! ALLOW-DUMMIES", lexer.KindOption, "ALLOW-DUMMIES"},
		{"directive", "!BEGIN-OFFICIAL-NAMES", lexer.KindDirective, "BEGIN-OFFICIAL-NAMES"},
		{"payload", "(alice) A : B C", lexer.KindPayload, "(alice) A : B C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, rest := lexer.Classify(tc.line)
			require.Equal(t, tc.kind, kind)
			require.Equal(t, tc.rest, rest)
		})
	}
}

func TestTokenizePayload(t *testing.T) {
	toks := lexer.TokenizePayload(`(alice) A : B C ; D`)
	require.Equal(t, []string{"(alice)", "A", ":", "B", "C", ";", "D"}, toks)
}

func TestTokenizePayload_QuotedAndBracketedGroups(t *testing.T) {
	toks := lexer.TokenizePayload(`0001-PANDE ==> "Pandemic" (from alice) [copy 1 of 2]`)
	require.Equal(t, []string{"0001-PANDE", "==>", `"Pandemic"`, "(from alice)", "[copy 1 of 2]"}, toks)
}

func TestTokenizeOptionTerms(t *testing.T) {
	require.Equal(t, []string{"SMALL-STEP", "1"}, lexer.TokenizeOptionTerms("SMALL-STEP=1"))
	require.Equal(t, []string{"SMALL-STEP", "1"}, lexer.TokenizeOptionTerms("SMALL-STEP = 1"))
	require.Equal(t, []string{"ALLOW-DUMMIES"}, lexer.TokenizeOptionTerms("ALLOW-DUMMIES"))
}

func TestFindForbidden(t *testing.T) {
	r, ok := lexer.FindForbidden("ITEM,BAD")
	require.True(t, ok)
	require.Equal(t, ',', r)

	_, ok = lexer.FindForbidden("%FOO-ALICE")
	require.False(t, ok)
}
