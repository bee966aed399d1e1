package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyang/propcheck/logic"
)

// Sentences the expr engine must agree with the tree evaluator on.
var corpus = []string{
	"A",
	"~A",
	"A&B",
	"A|B",
	"A|B&C",
	"A&B|C",
	"~(A&B)",
	"~A|~B",
	"A&~A",
	"A|~A",
	"(A|B)|~(A|B)",
	"(A)&(B)",
	"~(p|q)&r",
}

func mustParse(t *testing.T, text string) *logic.Sentence {
	t.Helper()
	s, err := logic.Parse(text)
	require.NoError(t, err, "could not parse sentence %q", text)
	return s
}

func TestRewrite(t *testing.T) {
	assert.Equal(t, "!(true && false) || true", rewrite("~(T&F)|T"))
	assert.Equal(t, "true", rewrite("T"))
	assert.Equal(t, "(true || false) && !false", rewrite("(T|F)&~F"))
}

func TestEvalAgreement(t *testing.T) {
	for _, text := range corpus {
		s := mustParse(t, text)
		vars := s.Vars()
		for i := 0; i < 1<<len(vars); i++ {
			model := assignment(vars, i)
			want, err := s.Eval(model)
			require.NoError(t, err)
			got, err := Eval(s, model)
			require.NoError(t, err)
			assert.Equal(t, want, got, "engines disagree on %q under %v", text, model)
		}
	}
}

func TestAnalyzeAgreement(t *testing.T) {
	for _, text := range corpus {
		s := mustParse(t, text)
		got, err := Analyze(s)
		require.NoError(t, err)
		assert.Equal(t, logic.Analyze(s), got, "verdicts disagree on %q", text)
	}
}

func TestEntailsAgreement(t *testing.T) {
	pairs := [][2]string{
		{"A&B", "A"},
		{"A", "A&B"},
		{"~(A&B)", "~A|~B"},
		{"A|B|~A|B", "(A|B)|~(A|B)"},
		{"A&~A", "B"},
	}
	for _, pair := range pairs {
		a, b := mustParse(t, pair[0]), mustParse(t, pair[1])
		got, err := Entails(a, b)
		require.NoError(t, err)
		assert.Equal(t, logic.Entails(a, b), got, "entailment disagrees on %q, %q", pair[0], pair[1])
		gotEq, err := Equivalent(a, b)
		require.NoError(t, err)
		assert.Equal(t, logic.Equivalent(a, b), gotEq, "equivalence disagrees on %q, %q", pair[0], pair[1])
	}
}
