package logic

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Sentence {
	t.Helper()
	s, err := Parse(text)
	require.NoError(t, err, "could not parse sentence %q", text)
	return s
}

func TestAnalyzeTautology(t *testing.T) {
	v := Analyze(mustParse(t, "(A|B)|~(A|B)"))
	assert.True(t, v.Valid)
	assert.True(t, v.Satisfiable)
	assert.False(t, v.Contingent)
}

func TestAnalyzeContradiction(t *testing.T) {
	v := Analyze(mustParse(t, "A&~A"))
	assert.False(t, v.Valid)
	assert.False(t, v.Satisfiable)
	assert.False(t, v.Contingent)
}

func TestAnalyzeContingent(t *testing.T) {
	v := Analyze(mustParse(t, "A&B"))
	assert.False(t, v.Valid)
	assert.True(t, v.Satisfiable)
	assert.True(t, v.Contingent)
}

// Validity implies satisfiability, and contingency is exactly
// satisfiable-but-not-valid, for any sentence.
func TestVerdictInvariants(t *testing.T) {
	sentences := []string{
		"A", "~A", "A&B", "A|B", "A&~A", "A|~A", "(A|B)|~(A|B)",
		"~(A&B)", "A|B&C", "(p&q)|(~p&~q)", "x",
	}
	for _, text := range sentences {
		v := Analyze(mustParse(t, text))
		if v.Valid {
			assert.True(t, v.Satisfiable, "%q is valid but not satisfiable", text)
		}
		assert.Equal(t, v.Satisfiable && !v.Valid, v.Contingent, "contingency mismatch for %q", text)
	}
}

func TestAnalyzeNoVariables(t *testing.T) {
	for _, f := range []Formula{True, False, Not(True), And(True, False), Or(False, True)} {
		v := Analyze(New(f))
		assert.Equal(t, v.Valid, v.Satisfiable, "valid and satisfiable must agree for %q", f)
		assert.False(t, v.Contingent, "%q cannot be contingent", f)
	}
}

func TestDeMorgan(t *testing.T) {
	assert.True(t, Equivalent(mustParse(t, "~(A&B)"), mustParse(t, "~A|~B")))
	assert.True(t, Equivalent(mustParse(t, "~(A|B)"), mustParse(t, "~A&~B")))
}

func TestEntails(t *testing.T) {
	assert.True(t, Entails(mustParse(t, "A&B"), mustParse(t, "A")))
	assert.False(t, Entails(mustParse(t, "A"), mustParse(t, "A&B")))
	// A contradiction entails anything.
	assert.True(t, Entails(mustParse(t, "A&~A"), mustParse(t, "B")))
}

func TestEquivalentVarMismatch(t *testing.T) {
	// Both are tautologies, over nominally different variable sets.
	assert.True(t, Equivalent(mustParse(t, "A|B|~A|B"), mustParse(t, "(A|B)|~(A|B)")))
	assert.False(t, Equivalent(mustParse(t, "A"), mustParse(t, "B")))
}

func TestModels(t *testing.T) {
	s := mustParse(t, "A&~B")
	models := make(chan map[rune]bool)
	go Models(s, models)
	var got []map[rune]bool
	for m := range models {
		got = append(got, m)
	}
	require.Len(t, got, 1)
	assert.True(t, got[0]['A'])
	assert.False(t, got[0]['B'])
}

func TestModelsTautology(t *testing.T) {
	s := mustParse(t, "A|~A")
	models := make(chan map[rune]bool)
	go Models(s, models)
	nb := 0
	for range models {
		nb++
	}
	assert.Equal(t, 2, nb)
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(mustParse(t, "A&B"), &buf))
	expected := strings.Join([]string{
		"A B | A&B",
		"F F | F",
		"T F | F",
		"F T | F",
		"T T | T",
	}, "\n") + "\n"
	assert.Equal(t, expected, buf.String())
}

func ExampleAnalyze() {
	s, _ := Parse("(A|B)|~(A|B)")
	v := Analyze(s)
	fmt.Printf("valid: %t, satisfiable: %t, contingent: %t", v.Valid, v.Satisfiable, v.Contingent)
	// Output: valid: true, satisfiable: true, contingent: false
}

func ExampleEntails() {
	a, _ := Parse("A&B")
	b, _ := Parse("A")
	fmt.Println(Entails(a, b), Entails(b, a))
	// Output: true false
}
