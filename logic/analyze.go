package logic

import (
	"fmt"
	"io"
	"strings"
)

// A Verdict holds the semantic properties of a sentence.
// A sentence is valid if it is true under every assignment, satisfiable if
// it is true under at least one, and contingent if it is satisfiable but not
// valid.
type Verdict struct {
	Valid       bool
	Satisfiable bool
	Contingent  bool
}

// Analyze computes the semantic properties of s by evaluating it under all
// 2^n assignments over its n distinct variables. A sentence with no
// variables is evaluated exactly once, under the empty assignment.
//
// The enumeration always runs to completion, so the cost is exponential in
// the number of variables; callers needing bounded latency must cap the
// variable count themselves.
func Analyze(s *Sentence) Verdict {
	v := Verdict{Valid: true}
	for i := 0; i < 1<<len(s.vars); i++ {
		if s.root.eval(assignment(s.vars, i)) {
			v.Satisfiable = true
		} else {
			v.Valid = false
		}
		v.Contingent = v.Satisfiable && !v.Valid
	}
	return v
}

// Entails reports whether every assignment satisfying a also satisfies b.
// Assignments are enumerated over the union of both variable sets, a's
// variables first; the enumeration stops at the first counterexample.
func Entails(a, b *Sentence) bool {
	vars := unionVars(a, b)
	for i := 0; i < 1<<len(vars); i++ {
		model := assignment(vars, i)
		if a.root.eval(model) && !b.root.eval(model) {
			return false
		}
	}
	return true
}

// Equivalent reports whether a and b entail each other.
func Equivalent(a, b *Sentence) bool {
	return Entails(a, b) && Entails(b, a)
}

// Models sends every satisfying assignment of s on ch, in enumeration
// order, and closes ch once the enumeration is done. It is typically run in
// its own goroutine:
//
//	models := make(chan map[rune]bool)
//	go logic.Models(s, models)
//	for m := range models { ... }
func Models(s *Sentence, ch chan<- map[rune]bool) {
	for i := 0; i < 1<<len(s.vars); i++ {
		model := assignment(s.vars, i)
		if s.root.eval(model) {
			ch <- model
		}
	}
	close(ch)
}

// Table writes the full truth table of s on w: one column per variable in
// enumeration order, then the sentence's value, one row per assignment.
func Table(s *Sentence, w io.Writer) error {
	var sb strings.Builder
	for _, v := range s.vars {
		sb.WriteRune(v)
		sb.WriteByte(' ')
	}
	sb.WriteString("| ")
	sb.WriteString(s.text)
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("could not write truth table: %v", err)
	}
	for i := 0; i < 1<<len(s.vars); i++ {
		model := assignment(s.vars, i)
		sb.Reset()
		for _, v := range s.vars {
			sb.WriteRune(litRune(model[v]))
			sb.WriteByte(' ')
		}
		sb.WriteString("| ")
		sb.WriteRune(litRune(s.root.eval(model)))
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("could not write truth table: %v", err)
		}
	}
	return nil
}

// assignment builds the i-th assignment over vars: the j-th variable is
// true iff bit j of i is set.
func assignment(vars []rune, i int) map[rune]bool {
	model := make(map[rune]bool, len(vars))
	for j, v := range vars {
		model[v] = i&(1<<j) != 0
	}
	return model
}

func unionVars(a, b *Sentence) []rune {
	seen := make(map[rune]bool, len(a.vars)+len(b.vars))
	union := make([]rune, 0, len(a.vars)+len(b.vars))
	for _, v := range a.vars {
		seen[v] = true
		union = append(union, v)
	}
	for _, v := range b.vars {
		if !seen[v] {
			seen[v] = true
			union = append(union, v)
		}
	}
	return union
}

func litRune(b bool) rune {
	if b {
		return litTrue
	}
	return litFalse
}
