// Package script re-evaluates propositional sentences with the expr engine.
//
// It mirrors the entry points of package logic but delegates every truth
// evaluation to github.com/expr-lang/expr instead of the tree evaluator: the
// sentence is substituted, rewritten to expr syntax ("~" to "!", "&" to
// "&&", "|" to "||") and handed to the engine. The results must always agree
// with package logic; the package exists to cross-check it against an
// independent evaluator.
package script

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/wyang/propcheck/logic"
)

// Eval evaluates s under the given assignment using the expr engine. The
// assignment must bind every variable of the sentence.
func Eval(s *logic.Sentence, model map[rune]bool) (bool, error) {
	sub, err := s.Substitute(model)
	if err != nil {
		return false, err
	}
	src := rewrite(sub)
	out, err := expr.Eval(src, nil)
	if err != nil {
		return false, fmt.Errorf("could not evaluate %q: %v", src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q did not evaluate to a boolean", src)
	}
	return b, nil
}

// Analyze recomputes the semantic properties of s, evaluating with the expr
// engine. It runs the same exhaustive enumeration as logic.Analyze.
func Analyze(s *logic.Sentence) (logic.Verdict, error) {
	vars := s.Vars()
	v := logic.Verdict{Valid: true}
	for i := 0; i < 1<<len(vars); i++ {
		r, err := Eval(s, assignment(vars, i))
		if err != nil {
			return logic.Verdict{}, err
		}
		if r {
			v.Satisfiable = true
		} else {
			v.Valid = false
		}
		v.Contingent = v.Satisfiable && !v.Valid
	}
	return v, nil
}

// Entails reports whether a entails b, evaluating with the expr engine.
func Entails(a, b *logic.Sentence) (bool, error) {
	vars := a.Vars()
	seen := make(map[rune]bool, len(vars))
	for _, v := range vars {
		seen[v] = true
	}
	for _, v := range b.Vars() {
		if !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}
	}
	for i := 0; i < 1<<len(vars); i++ {
		model := assignment(vars, i)
		ra, err := Eval(a, model)
		if err != nil {
			return false, err
		}
		rb, err := Eval(b, model)
		if err != nil {
			return false, err
		}
		if ra && !rb {
			return false, nil
		}
	}
	return true, nil
}

// Equivalent reports whether a and b entail each other, evaluating with the
// expr engine.
func Equivalent(a, b *logic.Sentence) (bool, error) {
	ab, err := Entails(a, b)
	if err != nil || !ab {
		return false, err
	}
	return Entails(b, a)
}

// rewrite turns a substituted sentence into expr syntax. Only literals,
// operators and delimiters remain after substitution, so the mapping is
// rune by rune.
func rewrite(sub string) string {
	var sb strings.Builder
	for _, r := range sub {
		switch r {
		case 'T':
			sb.WriteString("true")
		case 'F':
			sb.WriteString("false")
		case '~':
			sb.WriteByte('!')
		case '&':
			sb.WriteString(" && ")
		case '|':
			sb.WriteString(" || ")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func assignment(vars []rune, i int) map[rune]bool {
	model := make(map[rune]bool, len(vars))
	for j, v := range vars {
		model[v] = i&(1<<j) != 0
	}
	return model
}
