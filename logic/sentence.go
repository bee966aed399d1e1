package logic

import (
	"fmt"
	"strings"
)

// A Sentence is a propositional sentence ready for repeated evaluation. It
// keeps the original text and the set of distinct variables occurring in it,
// in first-occurrence order.
type Sentence struct {
	text   string
	root   Formula
	vars   []rune
	varSet map[rune]bool
}

// New wraps a programmatically built formula in a Sentence. The sentence
// text is the canonical rendering of the formula.
func New(f Formula) *Sentence {
	return newSentence(f.String(), f)
}

func newSentence(text string, root Formula) *Sentence {
	s := &Sentence{text: text, root: root, varSet: make(map[rune]bool)}
	root.scan(s.varSet, &s.vars)
	return s
}

// Text returns the sentence as it was given to Parse, or the canonical
// rendering for sentences built with New.
func (s *Sentence) Text() string { return s.text }

func (s *Sentence) String() string { return s.text }

// Vars returns the distinct variables of the sentence in first-occurrence
// order. This is the order used when enumerating assignments.
func (s *Sentence) Vars() []rune {
	return append([]rune(nil), s.vars...)
}

// Eval returns the truth value of the sentence under the given assignment.
// The assignment must bind every variable of the sentence; a missing binding
// yields an UnboundVariableError.
func (s *Sentence) Eval(model map[rune]bool) (bool, error) {
	if err := s.checkBound(model); err != nil {
		return false, err
	}
	return s.root.eval(model), nil
}

// Substitute returns a copy of the sentence text with every variable
// occurrence replaced by 'T' or 'F' according to the given assignment,
// leaving only literals, operators and delimiters. Each call starts from the
// original text.
func (s *Sentence) Substitute(model map[rune]bool) (string, error) {
	if err := s.checkBound(model); err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, r := range s.text {
		switch {
		case !s.varSet[r]:
			sb.WriteRune(r)
		case model[r]:
			sb.WriteRune(litTrue)
		default:
			sb.WriteRune(litFalse)
		}
	}
	return sb.String(), nil
}

func (s *Sentence) checkBound(model map[rune]bool) error {
	for _, v := range s.vars {
		if _, ok := model[v]; !ok {
			return &UnboundVariableError{Var: v}
		}
	}
	return nil
}

// A SyntaxError reports a malformed sentence. Pos is the rune offset of the
// offending character, or the sentence length when input ended unexpectedly.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

// An UnboundVariableError reports an assignment lacking a binding for one of
// the sentence's variables.
type UnboundVariableError struct {
	Var rune
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("assignment lacks binding for variable %q", e.Var)
}
