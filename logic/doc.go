// Package logic analyzes propositional sentences written over single-character variables.
//
// A sentence is a plain string using "~" for negation, "&" for conjunction,
// "|" for disjunction and parentheses for grouping. Every other character is
// a variable, so "p", "A&B" and "~(A|B)&C" are all sentences. Disjunction has
// the lowest priority, then conjunction, then negation; parentheses override.
//
// Parsing a sentence yields a Sentence value that can be evaluated repeatedly
// under different assignments:
//
//	s, err := logic.Parse("(A|B)&~C")
//	if err != nil { ... }
//	b, err := s.Eval(map[rune]bool{'A': true, 'B': false, 'C': false})
//
// Analyze decides the semantic properties of a sentence by evaluating it
// under all 2^n assignments over its n distinct variables:
//
//	v := logic.Analyze(s)
//	// v.Valid, v.Satisfiable, v.Contingent
//
// Entails and Equivalent relate two sentences by enumerating assignments over
// the union of their variable sets. All of these run the full exponential
// enumeration; they are meant for sentences with a handful of variables.
//
// Formulas can also be built programmatically with Var, Not, And, Or and the
// constants True and False, then wrapped with New.
package logic
