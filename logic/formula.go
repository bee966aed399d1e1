package logic

import "strings"

// Symbols making up the fixed operator set. Any other rune in a sentence is
// a variable, except the reserved ones rejected by the parser.
const (
	symNot   = '~'
	symAnd   = '&'
	symOr    = '|'
	symOpen  = '('
	symClose = ')'

	litTrue  = 'T'
	litFalse = 'F'
)

// A Formula is a propositional formula over single-character variables.
// Values are built with Var, Not, And, Or and the constants True and False,
// or by parsing a sentence string.
type Formula interface {
	eval(model map[rune]bool) bool
	scan(seen map[rune]bool, order *[]rune)
	render(sb *strings.Builder)
	String() string
}

type constant bool

// True is the constant denoting a tautology.
var True Formula = constant(true)

// False is the constant denoting a contradiction.
var False Formula = constant(false)

func (c constant) eval(map[rune]bool) bool     { return bool(c) }
func (c constant) scan(map[rune]bool, *[]rune) {}
func (c constant) String() string              { return text(c) }

func (c constant) render(sb *strings.Builder) {
	if c {
		sb.WriteRune(litTrue)
	} else {
		sb.WriteRune(litFalse)
	}
}

// Var builds the formula consisting of the single variable v.
func Var(v rune) Formula {
	return variable(v)
}

type variable rune

func (v variable) eval(model map[rune]bool) bool { return model[rune(v)] }
func (v variable) render(sb *strings.Builder)    { sb.WriteRune(rune(v)) }
func (v variable) String() string                { return text(v) }

func (v variable) scan(seen map[rune]bool, order *[]rune) {
	if !seen[rune(v)] {
		seen[rune(v)] = true
		*order = append(*order, rune(v))
	}
}

// Not builds the negation of the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) eval(model map[rune]bool) bool          { return !n[0].eval(model) }
func (n not) scan(seen map[rune]bool, order *[]rune) { n[0].scan(seen, order) }
func (n not) String() string                         { return text(n) }

func (n not) render(sb *strings.Builder) {
	sb.WriteRune(symNot)
	n[0].render(sb)
}

// And builds the conjunction of the given subformulas, nested to the right.
// With no argument it returns True.
func And(subs ...Formula) Formula {
	return fold(subs, True, func(l, r Formula) Formula { return and{l, r} })
}

type and struct{ left, right Formula }

func (a and) eval(model map[rune]bool) bool {
	return a.left.eval(model) && a.right.eval(model)
}

func (a and) scan(seen map[rune]bool, order *[]rune) {
	a.left.scan(seen, order)
	a.right.scan(seen, order)
}

func (a and) String() string { return text(a) }

func (a and) render(sb *strings.Builder) {
	renderBinary(sb, a.left, symAnd, a.right)
}

// Or builds the disjunction of the given subformulas, nested to the right.
// With no argument it returns False.
func Or(subs ...Formula) Formula {
	return fold(subs, False, func(l, r Formula) Formula { return or{l, r} })
}

type or struct{ left, right Formula }

func (o or) eval(model map[rune]bool) bool {
	return o.left.eval(model) || o.right.eval(model)
}

func (o or) scan(seen map[rune]bool, order *[]rune) {
	o.left.scan(seen, order)
	o.right.scan(seen, order)
}

func (o or) String() string { return text(o) }

func (o or) render(sb *strings.Builder) {
	renderBinary(sb, o.left, symOr, o.right)
}

// fold nests subs into binary nodes from the right, so that evaluation
// visits operands left to right.
func fold(subs []Formula, empty Formula, join func(l, r Formula) Formula) Formula {
	if len(subs) == 0 {
		return empty
	}
	f := subs[len(subs)-1]
	for i := len(subs) - 2; i >= 0; i-- {
		f = join(subs[i], f)
	}
	return f
}

func renderBinary(sb *strings.Builder, left Formula, op rune, right Formula) {
	sb.WriteRune(symOpen)
	left.render(sb)
	sb.WriteRune(op)
	right.render(sb)
	sb.WriteRune(symClose)
}

// text renders f as sentence syntax, parenthesizing every binary node.
func text(f Formula) string {
	var sb strings.Builder
	f.render(&sb)
	return sb.String()
}
