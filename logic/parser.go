package logic

import "fmt"

type parser struct {
	runes []rune
	pos   int
}

// Parse parses a propositional sentence and returns the corresponding
// Sentence. Sentences are written using the following operators, from lowest
// to highest priority:
//
// - for a disjunction ("or"), the "|" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "~" unary operator.
//
// Parentheses can be used to group subsentences. Every other character is a
// single-character variable, except "^", "=", "<", ">" and "-", which are
// reserved for future connectives and rejected. Note that whitespace is not
// skipped: a space is a variable like any other character.
//
// Malformed sentences (empty input, unbalanced parentheses, missing
// operands, adjacent variables) yield a SyntaxError naming the offending
// position.
func Parse(text string) (*Sentence, error) {
	p := &parser{runes: []rune(text)}
	if p.eof() {
		return nil, &SyntaxError{Pos: 0, Msg: "empty sentence"}
	}
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.unexpected()
	}
	return newSentence(text, f), nil
}

func reserved(r rune) bool {
	switch r {
	case '^', '=', '<', '>', '-':
		return true
	}
	return false
}

func (p *parser) eof() bool { return p.pos >= len(p.runes) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.runes[p.pos]
}

func (p *parser) unexpected() *SyntaxError {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("unexpected %q", p.runes[p.pos])}
}

func (p *parser) parseOr() (f Formula, err error) {
	f, err = p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.peek() == symOr {
		p.pos++
		f2, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		return or{f, f2}, nil
	}
	return f, nil
}

func (p *parser) parseAnd() (f Formula, err error) {
	f, err = p.parseNot()
	if err != nil {
		return nil, err
	}
	if p.peek() == symAnd {
		p.pos++
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		return and{f, f2}, nil
	}
	return f, nil
}

func (p *parser) parseNot() (Formula, error) {
	if p.peek() == symNot {
		p.pos++
		f, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return not{f}, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (Formula, error) {
	if p.eof() {
		return nil, &SyntaxError{Pos: p.pos, Msg: "expected expression, found end of sentence"}
	}
	r := p.peek()
	switch {
	case r == symOpen:
		open := p.pos
		p.pos++
		f, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, &SyntaxError{Pos: open, Msg: "unmatched '('"}
		}
		if p.peek() != symClose {
			return nil, p.unexpected()
		}
		p.pos++
		return f, nil
	case r == symClose || r == symAnd || r == symOr:
		return nil, p.unexpected()
	case reserved(r):
		return nil, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("symbol %q is reserved for future use", r)}
	default:
		p.pos++
		return variable(r), nil
	}
}
