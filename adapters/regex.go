// SPDX-License-Identifier: MIT
// Package adapters - minimal regex dialect -> automaton.NFA (spec §6 "Regex
// syntax": concatenation by whitespace, `|`, `*`, parenthesization, literal
// labels) via a small recursive-descent parser and classic Thompson
// construction. This is the one adapter the spec asks us to go further
// than a bare contract on (SPEC_FULL.md §4): without it, TensorRPQ/BFSRPQ
// have no public entry point a caller could exercise end-to-end.
//
// Grammar (tokens are `(`, `)`, `|`, `*`, and whitespace-delimited
// literals):
//
//	expr   := term ('|' term)*
//	term   := factor+
//	factor := atom '*'?
//	atom   := '(' expr ')' | LITERAL

package adapters

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathql/automaton"
)

type tokenKind int

const (
	tokLParen tokenKind = iota
	tokRParen
	tokPipe
	tokStar
	tokLiteral
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

func tokenizeRegex(s string) ([]token, error) {
	var out []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, token{kind: tokLiteral, text: lit.String()})
			lit.Reset()
		}
	}
	for _, r := range s {
		switch r {
		case '(':
			flush()
			out = append(out, token{kind: tokLParen})
		case ')':
			flush()
			out = append(out, token{kind: tokRParen})
		case '|':
			flush()
			out = append(out, token{kind: tokPipe})
		case '*':
			flush()
			out = append(out, token{kind: tokStar})
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			lit.WriteRune(r)
		}
	}
	flush()
	out = append(out, token{kind: tokEOF})

	return out, nil
}

type regexParser struct {
	toks []token
	pos  int
}

func (p *regexParser) peek() token { return p.toks[p.pos] }
func (p *regexParser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

// ParseRegex parses s per the dialect above and returns an epsilon-free
// NFA for its language.
func ParseRegex(s string) (*automaton.NFA, error) {
	toks, err := tokenizeRegex(s)
	if err != nil {
		return nil, fmt.Errorf("ParseRegex: %w", err)
	}
	p := &regexParser{toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("ParseRegex: %w", err)
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("ParseRegex: unexpected %q: %w", p.peek().text, ErrParse)
	}

	return automaton.RemoveEpsilons(n), nil
}

func (p *regexParser) parseExpr() (*automaton.NFA, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokPipe {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = automaton.Union(left, right)
	}

	return left, nil
}

func (p *regexParser) parseTerm() (*automaton.NFA, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		k := p.peek().kind
		if k != tokLParen && k != tokLiteral {
			break
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = automaton.Concat(left, right)
	}

	return left, nil
}

func (p *regexParser) parseFactor() (*automaton.NFA, error) {
	a, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokStar {
		p.next()
		a = automaton.Star(a)
	}

	return a, nil
}

func (p *regexParser) parseAtom() (*automaton.NFA, error) {
	t := p.next()
	switch t.kind {
	case tokLParen:
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, fmt.Errorf("ParseRegex: expected ')': %w", ErrParse)
		}
		p.next()

		return e, nil
	case tokLiteral:
		return literalNFA(t.text), nil
	default:
		return nil, fmt.Errorf("ParseRegex: unexpected token: %w", ErrParse)
	}
}

// literalNFA builds the two-state NFA for a single symbol. Each state's
// Data is a fresh pointer (see automaton.Union's comment): decomp.FromNFA
// dedups states by Data, and Thompson construction copies Data verbatim
// through nested combinators, so two literal atoms must never share one.
func literalNFA(symbol string) *automaton.NFA {
	a := automaton.New()
	from := a.AddState(new(struct{}), true, false)
	to := a.AddState(new(struct{}), false, true)
	_ = a.AddTransition(from, symbol, to)

	return a
}
