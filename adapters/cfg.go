// SPDX-License-Identifier: MIT
// Package adapters - minimal CFG text dialect -> cfpq.Grammar (spec §6 "CFG
// text": one production per line, terminals lowercase, nonterminals
// uppercase, `|` for alternation, `$` or the literal `epsilon` for the
// empty word).
//
// Line syntax: `HEAD -> body1 | body2 | ...`, each body a whitespace
// separated list of symbols (or `$`/`epsilon` alone for an empty body).
// The first line's head is the grammar's start symbol. Blank lines and
// lines starting with `#` are ignored.

package adapters

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathql/cfpq"
)

// ParseCFG parses s per the dialect above into a cfpq.Grammar.
func ParseCFG(s string) (*cfpq.Grammar, error) {
	var prods []cfpq.Production
	start := ""

	for lineNo, rawLine := range strings.Split(s, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		head, rest, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("ParseCFG: line %d: missing '->': %w", lineNo+1, ErrParse)
		}
		head = strings.TrimSpace(head)
		if head == "" {
			return nil, fmt.Errorf("ParseCFG: line %d: empty head: %w", lineNo+1, ErrParse)
		}
		if start == "" {
			start = head
		}

		for _, alt := range strings.Split(rest, "|") {
			fields := strings.Fields(alt)
			if len(fields) == 0 || (len(fields) == 1 && isEpsilonToken(fields[0])) {
				prods = append(prods, cfpq.Production{Head: head, Body: nil})
				continue
			}
			prods = append(prods, cfpq.Production{Head: head, Body: fields})
		}
	}

	if start == "" {
		return nil, fmt.Errorf("ParseCFG: no productions: %w", ErrParse)
	}

	return &cfpq.Grammar{Start: start, Prods: prods}, nil
}

func isEpsilonToken(tok string) bool {
	return tok == "$" || tok == "epsilon"
}
