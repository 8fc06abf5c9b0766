// SPDX-License-Identifier: MIT

package cfpq

import "fmt"

// Production is a single CFG rule Head -> Body (Body may be empty for an
// epsilon production). Symbols are distinguished by case in the adapters
// text dialect (uppercase nonterminal, lowercase terminal) but Grammar
// itself is case-agnostic: it only cares which symbols appear as some
// Production's Head.
type Production struct {
	Head string
	Body []string
}

// Grammar is a context-free grammar: a start symbol and a production set.
// Grounded on the original `pyformlang`-based `cfg_utils.py` wrapper, which
// plays the same role of a thin, engine-agnostic grammar container.
type Grammar struct {
	Start string
	Prods []Production
}

// IsNonterminal reports whether sym is some production's Head.
func (g *Grammar) IsNonterminal(sym string) bool {
	for _, p := range g.Prods {
		if p.Head == sym {
			return true
		}
	}

	return false
}

// ProductionsFor returns every production headed by sym, in declaration
// order.
func (g *Grammar) ProductionsFor(sym string) []Production {
	var out []Production
	for _, p := range g.Prods {
		if p.Head == sym {
			out = append(out, p)
		}
	}

	return out
}

func (g *Grammar) String() string {
	return fmt.Sprintf("Grammar{start=%s, %d productions}", g.Start, len(g.Prods))
}
