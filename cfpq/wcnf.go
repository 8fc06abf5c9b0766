// SPDX-License-Identifier: MIT
// Weakened Chomsky Normal Form (spec §4.5): every production is one of
//   A -> B C   (two nonterminals)
//   A -> a     (one terminal)
//   S -> ε     (only the start symbol, and only if ε is in the language)
// "Weakened" relative to classic CNF: the epsilon restriction is relaxed
// to the start symbol rather than forbidden outright, since path queries
// need to represent the empty-word case. Grounded on the original
// `cfg_utils.py`'s use of pyformlang's `to_normal_form`, reimplemented
// here as explicit passes since pyformlang is not available in Go.

package cfpq

import "fmt"

// Normalizer converts a Grammar to weakened Chomsky normal form. Exposed as
// an interface (rather than calling ToWCNF directly from the engines) so a
// production deployment could swap in a fuller normalizer without changing
// Hellings/Matrix/Tensor's call sites.
type Normalizer interface {
	Normalize(g *Grammar) *Grammar
}

// wcnfFunc adapts a plain function to Normalizer.
type wcnfFunc func(*Grammar) *Grammar

func (f wcnfFunc) Normalize(g *Grammar) *Grammar { return f(g) }

// DefaultNormalizer is the Normalizer every engine in this package uses.
var DefaultNormalizer Normalizer = wcnfFunc(ToWCNF)

// ToWCNF converts g to weakened Chomsky normal form, returning a new
// Grammar. The start symbol's name is preserved exactly (no fresh start is
// introduced) so callers can keep projecting CFPQ results by the name they
// passed in.
func ToWCNF(g *Grammar) *Grammar {
	cur := &Grammar{Start: g.Start, Prods: append([]Production(nil), g.Prods...)}
	cur = eliminateEpsilon(cur)
	cur = eliminateUnits(cur)
	cur = termSeparate(cur)
	cur = binarize(cur)
	cur = removeUseless(cur)

	return cur
}

// eliminateEpsilon removes A -> ε productions (except possibly the start
// symbol's), rewriting every production that referenced a nullable symbol
// into the powerset of "keep it / drop it" variants.
func eliminateEpsilon(g *Grammar) *Grammar {
	nullable := nullableSymbols(g)

	var prods []Production
	seen := make(map[string]bool)
	add := func(p Production) {
		key := p.Head + "->" + fmt.Sprint(p.Body)
		if !seen[key] {
			seen[key] = true
			prods = append(prods, p)
		}
	}

	for _, p := range g.Prods {
		if len(p.Body) == 0 {
			continue
		}
		for _, variant := range nullableVariants(p.Body, nullable) {
			if len(variant) == 0 {
				if p.Head == g.Start {
					add(Production{Head: p.Head, Body: nil})
				}
				continue
			}
			add(Production{Head: p.Head, Body: variant})
		}
	}
	if nullable[g.Start] {
		add(Production{Head: g.Start, Body: nil})
	}

	return &Grammar{Start: g.Start, Prods: prods}
}

func nullableSymbols(g *Grammar) map[string]bool {
	nullable := make(map[string]bool)
	for {
		grew := false
		for _, p := range g.Prods {
			if nullable[p.Head] {
				continue
			}
			if len(p.Body) == 0 {
				nullable[p.Head] = true
				grew = true
				continue
			}
			allNullable := true
			for _, s := range p.Body {
				if !nullable[s] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[p.Head] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	return nullable
}

// nullableVariants enumerates every subsequence of body obtained by
// independently dropping each nullable symbol, keeping body order.
func nullableVariants(body []string, nullable map[string]bool) [][]string {
	variants := [][]string{{}}
	for _, sym := range body {
		next := make([][]string, 0, len(variants)*2)
		for _, v := range variants {
			next = append(next, append(append([]string(nil), v...), sym))
			if nullable[sym] {
				next = append(next, v)
			}
		}
		variants = next
	}

	return variants
}

// eliminateUnits removes A -> B productions (B a lone nonterminal) by
// transitively inlining B's productions into A.
func eliminateUnits(g *Grammar) *Grammar {
	isNonterminal := make(map[string]bool)
	for _, p := range g.Prods {
		isNonterminal[p.Head] = true
	}
	unitPair := func(p Production) (string, bool) {
		if len(p.Body) == 1 && isNonterminal[p.Body[0]] {
			return p.Body[0], true
		}
		return "", false
	}

	reach := make(map[string]map[string]bool)
	for sym := range isNonterminal {
		reach[sym] = map[string]bool{sym: true}
	}
	for {
		grew := false
		for _, p := range g.Prods {
			if target, ok := unitPair(p); ok {
				for s := range reach[target] {
					if !reach[p.Head][s] {
						reach[p.Head][s] = true
						grew = true
					}
				}
			}
		}
		if !grew {
			break
		}
	}

	var prods []Production
	seen := make(map[string]bool)
	for head, targets := range reach {
		for target := range targets {
			for _, p := range g.Prods {
				if p.Head != target {
					continue
				}
				if _, ok := unitPair(p); ok {
					continue
				}
				key := head + "->" + fmt.Sprint(p.Body)
				if seen[key] {
					continue
				}
				seen[key] = true
				prods = append(prods, Production{Head: head, Body: p.Body})
			}
		}
	}

	return &Grammar{Start: g.Start, Prods: prods}
}

// termSeparate replaces every terminal appearing alongside another symbol
// in a production body with a fresh nonterminal T_a -> a, so that
// multi-symbol bodies contain only nonterminals.
func termSeparate(g *Grammar) *Grammar {
	isNonterminal := make(map[string]bool)
	for _, p := range g.Prods {
		isNonterminal[p.Head] = true
	}

	termSym := make(map[string]string)
	var extra []Production
	prods := make([]Production, 0, len(g.Prods))
	for _, p := range g.Prods {
		if len(p.Body) <= 1 {
			prods = append(prods, p)
			continue
		}
		body := make([]string, len(p.Body))
		for i, s := range p.Body {
			if isNonterminal[s] {
				body[i] = s
				continue
			}
			fresh, ok := termSym[s]
			if !ok {
				fresh = freshSymbol(g, "T_"+s)
				termSym[s] = fresh
				extra = append(extra, Production{Head: fresh, Body: []string{s}})
			}
			body[i] = fresh
		}
		prods = append(prods, Production{Head: p.Head, Body: body})
	}

	return &Grammar{Start: g.Start, Prods: append(prods, extra...)}
}

// binarize splits bodies longer than 2 symbols into a right-leaning chain
// of fresh nonterminals, e.g. A -> B C D becomes A -> B A1, A1 -> C D.
func binarize(g *Grammar) *Grammar {
	var prods []Production
	counter := 0
	for _, p := range g.Prods {
		if len(p.Body) <= 2 {
			prods = append(prods, p)
			continue
		}
		head := p.Head
		body := p.Body
		for len(body) > 2 {
			counter++
			fresh := freshSymbol(g, fmt.Sprintf("%s_bin%d", p.Head, counter))
			prods = append(prods, Production{Head: head, Body: []string{body[0], fresh}})
			head = fresh
			body = body[1:]
		}
		prods = append(prods, Production{Head: head, Body: body})
	}

	return &Grammar{Start: g.Start, Prods: prods}
}

// removeUseless drops nonterminals that are not reachable from Start or
// cannot derive any terminal string.
func removeUseless(g *Grammar) *Grammar {
	isNonterminal := make(map[string]bool)
	for _, p := range g.Prods {
		isNonterminal[p.Head] = true
	}

	generating := make(map[string]bool)
	for {
		grew := false
		for _, p := range g.Prods {
			if generating[p.Head] {
				continue
			}
			ok := true
			for _, s := range p.Body {
				if isNonterminal[s] && !generating[s] {
					ok = false
					break
				}
			}
			if ok {
				generating[p.Head] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	reachable := map[string]bool{g.Start: true}
	for {
		grew := false
		for _, p := range g.Prods {
			if !reachable[p.Head] || !generating[p.Head] {
				continue
			}
			for _, s := range p.Body {
				if isNonterminal[s] && !reachable[s] {
					reachable[s] = true
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	var prods []Production
	for _, p := range g.Prods {
		if !reachable[p.Head] || !generating[p.Head] {
			continue
		}
		keep := true
		for _, s := range p.Body {
			if isNonterminal[s] && (!reachable[s] || !generating[s]) {
				keep = false
				break
			}
		}
		if keep {
			prods = append(prods, p)
		}
	}

	return &Grammar{Start: g.Start, Prods: prods}
}

func freshSymbol(g *Grammar, base string) string {
	used := make(map[string]bool)
	for _, p := range g.Prods {
		used[p.Head] = true
		for _, s := range p.Body {
			used[s] = true
		}
	}
	name := base
	for i := 0; used[name]; i++ {
		name = fmt.Sprintf("%s#%d", base, i)
	}

	return name
}
