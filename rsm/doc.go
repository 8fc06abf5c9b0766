// Package rsm implements the Recursive State Machine: a start nonterminal
// plus a mapping from nonterminal name to its box (an automaton.NFA whose
// alphabet mixes terminals and nonterminal references, both represented as
// plain strings — package rsm is what knows which names are nonterminals).
//
// RSM supplies the combinators spec §4.3 names (Concat, Union, StarOf, each
// building a fresh start box and suffixing the operands' nonterminals with
// (var,1)/(var,2) to keep namespaces disjoint), GetReachables (the
// nullable-nonterminal fixed point that finds every (start,final) pair of
// the start box), and Intersect(nfa) (tensor CFPQ run in-place against an
// NFA decomposition, producing a new well-formed RSM).
package rsm
