// SPDX-License-Identifier: MIT
// Package query is the top-level facade (spec §6 "Public operations"):
// it accepts a graph.Graph plus a regex or CFG (as text or already-parsed
// types) and dispatches to the rpq/cfpq engines, handling DOT-free input
// parsing via package adapters. None of rpq/cfpq/adapters import this
// package; it is the one place that imports all of them.
package query
