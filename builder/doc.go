// Package builder provides reusable "functional-options"-style constructors
// for deterministic labeled-graph fixtures. It lives alongside the graph
// package to centralize common configuration (vertex ID schemes) and
// validation logic for test fixtures and documentation examples, keeping
// them DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds the vertex-ID scheme (IDFn).
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Fixture constructors (Constructor implementations, in impl_*.go):
//     – Cycle(n, label):      n-vertex directed cycle, every edge labeled the same.
//     – Path(labels...):      directed path whose i-th edge carries labels[i].
//     – GlueAt(id, a, b):     merges two fixtures sharing one vertex.
//   - Validation helpers:
//     – validateMin: ensure integer ≥ minimum.
//
// Guarantees:
//
//   - Determinism: same inputs/options/constructor order produce an
//     identical graph every time.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters: the constructor
//     name plus a wrapped sentinel (ErrTooFewVertices, ErrConstructFailed).
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and complexity notes.
package builder
