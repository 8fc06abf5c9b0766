// SPDX-License-Identifier: MIT

package query

import "errors"

// ErrNilGraph is returned when a nil *graph.Graph is passed to a facade
// operation.
var ErrNilGraph = errors.New("query: nil graph")
