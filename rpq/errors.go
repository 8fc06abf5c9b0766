package rpq

import "errors"

// ErrNilGraph is returned when TensorRPQ or BFSRPQ is given a nil graph.
var ErrNilGraph = errors.New("rpq: nil graph")

// ErrNilQuery is returned when TensorRPQ or BFSRPQ is given a nil query NFA.
var ErrNilQuery = errors.New("rpq: nil query automaton")
