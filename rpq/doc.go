// SPDX-License-Identifier: MIT
// Package rpq implements the two regular-path-query engines (spec §4.4):
// TensorRPQ (product-decomposition + transitive closure) and BFSRPQ
// (constrained breadth-first search, common or per-start mode), grounded
// on the original `algorithms/rpq.py::tensor_rpq`/`bfs_rpq`.
package rpq
