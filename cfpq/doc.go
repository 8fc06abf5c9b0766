// SPDX-License-Identifier: MIT
// Package cfpq implements the three context-free path query engines (spec
// §4.5): Hellings (worklist triple saturation), Matrix (per-variable
// sparse boolean matrix saturation), and Tensor (RSM∩graph fixed point),
// plus the CFG/WCNF grammar types and normalizer they share. Grounded on
// the original `cfpq/hellings.py`, `cfpq/matrix.py`, `cfpq/tensor.py`,
// `cfpq/cfg_utils.py`.
package cfpq
