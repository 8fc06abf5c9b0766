// SPDX-License-Identifier: MIT
// Package boolmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// boolmatrix package. All functions MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions.

package boolmatrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("boolmatrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("boolmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// (Or/Mxm/BlockDiag between matrices whose shapes the operation forbids).
	ErrDimensionMismatch = errors.New("boolmatrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand.
	ErrNilMatrix = errors.New("boolmatrix: nil matrix")
)
