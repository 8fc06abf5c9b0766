package boolmatrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, rows, cols int, pairs ...[2]int) *boolmatrix.Matrix {
	t.Helper()
	b, err := boolmatrix.NewBuilder(rows, cols)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, b.Set(p[0], p[1]))
	}
	return b.Build()
}

func TestNewBuilderRejectsNegativeShape(t *testing.T) {
	_, err := boolmatrix.NewBuilder(-1, 2)
	require.True(t, errors.Is(err, boolmatrix.ErrBadShape))
}

func TestSetAndGetRoundtrip(t *testing.T) {
	m := build(t, 3, 3, [2]int{0, 1}, [2]int{2, 2})
	ok, err := m.Get(0, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Get(1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	require.Equal(t, 2, m.NNZ())
}

func TestGetOutOfRange(t *testing.T) {
	m := build(t, 2, 2)
	_, err := m.Get(5, 0)
	require.True(t, errors.Is(err, boolmatrix.ErrOutOfRange))
}

func TestRowReturnsSortedColumns(t *testing.T) {
	m := build(t, 1, 5, [2]int{0, 3}, [2]int{0, 1})
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, row)
}

func TestNonzeroPairsRowMajorOrder(t *testing.T) {
	m := build(t, 2, 2, [2]int{1, 0}, [2]int{0, 1}, [2]int{0, 0})
	pairs := m.NonzeroPairs()
	require.Equal(t, []boolmatrix.Pair{{0, 0}, {0, 1}, {1, 0}}, pairs)
}

func TestEmptyAndIdentity(t *testing.T) {
	z, err := boolmatrix.Empty(2, 3)
	require.NoError(t, err)
	require.Equal(t, 0, z.NNZ())

	id, err := boolmatrix.Identity(3)
	require.NoError(t, err)
	require.Equal(t, 3, id.NNZ())
	ok, _ := id.Get(1, 1)
	require.True(t, ok)
	ok, _ = id.Get(1, 2)
	require.False(t, ok)
}

func TestOrUnionAndGrowthSignal(t *testing.T) {
	a := build(t, 2, 2, [2]int{0, 0})
	b := build(t, 2, 2, [2]int{0, 0}, [2]int{1, 1})

	union, grew, err := boolmatrix.Or(a, b)
	require.NoError(t, err)
	require.True(t, grew)
	require.Equal(t, 2, union.NNZ())

	_, grew, err = boolmatrix.Or(union, b)
	require.NoError(t, err)
	require.False(t, grew)
}

func TestOrRejectsShapeMismatch(t *testing.T) {
	a := build(t, 2, 2)
	b := build(t, 3, 2)
	_, _, err := boolmatrix.Or(a, b)
	require.True(t, errors.Is(err, boolmatrix.ErrDimensionMismatch))
}

func TestMxmBooleanProduct(t *testing.T) {
	// a: 0->1, b: 1->2  =>  a*b: 0->2
	a := build(t, 3, 3, [2]int{0, 1})
	b := build(t, 3, 3, [2]int{1, 2})

	prod, err := boolmatrix.Mxm(a, b)
	require.NoError(t, err)
	ok, _ := prod.Get(0, 2)
	require.True(t, ok)
	require.Equal(t, 1, prod.NNZ())
}

func TestMxmRejectsShapeMismatch(t *testing.T) {
	a := build(t, 2, 3)
	b := build(t, 2, 2)
	_, err := boolmatrix.Mxm(a, b)
	require.True(t, errors.Is(err, boolmatrix.ErrDimensionMismatch))
}

func TestKroneckerShapeAndContent(t *testing.T) {
	a := build(t, 2, 2, [2]int{0, 1})
	b := build(t, 2, 2, [2]int{1, 0})

	k := boolmatrix.Kronecker(a, b)
	require.Equal(t, 4, k.Rows())
	require.Equal(t, 4, k.Cols())
	// a[0,1] and b[1,0] => k[0*2+1, 1*2+0] = k[1,2]
	ok, err := k.Get(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, k.NNZ())
}

func TestBlockDiagPlacesBlocksOnDiagonal(t *testing.T) {
	a := build(t, 2, 2, [2]int{0, 1})
	b := build(t, 2, 2, [2]int{1, 0})

	d := boolmatrix.BlockDiag(a, b)
	require.Equal(t, 4, d.Rows())
	require.Equal(t, 4, d.Cols())

	ok, _ := d.Get(0, 1)
	require.True(t, ok)
	ok, _ = d.Get(3, 2)
	require.True(t, ok)
	// off-diagonal block must stay zero
	ok, _ = d.Get(0, 2)
	require.False(t, ok)
	require.Equal(t, 2, d.NNZ())
}

func TestToBuilderRoundtrip(t *testing.T) {
	m := build(t, 2, 2, [2]int{0, 1})
	bld := m.ToBuilder()
	require.NoError(t, bld.Set(1, 1))
	grown := bld.Build()
	require.Equal(t, 2, grown.NNZ())
	require.Equal(t, 1, m.NNZ()) // original untouched
}
