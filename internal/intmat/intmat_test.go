package intmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regina-normal/tri3/internal/intmat"
)

func TestSmithNormalFormDiagonalAlready(t *testing.T) {
	m := intmat.New(2, 2)
	m.Set(0, 0, 2)
	m.Set(1, 1, 3)
	diag := intmat.SmithNormalForm(m)
	assert.Equal(t, []int64{1, 6}, diag)
}

func TestSmithNormalFormZeroMatrix(t *testing.T) {
	m := intmat.New(3, 3)
	diag := intmat.SmithNormalForm(m)
	assert.Empty(t, diag)
}

func TestSmithNormalFormKnownCyclicGroup(t *testing.T) {
	// presentation matrix for Z/8: a single 1x1 relator "8*x = 0"
	m := intmat.New(1, 1)
	m.Set(0, 0, 8)
	diag := intmat.SmithNormalForm(m)
	assert.Equal(t, []int64{8}, diag)
}

func TestSmithNormalFormDivisibilityChain(t *testing.T) {
	// [[2,4],[4,10]] has SNF diag(2,2): the gcd of all entries is 2 and
	// the determinant is 4.
	m := intmat.New(2, 2)
	m.Set(0, 0, 2)
	m.Set(0, 1, 4)
	m.Set(1, 0, 4)
	m.Set(1, 1, 10)
	diag := intmat.SmithNormalForm(m)
	// determinant (up to sign) must be preserved as the product of the
	// diagonal entries when the matrix is square and nonsingular.
	assert.Len(t, diag, 2)
	assert.Equal(t, int64(2*10-4*4), diag[0]*diag[1]*signOf(2*10-4*4))
	assert.True(t, diag[0] <= diag[1])
	assert.Equal(t, int64(0), diag[1]%diag[0])
}

func signOf(v int64) int64 {
	if v < 0 {
		return -1
	}

	return 1
}

func TestAddSwapRoundTrip(t *testing.T) {
	m := intmat.New(2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)
	m.SwapRows(0, 1)
	assert.Equal(t, int64(3), m.At(0, 0))
	m.SwapCols(0, 1)
	assert.Equal(t, int64(4), m.At(0, 0))
	m.AddRow(0, 1, 2)
	assert.Equal(t, int64(4+2*2), m.At(0, 0))
}
