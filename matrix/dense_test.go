package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodevec/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, shape := range [][2]int{{0, 5}, {5, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_Shape(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	assert.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	assert.True(t, m.AllFinite())
}

func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

func TestRows(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(1, []float64{1, 2, 3}))

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, row)
	row[0] = 99
	v, _ := m.At(1, 0)
	assert.Equal(t, 1.0, v, "Row must return a copy")

	raw, err := m.RawRow(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, raw)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SetRow(-1, []float64{1, 2, 3}), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SetRow(0, []float64{1, 2}), matrix.ErrDimensionMismatch)

	// a rejected row leaves the previous values intact
	assert.ErrorIs(t, m.SetRow(1, []float64{4, math.NaN(), 6}), matrix.ErrNaNInf)
	row, _ = m.Row(1)
	assert.Equal(t, []float64{1, 2, 3}, row)
}

func TestCloneEqual(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []float64{3, 4}))

	c := m.Clone()
	assert.True(t, m.Equal(c))
	require.NoError(t, c.Set(1, 1, 1))
	assert.False(t, m.Equal(c))

	other, _ := matrix.NewDense(1, 4)
	assert.False(t, m.Equal(other))
	assert.False(t, m.Equal(nil))

	assert.Equal(t, []float64{5, 0}, m.RowNorms())
	assert.Equal(t, "[3, 4]\n[0, 0]\n", m.String())
}
