package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/senarclens/cvrptwms/matrix"
)

func TestNewDense_RejectsBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetAt_RoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 3.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestDense_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(-1, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Clone_IsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 2))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	cv, _ := clone.At(0, 0)
	require.Equal(t, 2.0, cv)
}

func TestDense_Fill(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	m.Fill(0.5)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := m.At(i, j)
			require.Equal(t, 0.5, v)
		}
	}
}
