package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	require.Equal(t, 6, Sum([]int{1, 2, 3}))
	require.InDelta(t, 0.6, Sum([]float64{0.1, 0.2, 0.3}), 1e-9)
	require.Zero(t, Sum[float64](nil))
}

func TestArgMax(t *testing.T) {
	require.Equal(t, 1, ArgMax([]float64{0.2, 0.5, 0.5}), "Ties go to the first index")
	require.Equal(t, -1, ArgMax[int](nil))
}
