package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-estimator/redcost/reduction"
)

func allModels(t *testing.T) map[string]reduction.CostModel {
	t.Helper()
	out := make(map[string]reduction.CostModel)
	for _, name := range Names() {
		m, err := New(ModelConfig{Model: name})
		require.NoError(t, err)
		out[name] = m
	}
	return out
}

func TestModels_MonotoneInBeta(t *testing.T) {
	// Known exceptions outside this range: enumeration fits dip below β ≈ 20,
	// BDGL16 drops at its β = 90 crossover, Kyber's C·(d−β) shrinks as β → d.
	const d = 1024
	for name, m := range allModels(t) {
		t.Run(name, func(t *testing.T) {
			prev := m.Cost(100, d, 0)
			for beta := 101; beta <= 500; beta++ {
				cur := m.Cost(beta, d, 0)
				require.GreaterOrEqual(t, cur, prev*(1-1e-12), "cost decreased at β=%d", beta)
				prev = cur
			}
		})
	}
}

func TestModels_NonNegativeAndFinite(t *testing.T) {
	for name, m := range allModels(t) {
		for _, d := range []int{50, 600} {
			for beta := 2; beta <= 600; beta++ {
				c := m.Cost(beta, d, 0)
				require.False(t, math.IsNaN(c), "%s(%d, %d) is NaN", name, beta, d)
				require.GreaterOrEqual(t, c, 0.0, "%s(%d, %d) negative", name, beta, d)
				require.False(t, math.IsInf(c, 0), "%s(%d, %d) overflowed", name, beta, d)
			}
		}
	}
}

func TestModels_ShortVectorsMeetRequest(t *testing.T) {
	for _, name := range Names() {
		m, err := New(ModelConfig{Model: name})
		require.NoError(t, err)
		for _, beta := range []int{18, 40, 100, 300} {
			for _, n := range []int64{1, 2, 1000, 1 << 30} {
				got := m.ShortVectors(beta, 400, n, 0, true)
				require.GreaterOrEqual(t, got.N, float64(n), "%s β=%d n=%d", name, beta, n)
				require.GreaterOrEqual(t, got.Rho, 1.0)
				require.Greater(t, got.Cost, 0.0)
				require.False(t, math.IsInf(got.Cost, 0), "%s β=%d n=%d", name, beta, n)
			}
		}
	}
}

func TestModels_ShortVectorsAtOverflowingBlockSizes(t *testing.T) {
	// GIVEN block sizes whose sieve yield 2^(0.2075·dim) overflows float64
	for _, name := range Names() {
		m, err := New(ModelConfig{Model: name})
		require.NoError(t, err)
		for _, beta := range []int{5000, 6000} {
			for _, n := range []int64{0, 1, 5, 1 << 30} {
				got := m.ShortVectors(beta, beta+1000, n, 0, true)

				// THEN the result is +Inf where it overflows, never NaN
				require.False(t, math.IsNaN(got.Cost), "%s β=%d n=%d cost", name, beta, n)
				require.False(t, math.IsNaN(got.N), "%s β=%d n=%d count", name, beta, n)
				require.False(t, math.IsNaN(got.Rho), "%s β=%d n=%d rho", name, beta, n)
				require.GreaterOrEqual(t, got.Cost, 0.0, "%s β=%d n=%d", name, beta, n)
				require.GreaterOrEqual(t, got.N, float64(n), "%s β=%d n=%d", name, beta, n)
			}
		}
	}
}

func TestSieveRuns(t *testing.T) {
	require.Equal(t, 1.0, sieveRuns(math.Inf(1), math.Inf(1)))
	require.Equal(t, 1.0, sieveRuns(5, math.Inf(1)))
	require.Equal(t, 3.0, sieveRuns(5, 2))
	require.Equal(t, 1.0, sieveRuns(1, 2))
}
