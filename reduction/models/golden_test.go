package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-estimator/redcost/reduction/internal/testutil"
)

func TestGoldenDataset_Costs(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Costs)

	for _, tc := range dataset.Costs {
		name := fmt.Sprintf("%s/%s%s/beta=%d/d=%d", tc.Model, tc.Mode, tc.NN, tc.Beta, tc.D)
		t.Run(name, func(t *testing.T) {
			m, err := New(ModelConfig{Model: tc.Model, Mode: tc.Mode, NN: tc.NN})
			require.NoError(t, err)
			testutil.AssertLog2Near(t, "cost", tc.Log2, m.Cost(tc.Beta, tc.D, 0), tc.Tol)
		})
	}
}

func TestGoldenDataset_ShortVectors(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.ShortVectors)

	for _, tc := range dataset.ShortVectors {
		name := fmt.Sprintf("%s/beta=%d/d=%d/n=%d/preprocess=%v", tc.Model, tc.Beta, tc.D, tc.N, tc.Preprocess)
		t.Run(name, func(t *testing.T) {
			m, err := New(ModelConfig{Model: tc.Model})
			require.NoError(t, err)

			got := m.ShortVectors(tc.Beta, tc.D, tc.N, 0, tc.Preprocess)

			testutil.AssertFloat64Equal(t, "rho", tc.Rho, got.Rho, 1e-12)
			testutil.AssertFloat64Equal(t, "cost", tc.Cost, got.Cost, 1e-12)
			testutil.AssertFloat64Equal(t, "N", tc.Count, got.N, 0)
		})
	}
}
