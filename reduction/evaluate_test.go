package reduction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-estimator/redcost/reduction"
	"github.com/lattice-estimator/redcost/reduction/models"
)

func mustEvaluate(t *testing.T, m reduction.CostModel, beta, d int, opts reduction.EvalOptions) *reduction.Cost {
	t.Helper()
	c, err := reduction.Evaluate(m, beta, d, opts)
	require.NoError(t, err)
	return c
}

func TestEvaluate_RecordLayout(t *testing.T) {
	c := mustEvaluate(t, models.ABLR21{}, 120, 500, reduction.EvalOptions{})

	assert.Equal(t, []string{"rop", "red", "delta", "beta", "d"}, c.Keys())
	assert.Equal(t, c.Value("rop"), c.Value("red"))
	assert.InDelta(t, 68.92914321879019, math.Log2(c.Rop()), 1e-9)
	assert.Equal(t, reduction.Delta(120), c.Value("delta"))
	assert.Equal(t, 120.0, c.Value("beta"))
	assert.Equal(t, 500.0, c.Value("d"))
	assert.Equal(t, "rop: ≈2^68.9, red: ≈2^68.9, δ: 1.008435, β: 120, d: 500", c.String())
}

func TestEvaluate_Permanence(t *testing.T) {
	c := mustEvaluate(t, models.BDGL16{}, 120, 500, reduction.EvalOptions{})
	assert.True(t, c.Permanent("rop"))
	assert.True(t, c.Permanent("red"))
	assert.False(t, c.Permanent("delta"))
	assert.False(t, c.Permanent("beta"))
	assert.False(t, c.Permanent("d"))
}

func TestEvaluate_FalsePredicate_InfiniteCostSameDescription(t *testing.T) {
	// GIVEN the same model evaluated with no predicate and a false predicate
	feasible := mustEvaluate(t, models.ABLR21{}, 120, 500, reduction.EvalOptions{})
	no := false
	infeasible := mustEvaluate(t, models.ABLR21{}, 120, 500, reduction.EvalOptions{Predicate: &no})

	// THEN rop and red are +Inf and the descriptive fields are unchanged
	assert.True(t, math.IsInf(infeasible.Value("rop"), 1))
	assert.True(t, math.IsInf(infeasible.Value("red"), 1))
	assert.True(t, infeasible.Infeasible())
	assert.False(t, feasible.Infeasible())
	for _, k := range []string{"delta", "beta", "d"} {
		assert.Equal(t, feasible.Value(k), infeasible.Value(k), k)
	}
	assert.Equal(t, "rop: ≈2^inf, red: ≈2^inf, δ: 1.008435, β: 120, d: 500", infeasible.String())
}

func TestEvaluate_TruePredicate_Unchanged(t *testing.T) {
	yes := true
	c := mustEvaluate(t, models.ABLR21{}, 120, 500, reduction.EvalOptions{Predicate: &yes})
	assert.False(t, c.Infeasible())
}

func TestEvaluate_BitSizeAndExtraFields(t *testing.T) {
	// GIVEN a bit size large enough for LLL to dominate
	c := mustEvaluate(t, models.ADPS16{}, 2, 100, reduction.EvalOptions{BitSize: 10})
	// ADPS16 has no LLL term
	assert.Equal(t, math.Exp2(0.292*2), c.Rop())

	withLLL := mustEvaluate(t, models.CheNgu12{}, 10, 1000, reduction.EvalOptions{
		BitSize: 64,
		Extra:   []reduction.Field{{Key: "repetitions", Value: 4}, {Key: "m", Value: 900}},
	})
	assert.GreaterOrEqual(t, withLLL.Rop(), reduction.LLL(1000, 64))
	assert.Equal(t, []string{"rop", "red", "delta", "beta", "d", "repetitions", "m"}, withLLL.Keys())
	assert.False(t, withLLL.Permanent("repetitions"))
}

func TestEvaluate_RepeatScalesOperationCount(t *testing.T) {
	c := mustEvaluate(t, models.BDGL16{}, 200, 600, reduction.EvalOptions{})
	r := c.Repeat(16)
	require.InDelta(t, math.Log2(c.Rop())+4, math.Log2(r.Rop()), 1e-9)
	assert.Equal(t, c.Value("delta"), r.Value("delta"))
}

func TestEvaluate_DuplicateExtraFieldRejected(t *testing.T) {
	tests := []struct {
		name  string
		extra []reduction.Field
	}{
		{name: "computed rop", extra: []reduction.Field{{Key: "rop", Value: 1}}},
		{name: "computed beta", extra: []reduction.Field{{Key: "beta", Value: 50}}},
		{name: "computed d", extra: []reduction.Field{{Key: "d", Value: 10}}},
		{name: "repeated extra", extra: []reduction.Field{{Key: "m", Value: 900}, {Key: "m", Value: 901}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// WHEN an extra field collides with an existing one
			c, err := reduction.Evaluate(models.ABLR21{}, 120, 500, reduction.EvalOptions{Extra: tc.extra})

			// THEN Evaluate refuses instead of overwriting
			assert.ErrorIs(t, err, reduction.ErrDuplicateField)
			assert.Nil(t, c)
		})
	}
}
