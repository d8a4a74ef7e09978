package reduction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCost_Set_KeepsInsertionOrder(t *testing.T) {
	c := NewCost(Field{"rop", 10}, Field{"beta", 50})
	c.Set("d", 100)
	c.Set("rop", 20)

	assert.Equal(t, []string{"rop", "beta", "d"}, c.Keys())
	assert.Equal(t, 20.0, c.Value("rop"))
	assert.Equal(t, 3, c.Len())
}

func TestCost_Value_MissingIsNaN(t *testing.T) {
	c := NewCost()
	_, ok := c.Get("rop")
	assert.False(t, ok)
	assert.True(t, math.IsNaN(c.Value("rop")))
}

func TestCost_Repeat_ScalesPermanentFieldsOnly(t *testing.T) {
	// GIVEN a record with permanent rop and impermanent beta
	c := NewCost(Field{"rop", 1 << 20}, Field{"beta", 50}, Field{"m", 7})
	c.RegisterPermanence(map[string]bool{"rop": true, "beta": false})

	// WHEN it is repeated 8 times
	r := c.Repeat(8)

	// THEN only rop is scaled and the original is untouched
	assert.Equal(t, float64(1<<23), r.Value("rop"))
	assert.Equal(t, 50.0, r.Value("beta"))
	assert.Equal(t, 7.0, r.Value("m"))
	assert.Equal(t, float64(1<<20), c.Value("rop"))
	assert.True(t, r.Permanent("rop"))
	assert.False(t, r.Permanent("m"))
}

func TestCost_String_UsesSymbolsAndLogScale(t *testing.T) {
	c := NewCost(
		Field{FieldRop, math.Exp2(68.93)},
		Field{FieldDelta, 1.0084347428159242},
		Field{FieldBeta, 120},
		Field{FieldD, 500},
		Field{"eta", 3},
	)
	assert.Equal(t, "rop: ≈2^68.9, δ: 1.008435, β: 120, d: 500, η: 3", c.String())
}

func TestCost_String_Infinity(t *testing.T) {
	c := NewCost(Field{FieldRop, math.Inf(1)})
	assert.Equal(t, "rop: ≈2^inf", c.String())
}

func TestCost_MarshalYAML_Ordered(t *testing.T) {
	c := NewCost(Field{FieldRop, math.Inf(1)}, Field{FieldBeta, 120}, Field{FieldDelta, 1.5})

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "rop: .inf\nbeta: 120\ndelta: 1.5\n", string(out))
}
