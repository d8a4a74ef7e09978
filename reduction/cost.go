package reduction

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field names used by Evaluate.
const (
	FieldRop   = "rop"
	FieldRed   = "red"
	FieldDelta = "delta"
	FieldBeta  = "beta"
	FieldD     = "d"
)

// fieldSymbols maps field names to the symbols used when printing.
var fieldSymbols = map[string]string{
	FieldDelta:    "δ",
	FieldBeta:     "β",
	"eta":         "η",
	"epsilon":     "ε",
	"zeta":        "ζ",
	"ell":         "ℓ",
	"repetitions": "↻",
}

// Field is one named value of a Cost record.
type Field struct {
	Key   string
	Value float64
}

// Cost is an ordered record of named cost values.
//
// Permanent fields (rop, red) are operation counts: they scale when an
// attack is repeated and add up when steps are composed. Impermanent fields
// (delta, beta, d) describe the configuration and are never aggregated.
// Fields not registered either way are treated as impermanent.
//
// A Cost is owned by the caller that created it and is not safe for
// concurrent mutation.
type Cost struct {
	keys      []string
	values    map[string]float64
	permanent map[string]bool
}

// NewCost returns a record holding fields in the given order. A repeated
// key keeps its first position and its last value.
func NewCost(fields ...Field) *Cost {
	c := &Cost{
		values:    make(map[string]float64, len(fields)),
		permanent: make(map[string]bool),
	}
	for _, f := range fields {
		c.Set(f.Key, f.Value)
	}
	return c
}

// Set stores v under key, appending key if it is new.
func (c *Cost) Set(key string, v float64) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
}

// Get returns the value stored under key.
func (c *Cost) Get(key string) (float64, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Value returns the value under key, or NaN if absent.
func (c *Cost) Value(key string) float64 {
	if v, ok := c.values[key]; ok {
		return v
	}
	return math.NaN()
}

// Keys returns the field names in insertion order.
func (c *Cost) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of fields.
func (c *Cost) Len() int { return len(c.keys) }

// RegisterPermanence marks each listed field as permanent (true) or
// impermanent (false).
func (c *Cost) RegisterPermanence(fields map[string]bool) {
	for k, p := range fields {
		c.permanent[k] = p
	}
}

// Permanent reports whether key is a summable operation count.
func (c *Cost) Permanent(key string) bool {
	return c.permanent[key]
}

// Rop returns the total operation count, or NaN if unset.
func (c *Cost) Rop() float64 { return c.Value(FieldRop) }

// Infeasible reports whether the operation count is +Inf.
func (c *Cost) Infeasible() bool { return math.IsInf(c.Rop(), 1) }

// Clone returns a deep copy of c.
func (c *Cost) Clone() *Cost {
	out := &Cost{
		keys:      make([]string, len(c.keys)),
		values:    make(map[string]float64, len(c.values)),
		permanent: make(map[string]bool, len(c.permanent)),
	}
	copy(out.keys, c.keys)
	for k, v := range c.values {
		out.values[k] = v
	}
	for k, p := range c.permanent {
		out.permanent[k] = p
	}
	return out
}

// Repeat returns a copy of c describing the same computation run times
// times: permanent fields are multiplied, everything else is kept.
func (c *Cost) Repeat(times float64) *Cost {
	out := c.Clone()
	for _, k := range out.keys {
		if out.permanent[k] {
			out.values[k] *= times
		}
	}
	return out
}

func formatField(key string, v float64) string {
	name := key
	if s, ok := fieldSymbols[key]; ok {
		name = s
	}
	var val string
	switch {
	case key == FieldDelta:
		val = fmt.Sprintf("%.6f", v)
	case math.IsInf(v, 1):
		val = "≈2^inf"
	case math.IsNaN(v) || math.IsInf(v, -1):
		val = fmt.Sprintf("%v", v)
	case v == math.Trunc(v) && math.Abs(v) < 1<<32:
		val = fmt.Sprintf("%d", int64(v))
	case v > 0:
		val = fmt.Sprintf("≈2^%.1f", math.Log2(v))
	default:
		val = fmt.Sprintf("%g", v)
	}
	return name + ": " + val
}

// String renders the record as "rop: ≈2^68.9, red: ≈2^68.9, δ: 1.008435, β: 120, d: 500".
func (c *Cost) String() string {
	parts := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		parts = append(parts, formatField(k, c.values[k]))
	}
	return strings.Join(parts, ", ")
}

// MarshalYAML emits the fields as an ordered mapping.
func (c *Cost) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range c.keys {
		var val yaml.Node
		if err := val.Encode(c.values[k]); err != nil {
			return nil, fmt.Errorf("encode cost field %q: %w", k, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, &val)
	}
	return node, nil
}
