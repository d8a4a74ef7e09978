package reduction

import (
	"errors"
	"fmt"
	"math"
)

// ErrDuplicateField is returned by Evaluate when an extra field repeats a
// computed field or another extra field.
var ErrDuplicateField = errors.New("duplicate cost field")

// EvalOptions carries the optional inputs of Evaluate.
type EvalOptions struct {
	// BitSize is the bit length of basis entries; 0 when unknown.
	BitSize int
	// Predicate, when non-nil and false, marks the configuration infeasible.
	Predicate *bool
	// Extra fields are appended after d, in order. Their keys must be
	// distinct from each other and from rop, red, delta, beta and d.
	Extra []Field
}

// Evaluate prices BKZ-β on a d-dimensional lattice with model m and returns
// the record {rop, red, delta, beta, d, extra...}. rop and red are
// permanent, delta, beta and d impermanent.
//
// An unsatisfied predicate sets rop and red to +Inf and leaves the other
// fields untouched, so optimisers can rank it as worse than any finite cost
// without an error path. The only error is ErrDuplicateField.
func Evaluate(m CostModel, beta, d int, opts EvalOptions) (*Cost, error) {
	raw := m.Cost(beta, d, opts.BitSize)

	c := NewCost(
		Field{FieldRop, raw},
		Field{FieldRed, raw},
		Field{FieldDelta, Delta(float64(beta))},
		Field{FieldBeta, float64(beta)},
		Field{FieldD, float64(d)},
	)
	for _, f := range opts.Extra {
		if _, ok := c.Get(f.Key); ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateField, f.Key)
		}
		c.Set(f.Key, f.Value)
	}
	c.RegisterPermanence(map[string]bool{
		FieldRop:   true,
		FieldRed:   true,
		FieldDelta: false,
		FieldBeta:  false,
		FieldD:     false,
	})

	if opts.Predicate != nil && !*opts.Predicate {
		c.Set(FieldRed, math.Inf(1))
		c.Set(FieldRop, math.Inf(1))
	}
	return c, nil
}
