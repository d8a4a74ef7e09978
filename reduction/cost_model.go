package reduction

// CostModel estimates the cost of BKZ-β on a d-dimensional lattice whose
// basis has B-bit entries (B = 0 when unknown).
// Implementations are stateless apart from fixed coefficients.
type CostModel interface {
	// Name is the literature tag of the model, e.g. "BDGL16".
	Name() string

	// Cost returns the abstract operation count. Never negative; +Inf when
	// the value overflows float64.
	Cost(beta, d, B int) float64
}

// ShortVectorModel is a CostModel that also prices producing many short
// vectors rather than a single shortest one.
type ShortVectorModel interface {
	CostModel

	// ShortVectors returns the cost of outputting at least n vectors that are
	// Rho times longer than the SVP-oracle output. n ≤ 0 lets the strategy
	// pick a natural batch size. With preprocess false the basis is assumed
	// to be BKZ-β reduced already.
	ShortVectors(beta, d int, n int64, B int, preprocess bool) ShortVectorCost
}

// ShortVectorCost is the outcome of a ShortVectors call.
type ShortVectorCost struct {
	// Rho is the length inflation relative to one SVP-oracle call.
	Rho float64
	// Cost is the total operation count.
	Cost float64
	// N is the number of vectors produced; never below the requested count.
	// It is a float64 because sieve yields exceed the int64 range at large β.
	N float64
}
