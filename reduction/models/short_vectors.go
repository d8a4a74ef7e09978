package models

import (
	"fmt"
	"math"

	"github.com/lattice-estimator/redcost/reduction"
)

const (
	// defaultVectorCount is the batch size picked when the caller leaves N unset
	// for the LLL and BKZ repetition strategies.
	defaultVectorCount = 1000

	// sieveYieldRate: a sieve in dimension β leaves about 2^(0.2075·β)
	// vectors of length at most sieveRho times the shortest.
	sieveYieldRate = 0.2075
	sieveRho       = 1.1547
)

// ShortVectorsLLL rerandomises a BKZ-β reduced basis and runs LLL once per
// output vector, as in [EC:Albrecht17]. Vectors are about twice as long as
// the shortest; N = 1 is a single SVP call on top of preprocessing.
func ShortVectorsLLL(m reduction.CostModel, beta, d int, n int64, B int, preprocess bool) reduction.ShortVectorCost {
	var cost float64
	if preprocess {
		cost = m.Cost(beta, d, B)
	}
	if n == 1 {
		return reduction.ShortVectorCost{Rho: 1, Cost: cost + 1, N: 1}
	}
	if n <= 0 {
		n = defaultVectorCount
	}
	count := float64(n)
	return reduction.ShortVectorCost{Rho: 2, Cost: cost + count*reduction.LLL(d, 0), N: count}
}

// ShortVectorsSimple rerandomises and reruns the full BKZ-β for every output
// vector. The preprocess flag only matters for N = 1.
func ShortVectorsSimple(m reduction.CostModel, beta, d int, n int64, B int, preprocess bool) reduction.ShortVectorCost {
	if n == 1 {
		if preprocess {
			return reduction.ShortVectorCost{Rho: 1, Cost: m.Cost(beta, d, B), N: 1}
		}
		return reduction.ShortVectorCost{Rho: 1, Cost: 1, N: 1}
	}
	if n <= 0 {
		n = defaultVectorCount
	}
	count := float64(n)
	return reduction.ShortVectorCost{Rho: 1, Cost: count * m.Cost(beta, d, B), N: count}
}

// sieveYield is the number of short vectors one sieve in dimension dim
// leaves, at least one.
func sieveYield(dim float64) float64 {
	return math.Max(math.Floor(math.Exp2(sieveYieldRate*dim)), 1)
}

// sieveRuns is the number of sieve runs needed for want vectors at the
// given yield per run. A yield that overflows to +Inf covers any request
// with a single run.
func sieveRuns(want, yield float64) float64 {
	if math.IsInf(yield, 1) {
		return 1
	}
	return math.Max(math.Ceil(want/yield), 1)
}

// shortVectorsSieve reuses the database of the last sieve call [Kyber17]:
// one BKZ-β run yields sieveYield(yieldDim) vectors, and the whole run is
// repeated until at least n vectors are available. The repeated runs are
// priced without the bit size, as the basis is already reduced.
func shortVectorsSieve(m reduction.CostModel, beta, d int, n int64, B int, preprocess bool, yieldDim float64) reduction.ShortVectorCost {
	if n == 1 {
		if preprocess {
			return reduction.ShortVectorCost{Rho: 1, Cost: m.Cost(beta, d, B), N: 1}
		}
		return reduction.ShortVectorCost{Rho: 1, Cost: 1, N: 1}
	}
	yield := sieveYield(yieldDim)
	want := yield
	if n > 0 {
		want = float64(n)
	}
	runs := sieveRuns(want, yield)
	return reduction.ShortVectorCost{Rho: sieveRho, Cost: runs * m.Cost(beta, d, 0), N: runs * yield}
}

// Short-vector strategies accepted by ShortVectorsWith.
const (
	StrategyModel  = "model"  // the model's own strategy
	StrategyLLL    = "lll"    // ShortVectorsLLL
	StrategySimple = "simple" // ShortVectorsSimple
)

// Strategies lists the names accepted by ShortVectorsWith.
func Strategies() []string {
	return []string{StrategyModel, StrategyLLL, StrategySimple}
}

// ShortVectorsWith prices short vectors for m with the named strategy
// instead of the one m picks itself. "" selects StrategyModel.
func ShortVectorsWith(strategy string, m reduction.ShortVectorModel, beta, d int, n int64, B int, preprocess bool) (reduction.ShortVectorCost, error) {
	switch strategy {
	case "", StrategyModel:
		return m.ShortVectors(beta, d, n, B, preprocess), nil
	case StrategyLLL:
		return ShortVectorsLLL(m, beta, d, n, B, preprocess), nil
	case StrategySimple:
		return ShortVectorsSimple(m, beta, d, n, B, preprocess), nil
	default:
		return reduction.ShortVectorCost{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownStrategy, strategy, Strategies())
	}
}
