package models

import (
	"math"

	"github.com/lattice-estimator/redcost/reduction"
)

// log₂ of the cycles spent per enumeration node.
var (
	log2CheNgu12NodeCost = math.Log2(100)
	log2NodeCost         = math.Log2(64)
)

// CheNgu12 prices enumeration with the fit of Table 4 in [CheNgu12]:
// 2^(0.2702·β·ln β − 1.0192·β + 16.10) nodes at 100 cycles each.
type CheNgu12 struct{}

func (CheNgu12) Name() string { return "CheNgu12" }

func (CheNgu12) Cost(beta, d, B int) float64 {
	fb := float64(beta)
	// the fit was done against the natural logarithm
	exponent := 0.270188776350190*fb*math.Log(fb) -
		1.0192050451318417*fb +
		16.10253135200765 +
		log2CheNgu12NodeCost
	return oracleCost(beta, d, B, exponent)
}

func (m CheNgu12) ShortVectors(beta, d int, n int64, B int, preprocess bool) reduction.ShortVectorCost {
	return ShortVectorsLLL(m, beta, d, n, B, preprocess)
}

// ABFKSW20 prices enumeration following [C:ABFKSW20]. The quasi-quadratic
// regime applies once β > 92 and 1.5β < d.
type ABFKSW20 struct{}

func (ABFKSW20) Name() string { return "ABFKSW20" }

func (ABFKSW20) Cost(beta, d, B int) float64 {
	fb := float64(beta)
	var exponent float64
	if 1.5*fb >= float64(d) || beta <= 92 {
		exponent = 0.1839*fb*math.Log2(fb) - 0.995*fb + 16.25 + log2NodeCost
	} else {
		exponent = 0.125*fb*math.Log2(fb) - 0.547*fb + 10.4 + log2NodeCost
	}
	return oracleCost(beta, d, B, exponent)
}

func (m ABFKSW20) ShortVectors(beta, d int, n int64, B int, preprocess bool) reduction.ShortVectorCost {
	return ShortVectorsLLL(m, beta, d, n, B, preprocess)
}

// ABLR21 prices enumeration following [C:ABLR21], crossing over at β = 97.
type ABLR21 struct{}

func (ABLR21) Name() string { return "ABLR21" }

func (ABLR21) Cost(beta, d, B int) float64 {
	fb := float64(beta)
	var exponent float64
	if 1.5*fb >= float64(d) || beta <= 97 {
		exponent = 0.1839*fb*math.Log2(fb) - 1.077*fb + 29.12 + log2NodeCost
	} else {
		exponent = 0.1250*fb*math.Log2(fb) - 0.654*fb + 25.84 + log2NodeCost
	}
	return oracleCost(beta, d, B, exponent)
}

func (m ABLR21) ShortVectors(beta, d int, n int64, B int, preprocess bool) reduction.ShortVectorCost {
	return ShortVectorsLLL(m, beta, d, n, B, preprocess)
}
