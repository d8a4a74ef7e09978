package models

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/lattice-estimator/redcost/reduction"
)

const (
	// DefaultOverhead is the progressive-BKZ overhead C of [Kyber20]:
	// lim_{β→∞} Σ_{i≤β} 2^(0.292·i) / 2^(0.292·β).
	DefaultOverhead = 5.46

	// minSieveBeta is the smallest β priced with the sieving fits; below it
	// they misbehave and CheNgu12 is used instead.
	minSieveBeta = 20
)

// D4F returns the number of dimensions for free of [EC:Ducas18]: sieving in
// dimension β − D4F(β) suffices to solve SVP in dimension β.
func D4F(beta int) float64 {
	fb := float64(beta)
	return math.Max(fb*math.Log(4.0/3.0)/math.Log(fb/(2*math.Pi*math.E)), 0)
}

// Kyber prices progressive BKZ with sieving and dimensions for free, after
// [Kyber20] and [AC:AGPS20]: C·max(d−β, 1) sieve calls, each costing
// C·2^(a·β' + b) with β' = β − D4F(β) and (a, b) from the NN cost table.
//
// The zero value uses the classical list-decoding sieve and C = 5.46.
type Kyber struct {
	nn string
	c  float64
}

// NewKyber returns a Kyber model. nn may be an alias or a full variant name
// ("" selects classical); c = 0 selects DefaultOverhead.
func NewKyber(nn string, c float64) (Kyber, error) {
	full, err := ResolveNN(nn)
	if err != nil {
		return Kyber{}, fmt.Errorf("kyber: %w", err)
	}
	if c == 0 {
		c = DefaultOverhead
	}
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return Kyber{}, fmt.Errorf("kyber: %w, got %v", ErrInvalidOverhead, c)
	}
	return Kyber{nn: full, c: c}, nil
}

func (Kyber) Name() string { return "Kyber" }

// NN returns the full name of the nearest-neighbour variant.
func (k Kyber) NN() string {
	if k.nn == "" {
		return NNClassical
	}
	return k.nn
}

// Overhead returns the progressive-BKZ overhead constant C.
func (k Kyber) Overhead() float64 {
	if k.c == 0 {
		return DefaultOverhead
	}
	return k.c
}

func (k Kyber) coeffs() NNCost {
	return nnCostTable[k.NN()]
}

func (k Kyber) Cost(beta, d, B int) float64 {
	if beta < minSieveBeta {
		logrus.Tracef("%s: β=%d below %d, pricing with CheNgu12", k.Name(), beta, minSieveBeta)
		return CheNgu12{}.Cost(beta, d, B)
	}
	c := k.Overhead()
	nn := k.coeffs()

	// "The cost of progressive BKZ with sieving up to blocksize b is
	// essentially C·(n − b) times the cost of sieving for SVP in dimension b."
	svpCalls := c * math.Max(float64(d-beta), 1)
	// β' is not rounded, so the cost stays continuous in β
	betaEff := float64(beta) - D4F(beta)
	gates := c * math.Exp2(nn.A*betaEff+nn.B)
	return reduction.LLL(d, B) + svpCalls*gates
}

// ShortVectors reuses the last sieve database; the yield is that of a sieve
// in dimension β − ⌊D4F(β)⌋.
func (k Kyber) ShortVectors(beta, d int, n int64, B int, preprocess bool) reduction.ShortVectorCost {
	yieldDim := float64(beta) - math.Floor(D4F(beta))
	return shortVectorsSieve(k, beta, d, n, B, preprocess, yieldDim)
}

// GJ21 shares the Kyber cost and produces short vectors as in
// [AC:GuoJoh21]: after BKZ-β, sieve the first sieveDim ≥ β vectors of the
// basis, with sieveDim chosen so the sieve costs about as much as the BKZ
// run.
type GJ21 struct {
	Kyber
	gh reduction.GaussianHeuristicFunc
}

// NewGJ21 returns a GJ21 model; see NewKyber for nn and c. A nil gh selects
// reduction.GaussianHeuristic.
func NewGJ21(nn string, c float64, gh reduction.GaussianHeuristicFunc) (GJ21, error) {
	k, err := NewKyber(nn, c)
	if err != nil {
		return GJ21{}, fmt.Errorf("gj21: %w", err)
	}
	return GJ21{Kyber: k, gh: gh}, nil
}

func (GJ21) Name() string { return "GJ21" }

func (g GJ21) gaussianHeuristic() reduction.GaussianHeuristicFunc {
	if g.gh == nil {
		return reduction.GaussianHeuristic
	}
	return g.gh
}

// SieveDim returns the dimension of the final sieve: the largest dimension
// whose sieve costs no more than the C·(d−β) SVP calls of BKZ-β, capped at d.
func (g GJ21) SieveDim(beta, d int) int {
	sieveDim := beta - int(math.Floor(D4F(beta)))
	if beta < d {
		nn := g.coeffs()
		dim := math.Floor(float64(sieveDim) + math.Log2(float64(d-beta)*g.Overhead())/nn.A)
		sieveDim = int(math.Min(float64(d), dim))
	}
	return sieveDim
}

// rho returns the length inflation of vectors found by sieving in dimension
// sieveDim on a BKZ-β reduced basis.
func (g GJ21) rho(beta, sieveDim int) float64 {
	rho := sieveRho
	if sieveDim <= beta {
		return rho
	}
	// the sieve block is taken to have unit volume; its first β Gram-Schmidt
	// norms follow the BKZ-β geometric series
	logDelta := math.Log2(reduction.Delta(float64(beta)))
	unit := make([]float64, sieveDim)
	floats.AddConst(1, unit)
	achieved := make([]float64, beta)
	for i := range achieved {
		achieved[i] = math.Exp(logDelta * float64(sieveDim-1-2*i))
	}
	gh := g.gaussianHeuristic()
	return rho * gh(unit) / gh(achieved)
}

func (g GJ21) ShortVectors(beta, d int, n int64, B int, preprocess bool) reduction.ShortVectorCost {
	sieveDim := g.SieveDim(beta, d)
	rho := g.rho(beta, sieveDim)

	if n == 1 {
		if preprocess {
			return reduction.ShortVectorCost{Rho: 1, Cost: g.Cost(beta, d, B), N: 1}
		}
		return reduction.ShortVectorCost{Rho: 1, Cost: 1, N: 1}
	}

	yield := sieveYield(float64(sieveDim))
	want := yield
	if n > 0 {
		want = float64(n)
	}
	runs := sieveRuns(want, yield)
	nn := g.coeffs()
	finalSieve := g.Overhead() * math.Exp2(nn.A*float64(sieveDim)+nn.B)
	return reduction.ShortVectorCost{
		Rho:  rho,
		Cost: runs * (g.Cost(beta, d, 0) + finalSieve),
		N:    runs * yield,
	}
}
