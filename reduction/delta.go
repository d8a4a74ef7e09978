package reduction

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lattice-estimator/redcost/reduction/internal/rootfind"
)

// ErrInvalidDelta is returned when a root-Hermite factor is not a finite value > 1.
var ErrInvalidDelta = errors.New("root-Hermite factor must be finite and > 1")

// smallBlockDelta holds δ measured for BKZ on random q-ary lattices of
// dimension 320 (32 trials each, fplll default strategies). It is a step
// function: a breakpoint's value applies to every β from that breakpoint up
// to, but excluding, the next breakpoint.
var smallBlockDelta = []struct {
	beta  float64
	delta float64
}{
	{2, 1.02190},
	{5, 1.01862},
	{10, 1.01616},
	{15, 1.01485},
	{20, 1.01420},
	{25, 1.01342},
	{28, 1.01331},
	{40, 1.01295},
}

const (
	// asymptoticBeta is the first block size served by the closed form, and
	// the floor of the β search.
	asymptoticBeta = 40
	// maxSearchBeta caps the bracketing root search.
	maxSearchBeta = 1 << 16
	// rootSlack is subtracted before rounding a root up so that a root that
	// sits on an integer up to float noise is not pushed one block size up.
	rootSlack = 1e-8
)

// Delta returns the root-Hermite factor reached by BKZ with block size β,
// after rounding β to the nearest integer.
func Delta(beta float64) float64 {
	return DeltaUnrounded(math.Round(beta))
}

// DeltaUnrounded is Delta without rounding β. It is continuous for β > 40,
// which is what the β search relies on.
func DeltaUnrounded(beta float64) float64 {
	switch {
	case beta <= 2:
		return smallBlockDelta[0].delta
	case beta < asymptoticBeta:
		for i := 1; i < len(smallBlockDelta); i++ {
			if smallBlockDelta[i].beta > beta {
				return smallBlockDelta[i-1].delta
			}
		}
		return smallBlockDelta[len(smallBlockDelta)-1].delta
	case beta == asymptoticBeta:
		return smallBlockDelta[len(smallBlockDelta)-1].delta
	default:
		// δ = (β/(2πe) · (πβ)^(1/β))^(1/(2(β-1)))
		base := beta / (2 * math.Pi * math.E) * math.Pow(math.Pi*beta, 1/beta)
		return math.Pow(base, 1/(2*(beta-1)))
	}
}

func validateDelta(delta float64) error {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 1 {
		return fmt.Errorf("%w, got %v", ErrInvalidDelta, delta)
	}
	return nil
}

// Beta returns the smallest block size expected to reach root-Hermite factor
// δ. The result is never below 40.
//
// The root of DeltaUnrounded(β) − δ is bracketed in [40, 65536] with Brent's
// method. If that fails (no sign change, or the iteration cap is hit) the
// monotone search of BetaSimple is used instead.
func Beta(delta float64) (int, error) {
	if err := validateDelta(delta); err != nil {
		return 0, err
	}
	if DeltaUnrounded(asymptoticBeta) < delta {
		return asymptoticBeta, nil
	}

	f := func(beta float64) float64 { return DeltaUnrounded(beta) - delta }
	root, err := rootfind.Brent(f, asymptoticBeta, maxSearchBeta, rootfind.BrentConfig{MaxIter: 500})
	if err != nil {
		logrus.Debugf("beta(%v): root finding failed (%v), falling back to monotone search", delta, err)
		return BetaSimple(delta)
	}
	return int(math.Ceil(root - rootSlack)), nil
}

// BetaSimple returns the first block size β ≥ 40 with Delta(β) < δ. It
// doubles β, then steps by 10, then by 1, and always terminates for δ > 1.
// Because the comparison is strict, BetaSimple(Delta(β)) is β+1.
func BetaSimple(delta float64) (int, error) {
	if err := validateDelta(delta); err != nil {
		return 0, err
	}

	beta := asymptoticBeta
	for DeltaUnrounded(float64(2*beta)) > delta {
		beta *= 2
	}
	for DeltaUnrounded(float64(beta+10)) > delta {
		beta += 10
	}
	for DeltaUnrounded(float64(beta)) >= delta {
		beta++
	}
	return beta, nil
}

// BetaSecant estimates β with the secant method started at β = 100. Results
// below 40 and non-convergence fall back to BetaSimple.
func BetaSecant(delta float64) (int, error) {
	if err := validateDelta(delta); err != nil {
		return 0, err
	}

	f := func(beta float64) float64 { return DeltaUnrounded(beta) - delta }
	root, err := rootfind.Secant(f, 100, 1.48e-8, 500)
	if err != nil {
		logrus.Debugf("beta_secant(%v): %v, falling back to monotone search", delta, err)
		return BetaSimple(delta)
	}
	beta := int(math.Ceil(root))
	if beta < asymptoticBeta {
		logrus.Debugf("beta_secant(%v): root %v below %d, falling back to monotone search", delta, root, asymptoticBeta)
		return BetaSimple(delta)
	}
	return beta, nil
}
