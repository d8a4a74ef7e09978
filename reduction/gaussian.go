package reduction

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GaussianHeuristicFunc returns the expected squared norm of a shortest
// vector of a lattice with the given Gram-Schmidt squared norms.
type GaussianHeuristicFunc func(profile []float64) float64

// GaussianHeuristic is the standard GaussianHeuristicFunc:
// gh(r) = exp((Σ log rᵢ − 2·log V_n(1)) / n), where V_n(1) is the volume of
// the n-dimensional unit ball. It returns NaN for an empty profile.
func GaussianHeuristic(profile []float64) float64 {
	n := len(profile)
	if n == 0 {
		return math.NaN()
	}
	logs := make([]float64, n)
	for i, r := range profile {
		logs[i] = math.Log(r)
	}
	logVol := floats.Sum(logs)
	return math.Exp((logVol - 2*ballLogVolume(n)) / float64(n))
}

// ballLogVolume is log V_n(1) = (n/2)·log π − lgamma(n/2 + 1).
func ballLogVolume(n int) float64 {
	half := float64(n) / 2
	lg, _ := math.Lgamma(half + 1)
	return half*math.Log(math.Pi) - lg
}
