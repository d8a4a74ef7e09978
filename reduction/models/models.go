// Package models provides the BKZ cost models of the reduction package.
//
// Enumeration-based: CheNgu12, ABFKSW20, ABLR21.
// Sieving-based: ADPS16 (core-SVP, no LLL term), BDGL16, LaaMosPol14,
// Kyber and GJ21 (sieving with dimensions for free).
//
// Except for ADPS16, every model prices BKZ-β as
//
//	LLL(d, B) + SVPRepeat(β, d) · 2^e(β)
//
// where e(β) is the model's oracle exponent. All model values are immutable;
// zero values are usable and select each model's default parameters.
package models

import (
	"errors"
	"math"

	"github.com/lattice-estimator/redcost/reduction"
)

var (
	// ErrUnknownMode is returned for an ADPS16 mode other than classical, quantum or paranoid.
	ErrUnknownMode = errors.New("unknown ADPS16 mode")
	// ErrUnknownNNVariant is returned for a nearest-neighbour variant missing from the NN cost table.
	ErrUnknownNNVariant = errors.New("unknown nearest-neighbour variant")
	// ErrUnknownModel is returned by New for an unrecognised model name.
	ErrUnknownModel = errors.New("unknown cost model")
	// ErrInvalidOverhead is returned for a progressive overhead constant that is not finite and > 0.
	ErrInvalidOverhead = errors.New("progressive overhead C must be finite and > 0")
	// ErrUnknownStrategy is returned by ShortVectorsWith for a strategy other than model, lll or simple.
	ErrUnknownStrategy = errors.New("unknown short-vector strategy")
)

// oracleCost returns LLL(d, B) + SVPRepeat(β, d) · 2^exponent.
func oracleCost(beta, d, B int, exponent float64) float64 {
	repeat := float64(reduction.SVPRepeat(beta, d))
	return reduction.LLL(d, B) + repeat*math.Exp2(exponent)
}

var (
	_ reduction.ShortVectorModel = CheNgu12{}
	_ reduction.ShortVectorModel = ABFKSW20{}
	_ reduction.ShortVectorModel = ABLR21{}
	_ reduction.ShortVectorModel = ADPS16{}
	_ reduction.ShortVectorModel = BDGL16{}
	_ reduction.ShortVectorModel = LaaMosPol14{}
	_ reduction.ShortVectorModel = Kyber{}
	_ reduction.ShortVectorModel = GJ21{}
)
