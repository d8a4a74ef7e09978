// Package rootfind provides scalar root finders over a real function.
// Brent brackets a root and always terminates; Secant needs a starting
// point only and may wander off.
package rootfind

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoSignChange is returned when f(a) and f(b) have the same sign.
	ErrNoSignChange = errors.New("rootfind: no sign change in bracket")
	// ErrNoConvergence is returned when the iteration cap is reached.
	ErrNoConvergence = errors.New("rootfind: did not converge")
)

// Func is a continuous real function.
type Func func(x float64) float64

// BrentConfig controls Brent's method. Zero fields select the defaults.
type BrentConfig struct {
	XTol    float64 // absolute tolerance (default 1e-12)
	RTol    float64 // relative tolerance (default 2^-50)
	MaxIter int     // iteration cap (default 100)
}

func (c BrentConfig) withDefaults() BrentConfig {
	if c.XTol <= 0 {
		c.XTol = 1e-12
	}
	if c.RTol <= 0 {
		c.RTol = math.Exp2(-50)
	}
	if c.MaxIter <= 0 {
		c.MaxIter = 100
	}
	return c
}

// Brent finds a root of f in [a, b] using inverse quadratic interpolation
// with bisection fallback. f(a) and f(b) must differ in sign.
func Brent(f Func, a, b float64, cfg BrentConfig) (float64, error) {
	cfg = cfg.withDefaults()

	xpre, xcur := a, b
	var xblk, fblk, spre, scur float64
	fpre, fcur := f(xpre), f(xcur)

	if math.IsNaN(fpre) || math.IsNaN(fcur) {
		return 0, fmt.Errorf("%w: f is NaN at an endpoint of [%g, %g]", ErrNoSignChange, a, b)
	}
	if fpre*fcur > 0 {
		return 0, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoSignChange, a, fpre, b, fcur)
	}
	if fpre == 0 {
		return xpre, nil
	}
	if fcur == 0 {
		return xcur, nil
	}

	for i := 0; i < cfg.MaxIter; i++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		tol := (cfg.XTol + cfg.RTol*math.Abs(xcur)) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < tol {
			return xcur, nil
		}

		if math.Abs(spre) > tol && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// secant
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// inverse quadratic
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-tol) {
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		if math.Abs(scur) > tol {
			xcur += scur
		} else if sbis > 0 {
			xcur += tol
		} else {
			xcur -= tol
		}
		fcur = f(xcur)
	}
	return 0, fmt.Errorf("%w: %d iterations in [%g, %g]", ErrNoConvergence, cfg.MaxIter, a, b)
}

// Secant runs the secant method from x0. When two consecutive function
// values coincide the midpoint of the last two iterates is returned, since
// f is flat there to machine precision.
func Secant(f Func, x0, tol float64, maxIter int) (float64, error) {
	p0 := x0
	p1 := x0 * (1 + 1e-4)
	if p1 >= 0 {
		p1 += 1e-4
	} else {
		p1 -= 1e-4
	}
	q0, q1 := f(p0), f(p1)
	if math.Abs(q1) < math.Abs(q0) {
		p0, p1, q0, q1 = p1, p0, q1, q0
	}

	for i := 0; i < maxIter; i++ {
		if q1 == q0 {
			return (p1 + p0) / 2, nil
		}
		var p float64
		if math.Abs(q1) > math.Abs(q0) {
			p = (-q0/q1*p1 + p0) / (1 - q0/q1)
		} else {
			p = (-q1/q0*p0 + p1) / (1 - q1/q0)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return 0, fmt.Errorf("%w: secant step diverged at iteration %d", ErrNoConvergence, i)
		}
		if math.Abs(p-p1) < tol {
			return p, nil
		}
		p0, q0 = p1, q1
		p1 = p
		q1 = f(p1)
	}
	return 0, fmt.Errorf("%w: secant reached %d iterations", ErrNoConvergence, maxIter)
}
