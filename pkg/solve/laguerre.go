// Package solve implements Laguerre's method over complex numbers: a
// cubically convergent root-finder driven by a compiled codegen.Kernel.
package solve

import (
	"math"
	"math/cmplx"

	"github.com/mistarro/complex-plot/pkg/codegen"
)

// maxIterations bounds the refinement loop. The result at the cap is
// returned without signaling an error — per the reference behavior this is
// adapted from, which falls off the end of its iteration loop the same way.
const maxIterations = 100

// tolerance is the relative stopping threshold on the correction magnitude.
const tolerance = 1e-4

// l1Norm is |Re|+|Im|, the norm used throughout this package for
// convergence and divergence checks.
func l1Norm(c complex128) float64 {
	return math.Abs(real(c)) + math.Abs(imag(c))
}

func hasNaN(c complex128) bool {
	return math.IsNaN(real(c)) || math.IsNaN(imag(c))
}

// DirectionalSqrt returns a square root of x oriented so that it lies on
// the same side of the complex plane as b — i.e. Re(result)*Re(b) +
// Im(result)*Im(b) >= 0. This resolves the sign ambiguity in Laguerre's
// denominator so consecutive pixels converge to the same branch instead of
// flipping between roots.
func DirectionalSqrt(x, b complex128) complex128 {
	h := cmplx.Abs(x)
	u := real(x)
	v := imag(x)

	r := math.Sqrt((h + u) / 2)
	s := math.Copysign(math.Sqrt((h-u)/2), v)

	sign := math.Copysign(1, r*real(b)+s*imag(b))
	return complex(sign*r, sign*s)
}

// Laguerre refines w0 toward a root of F(z, ·) using the compiled kernel k,
// whose Degree gives the polynomial's degree n in w.
//
// A degree-0 kernel means the formula never mentions w at all, so F(z, ·)
// is constant and there is no root to refine toward; w0 is returned
// unchanged rather than driving Laguerre's formula through a 0/0 division.
func Laguerre(k *codegen.Kernel, z, w0 complex128) complex128 {
	if k.Degree == 0 {
		return w0
	}
	n := complex(float64(k.Degree), 0)
	nMinus1 := complex(float64(k.Degree-1), 0)

	w := w0
	for iter := 0; iter < maxIterations; iter++ {
		d0, d1, d2 := k.Eval(z, w)
		if l1Norm(d0) < epsMachine {
			return w
		}

		g := d1 / d0
		h := g*g - d2/d0
		delta := DirectionalSqrt(nMinus1*(n*h-g*g), g)
		c := n / (g + delta)

		w = w - c
		if hasNaN(c) || l1Norm(c) <= tolerance*(1+l1Norm(w)) {
			return w
		}
	}
	return w
}

// epsMachine is the IEEE-754 binary64 machine epsilon.
const epsMachine = 2.220446049250313e-16
