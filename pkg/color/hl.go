// Package color implements the hue-lightness domain-coloring scheme: a
// complex number maps to a color by its argument (hue) and magnitude
// (lightness). It is the only coloring scheme this implementation supports;
// alternate schemes are out of scope.
package color

import (
	"math"
	"math/cmplx"
)

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// HL maps z to an RGB color. Slope a controls how quickly lightness falls
// off with magnitude: L = 2/(|z|^a + 1), so L=1 at |z|=1, L->2 (white) as
// z->0, and L->0 (black) as |z|->infinity. A NaN real or imaginary part
// (a divergent or undefined root) maps to neutral gray rather than
// propagating NaN into the image.
func HL(z complex128, a float64) RGB {
	if math.IsNaN(real(z)) || math.IsNaN(imag(z)) {
		return RGB{0.5, 0.5, 0.5}
	}

	hue := (3 / math.Pi) * cmplx.Phase(z) // arg(z) in (-pi, pi] -> hue in (-3, 3]
	lightness := 2 / (math.Pow(cmplx.Abs(z), a) + 1)

	q := math.Min(lightness, 1)
	p := lightness - q

	return RGB{
		R: clamp01(hpq(hue+8, p, q)),
		G: clamp01(hpq(hue+6, p, q)),
		B: clamp01(hpq(hue+10, p, q)),
	}
}

// hpq is the classic HSL-to-RGB piecewise-linear channel function,
// evaluated at an already hue-shifted angle h.
func hpq(h, p, q float64) float64 {
	hm := math.Mod(h, 6)
	if hm < 0 {
		hm += 6
	}
	switch {
	case hm < 1:
		return p + (q-p)*hm
	case hm < 3:
		return q
	case hm < 4:
		return p + (q-p)*(4-hm)
	default:
		return p
	}
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
