package color

import (
	"math"
	"testing"
)

func approxRGB(t *testing.T, got RGB, want RGB, tol float64) {
	t.Helper()
	if math.Abs(got.R-want.R) > tol || math.Abs(got.G-want.G) > tol || math.Abs(got.B-want.B) > tol {
		t.Errorf("got %+v, want %+v (tol %v)", got, want, tol)
	}
}

func TestHLPureRed(t *testing.T) {
	approxRGB(t, HL(complex(1, 0), 1), RGB{1, 0, 0}, 1e-9)
}

func TestHLCyan(t *testing.T) {
	approxRGB(t, HL(complex(-1, 0), 1), RGB{0, 1, 1}, 1e-9)
}

func TestHLYellowish(t *testing.T) {
	got := HL(complex(0, 1), 1)
	if got.R <= got.B || got.G <= got.B {
		t.Errorf("HL(i) = %+v, want R and G both greater than B (yellow-leaning)", got)
	}
}

func TestHLZeroTendsToWhite(t *testing.T) {
	approxRGB(t, HL(complex(0, 0), 1), RGB{1, 1, 1}, 1e-9)
}

func TestHLInfinityTendsToBlack(t *testing.T) {
	approxRGB(t, HL(complex(1e300, 1e300), 1), RGB{0, 0, 0}, 1e-6)
}

func TestHLNaNIsGray(t *testing.T) {
	nan := math.NaN()
	approxRGB(t, HL(complex(nan, 0), 1), RGB{0.5, 0.5, 0.5}, 0)
	approxRGB(t, HL(complex(0, nan), 1), RGB{0.5, 0.5, 0.5}, 0)
}

func TestHLOutputAlwaysInUnitCube(t *testing.T) {
	for _, z := range []complex128{
		complex(3, -2), complex(-0.5, 0.5), complex(100, 0), complex(0.001, 0.001),
	} {
		got := HL(z, 0.7)
		for _, c := range []float64{got.R, got.G, got.B} {
			if c < 0 || c > 1 {
				t.Errorf("HL(%v) channel out of range: %+v", z, got)
			}
		}
	}
}
