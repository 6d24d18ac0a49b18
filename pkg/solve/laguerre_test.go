package solve

import (
	"math/cmplx"
	"testing"

	"github.com/mistarro/complex-plot/pkg/codegen"
	"github.com/mistarro/complex-plot/pkg/lang"
)

func mustKernel(t *testing.T, formula string) *codegen.Kernel {
	t.Helper()
	tree, err := lang.Parse(formula)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", formula, err)
	}
	k, err := codegen.Compile(tree)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", formula, err)
	}
	return k
}

func TestLaguerreConvergesToDirectedRoot(t *testing.T) {
	k := mustKernel(t, "w^2 - z")
	z := complex(4, 0)
	w0 := complex(1, 0)

	root := Laguerre(k, z, w0)

	resid := root*root - z
	if cmplx.Abs(resid) > 1e-8 {
		t.Fatalf("residual |w^2-z| = %v, want < 1e-8 (root=%v)", cmplx.Abs(resid), root)
	}
	if real(root) < 0 {
		t.Errorf("root = %v, want the +2 branch (direction of w0=1)", root)
	}
}

func TestLaguerreCubicRoot(t *testing.T) {
	k := mustKernel(t, "w^3 - 1")
	root := Laguerre(k, complex(0, 0), complex(1, 0))
	resid := root*root*root - 1
	if cmplx.Abs(resid) > 1e-6 {
		t.Errorf("residual = %v, want near 0 (root=%v)", cmplx.Abs(resid), root)
	}
}

func TestLaguerreDegreeZeroReturnsSeedUnchanged(t *testing.T) {
	k := mustKernel(t, "z^5 - 2")
	if k.Degree != 0 {
		t.Fatalf("degree = %d, want 0", k.Degree)
	}
	w0 := complex(1.58, 0)
	if got := Laguerre(k, complex(4, 0), w0); got != w0 {
		t.Errorf("Laguerre with degree-0 kernel = %v, want w0 = %v unchanged", got, w0)
	}
}

func TestDirectionalSqrt(t *testing.T) {
	got := DirectionalSqrt(complex(-4, 0), complex(1, 0))
	if re, im := real(got)*real(got)-imag(got)*imag(got), 2*real(got)*imag(got); cmplx.Abs(complex(re, im)-complex(-4, 0)) > 1e-9 {
		t.Fatalf("DirectionalSqrt(-4,1)^2 = %v, want -4", complex(re, im))
	}
	if dot := real(got)*1 + imag(got)*0; dot < 0 {
		t.Errorf("DirectionalSqrt(-4,1) = %v is not on the side of b=1: dot=%v", got, dot)
	}
}

func TestDirectionalSqrtAlwaysAgreesWithDirection(t *testing.T) {
	cases := []struct{ x, b complex128 }{
		{complex(-4, 0), complex(1, 0)},
		{complex(-4, 0), complex(-1, 0)},
		{complex(3, -5), complex(2, 1)},
		{complex(0, 0), complex(1, 1)},
	}
	for _, tc := range cases {
		got := DirectionalSqrt(tc.x, tc.b)
		sq := got * got
		if cmplx.Abs(sq-tc.x) > 1e-9 {
			t.Errorf("DirectionalSqrt(%v,%v)^2 = %v, want %v", tc.x, tc.b, sq, tc.x)
		}
		dot := real(got)*real(tc.b) + imag(got)*imag(tc.b)
		if dot < -1e-12 {
			t.Errorf("DirectionalSqrt(%v,%v) = %v disagrees with direction b (dot=%v)", tc.x, tc.b, got, dot)
		}
	}
}
