package hexgrid

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec2(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMat2(t *testing.T, name string, got, want Mat2) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

var mat2Identity = Mat2{1, 0, 0, 1}

// --- constants ---

func TestSqrt3Constants(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	assertNear(t, "halfSqrt3", halfSqrt3, sqrt3/2)
	assertNear(t, "invSqrt3", invSqrt3, 1/sqrt3)
	assertNear(t, "doubleInvSqrt3", doubleInvSqrt3, 2/sqrt3)
}

// --- Mat2 ---

func TestMat2MulVec2(t *testing.T) {
	// | 1 3 | |5|   | 5+18 |   |23|
	// | 2 4 | |6| = | 10+24| = |34|
	m := Mat2{1, 2, 3, 4}
	assertVec2(t, "m*v", m.MulVec2(Vec2{5, 6}), Vec2{23, 34})
}

func TestMat2MulIdentity(t *testing.T) {
	m := Mat2{1, 2, 3, 4}
	assertMat2(t, "m*id", m.Mul(mat2Identity), m)
	assertMat2(t, "id*m", mat2Identity.Mul(m), m)
}

// --- basis inverses ---

// The inverses are written out analytically; check algebraically that each
// really is the two-sided inverse of its basis, since the world round trip
// rests on it.

func TestRowBasisInverse(t *testing.T) {
	assertMat2(t, "row*inv", RowBasis.Mul(InvRowBasis), mat2Identity)
	assertMat2(t, "inv*row", InvRowBasis.Mul(RowBasis), mat2Identity)
}

func TestColBasisInverse(t *testing.T) {
	assertMat2(t, "col*inv", ColBasis.Mul(InvColBasis), mat2Identity)
	assertMat2(t, "inv*col", InvColBasis.Mul(ColBasis), mat2Identity)
}

// --- basis geometry ---

func TestRowBasisAxes(t *testing.T) {
	// q axis runs along +x, r axis up and to the right at 60 degrees.
	assertVec2(t, "q axis", RowBasis.MulVec2(Vec2{1, 0}), Vec2{1, 0})
	assertVec2(t, "r axis", RowBasis.MulVec2(Vec2{0, 1}), Vec2{0.5, halfSqrt3})
}

func TestColBasisAxes(t *testing.T) {
	// r axis runs along +y, q axis up and to the right at 30 degrees.
	assertVec2(t, "q axis", ColBasis.MulVec2(Vec2{1, 0}), Vec2{halfSqrt3, 0.5})
	assertVec2(t, "r axis", ColBasis.MulVec2(Vec2{0, 1}), Vec2{0, 1})
}

func TestBasisVectorsUnitLength(t *testing.T) {
	for _, v := range []Vec2{
		RowBasis.MulVec2(Vec2{1, 0}),
		RowBasis.MulVec2(Vec2{0, 1}),
		ColBasis.MulVec2(Vec2{1, 0}),
		ColBasis.MulVec2(Vec2{0, 1}),
	} {
		assertNear(t, "length", math.Hypot(v.X, v.Y), 1)
	}
}
