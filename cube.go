package hexgrid

import "math"

// CubePos addresses a hex cell with three integer components satisfying
// Q + R + S = 0. It is the canonical representation for distance and for
// rounding fractional positions, since all three axes are symmetric.
//
// Cube positions are only ever produced by AxialPos.ToCube or
// FractionalCubePos.Round, both of which maintain the zero-sum invariant;
// the exported fields exist for reading, and constructing one by literal
// with a nonzero sum breaks the distance formula.
type CubePos struct {
	Q, R, S int
}

// ToAxial converts to the equivalent axial position by dropping S. This is
// the inverse of AxialPos.ToCube; no information is lost because S is
// determined by Q and R.
func (c CubePos) ToAxial() AxialPos {
	return AxialPos{Q: c.Q, R: c.R}
}

// Add returns c + o componentwise. The sum of two zero-sum positions is
// itself zero-sum.
func (c CubePos) Add(o CubePos) CubePos {
	return CubePos{c.Q + o.Q, c.R + o.R, c.S + o.S}
}

// Sub returns c - o componentwise.
func (c CubePos) Sub(o CubePos) CubePos {
	return CubePos{c.Q - o.Q, c.R - o.R, c.S - o.S}
}

// Magnitude is the hex-grid distance from the origin: (|Q| + |R| + |S|) / 2.
// The halving is exact because the components sum to zero, so the largest
// absolute component always equals the sum of the other two.
func (c CubePos) Magnitude() int {
	return (absInt(c.Q) + absInt(c.R) + absInt(c.S)) / 2
}

// DistanceFrom returns the hex-grid distance between c and other.
func (c CubePos) DistanceFrom(other CubePos) int {
	return c.Sub(other).Magnitude()
}

// Less orders cube positions lexicographically by (Q, R, S).
func (c CubePos) Less(other CubePos) bool {
	if c.Q != other.Q {
		return c.Q < other.Q
	}
	if c.R != other.R {
		return c.R < other.R
	}
	return c.S < other.S
}

// FractionalCubePos is a point inside the hex grid in cube space, typically
// an intermediate result of mapping a world position into hex space. Its
// components nominally sum to zero but carry floating-point error.
type FractionalCubePos struct {
	Q, R, S float64
}

// ToFracCube converts a fractional axial position to fractional cube space,
// deriving S from the zero-sum constraint.
func (f FractionalAxialPos) ToFracCube() FractionalCubePos {
	return FractionalCubePos{Q: f.Q, R: f.R, S: -f.Q - f.R}
}

// Round returns the nearest integer cube position whose components sum to
// zero exactly. Each axis is rounded to its nearest integer independently,
// then the axis with the largest rounding residual is discarded and
// recomputed from the other two, restoring the invariant with the least
// total displacement.
//
// Ties between residuals are resolved in a fixed order: Q is recomputed only
// when its residual is strictly the largest, otherwise R when its residual
// is strictly larger than S's, otherwise S. The choice only matters for
// points exactly on a cell boundary, where it picks one of the two
// equidistant cells deterministically.
func (f FractionalCubePos) Round() CubePos {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)

	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return CubePos{Q: int(q), R: int(r), S: int(s)}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
