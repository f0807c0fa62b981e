package hexgrid

// Exact decimal expansions of the sqrt(3)-derived factors the orientation
// bases are built from. Pre-computed so the bases and their inverses are
// compile-time constants rather than runtime math.Sqrt results.
const (
	halfSqrt3      = 0.86602540378443865 // sqrt(3)/2
	invSqrt3       = 0.57735026918962576 // 1/sqrt(3)
	doubleInvSqrt3 = 1.1547005383792515  // 2/sqrt(3)
)

// Mat2 is a 2x2 matrix stored column-major: [ax, ay, bx, by].
//
//	| ax  bx |
//	| ay  by |
type Mat2 [4]float64

// MulVec2 applies the matrix to a column vector.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Mul returns the matrix product m * n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
	}
}

// RowBasis maps unit axial space to unit world space for row-oriented
// ("pointy top") hexes: the q axis runs along +x and the r axis runs up and
// to the right. Both basis vectors have magnitude 1 so that world-space
// scaling by GridSize stays a separate, per-axis step. Positive r moves
// upward in world space.
var RowBasis = Mat2{1, 0, 0.5, halfSqrt3}

// InvRowBasis is the analytic inverse of RowBasis. It is written out rather
// than derived numerically so the round trip through world space stays exact
// up to float rounding.
var InvRowBasis = Mat2{1, 0, -invSqrt3, doubleInvSqrt3}

// ColBasis maps unit axial space to unit world space for column-oriented
// ("flat top") hexes: the r axis runs along +y and the q axis runs up and to
// the right. Positive r moves upward in world space.
var ColBasis = Mat2{halfSqrt3, 0.5, 0, 1}

// InvColBasis is the analytic inverse of ColBasis.
var InvColBasis = Mat2{doubleInvSqrt3, -invSqrt3, 0, 1}
