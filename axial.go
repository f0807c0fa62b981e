package hexgrid

// AxialPos addresses a hex cell with the minimal pair of integer
// coordinates (q, r). It is the hub of the coordinate system: every other
// representation (CubePos, the four offset variants, TilePos, world space)
// converts to and from it.
//
// It is vector-like: axial positions can be added, subtracted, and scaled
// by an integer. Any pair of integers is a valid AxialPos.
//
// Hex layouts come in two orientations, row ("pointy top") and column
// ("flat top"), so world-space methods come in *Row and *Col variants.
//
// For background, including interactive diagrams, see Red Blob Games:
// https://www.redblobgames.com/grids/hexagons/#coordinates-axial. Note that
// while positive r goes "downward" there, here it goes "upward": world y
// increases with r, and every basis constant is derived under that
// convention.
type AxialPos struct {
	Q, R int
}

// AxialFromTilePos reinterprets a storage index as an axial position,
// mapping X to Q and Y to R.
func AxialFromTilePos(tp TilePos) AxialPos {
	return AxialPos{Q: int(tp.X), R: int(tp.Y)}
}

// ToCube converts to cube coordinates, deriving the third component from
// the zero-sum constraint. Together with CubePos.ToAxial this is a
// bijection: every axial position has exactly one cube equivalent.
func (a AxialPos) ToCube() CubePos {
	return CubePos{Q: a.Q, R: a.R, S: -a.Q - a.R}
}

// Add returns a + b componentwise.
func (a AxialPos) Add(b AxialPos) AxialPos {
	return AxialPos{a.Q + b.Q, a.R + b.R}
}

// Sub returns a - b componentwise.
func (a AxialPos) Sub(b AxialPos) AxialPos {
	return AxialPos{a.Q - b.Q, a.R - b.R}
}

// Mul scales the position by an integer factor.
func (a AxialPos) Mul(k int) AxialPos {
	return AxialPos{a.Q * k, a.R * k}
}

// Magnitude is the hex-grid distance from the origin.
func (a AxialPos) Magnitude() int {
	return a.ToCube().Magnitude()
}

// DistanceFrom returns the hex-grid distance between a and other. It is
// symmetric, zero exactly when the positions are equal, and satisfies the
// triangle inequality.
func (a AxialPos) DistanceFrom(other AxialPos) int {
	return a.Sub(other).Magnitude()
}

// Less orders axial positions lexicographically by (Q, R), for use in
// sorted containers. AxialPos is comparable and usable directly as a map
// key.
func (a AxialPos) Less(other AxialPos) bool {
	if a.Q != other.Q {
		return a.Q < other.Q
	}
	return a.R < other.R
}

// CenterInWorldRow returns the center of the cell in world space for
// row-oriented ("pointy top") hexes, with the cell at (0, 0) centered on
// the world origin. gridSize scales x by the cell width; y is scaled by the
// cell height times the basis's own y contribution, which preserves the
// vertical overlap of adjacent rows under non-square cell sizes.
func (a AxialPos) CenterInWorldRow(gridSize GridSize) Vec2 {
	unscaled := RowBasis.MulVec2(Vec2{X: float64(a.Q), Y: float64(a.R)})
	return Vec2{
		X: gridSize.X * unscaled.X,
		Y: RowBasis[3] * gridSize.Y * unscaled.Y,
	}
}

// CenterInWorldCol returns the center of the cell in world space for
// column-oriented ("flat top") hexes, with the cell at (0, 0) centered on
// the world origin. The x scaling mirrors CenterInWorldRow's y scaling.
func (a AxialPos) CenterInWorldCol(gridSize GridSize) Vec2 {
	unscaled := ColBasis.MulVec2(Vec2{X: float64(a.Q), Y: float64(a.R)})
	return Vec2{
		X: ColBasis[0] * gridSize.X * unscaled.X,
		Y: gridSize.Y * unscaled.Y,
	}
}

// AxialFromWorldRow returns the axial position of the row-oriented
// ("pointy top") cell containing the given world position. It undoes the
// GridSize scaling, applies the inverse row basis to land in fractional
// axial space, and rounds to the nearest cell.
func AxialFromWorldRow(world Vec2, gridSize GridSize) AxialPos {
	normalized := Vec2{
		X: world.X / gridSize.X,
		Y: world.Y / (RowBasis[3] * gridSize.Y),
	}
	frac := FracAxialFromVec2(InvRowBasis.MulVec2(normalized))
	return frac.Round()
}

// AxialFromWorldCol returns the axial position of the column-oriented
// ("flat top") cell containing the given world position.
func AxialFromWorldCol(world Vec2, gridSize GridSize) AxialPos {
	normalized := Vec2{
		X: world.X / (ColBasis[0] * gridSize.X),
		Y: world.Y / gridSize.Y,
	}
	frac := FracAxialFromVec2(InvColBasis.MulVec2(normalized))
	return frac.Round()
}

// AsTilePos converts to a bounded storage index. The second result is false
// if either component is negative or lies outside mapSize.
func (a AxialPos) AsTilePos(mapSize MapSize) (TilePos, bool) {
	return TilePosFromInts(a.Q, a.R, mapSize)
}

// FractionalAxialPos is a point that lies somewhere inside a hex cell,
// typically the result of mapping a world position into hexagonal space.
// It can be rounded to the containing cell's AxialPos.
type FractionalAxialPos struct {
	Q, R float64
}

// FracAxialFromVec2 reinterprets a 2D vector in unit axial space as a
// fractional axial position.
func FracAxialFromVec2(v Vec2) FractionalAxialPos {
	return FractionalAxialPos{Q: v.X, R: v.Y}
}

// Round returns the axial position of the cell containing the point, by
// lifting into fractional cube space and rounding there (see
// FractionalCubePos.Round). A fractional position with exactly integer
// components rounds to those integers.
func (f FractionalAxialPos) Round() AxialPos {
	return f.ToFracCube().Round().ToAxial()
}
