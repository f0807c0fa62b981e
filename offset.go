package hexgrid

// The four offset coordinate variants label hex cells so that they line up
// with rectangular array storage: one axis is sheared by half the other,
// with the shear rounded according to the variant's odd or even parity
// convention. Row variants pair with row-oriented ("pointy top") layouts,
// Col variants with column-oriented ("flat top") layouts.
//
// Each variant converts to and from AxialPos by adding or subtracting the
// same parity-dependent delta, so every conversion is a bijection over all
// integers.

// floorDiv2 divides by two rounding toward negative infinity, so that
// -3 yields -2 rather than the truncated -1. The shear delta must be the
// same function of the unchanged axis in both conversion directions, and
// flooring keeps the odd-parity labeling consistent across negative
// coordinates.
func floorDiv2(x int) int {
	if x < 0 {
		return (x - 1) / 2
	}
	return x / 2
}

// ceilDiv2 divides by two rounding the magnitude up: (x+1)/2 for
// non-negative x and (x-1)/2 for negative x. This is the even-parity
// counterpart of floorDiv2.
func ceilDiv2(x int) int {
	if x < 0 {
		return (x - 1) / 2
	}
	return (x + 1) / 2
}

// RowOddPos is the offset labeling for row-oriented layouts in which odd
// rows are shoved right.
type RowOddPos struct {
	Q, R int
}

// ToRowOdd converts to the row-odd offset labeling.
func (a AxialPos) ToRowOdd() RowOddPos {
	return RowOddPos{Q: a.Q + floorDiv2(a.R), R: a.R}
}

// ToAxial converts back to the axial labeling.
func (o RowOddPos) ToAxial() AxialPos {
	return AxialPos{Q: o.Q - floorDiv2(o.R), R: o.R}
}

// RowOddFromTilePos reinterprets a storage index as a row-odd position,
// mapping X to Q and Y to R.
func RowOddFromTilePos(tp TilePos) RowOddPos {
	return RowOddPos{Q: int(tp.X), R: int(tp.Y)}
}

// CenterInWorld returns the center of the cell in world space, assuming
// row-oriented ("pointy top") cells with cell (0, 0) centered on the
// origin.
func (o RowOddPos) CenterInWorld(gridSize GridSize) Vec2 {
	return o.ToAxial().CenterInWorldRow(gridSize)
}

// RowOddFromWorldPos returns the row-odd position of the cell containing
// the given world position.
func RowOddFromWorldPos(world Vec2, gridSize GridSize) RowOddPos {
	return AxialFromWorldRow(world, gridSize).ToRowOdd()
}

// AsTilePos converts to a bounded storage index. The second result is
// false if either component is negative or lies outside mapSize.
func (o RowOddPos) AsTilePos(mapSize MapSize) (TilePos, bool) {
	return TilePosFromInts(o.Q, o.R, mapSize)
}

// Less orders positions lexicographically by (Q, R).
func (o RowOddPos) Less(other RowOddPos) bool {
	if o.Q != other.Q {
		return o.Q < other.Q
	}
	return o.R < other.R
}

// RowEvenPos is the offset labeling for row-oriented layouts in which even
// rows are shoved right.
type RowEvenPos struct {
	Q, R int
}

// ToRowEven converts to the row-even offset labeling.
func (a AxialPos) ToRowEven() RowEvenPos {
	return RowEvenPos{Q: a.Q + ceilDiv2(a.R), R: a.R}
}

// ToAxial converts back to the axial labeling.
func (o RowEvenPos) ToAxial() AxialPos {
	return AxialPos{Q: o.Q - ceilDiv2(o.R), R: o.R}
}

// RowEvenFromTilePos reinterprets a storage index as a row-even position.
func RowEvenFromTilePos(tp TilePos) RowEvenPos {
	return RowEvenPos{Q: int(tp.X), R: int(tp.Y)}
}

// CenterInWorld returns the center of the cell in world space, assuming
// row-oriented ("pointy top") cells with cell (0, 0) centered on the
// origin.
func (o RowEvenPos) CenterInWorld(gridSize GridSize) Vec2 {
	return o.ToAxial().CenterInWorldRow(gridSize)
}

// RowEvenFromWorldPos returns the row-even position of the cell containing
// the given world position.
func RowEvenFromWorldPos(world Vec2, gridSize GridSize) RowEvenPos {
	return AxialFromWorldRow(world, gridSize).ToRowEven()
}

// AsTilePos converts to a bounded storage index. The second result is
// false if either component is negative or lies outside mapSize.
func (o RowEvenPos) AsTilePos(mapSize MapSize) (TilePos, bool) {
	return TilePosFromInts(o.Q, o.R, mapSize)
}

// Less orders positions lexicographically by (Q, R).
func (o RowEvenPos) Less(other RowEvenPos) bool {
	if o.Q != other.Q {
		return o.Q < other.Q
	}
	return o.R < other.R
}

// ColOddPos is the offset labeling for column-oriented layouts in which odd
// columns are shoved up.
type ColOddPos struct {
	Q, R int
}

// ToColOdd converts to the column-odd offset labeling.
func (a AxialPos) ToColOdd() ColOddPos {
	return ColOddPos{Q: a.Q, R: a.R + floorDiv2(a.Q)}
}

// ToAxial converts back to the axial labeling.
func (o ColOddPos) ToAxial() AxialPos {
	return AxialPos{Q: o.Q, R: o.R - floorDiv2(o.Q)}
}

// ColOddFromTilePos reinterprets a storage index as a column-odd position.
func ColOddFromTilePos(tp TilePos) ColOddPos {
	return ColOddPos{Q: int(tp.X), R: int(tp.Y)}
}

// CenterInWorld returns the center of the cell in world space, assuming
// column-oriented ("flat top") cells with cell (0, 0) centered on the
// origin.
func (o ColOddPos) CenterInWorld(gridSize GridSize) Vec2 {
	return o.ToAxial().CenterInWorldCol(gridSize)
}

// ColOddFromWorldPos returns the column-odd position of the cell containing
// the given world position.
func ColOddFromWorldPos(world Vec2, gridSize GridSize) ColOddPos {
	return AxialFromWorldCol(world, gridSize).ToColOdd()
}

// AsTilePos converts to a bounded storage index. The second result is
// false if either component is negative or lies outside mapSize.
func (o ColOddPos) AsTilePos(mapSize MapSize) (TilePos, bool) {
	return TilePosFromInts(o.Q, o.R, mapSize)
}

// Less orders positions lexicographically by (Q, R).
func (o ColOddPos) Less(other ColOddPos) bool {
	if o.Q != other.Q {
		return o.Q < other.Q
	}
	return o.R < other.R
}

// ColEvenPos is the offset labeling for column-oriented layouts in which
// even columns are shoved up.
type ColEvenPos struct {
	Q, R int
}

// ToColEven converts to the column-even offset labeling.
func (a AxialPos) ToColEven() ColEvenPos {
	return ColEvenPos{Q: a.Q, R: a.R + ceilDiv2(a.Q)}
}

// ToAxial converts back to the axial labeling.
func (o ColEvenPos) ToAxial() AxialPos {
	return AxialPos{Q: o.Q, R: o.R - ceilDiv2(o.Q)}
}

// ColEvenFromTilePos reinterprets a storage index as a column-even position.
func ColEvenFromTilePos(tp TilePos) ColEvenPos {
	return ColEvenPos{Q: int(tp.X), R: int(tp.Y)}
}

// CenterInWorld returns the center of the cell in world space, assuming
// column-oriented ("flat top") cells with cell (0, 0) centered on the
// origin.
func (o ColEvenPos) CenterInWorld(gridSize GridSize) Vec2 {
	return o.ToAxial().CenterInWorldCol(gridSize)
}

// ColEvenFromWorldPos returns the column-even position of the cell
// containing the given world position.
func ColEvenFromWorldPos(world Vec2, gridSize GridSize) ColEvenPos {
	return AxialFromWorldCol(world, gridSize).ToColEven()
}

// AsTilePos converts to a bounded storage index. The second result is
// false if either component is negative or lies outside mapSize.
func (o ColEvenPos) AsTilePos(mapSize MapSize) (TilePos, bool) {
	return TilePosFromInts(o.Q, o.R, mapSize)
}

// Less orders positions lexicographically by (Q, R).
func (o ColEvenPos) Less(other ColEvenPos) bool {
	if o.Q != other.Q {
		return o.Q < other.Q
	}
	return o.R < other.R
}
