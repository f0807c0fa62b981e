package hexgrid

// Vec2 is a 2D vector used for world-space positions, offsets, and sizes
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o componentwise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o componentwise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// GridSize is the physical width and height of one hex cell in world units.
//
// The library performs no validation on it: a zero or negative component
// propagates through world-space mapping as degenerate arithmetic (divisions
// by zero yield Inf/NaN). Supplying a valid size is the caller's
// responsibility.
type GridSize struct {
	X, Y float64
}

// MapSize is the extent of a finite rectangular tile grid, in tiles.
type MapSize struct {
	Width, Height uint32
}

// Contains reports whether the tile position lies within the map extent.
func (m MapSize) Contains(tp TilePos) bool {
	return tp.X < m.Width && tp.Y < m.Height
}

// TilePos is a bounded storage index into a rectangular tile grid: both
// components are non-negative and, for any TilePos produced by this library,
// strictly within the bounds of the MapSize it was checked against.
type TilePos struct {
	X, Y uint32
}

// TilePosFromInts checks that (x, y) is non-negative and within size, and
// returns the corresponding TilePos. The second result is false when the pair
// lies outside the map; this is an ordinary outcome (probing a neighbor at a
// grid edge), not an error.
func TilePosFromInts(x, y int, size MapSize) (TilePos, bool) {
	if x < 0 || y < 0 || x >= int(size.Width) || y >= int(size.Height) {
		return TilePos{}, false
	}
	return TilePos{X: uint32(x), Y: uint32(y)}, true
}

// Less orders tile positions lexicographically by (X, Y), for use in sorted
// containers. TilePos is comparable and usable directly as a map key.
func (tp TilePos) Less(other TilePos) bool {
	if tp.X != other.X {
		return tp.X < other.X
	}
	return tp.Y < other.Y
}
