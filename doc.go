// Package hexgrid is a coordinate geometry library for hexagonal grids.
//
// Hexgrid defines the interchangeable integer coordinate systems used to
// address hex cells — axial, cube, and the four offset labelings — converts
// losslessly between them, computes grid distance, and maps cells to and
// from continuous world-space positions in both hex orientations.
//
// # Coordinate systems
//
// [AxialPos] is the hub type: the minimal (q, r) integer pair. [CubePos]
// adds the derived third component (q + r + s = 0) used for distance and
// rounding. [RowOddPos], [RowEvenPos], [ColOddPos], and [ColEvenPos] label
// cells so they line up with rectangular array storage. Every conversion
// between these types is an exact bijection:
//
//	a := hexgrid.AxialPos{Q: 1, R: 3}
//	o := a.ToRowOdd()          // RowOddPos{Q: 2, R: 3}
//	back := o.ToAxial()        // == a, always
//
// All coordinate types are immutable values: operations return new values,
// any type can be a map key, and conversions are pure functions. There is
// no shared state, so values can be used freely from concurrent goroutines.
//
// # World-space mapping
//
// Cells map to world space through one of two fixed orientation bases:
// [RowBasis] for row-oriented ("pointy top") layouts and [ColBasis] for
// column-oriented ("flat top") layouts. The cell at (0, 0) is centered on
// the world origin and positive r moves upward — note that this is the
// opposite vertical convention from the Red Blob Games articles.
//
//	world := a.CenterInWorldRow(hexgrid.GridSize{X: 32, Y: 32})
//	cell := hexgrid.AxialFromWorldRow(world, hexgrid.GridSize{X: 32, Y: 32})
//
// The inverse mapping produces a [FractionalAxialPos] internally and rounds
// it to the nearest valid cell through cube space; see
// [FractionalCubePos.Round] for the rounding and tie-break rules.
//
// # Storage indices
//
// [TilePos] and [MapSize] form the boundary with dense array storage: a
// bounded, non-negative index into a finite rectangular grid. Converting a
// coordinate to a TilePos is the library's only fallible operation, and it
// fails by comma-ok rather than error — probing out of bounds is an
// ordinary outcome at grid edges:
//
//	if tp, ok := a.AsTilePos(mapSize); ok {
//		tiles[tp.Y*mapSize.Width+tp.X] = ...
//	}
//
// For background on hex coordinate systems, including interactive diagrams,
// see https://www.redblobgames.com/grids/hexagons/.
package hexgrid
