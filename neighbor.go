package hexgrid

// Unit axial vectors along the three cube axes. Positive r moves upward in
// world space, so UnitR points down and to the left on a row-oriented grid.
var (
	UnitQ = AxialPos{Q: 1, R: 0}
	UnitR = AxialPos{Q: 0, R: -1}
	UnitS = AxialPos{Q: 1, R: -1}
)

// AxialDirections lists the six neighbor offsets, starting from east and
// proceeding clockwise (positive r is up).
var AxialDirections = [6]AxialPos{
	{Q: 1, R: 0},  // east
	{Q: 1, R: -1}, // south-east
	{Q: 0, R: -1}, // south-west
	{Q: -1, R: 0}, // west
	{Q: -1, R: 1}, // north-west
	{Q: 0, R: 1},  // north-east
}

// Neighbors returns the six cells adjacent to a, in AxialDirections order.
func (a AxialPos) Neighbors() [6]AxialPos {
	var n [6]AxialPos
	for i, d := range AxialDirections {
		n[i] = a.Add(d)
	}
	return n
}

// Ring returns the cells at exact distance radius from center, starting
// north-west of center and proceeding clockwise. A radius of zero yields
// just the center; the result has 6*radius cells otherwise.
func Ring(center AxialPos, radius int) []AxialPos {
	if radius <= 0 {
		return []AxialPos{center}
	}
	res := make([]AxialPos, 0, 6*radius)
	cur := center.Add(AxialDirections[4].Mul(radius))
	for _, d := range AxialDirections {
		for step := 0; step < radius; step++ {
			res = append(res, cur)
			cur = cur.Add(d)
		}
	}
	return res
}

// Disk returns all cells at distance <= radius from center, 1+3r(r+1) in
// total, in q-major order.
func Disk(center AxialPos, radius int) []AxialPos {
	if radius < 0 {
		return nil
	}
	res := make([]AxialPos, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			res = append(res, center.Add(AxialPos{Q: q, R: r}))
		}
	}
	return res
}
