package grid

// New constructs a rows×cols grid with every cell set to Wall.
// Returns ErrDimensions if rows or cols is below 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrDimensions
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Cell, rows*cols), // zero Cell is Wall
	}, nil
}

// index maps (row,col) to its row-major offset. Callers check bounds.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// OnBoundary reports whether c lies on the first or last row or column.
// Out-of-bounds coordinates are never on the boundary.
func (g *Grid) OnBoundary(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return c.Row == 0 || c.Row == g.Rows-1 || c.Col == 0 || c.Col == g.Cols-1
}

// At returns the cell at c. Panics if c is out of bounds.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		panic("grid: coordinate " + c.String() + " out of bounds")
	}
	return g.cells[g.index(c)]
}

// Set stores v at c. Panics if c is out of bounds.
func (g *Grid) Set(c Coord, v Cell) {
	if !g.InBounds(c) {
		panic("grid: coordinate " + c.String() + " out of bounds")
	}
	g.cells[g.index(c)] = v
}

// Neighbors returns the in-bounds orthogonal neighbours of c in
// Offsets4 order (down, up, right, left).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Offsets4))
	for _, d := range Offsets4 {
		if n := c.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, v Cell)) {
	for i, v := range g.cells {
		fn(Coord{Row: i / g.Cols, Col: i % g.Cols}, v)
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Rows: g.Rows, Cols: g.Cols, cells: cells}
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells have kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, v := range g.cells {
		if v.Kind == k {
			n++
		}
	}
	return n
}
