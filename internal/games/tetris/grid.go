package tetris

// Cell is a (row, col) coordinate in the well. Row 0 is the floor.
type Cell struct {
	Row, Col int
}

// Block is an occupied cell together with the piece that filled it.
type Block struct {
	Cell
	Type PieceType
}

// Grid is the fixed-size matrix of locked cells.
type Grid struct {
	rows  int
	cols  int
	cells [][]PieceType // indexed [row][col]
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]PieceType, rows)
	for r := range g.cells {
		g.cells[r] = make([]PieceType, cols)
	}
	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the piece locked at (row, col), or None when empty or out of bounds.
func (g *Grid) At(row, col int) PieceType {
	if !g.inBounds(row, col) {
		return None
	}
	return g.cells[row][col]
}

// IsBlocked reports whether (row, col) is outside the grid or occupied.
// Walls, floor and ceiling all count as blocked.
func (g *Grid) IsBlocked(row, col int) bool {
	if !g.inBounds(row, col) {
		return true
	}
	return g.cells[row][col] != None
}

// Lock marks each block's cell occupied. Out-of-bounds blocks are ignored.
func (g *Grid) Lock(blocks []Block) {
	for _, b := range blocks {
		if !g.inBounds(b.Row, b.Col) {
			continue
		}
		g.cells[b.Row][b.Col] = b.Type
	}
}

// IsRowComplete reports whether every column of the row is occupied.
func (g *Grid) IsRowComplete(row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}
	for _, c := range g.cells[row] {
		if c == None {
			return false
		}
	}
	return true
}

// Compact removes every complete row and packs the remaining rows downward
// from row 0, keeping their order. Returns the number of rows removed.
func (g *Grid) Compact() int {
	complete := make([]bool, g.rows)
	for r := range g.cells {
		complete[r] = g.IsRowComplete(r)
	}

	packed := make([][]PieceType, 0, g.rows)
	cleared := 0
	for r, row := range g.cells {
		if complete[r] {
			cleared++
			continue
		}
		packed = append(packed, row)
	}
	if cleared == 0 {
		return 0
	}

	for len(packed) < g.rows {
		packed = append(packed, make([]PieceType, g.cols))
	}
	g.cells = packed
	return cleared
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for c := range row {
			row[c] = None
		}
	}
}

// Snapshot returns a deep copy of the occupancy, indexed [row][col].
func (g *Grid) Snapshot() [][]PieceType {
	out := make([][]PieceType, g.rows)
	for r, row := range g.cells {
		out[r] = append([]PieceType(nil), row...)
	}
	return out
}
