package tetris

// ActivePiece is the currently falling tetromino.
type ActivePiece struct {
	Type    PieceType
	Origin  Cell
	Offsets []Offset // current rotation state
}

func newActivePiece(t PieceType, origin Cell) *ActivePiece {
	return &ActivePiece{
		Type:    t,
		Origin:  origin,
		Offsets: t.Offsets(),
	}
}

// Cells returns the absolute cells the piece occupies.
func (p *ActivePiece) Cells() []Cell {
	return cellsAt(p.Origin, p.Offsets)
}

// Blocks returns the piece's cells tagged with its type, ready for Grid.Lock.
func (p *ActivePiece) Blocks() []Block {
	cells := p.Cells()
	blocks := make([]Block, len(cells))
	for i, c := range cells {
		blocks[i] = Block{Cell: c, Type: p.Type}
	}
	return blocks
}

// rotatedOffsets returns the offsets turned 90 degrees about the origin.
func (p *ActivePiece) rotatedOffsets() []Offset {
	out := make([]Offset, len(p.Offsets))
	for i, o := range p.Offsets {
		out[i] = Offset{DX: -o.DY, DY: o.DX}
	}
	return out
}

func cellsAt(origin Cell, offsets []Offset) []Cell {
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = Cell{Row: origin.Row + o.DY, Col: origin.Col + o.DX}
	}
	return cells
}
