// Package tetris implements the Tetris gameplay engine: the locked-cell grid,
// the falling piece, rotation, line clears, scoring and the gravity loop.
//
// Coordinates are (row, col) with row 0 at the floor, growing upward.
// The engine holds logical cells only; Game adapts it to the arcade
// platform and draws it into a core.Screen.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceType identifies one of the seven tetrominoes.
// The zero value None marks an empty grid cell.
type PieceType uint8

const (
	None PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ
)

// AllPieces lists every spawnable piece type in catalog order.
var AllPieces = [...]PieceType{PieceI, PieceO, PieceT, PieceL, PieceJ, PieceS, PieceZ}

// Offset is a cell position relative to a piece's origin.
// DX is a column delta, DY a row delta (positive is up).
type Offset struct {
	DX, DY int
}

var catalog = map[PieceType][4]Offset{
	PieceI: {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	PieceO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PieceT: {{0, 0}, {-1, 1}, {0, 1}, {1, 1}},
	PieceL: {{0, 0}, {0, 1}, {0, 2}, {1, 2}},
	PieceJ: {{0, 0}, {0, 1}, {0, 2}, {-1, 2}},
	PieceS: {{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
	PieceZ: {{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
}

// Offsets returns a fresh copy of the piece's default orientation.
// None has no offsets.
func (t PieceType) Offsets() []Offset {
	shape, ok := catalog[t]
	if !ok {
		return nil
	}
	out := make([]Offset, len(shape))
	copy(out, shape[:])
	return out
}

// SpawnRow returns the origin row a new piece of this type spawns at,
// near the top of the well.
func (t PieceType) SpawnRow(numRows int) int {
	switch t {
	case PieceI:
		return numRows - 4
	case PieceO:
		return numRows - 2
	case PieceT, PieceL, PieceJ, PieceS, PieceZ:
		return numRows - 3
	default:
		return 0
	}
}

// Color returns the display color for the piece.
func (t PieceType) Color() core.Color {
	switch t {
	case PieceI:
		return core.ColorCyan
	case PieceO:
		return core.ColorYellow
	case PieceT:
		return core.ColorMagenta
	case PieceL:
		return core.ColorOrange
	case PieceJ:
		return core.ColorBlue
	case PieceS:
		return core.ColorGreen
	case PieceZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// String returns the single-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	default:
		return "-"
	}
}
