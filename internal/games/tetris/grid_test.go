package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filled counts the occupied cells of g.
func filled(g *Grid) int {
	n := 0
	for _, row := range g.Snapshot() {
		for _, t := range row {
			if t != None {
				n++
			}
		}
	}
	return n
}

func fillRow(g *Grid, row int, t PieceType) {
	for c := 0; c < g.Cols(); c++ {
		g.Lock([]Block{{Cell: Cell{Row: row, Col: c}, Type: t}})
	}
}

func TestGridIsBlocked(t *testing.T) {
	g := NewGrid(6, 4)
	g.Lock([]Block{{Cell: Cell{Row: 2, Col: 1}, Type: PieceZ}})

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"empty", 0, 0, false},
		{"occupied", 2, 1, true},
		{"below floor", -1, 0, true},
		{"above ceiling", 6, 0, true},
		{"left wall", 3, -1, true},
		{"right wall", 3, 4, true},
		{"top right corner", 5, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsBlocked(tc.row, tc.col))
		})
	}
}

func TestGridLockIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)
	g.Lock([]Block{
		{Cell: Cell{Row: 0, Col: 0}, Type: PieceI},
		{Cell: Cell{Row: 4, Col: 0}, Type: PieceI},
		{Cell: Cell{Row: 0, Col: -1}, Type: PieceI},
	})

	assert.Equal(t, 1, filled(g))
	assert.Equal(t, PieceI, g.At(0, 0))
	assert.Equal(t, None, g.At(4, 0))
}

func TestGridIsRowComplete(t *testing.T) {
	g := NewGrid(5, 4)
	fillRow(g, 1, PieceO)
	g.Lock([]Block{{Cell: Cell{Row: 2, Col: 0}, Type: PieceO}})

	assert.True(t, g.IsRowComplete(1))
	assert.False(t, g.IsRowComplete(0))
	assert.False(t, g.IsRowComplete(2))
	assert.False(t, g.IsRowComplete(-1))
	assert.False(t, g.IsRowComplete(5))
}

func TestGridCompactMultipleRows(t *testing.T) {
	g := NewGrid(10, 4)
	for r := 0; r < 10; r++ {
		g.Lock([]Block{{Cell: Cell{Row: r, Col: 0}, Type: AllPieces[r%len(AllPieces)]}})
		if r >= 7 {
			g.Lock([]Block{{Cell: Cell{Row: r, Col: 1}, Type: PieceS}})
		}
	}
	fillRow(g, 2, PieceL)
	fillRow(g, 5, PieceJ)
	before := g.Snapshot()

	cleared := g.Compact()
	require.Equal(t, 2, cleared)

	after := g.Snapshot()
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[1], after[1])
	assert.Equal(t, before[3], after[2])
	assert.Equal(t, before[4], after[3])
	for r := 6; r <= 9; r++ {
		assert.Equal(t, before[r], after[r-2], "former row %d", r)
	}
	empty := make([]PieceType, 4)
	assert.Equal(t, empty, after[8])
	assert.Equal(t, empty, after[9])
}

func TestGridCompactNoCompleteRows(t *testing.T) {
	g := NewGrid(4, 4)
	g.Lock([]Block{{Cell: Cell{Row: 0, Col: 0}, Type: PieceT}})
	before := g.Snapshot()

	assert.Equal(t, 0, g.Compact())
	assert.Equal(t, before, g.Snapshot())
}

func TestGridCompactAllRows(t *testing.T) {
	g := NewGrid(4, 4)
	for r := 0; r < 4; r++ {
		fillRow(g, r, PieceI)
	}

	assert.Equal(t, 4, g.Compact())
	assert.Zero(t, filled(g))

	// Rows are fresh slices, not aliases of each other.
	g.Lock([]Block{{Cell: Cell{Row: 0, Col: 0}, Type: PieceI}})
	assert.Equal(t, 1, filled(g))
}

func TestGridSnapshotIsCopy(t *testing.T) {
	g := NewGrid(4, 4)
	snap := g.Snapshot()
	snap[0][0] = PieceZ

	assert.Equal(t, None, g.At(0, 0))
}
