package tetris

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Score        int
	LinesCleared int
	Active       PieceType // None when no piece is falling
	Origin       Cell
	Offsets      []Offset
	Upcoming     PieceType
	FallTimer    time.Duration
	Grid         [][]PieceType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	active, _ := e.Active()
	origin, _ := e.ActiveOrigin()
	upcoming, _ := e.Upcoming()

	return Snapshot{
		Tick:         g.tick,
		Phase:        e.Phase(),
		Score:        e.Score(),
		LinesCleared: e.LinesCleared(),
		Active:       active,
		Origin:       origin,
		Offsets:      e.ActiveOffsets(),
		Upcoming:     upcoming,
		FallTimer:    e.FallTimer(),
		Grid:         e.Grid(),
	}
}
