package tetris

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interval = 500 * time.Millisecond

func newTestEngine(t *testing.T, rows, cols int, types ...PieceType) *Engine {
	t.Helper()
	e, err := NewEngine(Config{Rows: rows, Cols: cols, FallInterval: interval}, NewSequenceSource(types...))
	require.NoError(t, err)
	return e
}

func lockCells(e *Engine, t PieceType, cells ...Cell) {
	blocks := make([]Block, len(cells))
	for i, c := range cells {
		blocks[i] = Block{Cell: c, Type: t}
	}
	e.grid.Lock(blocks)
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"too few rows", Config{Rows: 3, Cols: 10, FallInterval: interval}},
		{"too few cols", Config{Rows: 20, Cols: 0, FallInterval: interval}},
		{"zero interval", Config{Rows: 20, Cols: 10}},
		{"negative interval", Config{Rows: 20, Cols: 10, FallInterval: -time.Second}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := NewEngine(tc.cfg, nil)
			assert.Nil(t, e)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}

	e, err := NewEngine(DefaultEngineConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, PhaseSpawning, e.Phase())
}

func TestFreshEngineAcrossGridSizes(t *testing.T) {
	sizes := [][2]int{{4, 4}, {4, 9}, {7, 5}, {20, 10}, {32, 16}}

	for _, size := range sizes {
		for _, p := range AllPieces {
			t.Run(fmt.Sprintf("%dx%d/%s", size[0], size[1], p), func(t *testing.T) {
				e := newTestEngine(t, size[0], size[1], p)
				assert.Equal(t, PhaseSpawning, e.Phase())
				assert.Zero(t, e.Score())
				assert.Zero(t, filled(e.grid))
				_, ok := e.Active()
				assert.False(t, ok)

				e.SpawnInitial()
				require.Equal(t, PhaseFalling, e.Phase())
				for _, c := range e.ActiveCells() {
					assert.False(t, e.grid.IsBlocked(c.Row, c.Col), "spawned cell %+v is blocked", c)
				}
			})
		}
	}
}

func TestSpawnUsesQueueAndSource(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceT, PieceS, PieceZ)
	e.SpawnInitial()

	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, PieceT, active)
	origin, _ := e.ActiveOrigin()
	assert.Equal(t, Cell{Row: 17, Col: 5}, origin)

	next, ok := e.Upcoming()
	require.True(t, ok)
	assert.Equal(t, PieceS, next)

	// SpawnInitial only acts once per session.
	e.SpawnInitial()
	active, _ = e.Active()
	assert.Equal(t, PieceT, active)
}

func TestTickAccumulatesAndCatchesUp(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceI)
	e.SpawnInitial()

	e.Tick(0)
	e.Tick(-time.Second)
	assert.Zero(t, e.FallTimer())

	e.Tick(interval * 5 / 2)
	origin, _ := e.ActiveOrigin()
	assert.Equal(t, 14, origin.Row, "2.5 intervals should drop exactly two rows")
	assert.Equal(t, interval/2, e.FallTimer())

	e.Tick(interval / 2)
	origin, _ = e.ActiveOrigin()
	assert.Equal(t, 13, origin.Row)
	assert.Zero(t, e.FallTimer())

	// A stall is replayed as several catch-up drops.
	e.Tick(10 * interval)
	origin, _ = e.ActiveOrigin()
	assert.Equal(t, 3, origin.Row)
}

func TestStepDownLocksAndSpawns(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceI, PieceO, PieceT)
	e.SpawnInitial()

	for i := 0; i < 16; i++ {
		e.StepDown()
	}
	origin, _ := e.ActiveOrigin()
	require.Equal(t, 0, origin.Row)
	assert.Zero(t, e.Score())

	e.StepDown()
	assert.Equal(t, LandingPoints, e.Score())
	assert.Equal(t, PhaseFalling, e.Phase())
	for r := 0; r < 4; r++ {
		assert.Equal(t, PieceI, e.grid.At(r, 5))
	}

	active, _ := e.Active()
	assert.Equal(t, PieceO, active)
	next, _ := e.Upcoming()
	assert.Equal(t, PieceT, next)
}

func TestStepDownOntoStack(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceO)
	lockCells(e, PieceZ, Cell{Row: 9, Col: 6})
	e.SpawnInitial()

	// Eight drops from row 18, then the ninth interval locks it.
	e.Tick(9 * interval)
	// The O piece at col 5 covers cols 5-6 and rests on row 10.
	assert.Equal(t, PieceO, e.grid.At(10, 5))
	assert.Equal(t, PieceO, e.grid.At(11, 6))
	assert.Equal(t, LandingPoints, e.Score())
}

func TestLockClearsFourLines(t *testing.T) {
	e := newTestEngine(t, 8, 4, PieceI, PieceO)
	for r := 0; r < 4; r++ {
		lockCells(e, PieceZ, Cell{Row: r, Col: 0}, Cell{Row: r, Col: 1}, Cell{Row: r, Col: 3})
	}
	lockCells(e, PieceS, Cell{Row: 4, Col: 0})
	e.SpawnInitial()

	e.Tick(5 * interval)

	assert.Equal(t, 4, e.LinesCleared())
	assert.Equal(t, LandingPoints+4*LinePoints+BonusPoints, e.Score())
	assert.Equal(t, 1, filled(e.grid))
	assert.Equal(t, PieceS, e.grid.At(0, 0), "row above the clear should drop to the floor")
}

func TestMoveHorizontalBounds(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceI)
	e.SpawnInitial()

	for i := 0; i < 5; i++ {
		e.MoveLeft()
	}
	origin, _ := e.ActiveOrigin()
	require.Equal(t, 0, origin.Col)

	e.MoveLeft()
	origin, _ = e.ActiveOrigin()
	assert.Equal(t, 0, origin.Col, "move past the left wall must be rejected")

	for i := 0; i < 20; i++ {
		e.MoveRight()
	}
	origin, _ = e.ActiveOrigin()
	assert.Equal(t, 9, origin.Col)
}

func TestMoveRightRespectsWidestOffset(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceO)
	e.SpawnInitial()

	for i := 0; i < 10; i++ {
		e.MoveRight()
	}
	origin, _ := e.ActiveOrigin()
	assert.Equal(t, 8, origin.Col)
}

func TestMoveHorizontalIgnoresLockedCells(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceI)
	e.SpawnInitial()
	lockCells(e, PieceZ, Cell{Row: 16, Col: 4})

	e.MoveLeft()

	origin, _ := e.ActiveOrigin()
	assert.Equal(t, 4, origin.Col, "only the walls limit horizontal movement")
}

func TestRotate(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceT)
	e.SpawnInitial()

	e.Rotate()
	assert.Equal(t, []Offset{{0, 0}, {-1, -1}, {-1, 0}, {-1, 1}}, e.ActiveOffsets())

	for i := 0; i < 3; i++ {
		e.Rotate()
	}
	assert.Equal(t, PieceT.Offsets(), e.ActiveOffsets(), "four rotations return to the start")
}

func TestRotateRejectedAtWall(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceI)
	e.SpawnInitial()
	for i := 0; i < 3; i++ {
		e.MoveLeft()
	}
	before := e.ActiveOffsets()

	// Horizontal I would reach col -1.
	e.Rotate()
	assert.Equal(t, before, e.ActiveOffsets())

	e.MoveRight()
	e.Rotate()
	assert.Equal(t, []Offset{{0, 0}, {-1, 0}, {-2, 0}, {-3, 0}}, e.ActiveOffsets())
}

func TestRotateRejectedByStack(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceI)
	e.SpawnInitial()
	lockCells(e, PieceZ, Cell{Row: 16, Col: 3})
	before := e.ActiveOffsets()

	e.Rotate()
	assert.Equal(t, before, e.ActiveOffsets())
}

func TestPauseFreezesEverything(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceT)
	e.SpawnInitial()
	e.Tick(interval / 4)

	e.TogglePause()
	require.Equal(t, PhasePaused, e.Phase())
	origin, _ := e.ActiveOrigin()
	offsets := e.ActiveOffsets()

	e.Tick(10 * interval)
	e.MoveLeft()
	e.Rotate()
	e.StepDown()
	e.SpawnInitial()

	got, _ := e.ActiveOrigin()
	assert.Equal(t, origin, got)
	assert.Equal(t, offsets, e.ActiveOffsets())
	assert.Equal(t, interval/4, e.FallTimer())

	e.Resume()
	assert.Equal(t, PhaseFalling, e.Phase())
	e.TogglePause()
	e.TogglePause()
	assert.Equal(t, PhaseFalling, e.Phase())
}

func TestBlockedSpawnIsGameOver(t *testing.T) {
	e := newTestEngine(t, 20, 10, PieceT)
	for r := 0; r <= 17; r++ {
		lockCells(e, PieceZ, Cell{Row: r, Col: 5})
	}
	before := e.Grid()

	e.SpawnInitial()

	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.Equal(t, before, e.Grid())
	_, ok := e.Active()
	assert.False(t, ok)
	assert.Nil(t, e.ActiveCells())
}

func TestGameOverDuringTick(t *testing.T) {
	e := newTestEngine(t, 4, 4, PieceI)
	e.SpawnInitial()

	// The I fills the whole height, so the next I cannot spawn.
	e.Tick(5 * interval)
	require.Equal(t, PhaseGameOver, e.Phase())
	assert.Equal(t, LandingPoints, e.Score())

	// Terminal until reset.
	before := filled(e.grid)
	e.Tick(interval)
	e.MoveLeft()
	e.Rotate()
	e.TogglePause()
	e.SpawnInitial()
	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.Equal(t, before, filled(e.grid))
}

func TestReset(t *testing.T) {
	e := newTestEngine(t, 4, 4, PieceI)
	e.SpawnInitial()
	e.Tick(5 * interval)
	require.Equal(t, PhaseGameOver, e.Phase())

	e.Reset()
	e.Reset()

	assert.Equal(t, PhaseSpawning, e.Phase())
	assert.Zero(t, e.Score())
	assert.Zero(t, e.LinesCleared())
	assert.Zero(t, filled(e.grid))
	assert.Zero(t, e.FallTimer())
	_, ok := e.Upcoming()
	assert.False(t, ok)

	e.SpawnInitial()
	assert.Equal(t, PhaseFalling, e.Phase())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "spawning", PhaseSpawning.String())
	assert.Equal(t, "falling", PhaseFalling.String())
	assert.Equal(t, "paused", PhasePaused.String())
	assert.Equal(t, "game_over", PhaseGameOver.String())
}
