package tetris

import (
	"errors"
	"fmt"
	"time"
)

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine defaults.
const (
	DefaultRows         = 20
	DefaultCols         = 10
	DefaultFallInterval = 500 * time.Millisecond
	MinGridSize         = 4
)

// ErrInvalidConfig is returned by NewEngine for unusable configurations.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config is the immutable engine configuration.
type Config struct {
	Rows         int
	Cols         int
	FallInterval time.Duration // time between automatic one-row drops
}

// DefaultEngineConfig returns the classic 20x10 well with a 500ms fall interval.
func DefaultEngineConfig() Config {
	return Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		FallInterval: DefaultFallInterval,
	}
}

// Validate checks grid size and fall interval.
func (c Config) Validate() error {
	if c.Rows < MinGridSize {
		return fmt.Errorf("tetris: rows must be at least %d, got %d: %w", MinGridSize, c.Rows, ErrInvalidConfig)
	}
	if c.Cols < MinGridSize {
		return fmt.Errorf("tetris: cols must be at least %d, got %d: %w", MinGridSize, c.Cols, ErrInvalidConfig)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("tetris: fall interval must be positive, got %s: %w", c.FallInterval, ErrInvalidConfig)
	}
	return nil
}

// Engine runs one Tetris session. It is single-threaded: the caller must
// serialize Tick and the input commands.
//
// Rejected commands (blocked move or rotation, input while paused or after
// game over) are silent no-ops.
type Engine struct {
	cfg   Config
	src   PieceSource
	grid  *Grid
	score ScoreTracker

	phase     Phase
	active    *ActivePiece
	upcoming  PieceType // None when nothing is queued
	fallTimer time.Duration
}

// NewEngine creates an engine in the Spawning phase.
// A nil source falls back to a time-seeded random source.
func NewEngine(cfg Config, src PieceSource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = defaultSource()
	}
	return &Engine{
		cfg:   cfg,
		src:   src,
		grid:  NewGrid(cfg.Rows, cfg.Cols),
		phase: PhaseSpawning,
	}, nil
}

// Reset clears the grid, score and pieces and returns to Spawning.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.score.Reset()
	e.active = nil
	e.upcoming = None
	e.fallTimer = 0
	e.phase = PhaseSpawning
}

// SpawnInitial spawns the first piece of a session. It only acts in the
// Spawning phase.
func (e *Engine) SpawnInitial() {
	if e.phase != PhaseSpawning {
		return
	}
	e.spawn()
}

func (e *Engine) spawn() {
	e.phase = PhaseSpawning
	e.active = nil

	t := e.upcoming
	if t == None {
		t = e.src.Next()
	}

	origin := Cell{Row: t.SpawnRow(e.cfg.Rows), Col: e.cfg.Cols / 2}
	for _, c := range cellsAt(origin, t.Offsets()) {
		if e.grid.IsBlocked(c.Row, c.Col) {
			e.phase = PhaseGameOver
			return
		}
	}

	e.active = newActivePiece(t, origin)
	e.upcoming = e.src.Next()
	e.phase = PhaseFalling
}

// Tick advances the fall timer by dt and drops the piece once for every
// full fall interval elapsed. A long dt produces several catch-up drops.
func (e *Engine) Tick(dt time.Duration) {
	if e.phase != PhaseFalling || dt <= 0 {
		return
	}
	e.fallTimer += dt
	for e.fallTimer >= e.cfg.FallInterval {
		e.fallTimer -= e.cfg.FallInterval
		e.stepDown()
		if e.phase != PhaseFalling {
			return
		}
	}
}

// StepDown drops the piece one row immediately (soft drop).
func (e *Engine) StepDown() {
	if e.phase != PhaseFalling {
		return
	}
	e.stepDown()
}

// stepDown moves the piece down one row, or locks it, clears lines and
// spawns the next piece when the row below is blocked.
func (e *Engine) stepDown() {
	p := e.active
	for _, c := range p.Cells() {
		if e.grid.IsBlocked(c.Row-1, c.Col) {
			e.lockActive()
			return
		}
	}
	p.Origin.Row--
}

func (e *Engine) lockActive() {
	e.grid.Lock(e.active.Blocks())
	e.score.AddLanding()
	cleared := e.grid.Compact()
	e.score.AddLinesCleared(cleared)
	e.spawn()
}

// MoveLeft shifts the piece one column left.
func (e *Engine) MoveLeft() {
	e.moveHorizontal(-1)
}

// MoveRight shifts the piece one column right.
func (e *Engine) MoveRight() {
	e.moveHorizontal(1)
}

// moveHorizontal only checks the well's side walls. Locked cells are not
// tested, so a piece can slide into the stack; lock then overwrites them.
func (e *Engine) moveHorizontal(dir int) {
	if e.phase != PhaseFalling {
		return
	}
	p := e.active
	for _, o := range p.Offsets {
		col := p.Origin.Col + dir + o.DX
		if col < 0 || col >= e.cfg.Cols {
			return
		}
	}
	p.Origin.Col += dir
}

// Rotate turns the piece 90 degrees about its origin. The rotation is
// rejected as a whole if any resulting cell is blocked; there are no kicks.
func (e *Engine) Rotate() {
	if e.phase != PhaseFalling {
		return
	}
	p := e.active
	rotated := p.rotatedOffsets()
	for _, c := range cellsAt(p.Origin, rotated) {
		if e.grid.IsBlocked(c.Row, c.Col) {
			return
		}
	}
	p.Offsets = rotated
}

// Pause freezes gravity and input.
func (e *Engine) Pause() {
	if e.phase == PhaseFalling {
		e.phase = PhasePaused
	}
}

// Resume continues a paused game.
func (e *Engine) Resume() {
	if e.phase == PhasePaused {
		e.phase = PhaseFalling
	}
}

// TogglePause switches between Falling and Paused.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhaseFalling:
		e.Pause()
	case PhasePaused:
		e.Resume()
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Grid returns a copy of the locked-cell occupancy, indexed [row][col].
func (e *Engine) Grid() [][]PieceType {
	return e.grid.Snapshot()
}

// Active returns the falling piece's type, or false when there is none.
func (e *Engine) Active() (PieceType, bool) {
	if e.active == nil {
		return None, false
	}
	return e.active.Type, true
}

// ActiveCells returns the falling piece's absolute cells, or nil.
func (e *Engine) ActiveCells() []Cell {
	if e.active == nil {
		return nil
	}
	return e.active.Cells()
}

// ActiveOffsets returns a copy of the falling piece's rotation state, or nil.
func (e *Engine) ActiveOffsets() []Offset {
	if e.active == nil {
		return nil
	}
	return append([]Offset(nil), e.active.Offsets...)
}

// ActiveOrigin returns the falling piece's anchor cell.
func (e *Engine) ActiveOrigin() (Cell, bool) {
	if e.active == nil {
		return Cell{}, false
	}
	return e.active.Origin, true
}

// Upcoming returns the queued next piece type, or false when none is queued.
func (e *Engine) Upcoming() (PieceType, bool) {
	return e.upcoming, e.upcoming != None
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score.Score()
}

// LinesCleared returns the cumulative number of cleared lines.
func (e *Engine) LinesCleared() int {
	return e.score.LinesCleared()
}

// FallTimer returns the time accumulated toward the next automatic drop.
func (e *Engine) FallTimer() time.Duration {
	return e.fallTimer
}
