package tetris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "tetris"

// Package-level settings applied to every game created afterwards.
var (
	gameConfig = config.DefaultTetrisConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
// It fails fast if the configuration cannot produce a valid engine.
func SetConfig(cfg config.TetrisConfig) error {
	if err := EngineConfig(cfg).Validate(); err != nil {
		return err
	}
	gameConfig = cfg
	return nil
}

// SetLogger sets the debug logger. Nil restores the discarding default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// EngineConfig converts a loaded configuration into engine settings.
func EngineConfig(cfg config.TetrisConfig) Config {
	return Config{
		Rows:         cfg.Grid.Rows,
		Cols:         cfg.Grid.Cols,
		FallInterval: cfg.Gravity.FallInterval,
	}
}

// Game adapts the Engine to the arcade platform: it advances the engine by
// one fixed tick per Step and maps input actions to engine commands.
type Game struct {
	engine *Engine
	tick   uint64
	dt     time.Duration // simulated time per Step

	screenW  int
	screenH  int
	tooSmall bool

	lastPhase Phase
	lastLines int
}

// New creates a new Tetris game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session with a fresh engine seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	engine, err := NewEngine(EngineConfig(gameConfig), NewRandSource(cfg.Seed))
	if err != nil {
		// SetConfig rejects invalid configs, so this only guards the zero value.
		logger.Warn("invalid config, using defaults", "error", err)
		engine, _ = NewEngine(DefaultEngineConfig(), NewRandSource(cfg.Seed))
	}

	g.engine = engine
	g.tick = 0
	g.dt = time.Second / time.Duration(cfg.TickRateOrDefault())
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.engine.SpawnInitial()
	g.lastPhase = g.engine.Phase()
	g.lastLines = 0

	logger.Debug("game reset",
		"rows", engine.Config().Rows,
		"cols", engine.Config().Cols,
		"fall_interval", engine.Config().FallInterval,
		"seed", cfg.Seed,
	)
}

// checkScreenSize checks if the screen fits the well and the side panel.
func (g *Game) checkScreenSize() {
	cfg := g.engine.Config()
	minW := cfg.Cols*cellWidth + 2 + hudGap + hudWidth
	minH := cfg.Rows + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the layout to a new terminal size. The session continues.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.engine != nil {
		g.checkScreenSize()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.engine.TogglePause()
	}

	// The engine ignores these unless a piece is falling.
	switch {
	case in.Has(core.ActionLeft):
		g.engine.MoveLeft()
	case in.Has(core.ActionRight):
		g.engine.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		g.engine.Rotate()
	}
	if in.Has(core.ActionDrop) {
		g.engine.StepDown()
	}

	g.engine.Tick(g.dt)
	g.logTransitions()

	return core.StepResult{State: g.State()}
}

func (g *Game) logTransitions() {
	if lines := g.engine.LinesCleared(); lines != g.lastLines {
		logger.Debug("lines cleared",
			"count", lines-g.lastLines,
			"total", lines,
			"score", g.engine.Score(),
		)
		g.lastLines = lines
	}

	phase := g.engine.Phase()
	if phase == g.lastPhase {
		return
	}
	if phase == PhaseGameOver {
		logger.Info("game over", "score", g.engine.Score(), "lines", g.engine.LinesCleared(), "tick", g.tick)
	} else {
		logger.Debug("phase changed", "from", g.lastPhase, "to", phase)
	}
	g.lastPhase = phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	phase := g.engine.Phase()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: phase == PhaseGameOver,
		Paused:   phase == PhasePaused || g.tooSmall,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
