// tetris is a terminal Tetris game that can also be served over SSH.
//
// Usage:
//
//	tetris play [game]   - Play in this terminal (default: tetris)
//	tetris serve         - Start SSH server for remote play
//	tetris list          - List available games
//	tetris config        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset fall speed: easy, normal, hard
//	--rows, --cols <n>    - Override the well size
//	--log-file <path>     - Write debug logs to a file
//	--log-level <level>   - Log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagRows       int
	flagCols       int
	flagLogFile    string
	flagLogLevel   string
)

var (
	// logFile is closed by main after the command finishes.
	logFile io.Closer

	// logger is nil unless a log destination is configured.
	logger *log.Logger
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris with a classic 20x10 well, colored pieces and a
next-piece preview. The same game can be served to anyone over SSH.

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --rows 24 --cols 12
  tetris serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagRows, "rows", 0, "Well height in rows (0 = from config)")
	pf.IntVar(&flagCols, "cols", 0, "Well width in columns (0 = from config)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the game configuration and the logger before any subcommand.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := tetris.SetConfig(cfg); err != nil {
		return err
	}

	logger, err = newLogger(cmd.Name() == serveCmd.Name())
	if err != nil {
		return err
	}
	tetris.SetLogger(logger)
	return nil
}

// loadConfig resolves the config file, then applies the difficulty preset and
// the size overrides.
func loadConfig() (config.TetrisConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	if flagRows > 0 {
		cfg.Grid.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Grid.Cols = flagCols
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file. Without a file, only the
// SSH server logs (to stderr); a local game never writes to its own terminal.
func newLogger(toStderr bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case toStderr:
		w = os.Stderr
	default:
		return nil, nil
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	}), nil
}
