package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/console-shooter/internal/games/shooter"
	"github.com/vovakirdan/console-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  A/Left    - Move left
  D/Right   - Move right
  Space     - Shoot
  Q         - Quit
  Ctrl+C    - Quit immediately

Every kill scores 10 points and has a small chance of granting an extra
life. Enemies spawn faster as the run goes on.

Examples:
  shooter play
  shooter play --seed 42
  shooter play --config ./my-shooter.yaml --log-file shooter.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// Minimum terminal size: the field plus its border.
const (
	minTermWidth  = shooter.FieldWidth + 2
	minTermHeight = shooter.FieldHeight + 2
)

func runPlay(_ *cobra.Command, _ []string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}
	if w, h, err := term.GetSize(fd); err == nil && (w < minTermWidth || h < minTermHeight) {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n", w, h, minTermWidth, minTermHeight)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game := shooter.New(cfg)
	outcome, err := tui.Run(game, runtimeConfig(cfg), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	fmt.Println(outcome.Message())
}

// newFileLogger returns a logger writing to path, or one that discards
// everything when path is empty. The TUI owns the terminal, so local play
// never logs to stderr.
func newFileLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           lvl,
	})
	return logger, func() { _ = f.Close() }, nil
}
