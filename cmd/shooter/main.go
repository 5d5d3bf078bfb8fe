// shooter is a console arcade shooter for the terminal.
//
// Usage:
//
//	shooter                  - Play (same as shooter play)
//	shooter play             - Play in this terminal
//	shooter serve            - Start SSH server for remote play
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>           - Set RNG seed for reproducible gameplay
//	--config <path>          - Load a custom YAML config
//	--frame-delay <duration> - Override the tick delay (e.g. 60ms)
//	--log-file <path>        - Write logs to a file
//	--log-level <level>      - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/console-shooter/internal/config"
	"github.com/vovakirdan/console-shooter/internal/core"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagFrameDelay time.Duration
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Console Shooter - defend the horizon in your terminal",
	Long: `Console Shooter is a fixed-timestep arcade shooter on a 40x20 field.
Slide along the baseline, shoot the descending enemies and keep them
from getting past you.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  shooter
  shooter play --seed 42
  shooter play --frame-delay 60ms
  shooter serve --ssh :2222
  shooter config --defaults > ~/.shooter/configs/shooter.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().DurationVar(&flagFrameDelay, "frame-delay", 0, "Tick delay, overrides the config (e.g. 80ms)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the shooter config and applies the --frame-delay override.
func loadConfig() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	if flagFrameDelay > 0 {
		cfg.Timing.FrameDelay = flagFrameDelay
	}
	return cfg, nil
}

// runtimeConfig builds the per-run settings from flags and config.
func runtimeConfig(cfg config.ShooterConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.FrameDelay = cfg.Timing.FrameDelay
	rc.Seed = flagSeed
	return rc
}
