package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/console-shooter/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, as YAML.

The config is looked up in this order:
  1. --config <path>
  2. ~/.shooter/configs/shooter.yaml
  3. ./configs/shooter.yaml
  4. built-in defaults

Examples:
  shooter config
  shooter config --config ./my-shooter.yaml
  shooter config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := writeConfig(os.Stdout, flagDefaults); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig writes the effective config, or the built-in defaults, to w.
func writeConfig(w io.Writer, defaults bool) error {
	data := config.DefaultShooterYAML()
	if !defaults {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if data, err = config.Marshal(cfg); err != nil {
			return err
		}
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
