// frogger is a Frogger-style crossing game for the terminal.
//
// Usage:
//
//	frogger                  - Play the game
//	frogger config dump      - Print the effective config as YAML
//	frogger config schema    - Print the config JSON Schema
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible lane placement
//	--config <path>       - Custom game config YAML
//	--sprites <path>      - Custom sprite sheet YAML
//	--log-file <path>     - Write logs to a file while playing
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagSprites  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - guide the frog home in your terminal",
	Long: `Frogger is a terminal crossing game. Hop the frog across a road of
traffic and a river of drifting logs into one of the homes before the
countdown runs out.

Controls:
  Arrows/WASD/HJKL  - Hop
  P/Esc             - Pause
  Q/Ctrl+C          - Quit

Examples:
  frogger
  frogger --seed 42
  frogger --config ./my-frogger.yaml
  frogger config dump > my-frogger.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, reported after the game)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
