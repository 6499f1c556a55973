package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game (same as running frogger with no command)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	sprites, err := frogger.LoadSprites(flagSprites)
	if err != nil {
		return fmt.Errorf("cannot load sprites: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := frogger.New(cfg, sprites)
	rc := runtimeConfig(width, height, game.TerminalDwell())

	// The ledger only feeds the closing summary; play goes on without it.
	var sink tui.EventSink
	ledger, err := storage.OpenLedger()
	if err != nil {
		stderrLogger().Warn("session ledger unavailable", "error", err)
	} else {
		defer ledger.Close()
		sink = ledger
	}

	if err := tui.Run(game, sink, logger, rc); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}

	logger.Info("session ended", "score", game.State().Score, "lives", game.State().Lives, "seed", rc.Seed)
	printSummary(cmd.OutOrStdout(), game.State(), rc.Seed, ledger)
	return nil
}

// runtimeConfig applies the command-line flags to the runtime defaults.
// A zero --seed is replaced here so the summary can report the seed actually played.
func runtimeConfig(width, height int, dwell time.Duration) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	rc.TerminalDwell = dwell
	return rc
}

// printSummary writes the end-of-session report.
func printSummary(w io.Writer, st core.GameState, seed int64, ledger *storage.Ledger) {
	fmt.Fprintf(w, "Final score: %d  Lives left: %d\n", st.Score, st.Lives)
	fmt.Fprintf(w, "Seed: %d\n", seed)
	if ledger == nil {
		return
	}

	sum, err := ledger.Summary()
	if err != nil {
		stderrLogger().Warn("cannot summarize session", "error", err)
		return
	}

	fmt.Fprintf(w, "Crossings: %d", sum.Crossings)
	if sum.Crossings > 0 {
		fmt.Fprintf(w, "  fastest %.1fs  average %.1fs", sum.FastestCrossing, sum.AverageCrossing)
	}
	fmt.Fprintln(w)

	if sum.TotalDeaths() == 0 {
		return
	}
	causes := make([]string, 0, len(sum.Deaths))
	for cause := range sum.Deaths {
		causes = append(causes, cause)
	}
	sort.Strings(causes)
	fmt.Fprintf(w, "Lives lost: %d", sum.TotalDeaths())
	for _, cause := range causes {
		fmt.Fprintf(w, "  %s %d", cause, sum.Deaths[cause])
	}
	fmt.Fprintln(w)
}
