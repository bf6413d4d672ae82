package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: breakout).

Controls:
  A/D, Left/Right  - Move the paddle
  Space            - Serve without waiting
  P/Esc            - Pause
  R                - Restart (after game over)
  F1 or Backtick   - Toggle boundaries and name tags
  Ctrl+S           - Save a text screenshot
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wider paddle, slower ball, 5 lives
  normal - The config file as written
  hard   - Narrow paddle, faster ball, 2 lives
  fixed  - Same as normal

Examples:
  breakout play
  breakout play breakout_demo
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
}

// addConfigFlags registers the flags every config-reading command shares.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'breakout list' to see available games)", gameID)
	}

	logger, closeLog, err := newLogger("breakout")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}

	game, err := registry.Create(gameID, registry.Options{
		Logger:     logger,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		fail("creating game: %v", err)
	}

	logger.Info("starting", "game", gameID, "fps", flagFPS, "size", [2]int{width, height})
	if err := tui.Run(game, cfg, logger); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}
