package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagTraceTicks int
	flagTracePlain bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run the demo headless and inspect every deflection",
	Long: `Run the autopilot demo without a screen for a number of ticks and
record every paddle deflection: where the ball hit, the angle it left at,
and the deltas it got.

The result opens in a scrollable table; --plain prints it instead.

Examples:
  breakout trace
  breakout trace --seed 7 --ticks 7200
  breakout trace --difficulty hard --plain`,
	Run: runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTraceTicks, "ticks", 3600, "Number of ticks to simulate")
	traceCmd.Flags().BoolVar(&flagTracePlain, "plain", false, "Print the table instead of opening the viewer")
	addConfigFlags(traceCmd)
}

// recordTrace runs the demo for the given number of ticks and returns
// every deflection it made.
func recordTrace(cfg config.BreakoutConfig, seed int64, ticks int, logger *log.Logger) []breakout.TraceEvent {
	var events []breakout.TraceEvent

	g := breakout.NewDemo(registry.Options{Logger: logger}).WithConfig(cfg)
	g.OnTrace(func(e breakout.TraceEvent) {
		events = append(events, e)
	})

	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)

	in := core.NewInputFrame()
	for iter := 0; iter < ticks; iter++ {
		g.Step(in)
	}
	return events
}

func runTrace(_ *cobra.Command, _ []string) {
	if flagTraceTicks <= 0 {
		fail("--ticks must be positive, got %d", flagTraceTicks)
	}

	cfg, err := config.Resolve(flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("breakout-trace")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	events := recordTrace(cfg, seed, flagTraceTicks, logger)
	title := fmt.Sprintf("Trace seed %d, %d ticks", seed, flagTraceTicks)
	logger.Info("trace recorded", "seed", seed, "ticks", flagTraceTicks, "deflections", len(events))

	if flagTracePlain {
		printTrace(title, events)
		return
	}

	width, height := terminalSize()
	if err := tui.RunTrace(title, events, width, height); err != nil {
		closeLog()
		fail("running trace viewer: %v", err)
	}
}

// printTrace writes the trace as a static table.
func printTrace(title string, events []breakout.TraceEvent) {
	rows := make([][]string, 0, len(events))
	for _, r := range tui.TraceRows(events) {
		rows = append(rows, r)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Tick", "Ball X", "Paddle", "Angle", "H", "V", "MOE", "Fix").
		Rows(rows...)

	fmt.Printf("%s - %d deflections\n", title, len(events))
	fmt.Println(t.Render())
}
