// breakout is a terminal paddle-and-ball game built on a small collision
// and deflection engine.
//
// Usage:
//
//	breakout list              - List available games
//	breakout play [game]       - Play (default: breakout)
//	breakout serve             - Start SSH server for remote play
//	breakout angles            - Print the deflection table
//	breakout trace             - Run the demo headless and inspect deflections
//	breakout config            - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible demo runs
//	--debug               - Start with the boundary overlay on
//	--log-file <path>     - Log destination (default: ~/.breakout/breakout.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDebug    bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - a paddle and a ball in your terminal",
	Long: `Breakout is a terminal game about keeping a ball in play with a paddle.
Where the ball lands on the paddle decides the angle it leaves at.

Available commands:
  list     - Show all available games
  play     - Play breakout or watch the demo
  serve    - Start SSH server for remote play
  angles   - Print the deflection table for the current config
  trace    - Run the demo headless and browse every deflection
  config   - Print the resolved configuration as YAML

Examples:
  breakout play
  breakout play breakout_demo --debug
  breakout angles --difficulty hard
  breakout trace --seed 7 --ticks 7200
  breakout serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw boundaries and name tags")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.breakout/breakout.log", "Log file path (\"-\" for stderr)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(anglesCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the log destination named by --log-file.
// The returned function closes it.
func newLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}

	if flagLogFile == "-" {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// fail prints an error the way every command reports one and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
