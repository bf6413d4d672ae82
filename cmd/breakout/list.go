package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game id with its title and who drives the paddle.

Modes:
  player     - The paddle follows the keyboard
  autopilot  - The paddle tracks the ball on its own; keys only pause or quit`,
	Run: runList,
}

var listHeaders = []string{"ID", "Title", "Mode"}

// gameMode reports who drives the paddle for a registered id. Demo
// variants are registered under a "_demo" suffix.
func gameMode(id string) string {
	if strings.HasSuffix(id, "_demo") {
		return "autopilot"
	}
	return "player"
}

func listRows(games []registry.GameInfo) [][]string {
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, []string{g.ID, g.Title, gameMode(g.ID)})
	}
	return rows
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(listHeaders...).
		Rows(listRows(games)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Println(t.Render())
	fmt.Println("Run 'breakout play <id>' locally or 'breakout serve' to host over SSH.")
}
