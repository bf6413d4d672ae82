package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// TraceKeyMap defines the key bindings for the deflection trace viewer.
type TraceKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TraceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k TraceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Top, k.Bottom, k.Quit}}
}

// DefaultTraceKeyMap returns default key bindings.
func DefaultTraceKeyMap() TraceKeyMap {
	return TraceKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// traceColumns are the table columns, one row per deflection.
var traceColumns = []table.Column{
	{Title: "#", Width: 5},
	{Title: "Tick", Width: 7},
	{Title: "Ball X", Width: 8},
	{Title: "Paddle", Width: 14},
	{Title: "Angle", Width: 7},
	{Title: "H", Width: 8},
	{Title: "V", Width: 8},
	{Title: "MOE", Width: 8},
	{Title: "Fix", Width: 4},
}

// TraceRows converts deflection events to table rows.
func TraceRows(events []breakout.TraceEvent) []table.Row {
	rows := make([]table.Row, len(events))
	for i, e := range events {
		fix := ""
		if e.Corrected {
			fix = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Tick),
			fmt.Sprintf("%.2f", e.BallCenterX),
			fmt.Sprintf("%.1f+%.0f", e.PaddleLeft, e.PaddleWidth),
			fmt.Sprintf("%.2f", e.Angle),
			fmt.Sprintf("%.3f", e.Horizontal),
			fmt.Sprintf("%.3f", e.Vertical),
			fmt.Sprintf("%+.4f", e.FinalMOE),
			fix,
		}
	}
	return rows
}

// TraceModel is a scrollable table of recorded paddle deflections.
type TraceModel struct {
	title    string
	events   []breakout.TraceEvent
	table    table.Model
	help     help.Model
	keys     TraceKeyMap
	width    int
	height   int
	quitting bool
}

// NewTraceModel creates a trace viewer for the given events.
func NewTraceModel(title string, events []breakout.TraceEvent, width, height int) TraceModel {
	m := TraceModel{
		title:  title,
		events: events,
		help:   help.New(),
		keys:   DefaultTraceKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

func (m *TraceModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(traceColumns),
		table.WithRows(TraceRows(m.events)),
		table.WithFocused(true),
		table.WithHeight(max(m.height-6, 3)), // Title, header, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the trace model.
func (m TraceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the trace viewer.
func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the trace table.
func (m TraceModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s - %d deflections", m.title, len(m.events))))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunTrace shows the trace viewer until the user quits.
func RunTrace(title string, events []breakout.TraceEvent, width, height int) error {
	p := tea.NewProgram(NewTraceModel(title, events, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
