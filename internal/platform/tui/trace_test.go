package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func TestTraceRows(t *testing.T) {
	events := []breakout.TraceEvent{
		{
			Tick:        42,
			BallCenterX: 320,
			PaddleLeft:  272,
			PaddleWidth: 96,
			Deflection:  breakout.Deflection{Angle: 90, Vertical: 2.325},
		},
		{
			Tick:       80,
			Deflection: breakout.Deflection{Angle: 30, Corrected: true, FinalMOE: -0.01},
		},
	}

	rows := TraceRows(events)
	if len(rows) != 2 {
		t.Fatalf("TraceRows() returned %d rows, expected 2", len(rows))
	}
	if len(rows[0]) != len(traceColumns) {
		t.Errorf("row has %d cells, expected %d", len(rows[0]), len(traceColumns))
	}

	expected := []string{"1", "42", "320.00", "272.0+96", "90.00", "0.000", "2.325", "+0.0000", ""}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("cell %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][8] != "yes" {
		t.Errorf("corrected column = %q, expected yes", rows[1][8])
	}
}

func TestTraceModelView(t *testing.T) {
	events := []breakout.TraceEvent{{Tick: 1}, {Tick: 2}}
	m := NewTraceModel("Breakout (Demo)", events, 100, 30)

	if !strings.Contains(m.View(), "2 deflections") {
		t.Error("View() should count the deflections")
	}

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || next.View() != "" {
		t.Error("q should quit the trace viewer")
	}
}

func TestTraceModelResize(t *testing.T) {
	m := NewTraceModel("t", nil, 80, 24)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if next.(TraceModel).width != 120 {
		t.Error("resize not applied")
	}
}
