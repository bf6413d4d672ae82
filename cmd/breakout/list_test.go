package main

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func TestGameMode(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"breakout", "player"},
		{"breakout_demo", "autopilot"},
		{"demo_breakout", "player"},
	}

	for _, tt := range tests {
		if got := gameMode(tt.id); got != tt.expected {
			t.Errorf("gameMode(%q) = %q, expected %q", tt.id, got, tt.expected)
		}
	}
}

func TestListRowsShowsBothModes(t *testing.T) {
	rows := listRows(registry.List())

	modes := make(map[string]string)
	for _, r := range rows {
		if len(r) != len(listHeaders) {
			t.Fatalf("row %v has %d cells, expected %d", r, len(r), len(listHeaders))
		}
		modes[r[0]] = r[2]
	}

	if modes["breakout"] != "player" {
		t.Errorf("breakout mode = %q, expected player", modes["breakout"])
	}
	if modes["breakout_demo"] != "autopilot" {
		t.Errorf("breakout_demo mode = %q, expected autopilot", modes["breakout_demo"])
	}
}
