package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	_ "github.com/vovakirdan/hexpop/internal/games/hexpop"
)

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	view := m.View()
	for _, title := range []string{"Hex Pop", "Hex Pop (Endless)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu should list %q", title)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}
	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.GameID != "hexpop_endless" {
		t.Errorf("expected hexpop_endless, got %q", sel.GameID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel(nil, core.DefaultConfig())
	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestDifficultySelection(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected config.DifficultyPreset
	}{
		{"default is normal", nil, config.DifficultyNormal},
		{"up to easy", []tea.KeyMsg{{Type: tea.KeyUp}}, config.DifficultyEasy},
		{"down to hard", []tea.KeyMsg{{Type: tea.KeyDown}}, config.DifficultyHard},
		{"clamped at bottom", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}}, config.DifficultyFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewDifficultyModel("Hex Pop", "", 80, 24)
			for _, k := range tt.keys {
				next, _ := m.Update(k)
				m = next.(DifficultyModel)
			}
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			m = next.(DifficultyModel)

			preset, ok := m.Selected()
			if !ok {
				t.Fatal("expected a selection")
			}
			if preset != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, preset)
			}
		})
	}
}

func TestDifficultyBack(t *testing.T) {
	m := NewDifficultyModel("Hex Pop", config.DifficultyHard, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(DifficultyModel)

	if !m.WantsBack() {
		t.Error("esc should go back")
	}
	if _, ok := m.Selected(); ok {
		t.Error("going back should not select")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hex")
	s.DrawTextColored(0, 1, "pop", core.ColorRed)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "hex") || !strings.Contains(out, "pop") {
		t.Errorf("rendered screen lost its text: %q", out)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, core.DefaultConfig(), "player", nil)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.inGame || s.gameModel == nil {
		t.Fatal("selecting a mode should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	// Pause, let a tick apply it, then go back
	next, _ = s.Update(runeKey('p'))
	s = next.(SessionModel)
	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	if !s.gameModel.gameState.Paused {
		t.Fatal("game should be paused")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.inGame {
		t.Error("esc while paused should return to the menu")
	}
	if s.View() == "" {
		t.Error("menu should render after returning")
	}
}
