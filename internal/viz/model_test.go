package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/labelmaker/internal/annotate"
	"github.com/san-kum/labelmaker/internal/render"
	"github.com/san-kum/labelmaker/internal/thermal"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := thermal.FromTimes([]float64{25, 1200, 25}, []float64{5, 48, 4, 36, 5})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	label := annotate.Label{
		Identity:  annotate.NewIdentity("Sam", "sam1"),
		Chemicals: annotate.Chemicals{Compound: "NbSe2", TransportAgent: "I2"},
	}
	opts := render.DefaultOptions()
	opts.Title = "Growth"
	return New(s, label, opts)
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestSelectionSkipsSentinels(t *testing.T) {
	m := newTestModel(t)

	if len(m.segments) != 5 {
		t.Fatalf("selectable segments = %d, want 5", len(m.segments))
	}

	seg, ok := m.Selected()
	if !ok || seg.Kind != thermal.KindDwell {
		t.Errorf("first selection = %v, want the first dwell", seg)
	}

	m = press(m, "tab")
	seg, _ = m.Selected()
	if seg.Kind != thermal.KindRamp || seg.Index != 0 {
		t.Errorf("after tab = %v, want ramp 0", seg)
	}

	m = press(m, "shift+tab")
	m = press(m, "shift+tab")
	seg, _ = m.Selected()
	if seg.Kind != thermal.KindDwell || seg.Index != 2 {
		t.Errorf("wrap backwards = %v, want dwell 2", seg)
	}
}

func TestToggles(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "t")
	if m.Toggles().Times {
		t.Error("t should turn times off")
	}
	m = press(m, "T")
	if m.Toggles().Temps {
		t.Error("T should turn temps off")
	}
	m = press(m, "r")
	if m.Toggles().Rates {
		t.Error("r should turn rates off")
	}

	view := m.View()
	if strings.Contains(view, "1200°C") {
		t.Error("temperature annotations still shown")
	}

	m = press(m, "T")
	if !strings.Contains(m.View(), "1200°C") {
		t.Error("temperature annotations missing after toggling back")
	}
}

func TestHeaderToggle(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "NbSe2 Synthesis") {
		t.Error("header missing")
	}

	m = press(m, "h")
	if strings.Contains(m.View(), "NbSe2 Synthesis") {
		t.Error("header still shown")
	}
}

func TestViewShowsRateOfSelectedRamp(t *testing.T) {
	m := press(newTestModel(t), "tab")
	view := m.View()

	for _, want := range []string{"ramp 1", "24°C/hr", "share"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestThemeCycle(t *testing.T) {
	m := newTestModel(t)
	seen := map[string]bool{m.Theme().Name: true}
	for range Themes {
		m = press(m, "c")
		seen[m.Theme().Name] = true
	}
	if len(seen) != len(Themes) {
		t.Errorf("visited %d themes, want %d", len(seen), len(Themes))
	}
	if m.Theme().Name != ThemeFurnace.Name {
		t.Errorf("cycle ends on %s, want furnace", m.Theme().Name)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if next.(Model).width != 120 {
		t.Errorf("width = %d, want 120", next.(Model).width)
	}
}

func TestShareBar(t *testing.T) {
	tests := []struct {
		percent, width int
		want           string
	}{
		{50, 4, "██░░"},
		{0, 3, "░░░"},
		{150, 2, "██"},
		{10, 0, ""},
	}
	for _, tt := range tests {
		if got := ShareBar(tt.percent, tt.width); got != tt.want {
			t.Errorf("ShareBar(%d, %d) = %q, want %q", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if th, ok := GetTheme("ocean"); !ok || th.Name != "ocean" {
		t.Error("ocean theme not found")
	}
	if th, ok := GetTheme("nope"); ok || th.Name != "furnace" {
		t.Error("unknown theme should report false and fall back to furnace")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names length mismatch")
	}
}

func TestWithTheme(t *testing.T) {
	ocean, _ := GetTheme("ocean")
	m := newTestModel(t).WithTheme(ocean)
	if m.Theme().Name != "ocean" {
		t.Errorf("theme = %s, want ocean", m.Theme().Name)
	}

	m = press(m, "c")
	if m.Theme().Name != ThemeFurnace.Name {
		t.Errorf("cycle after ocean = %s, want furnace", m.Theme().Name)
	}
}
