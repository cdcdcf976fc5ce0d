package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"orbitarium/internal/core"
	"orbitarium/internal/scenario"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	scn, ok := scenario.Get("earth-moon")
	if !ok {
		t.Fatal("earth-moon scenario missing")
	}
	m, err := NewModel(scn, nil, core.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	if s == "space" {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsAtScenarioTimeScale(t *testing.T) {
	m := newTestModel(t)
	if got := m.uni.TimeScale(); got != 86400 {
		t.Errorf("initial time scale = %g, want 86400", got)
	}
	if Speeds[m.speedIdx].Label != "1d" {
		t.Errorf("initial speed preset = %s, want 1d", Speeds[m.speedIdx].Label)
	}
}

func TestSpeedKeysStepPresets(t *testing.T) {
	m := newTestModel(t)
	start := m.speedIdx

	next, _ := m.Update(keyMsg("]"))
	m = next.(Model)
	if m.speedIdx != start+1 {
		t.Fatalf("speed index = %d, want %d", m.speedIdx, start+1)
	}
	if m.uni.TimeScale() != Speeds[start+1].Scale {
		t.Errorf("time scale = %g, want %g", m.uni.TimeScale(), Speeds[start+1].Scale)
	}

	next, _ = m.Update(keyMsg("["))
	m = next.(Model)
	if m.speedIdx != start {
		t.Errorf("speed index = %d, want %d", m.speedIdx, start)
	}
}

func TestSpeedKeysClampAtEnds(t *testing.T) {
	m := newTestModel(t)
	m.speedIdx = 0
	m.uni.SetTimeScale(Speeds[0].Scale)

	next, _ := m.Update(keyMsg("["))
	m = next.(Model)
	if m.speedIdx != 0 {
		t.Errorf("speed index went below zero: %d", m.speedIdx)
	}

	m.speedIdx = len(Speeds) - 1
	next, _ = m.Update(keyMsg("]"))
	m = next.(Model)
	if m.speedIdx != len(Speeds)-1 {
		t.Errorf("speed index went past last preset: %d", m.speedIdx)
	}
}

func TestPauseFreezesSimTime(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("space"))
	m = next.(Model)
	if !m.paused {
		t.Fatal("space should pause")
	}

	base := time.Now()
	m.lastTick = base
	next, _ = m.Update(TickMsg(base.Add(50 * time.Millisecond)))
	m = next.(Model)
	if m.uni.SimTime() != 0 {
		t.Errorf("sim time advanced while paused: %g", m.uni.SimTime())
	}

	next, _ = m.Update(keyMsg("space"))
	m = next.(Model)
	if m.paused {
		t.Fatal("space should unpause")
	}
}

func TestTickAdvancesByScaledRealTime(t *testing.T) {
	m := newTestModel(t)

	base := time.Now()
	m.lastTick = base
	next, _ := m.Update(TickMsg(base.Add(100 * time.Millisecond)))
	m = next.(Model)

	want := 0.1 * 86400
	got := m.uni.SimTime()
	if got < want*0.999 || got > want*1.001 {
		t.Errorf("sim time after 100ms tick = %g, want ~%g", got, want)
	}
}

func TestTickClampsLongFrames(t *testing.T) {
	m := newTestModel(t)

	base := time.Now()
	m.lastTick = base
	next, _ := m.Update(TickMsg(base.Add(10 * time.Second)))
	m = next.(Model)

	want := maxFrameSeconds * 86400
	got := m.uni.SimTime()
	if got != want {
		t.Errorf("sim time after stalled frame = %g, want %g", got, want)
	}
}

func TestTabCyclesFollowTarget(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if got := m.camera.Target(); got == nil || got.Name != "Earth" {
		t.Fatalf("first tab target = %v, want Earth", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if got := m.camera.Target(); got == nil || got.Name != "Moon" {
		t.Fatalf("second tab target = %v, want Moon", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.camera.Target() != nil {
		t.Error("esc should release the follow target")
	}
}

func TestTrailsToggleClearsHistory(t *testing.T) {
	m := newTestModel(t)

	base := time.Now()
	m.lastTick = base
	next, _ := m.Update(TickMsg(base.Add(33 * time.Millisecond)))
	m = next.(Model)
	if len(m.trails) == 0 {
		t.Fatal("ticking should record trail points")
	}

	next, _ = m.Update(keyMsg("t"))
	m = next.(Model)
	if m.trailsOn || len(m.trails) != 0 {
		t.Error("toggling trails off should clear history")
	}
}

func TestViewContainsHUDAndBodies(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Earth") {
		t.Error("view missing Earth label")
	}
	if !strings.Contains(view, "1d") {
		t.Error("view missing speed preset in HUD")
	}
}
