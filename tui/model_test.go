package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"go-launchcontrol/config"
	"go-launchcontrol/control"
	"go-launchcontrol/daw"
	"go-launchcontrol/theme"
)

func TestMessageBuilders(t *testing.T) {
	if s, d1, d2 := padMessage(9, 4, true); s != 0x99 || d1 != 25 || d2 != 127 {
		t.Errorf("padMessage = %02X %d %d", s, d1, d2)
	}
	if s, d1, d2 := padMessage(9, 4, false); s != 0x99 || d1 != 25 || d2 != 0 {
		t.Errorf("pad release = %02X %d %d", s, d1, d2)
	}
	if s, d1, d2 := knobMessage(8, control.RowBottom, 5, 40); s != 0xB8 || d1 != 46 || d2 != 40 {
		t.Errorf("knobMessage = %02X %d %d", s, d1, d2)
	}
	if s, d1, d2 := sideMessage(10, control.SideLeft, true); s != 0xBA || d1 != 116 || d2 != 127 {
		t.Errorf("sideMessage = %02X %d %d", s, d1, d2)
	}
}

// newTestModel wires a model to a running queue.
func newTestModel(t *testing.T) (Model, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	project := daw.New(8)
	mirror := control.NewLEDMirror(nil)
	surface := control.NewSurface(project, mirror)
	q := control.NewQueue()
	go q.Run(ctx)
	if err := q.Do(ctx, func() { surface.Init(q) }); err != nil {
		t.Fatal(err)
	}

	m := NewModel(Model{
		Project:    project,
		Surface:    surface,
		Queue:      q,
		Mirror:     mirror,
		Theme:      theme.New(nil),
		Config:     config.DefaultConfig(),
		ConfigPath: filepath.Join(t.TempDir(), "config.json"),
	})
	return m, ctx
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestKeysDriveSurface(t *testing.T) {
	m, ctx := newTestModel(t)

	// tab from factory 1 selects factory 2; pad 3 mutes track 3
	m = press(m, "tab", "3")

	var page control.Page
	if err := m.Queue.Do(ctx, func() { page = m.Surface.Page() }); err != nil {
		t.Fatal(err)
	}
	if page != control.Factory2 {
		t.Errorf("page = %s, want factory 2", page)
	}
	// the mute observer was queued behind the pad press
	if err := m.Queue.Do(ctx, func() {}); err != nil {
		t.Fatal(err)
	}
	if !m.Project.Snapshot().Tracks[2].Muted {
		t.Error("track 3 not muted")
	}
	if c, ok := m.Mirror.Colour(0x99, control.PadData[2]); !ok || c != control.Orange {
		t.Errorf("mute LED = %d,%v, want orange", c, ok)
	}
}

func TestKnobKeys(t *testing.T) {
	m, ctx := newTestModel(t)
	m = press(m, "l", "l", "k", "k")

	if m.cursor != 2 || m.knobs[control.RowTop][2] != 2*knobStep {
		t.Fatalf("cursor=%d knob=%d", m.cursor, m.knobs[control.RowTop][2])
	}
	if err := m.Queue.Do(ctx, func() {}); err != nil {
		t.Fatal(err)
	}
	// factory 1 top row is volume
	want := float64(2*knobStep) / 127
	if got := m.Project.Snapshot().Tracks[2].Volume; got != want {
		t.Errorf("volume = %v, want %v", got, want)
	}
}

func TestInvertKeySaves(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "v")

	if !m.Config.Invert || !m.Project.Snapshot().Invert {
		t.Error("invert not applied")
	}
	cfg, err := config.LoadFrom(m.ConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Invert {
		t.Error("invert not saved")
	}
}

func TestViewRenders(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(SnapshotMsg(control.Snapshot{Page: control.Factory3}))
	m = next.(Model)

	out := m.View()
	for _, want := range []string{"go-launchcontrol", "factory 3", "Track 1", "EQ"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.code != int(control.Factory3) {
		t.Errorf("code = %d, want %d", m.code, control.Factory3)
	}
}
