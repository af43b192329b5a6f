package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-launchcontrol/config"
	"go-launchcontrol/control"
	"go-launchcontrol/daw"
	"go-launchcontrol/debug"
	"go-launchcontrol/midi"
	"go-launchcontrol/theme"
	"go-launchcontrol/widgets"
)

// knobStep is how far one key press turns a knob.
const knobStep = 8

type Model struct {
	Project    *daw.Project
	Surface    *control.Surface // only touched on Queue
	Queue      *control.Queue
	Mirror     *control.LEDMirror
	DeviceMgr  *midi.DeviceManager
	Theme      *theme.Theme
	Config     *config.Config
	ConfigPath string
	Snapshots  <-chan control.Snapshot

	snap       control.Snapshot
	code       int // template code of the on-screen controller
	knobs      [2][8]uint8
	cursor     int
	quitting   bool
	controller midi.Controller // current controller (may be nil)
	status     string
}

type UpdateMsg struct{}

type SnapshotMsg control.Snapshot

type DeviceEventMsg midi.DeviceEvent

// ConfigMsg carries a config re-read from disk.
type ConfigMsg struct {
	Config *config.Config
}

func NewModel(m Model) Model {
	m.code = int(control.Factory1)
	m.snap = control.Snapshot{Page: control.PageNone}
	return m
}

func ListenForUpdates(project *daw.Project) tea.Cmd {
	return func() tea.Msg {
		<-project.UpdateChan
		return UpdateMsg{}
	}
}

func ListenForSnapshots(ch <-chan control.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return SnapshotMsg(<-ch)
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		ListenForUpdates(m.Project),
		ListenForSnapshots(m.Snapshots),
	}
	if m.DeviceMgr != nil {
		cmds = append(cmds, ListenForDevices(m.DeviceMgr))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case UpdateMsg:
		return m, ListenForUpdates(m.Project)

	case SnapshotMsg:
		m.snap = control.Snapshot(msg)
		if ch, ok := control.LayoutFor(m.snap.Inverted).Channel(m.snap.Page); ok {
			m.code = int(ch)
		}
		return m, ListenForSnapshots(m.Snapshots)

	case ConfigMsg:
		if msg.Config != nil {
			m.Config = msg.Config
			m.Project.SetInvert(m.Config.Invert)
			m.status = "config reloaded"
		}

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		if event.Type == midi.DeviceConnected {
			m.controller = event.Controller
			m.Mirror.SetOutput(event.Controller)
			m.Queue.Schedule(m.Surface.Redraw)
			go forward(event.Controller, m.Queue, m.Surface)
			m.status = "connected " + event.ID
		} else if event.Type == midi.DeviceDisconnected {
			if m.controller != nil && m.controller.ID() == event.ID {
				m.controller = nil
				m.Mirror.SetOutput(nil)
			}
			m.status = "disconnected " + event.ID
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

// forward feeds controller input to the surface until the controller
// closes its event channel.
func forward(ctrl midi.Controller, q *control.Queue, s *control.Surface) {
	for ev := range ctrl.Events() {
		if ev.IsSysEx() {
			data := ev.SysEx
			q.Schedule(func() { s.HandleSysEx(data) })
			continue
		}
		status, d1, d2 := ev.Status, ev.Data1, ev.Data2
		q.Schedule(func() { s.HandleMIDI(status, d1, d2) })
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.NextPage):
		m.code = (m.code + 1) % control.NumPages
		m.selectTemplate(m.code)

	case key.Matches(msg, keys.PrevPage):
		m.code = (m.code + control.NumPages - 1) % control.NumPages
		m.selectTemplate(m.code)

	case key.Matches(msg, keys.Pads):
		col := int(msg.String()[0] - '1')
		m.inject(padMessage(m.code, col, true))
		m.inject(padMessage(m.code, col, false))

	case key.Matches(msg, keys.KnobLeft):
		m.cursor = (m.cursor + control.NumColumns - 1) % control.NumColumns

	case key.Matches(msg, keys.KnobRight):
		m.cursor = (m.cursor + 1) % control.NumColumns

	case key.Matches(msg, keys.TopUp):
		m.turn(control.RowTop, knobStep)
	case key.Matches(msg, keys.TopDown):
		m.turn(control.RowTop, -knobStep)
	case key.Matches(msg, keys.BotUp):
		m.turn(control.RowBottom, knobStep)
	case key.Matches(msg, keys.BotDown):
		m.turn(control.RowBottom, -knobStep)

	case key.Matches(msg, keys.Up):
		m.pressSide(control.SideUp)
	case key.Matches(msg, keys.Down):
		m.pressSide(control.SideDown)
	case key.Matches(msg, keys.Left):
		m.pressSide(control.SideLeft)
	case key.Matches(msg, keys.Right):
		m.pressSide(control.SideRight)

	case key.Matches(msg, keys.Invert):
		m.Config.Invert = !m.Config.Invert
		m.Project.SetInvert(m.Config.Invert)
		if err := m.Config.SaveTo(m.ConfigPath); err != nil {
			debug.Log("tui", "save config: %v", err)
			m.status = "save failed: " + err.Error()
		}
	}
	return m, nil
}

func (m *Model) turn(row control.Row, delta int) {
	v := int(m.knobs[row][m.cursor]) + delta
	if v < 0 {
		v = 0
	}
	if v > 127 {
		v = 127
	}
	m.knobs[row][m.cursor] = uint8(v)
	m.inject(knobMessage(m.code, row, m.cursor, uint8(v)))
}

func (m Model) pressSide(button byte) {
	m.inject(sideMessage(m.code, button, true))
	m.inject(sideMessage(m.code, button, false))
}

// inject hands a message to the surface as if the controller sent it.
func (m Model) inject(status, data1, data2 byte) {
	s := m.Surface
	m.Queue.Schedule(func() { s.HandleMIDI(status, data1, data2) })
}

func (m Model) selectTemplate(code int) {
	s := m.Surface
	data := control.PageChangeSysEx(code)
	m.Queue.Schedule(func() { s.HandleSysEx(data) })
}

// The controller sends on the channel equal to its template code.

func padMessage(code, col int, pressed bool) (byte, byte, byte) {
	var v byte
	if pressed {
		v = control.PadPressed
	}
	return midi.NoteOn | byte(code), control.PadData[col], v
}

func knobMessage(code int, row control.Row, col int, value uint8) (byte, byte, byte) {
	first := control.TopRowFirst
	if row == control.RowBottom {
		first = control.BottomRowFirst
	}
	return midi.CC | byte(code), first + byte(col), value
}

func sideMessage(code int, button byte, pressed bool) (byte, byte, byte) {
	var v byte
	if pressed {
		v = control.PadPressed
	}
	return midi.CC | byte(code), button, v
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	fgStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())

	inverted := ""
	if m.snap.Inverted {
		inverted = "  inverted"
	}
	deviceStatus := "  no controller"
	if m.controller != nil {
		deviceStatus = "  LC:" + m.controller.ID()
	}
	header := headerStyle.Render(fmt.Sprintf("go-launchcontrol  template %d  page %s%s%s",
		m.code+1, m.snap.Page, inverted, deviceStatus))

	pj := m.Project.Snapshot()

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderFace(m.face()))
	out.WriteString("\n\n")
	out.WriteString(fgStyle.Render(m.transportLine(pj)))
	out.WriteString("\n\n")
	out.WriteString(m.mixerView(pj))
	out.WriteString("\n")
	out.WriteString(fgStyle.Render(m.deviceLine(pj)))
	out.WriteString("\n")
	out.WriteString(dimStyle.Render(m.userLine(pj)))
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render(widgets.RenderKeyHelp(keys.helpSections())))

	if m.status != "" {
		out.WriteString("\n\n")
		out.WriteString(dimStyle.Render(m.status))
	}
	return out.String()
}

// face reads the on-screen LEDs back from the mirror.
func (m Model) face() widgets.Face {
	f := widgets.Face{
		Knobs:       m.knobs,
		Cursor:      m.cursor,
		KnobColor:   m.Theme.FG(),
		CursorColor: m.Theme.Cursor(),
	}
	status := midi.NoteOn | byte(m.code)
	for col := range f.Pads {
		f.Pads[col] = m.ledColour(status, control.PadData[col])
	}
	for i := range f.Side {
		f.Side[i] = m.ledColour(0xB8, 72+byte(i))
	}
	return f
}

func (m Model) ledColour(status, data byte) lipgloss.Color {
	if c, ok := m.Mirror.Colour(status, data); ok {
		return m.Theme.LED(c)
	}
	return m.Theme.Unlit()
}

func (m Model) transportLine(pj daw.Snapshot) string {
	var parts []string
	for t := control.Playing; t <= control.OverdubActive; t++ {
		mark := string(m.Theme.Symbols.FlagOff)
		if pj.Transport[t] {
			mark = string(m.Theme.Symbols.Flag)
		}
		parts = append(parts, mark+" "+t.String())
	}
	return strings.Join(parts, "  ")
}

func (m Model) mixerView(pj daw.Snapshot) string {
	accent := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	plain := lipgloss.NewStyle().Foreground(m.Theme.FG())
	sel := lipgloss.NewStyle().Foreground(m.Theme.Cursor()).Bold(true)
	sym := m.Theme.Symbols

	meter := func(v float64, indicated bool) string {
		s := widgets.RenderMeter(v, 6)
		if indicated {
			return accent.Render(s)
		}
		return plain.Render(s)
	}
	flag := func(on bool, label string) string {
		if on {
			return label
		}
		return string(sym.FlagOff)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("tracks %d-%d of %d", pj.Offset+1, pj.Offset+daw.BankSize, pj.NumTracks))
	for slot, t := range pj.Tracks {
		if pj.TrackNums[slot] == 0 {
			lines = append(lines, "  -")
			continue
		}
		ind := pj.Indications
		var clips strings.Builder
		for s := 0; s < daw.SlotsPerTrack; s++ {
			if t.HasClip(s) {
				clips.WriteRune(sym.ClipFull)
			} else {
				clips.WriteRune(sym.ClipNone)
			}
		}
		name := plain.Render(fmt.Sprintf("%-9s", t.Name))
		if slot == pj.Selected {
			name = sel.Render(fmt.Sprintf("%-9s", t.Name))
		}
		lines = append(lines, fmt.Sprintf("  %s vol %s pan %s snd %s %s  %s %s  %s",
			name,
			meter(t.Volume, ind[control.IndicateVolume][slot]),
			meter(t.Pan, ind[control.IndicatePan][slot]),
			meter(t.Sends[0], ind[control.IndicateSend0][slot]),
			meter(t.Sends[1], ind[control.IndicateSend1][slot]),
			flag(t.Muted, "M"),
			flag(t.Armed, "R"),
			clips.String(),
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) deviceLine(pj daw.Snapshot) string {
	var macros, params []string
	for _, v := range pj.Device.Macros {
		macros = append(macros, fmt.Sprintf("%3.0f", v*100))
	}
	for _, v := range pj.Device.Params() {
		params = append(params, fmt.Sprintf("%3.0f", v*100))
	}
	return fmt.Sprintf("device %d/%d %s  page %d/%d\n  macros %s\n  params %s",
		pj.DeviceIdx+1, pj.NumDevices, pj.Device.Name,
		pj.Device.Page+1, len(pj.Device.Pages),
		strings.Join(macros, " "), strings.Join(params, " "))
}

func (m Model) userLine(pj daw.Snapshot) string {
	line := "user control: -"
	if pj.LastUser >= 0 {
		line = fmt.Sprintf("user control %d (%s) = %.0f", pj.LastUser, pj.LastUserLabel, pj.LastUserValue*127)
	}
	if n := len(pj.Notes); n > 0 {
		last := pj.Notes[n-1]
		line += fmt.Sprintf("   note %02X %02X %02X", last.Status, last.Data1, last.Data2)
	}
	return line
}
