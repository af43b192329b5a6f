package control

import (
	"fmt"

	"go-launchcontrol/debug"
)

// Surface binds the controller to the host. All methods must be called
// from a single goroutine (see Queue); observers registered by Init
// reach the surface through the Scheduler.
type Surface struct {
	host   Host
	leds   LEDDriver
	layout *Layout
	page   Page
	state  ControllerState
	sched  Scheduler

	tracks [NumTracks]trackHandler
}

// Snapshot is a copy of the surface state for display.
type Snapshot struct {
	Page     Page
	Inverted bool
	State    ControllerState
}

func NewSurface(host Host, out Output) *Surface {
	s := &Surface{
		host:   host,
		leds:   LEDDriver{out: out},
		layout: LayoutFor(false),
		page:   PageNone,
		state:  newControllerState(),
		sched:  Inline{},
	}
	for i := range s.tracks {
		s.tracks[i] = trackHandler{s: s, index: i}
	}
	return s
}

// Init registers all observers with the host and draws the start state.
func (s *Surface) Init(sched Scheduler) {
	if sched != nil {
		s.sched = sched
	}
	s.leds.ClearAll()

	s.host.Preferences().AddInvertObserver(func(inverted bool) {
		s.sched.Schedule(func() { s.SetInvert(inverted) })
	})

	s.host.Transport().AddObserver(transportHandler{s})
	bank := s.host.TrackBank()
	for i := range s.tracks {
		bank.Track(i).AddObserver(s.tracks[i])
	}
	bank.AddObserver(bankHandler{s})
	s.host.CursorDevice().AddObserver(cursorDeviceHandler{s})

	s.labelUserControls()

	// Queued behind the observers' first reports, so the invert
	// preference and cached state are in place before drawing.
	s.sched.Schedule(s.drawStart)
}

func (s *Surface) drawStart() {
	if w, ok := s.transportPadLED(0); ok {
		s.leds.Write(w)
	}
	s.Redraw()
	debug.Log("surface", "initialised %s %s inverted=%v", LaunchControl.Name, LaunchControl.ID, s.layout.Inverted())
}

func (s *Surface) labelUserControls() {
	uc := s.host.UserControls()
	for ch := 0; ch < NumPages; ch++ {
		for cc := LowestCC; cc <= HighestCC; cc++ {
			idx, _ := userControlIndex(byte(ch), cc)
			if idx < uc.Len() {
				uc.SetLabel(idx, fmt.Sprintf("CC %d - Channel %d", cc, ch+1))
			}
		}
	}
}

// Exit sends the reset message.
func (s *Surface) Exit() {
	s.leds.Reset()
}

// SetInvert switches the layout variant. The active page keeps its value.
func (s *Surface) SetInvert(inverted bool) {
	if s.layout.Inverted() == inverted {
		return
	}
	s.layout = LayoutFor(inverted)
	debug.Log("surface", "invert=%v", inverted)
}

func (s *Surface) Page() Page {
	return s.page
}

func (s *Surface) Layout() *Layout {
	return s.layout
}

// State returns a copy of the cached controller state.
func (s *Surface) State() ControllerState {
	return s.state
}

func (s *Surface) Snapshot() Snapshot {
	return Snapshot{Page: s.page, Inverted: s.layout.Inverted(), State: s.state}
}
