// Package daw is an in-process host that the control surface drives when
// no real workstation is attached. It keeps a small project (tracks,
// transport, a device chain, user controls) and notifies observers the
// way a host scripting API does.
package daw

import (
	"fmt"
	"sync"

	"go-launchcontrol/control"
)

const (
	BankSize      = control.NumTracks
	SlotsPerTrack = control.SlotsPerTrack
	NumSends      = 2
	NumMacros     = 8
	NumParams     = 8

	// UserControlCount covers CC 21-48 on all 16 channels.
	UserControlCount = 28 * control.NumPages

	maxNotes = 32
)

// Project is the simulated host. It satisfies control.Host. All methods
// are safe for concurrent use; observers are called outside the lock.
type Project struct {
	mu sync.Mutex

	tracks    []*Track
	offset    int // first track of the bank window
	selected  int // absolute index of the selected track
	transport [control.OverdubActive + 1]bool

	devices []*Device
	cursor  int // cursor device
	primary int // device the knobs talk to

	userValues  []float64
	userLabels  []string
	lastUser    int
	indications [control.NumIndicationTargets][BankSize]bool

	notes  []Note
	invert bool

	obs observers

	// Notify TUI of updates
	UpdateChan chan struct{}
}

// Track is one project track.
type Track struct {
	Name   string
	Volume float64
	Pan    float64
	Sends  [NumSends]float64
	Muted  bool
	Armed  bool
	Clips  [SlotsPerTrack]int // length in bars, 0 = empty
}

// Device is one device of the chain with its macros and parameter pages.
type Device struct {
	Name   string
	Macros [NumMacros]float64
	Pages  [][NumParams]float64
	Page   int
}

// Note is a message forwarded to the note input.
type Note struct {
	Status, Data1, Data2 byte
}

type observers struct {
	transport []control.TransportObserver
	tracks    [BankSize][]control.TrackObserver
	bank      []control.BankObserver
	cursor    []control.CursorDeviceObserver
	invert    []func(bool)
}

// New creates a project with n tracks and a default device chain.
func New(n int) *Project {
	if n < 1 {
		n = 1
	}
	p := &Project{
		userValues: make([]float64, UserControlCount),
		userLabels: make([]string, UserControlCount),
		lastUser:   -1,
		UpdateChan: make(chan struct{}, 1),
	}
	for i := 0; i < n; i++ {
		p.tracks = append(p.tracks, &Track{Name: fmt.Sprintf("Track %d", i+1), Volume: 0.8, Pan: 0.5})
	}
	for _, name := range []string{"EQ", "Compressor", "Delay", "Reverb"} {
		p.devices = append(p.devices, &Device{Name: name, Pages: make([][NumParams]float64, 3)})
	}
	return p
}

// notifyUpdate signals the TUI without blocking.
func (p *Project) notifyUpdate() {
	select {
	case p.UpdateChan <- struct{}{}:
	default:
	}
}

// commit runs the observer calls collected under the lock.
func (p *Project) commit(calls []func()) {
	for _, fn := range calls {
		fn()
	}
	p.notifyUpdate()
}

func (p *Project) Transport() control.Transport         { return transport{p} }
func (p *Project) TrackBank() control.TrackBank         { return trackBank{p} }
func (p *Project) CursorDevice() control.CursorDevice   { return cursorDevice{p} }
func (p *Project) PrimaryDevice() control.PrimaryDevice { return primaryDevice{p} }
func (p *Project) UserControls() control.UserControls   { return userControls{p} }
func (p *Project) Indicator() control.Indicator         { return indicator{p} }
func (p *Project) NoteInput() control.NoteInput         { return noteInput{p} }
func (p *Project) Preferences() control.Preferences     { return preferences{p} }

// scale maps a value in [0, resolution) onto [0, 1].
func scale(value, resolution int) float64 {
	if resolution < 2 {
		return 0
	}
	v := float64(value) / float64(resolution-1)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// SetInvert changes the invert preference and notifies observers.
func (p *Project) SetInvert(inverted bool) {
	p.mu.Lock()
	if p.invert == inverted {
		p.mu.Unlock()
		return
	}
	p.invert = inverted
	var calls []func()
	for _, fn := range p.obs.invert {
		fn := fn
		calls = append(calls, func() { fn(inverted) })
	}
	p.mu.Unlock()
	p.commit(calls)
}

type preferences struct{ p *Project }

func (pr preferences) AddInvertObserver(fn func(bool)) {
	pr.p.mu.Lock()
	pr.p.obs.invert = append(pr.p.obs.invert, fn)
	inverted := pr.p.invert
	pr.p.mu.Unlock()
	fn(inverted)
}

type noteInput struct{ p *Project }

func (n noteInput) Note(status, data1, data2 byte) {
	n.p.mu.Lock()
	n.p.notes = append(n.p.notes, Note{status, data1, data2})
	if len(n.p.notes) > maxNotes {
		n.p.notes = n.p.notes[len(n.p.notes)-maxNotes:]
	}
	n.p.mu.Unlock()
	n.p.notifyUpdate()
}

type indicator struct{ p *Project }

func (in indicator) SetIndication(target control.IndicationTarget, index int, on bool) {
	if target < 0 || target >= control.NumIndicationTargets || index < 0 || index >= BankSize {
		return
	}
	in.p.mu.Lock()
	in.p.indications[target][index] = on
	in.p.mu.Unlock()
}
