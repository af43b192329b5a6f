package control

import "fmt"

// recorder captures every message sent to the controller.
type recorder struct {
	sent [][3]byte
}

func (r *recorder) Send(status, data1, data2 byte) error {
	r.sent = append(r.sent, [3]byte{status, data1, data2})
	return nil
}

func (r *recorder) reset() { r.sent = nil }

// fakeHost records collaborator calls as strings and keeps observers so
// tests can fire them.
type fakeHost struct {
	calls []string

	transportObs []TransportObserver
	trackObs     [NumTracks][]TrackObserver
	bankObs      []BankObserver
	cursorObs    []CursorDeviceObserver
	invertObs    []func(bool)

	labels      map[int]string
	indications map[[2]int]bool
	notes       [][3]byte
}

func newFakeHost() *fakeHost {
	return &fakeHost{labels: map[int]string{}, indications: map[[2]int]bool{}}
}

func (h *fakeHost) call(format string, args ...any) {
	h.calls = append(h.calls, fmt.Sprintf(format, args...))
}

func (h *fakeHost) reset() { h.calls = nil }

func (h *fakeHost) Transport() Transport         { return fakeTransport{h} }
func (h *fakeHost) TrackBank() TrackBank         { return fakeBank{h} }
func (h *fakeHost) CursorDevice() CursorDevice   { return fakeCursor{h} }
func (h *fakeHost) PrimaryDevice() PrimaryDevice { return fakeDevice{h} }
func (h *fakeHost) UserControls() UserControls   { return fakeUserControls{h} }
func (h *fakeHost) Indicator() Indicator         { return h }
func (h *fakeHost) NoteInput() NoteInput         { return h }
func (h *fakeHost) Preferences() Preferences     { return h }

func (h *fakeHost) SetIndication(target IndicationTarget, index int, on bool) {
	h.indications[[2]int{int(target), index}] = on
}

func (h *fakeHost) Note(status, data1, data2 byte) {
	h.notes = append(h.notes, [3]byte{status, data1, data2})
}

func (h *fakeHost) AddInvertObserver(fn func(bool)) {
	h.invertObs = append(h.invertObs, fn)
	fn(false)
}

type fakeTransport struct{ h *fakeHost }

func (t fakeTransport) Stop()                          { t.h.call("stop") }
func (t fakeTransport) Play()                          { t.h.call("play") }
func (t fakeTransport) Record()                        { t.h.call("record") }
func (t fakeTransport) ToggleWriteArrangerAutomation() { t.h.call("automation") }
func (t fakeTransport) ToggleLoop()                    { t.h.call("loop") }
func (t fakeTransport) ToggleClick()                   { t.h.call("click") }
func (t fakeTransport) ToggleLauncherOverdub()         { t.h.call("launcher overdub") }
func (t fakeTransport) ToggleOverdub()                 { t.h.call("overdub") }
func (t fakeTransport) AddObserver(o TransportObserver) {
	t.h.transportObs = append(t.h.transportObs, o)
}

type fakeBank struct{ h *fakeHost }

func (b fakeBank) Track(i int) Track          { return fakeTrack{b.h, i} }
func (b fakeBank) ScrollTracksPageUp()        { b.h.call("scroll up") }
func (b fakeBank) ScrollTracksPageDown()      { b.h.call("scroll down") }
func (b fakeBank) ScrollTracksPageLeft()      { b.h.call("scroll left") }
func (b fakeBank) ScrollTracksPageRight()     { b.h.call("scroll right") }
func (b fakeBank) AddObserver(o BankObserver) { b.h.bankObs = append(b.h.bankObs, o) }

type fakeTrack struct {
	h *fakeHost
	i int
}

func (t fakeTrack) SetVolume(v, res int)     { t.h.call("volume %d %d/%d", t.i, v, res) }
func (t fakeTrack) SetPan(v, res int)        { t.h.call("pan %d %d/%d", t.i, v, res) }
func (t fakeTrack) SetSend(s, v, res int)    { t.h.call("send%d %d %d/%d", s, t.i, v, res) }
func (t fakeTrack) ToggleMute()              { t.h.call("mute %d", t.i) }
func (t fakeTrack) ToggleArm()               { t.h.call("arm %d", t.i) }
func (t fakeTrack) SelectInMixer()           { t.h.call("select %d", t.i) }
func (t fakeTrack) CreateEmptyClip(s, l int) { t.h.call("clip %d slot %d bars %d", t.i, s, l) }
func (t fakeTrack) AddObserver(o TrackObserver) {
	t.h.trackObs[t.i] = append(t.h.trackObs[t.i], o)
}

type fakeCursor struct{ h *fakeHost }

func (c fakeCursor) SelectPrevious() { c.h.call("cursor previous") }
func (c fakeCursor) SelectNext()     { c.h.call("cursor next") }
func (c fakeCursor) AddObserver(o CursorDeviceObserver) {
	c.h.cursorObs = append(c.h.cursorObs, o)
}

type fakeDevice struct{ h *fakeHost }

func (d fakeDevice) SetMacro(i, v, res int)     { d.h.call("macro %d %d/%d", i, v, res) }
func (d fakeDevice) SetParameter(i, v, res int) { d.h.call("param %d %d/%d", i, v, res) }
func (d fakeDevice) PreviousParameterPage()     { d.h.call("param page previous") }
func (d fakeDevice) NextParameterPage()         { d.h.call("param page next") }
func (d fakeDevice) SwitchToPrevious()          { d.h.call("device previous") }
func (d fakeDevice) SwitchToNext()              { d.h.call("device next") }

type fakeUserControls struct{ h *fakeHost }

func (u fakeUserControls) Len() int                     { return NumPages * ccPerChannel }
func (u fakeUserControls) Set(i, v, res int)            { u.h.call("user %d %d/%d", i, v, res) }
func (u fakeUserControls) SetLabel(i int, label string) { u.h.labels[i] = label }

// newTestSurface returns an initialised surface with the output cleared.
func newTestSurface() (*Surface, *fakeHost, *recorder) {
	h := newFakeHost()
	out := &recorder{}
	s := NewSurface(h, out)
	s.Init(nil)
	out.reset()
	h.reset()
	return s, h, out
}

// selectPage sends the page-change message for code and clears recordings.
func selectPage(s *Surface, h *fakeHost, out *recorder, code int) {
	s.HandleSysEx(PageChangeSysEx(code))
	out.reset()
	h.reset()
}

func padOn(p Page, col int) (byte, byte, byte) {
	return statusNoteOn | byte(p), PadData[col], PadPressed
}
