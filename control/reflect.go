package control

// transportLEDs are the Factory 1 pad colours in column order. Column 0
// (stop) has no state and is always lit stopColour.
var transportLEDs = [NumColumns]struct {
	toggle  TransportToggle
	on, off Colour
}{
	{-1, stopColour, stopColour},
	{Playing, Lime, GreenLow},
	{Recording, RedFull, RedLow},
	{WritingAutomation, RedFull, Off},
	{LoopActive, Orange, Off},
	{ClickActive, Orange, Off},
	{LauncherOverdubActive, RedFull, Off},
	{OverdubActive, Orange, Off},
}

func transportColumn(t TransportToggle) (int, bool) {
	for col, led := range transportLEDs {
		if led.toggle == t {
			return col, true
		}
	}
	return 0, false
}

// padLED addresses pad col of the page carrying role in the current layout.
func (s *Surface) padLED(role PadRole, col int, c Colour) (LEDWrite, bool) {
	status, data, ok := s.layout.LEDAddress(pageWithPads(role), col)
	if !ok {
		return LEDWrite{}, false
	}
	return LEDWrite{Status: status, Data: data, Colour: c}, true
}

func (s *Surface) transportPadLED(col int) (LEDWrite, bool) {
	led := transportLEDs[col]
	c := led.off
	if led.toggle >= 0 && s.state.Transport.Get(led.toggle) {
		c = led.on
	}
	return s.padLED(PadsTransport, col, c)
}

// pageLEDs computes the full redraw of page p from cached state.
func (s *Surface) pageLEDs(p Page) []LEDWrite {
	role := SemanticsOf(p).Pads
	var ws []LEDWrite
	for col := 0; col < NumColumns; col++ {
		var (
			w  LEDWrite
			ok bool
		)
		switch role {
		case PadsTransport:
			w, ok = s.transportPadLED(col)
		case PadsMute:
			w, ok = s.padLED(role, col, muteColour(s.state.Muted[col]))
		case PadsArm:
			w, ok = s.padLED(role, col, armColour(s.state.Armed[col]))
		case PadsClipCreate:
			w, ok = s.padLED(role, col, clipCreateColour)
		}
		if ok {
			ws = append(ws, w)
		}
	}
	return ws
}

// scrollLEDs computes the four side LEDs. Each one, up included, is off
// when that direction cannot scroll.
func (s *Surface) scrollLEDs() []LEDWrite {
	up, down, left, right := s.state.CanScroll()
	ws := make([]LEDWrite, 0, 4)
	for i, can := range []bool{up, down, left, right} {
		ws = append(ws, sideLED(i, pick(can, RedFull, Off)))
	}
	return ws
}

// Redraw updates host indications and re-emits the active page's LEDs.
func (s *Surface) Redraw() {
	s.updateIndications()
	s.leds.WriteAll(s.pageLEDs(s.page))
}

// refresh runs after every controller message.
func (s *Surface) refresh() {
	s.leds.WriteAll(s.scrollLEDs())
	s.leds.WriteAll(s.pageLEDs(s.page))
}

func (s *Surface) updateIndications() {
	ind := s.host.Indicator()
	knobs := SemanticsOf(s.page).Knobs
	for i := 0; i < NumColumns; i++ {
		ind.SetIndication(IndicateVolume, i, knobs == KnobsMixer)
		ind.SetIndication(IndicatePan, i, knobs == KnobsMixer)
		ind.SetIndication(IndicateSend0, i, knobs == KnobsSends)
		ind.SetIndication(IndicateSend1, i, knobs == KnobsSends)
		ind.SetIndication(IndicateParameter, i, knobs == KnobsDevice)
		ind.SetIndication(IndicateMacro, i, knobs == KnobsDevice)
		ind.SetIndication(IndicateUserControl, i, knobs == KnobsFree)
	}
}

// Incremental reflection. Each change emits its LED in the current layout
// whether or not its page is showing; the controller ignores writes to
// inactive templates.

func (s *Surface) transportChanged(t TransportToggle, on bool) {
	if t < 0 || t >= numTransportToggles {
		return
	}
	s.state.Transport[t] = on
	if col, ok := transportColumn(t); ok {
		if w, ok := s.transportPadLED(col); ok {
			s.leds.Write(w)
		}
	}
}

func (s *Surface) muteChanged(col int, on bool) {
	s.state.Muted[col] = on
	if w, ok := s.padLED(PadsMute, col, muteColour(on)); ok {
		s.leds.Write(w)
	}
}

func (s *Surface) armChanged(col int, on bool) {
	s.state.Armed[col] = on
	if w, ok := s.padLED(PadsArm, col, armColour(on)); ok {
		s.leds.Write(w)
	}
}

func (s *Surface) selectedChanged(col int, on bool) {
	if on {
		s.state.SelectedChannel = col
	}
}

func (s *Surface) slotContentChanged(col, slot int, on bool) {
	s.state.setHasClip(col, slot, on)
}

// Observer records. Each one forwards onto the scheduler so that host
// notifications never interleave with message handling.

type transportHandler struct{ s *Surface }

func (h transportHandler) TransportChanged(t TransportToggle, on bool) {
	h.s.sched.Schedule(func() { h.s.transportChanged(t, on) })
}

// trackHandler is bound to one bank column at construction.
type trackHandler struct {
	s     *Surface
	index int
}

func (h trackHandler) MuteChanged(on bool) {
	h.s.sched.Schedule(func() { h.s.muteChanged(h.index, on) })
}

func (h trackHandler) ArmChanged(on bool) {
	h.s.sched.Schedule(func() { h.s.armChanged(h.index, on) })
}

func (h trackHandler) SelectedChanged(on bool) {
	h.s.sched.Schedule(func() { h.s.selectedChanged(h.index, on) })
}

func (h trackHandler) SlotContentChanged(slot int, on bool) {
	h.s.sched.Schedule(func() { h.s.slotContentChanged(h.index, slot, on) })
}

type bankHandler struct{ s *Surface }

func (h bankHandler) CanScrollTracksUpChanged(can bool) {
	h.s.sched.Schedule(func() { h.s.state.Scroll.TracksUp = can })
}

func (h bankHandler) CanScrollTracksDownChanged(can bool) {
	h.s.sched.Schedule(func() { h.s.state.Scroll.TracksDown = can })
}

type cursorDeviceHandler struct{ s *Surface }

func (h cursorDeviceHandler) CanSelectNextChanged(can bool) {
	h.s.sched.Schedule(func() { h.s.state.Scroll.ScenesUp = can })
}

func (h cursorDeviceHandler) CanSelectPreviousChanged(can bool) {
	h.s.sched.Schedule(func() { h.s.state.Scroll.ScenesDown = can })
}
