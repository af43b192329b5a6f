package control

import (
	"reflect"
	"testing"
)

func TestMuteReflectedOffPage(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory1))

	h.trackObs[4][0].MuteChanged(true)

	want := [][3]byte{{0x99, PadData[4], byte(Orange)}}
	if !reflect.DeepEqual(out.sent, want) {
		t.Errorf("sent %v, want %v", out.sent, want)
	}
	if !s.State().Muted[4] {
		t.Error("muted[4] not cached")
	}
}

func TestArmReflectedInCurrentLayout(t *testing.T) {
	s, h, out := newTestSurface()
	s.SetInvert(true)
	out.reset()

	h.trackObs[1][0].ArmChanged(true)

	// Factory3 (code 10) talks on channel 13 when inverted.
	want := [][3]byte{{0x9D, PadData[1], byte(RedFull)}}
	if !reflect.DeepEqual(out.sent, want) {
		t.Errorf("sent %v, want %v", out.sent, want)
	}
}

func TestTransportReflected(t *testing.T) {
	tests := []struct {
		toggle TransportToggle
		on     bool
		want   [3]byte
	}{
		{Playing, true, [3]byte{0x98, PadData[1], byte(Lime)}},
		{Playing, false, [3]byte{0x98, PadData[1], byte(GreenLow)}},
		{Recording, true, [3]byte{0x98, PadData[2], byte(RedFull)}},
		{Recording, false, [3]byte{0x98, PadData[2], byte(RedLow)}},
		{WritingAutomation, true, [3]byte{0x98, PadData[3], byte(RedFull)}},
		{LoopActive, true, [3]byte{0x98, PadData[4], byte(Orange)}},
		{ClickActive, false, [3]byte{0x98, PadData[5], byte(Off)}},
		{LauncherOverdubActive, true, [3]byte{0x98, PadData[6], byte(RedFull)}},
		{OverdubActive, true, [3]byte{0x98, PadData[7], byte(Orange)}},
	}
	for _, tt := range tests {
		s, h, out := newTestSurface()
		h.transportObs[0].TransportChanged(tt.toggle, tt.on)
		if len(out.sent) != 1 || out.sent[0] != tt.want {
			t.Errorf("%s=%v sent %v, want [%v]", tt.toggle, tt.on, out.sent, tt.want)
		}
		if s.State().Transport.Get(tt.toggle) != tt.on {
			t.Errorf("%s not cached", tt.toggle)
		}
	}
}

func TestRedrawMutePage(t *testing.T) {
	s, h, out := newTestSurface()
	h.trackObs[0][0].MuteChanged(true)
	h.trackObs[5][0].MuteChanged(true)
	out.reset()

	s.HandleSysEx(PageChangeSysEx(int(Factory2)))

	if len(out.sent) != NumColumns {
		t.Fatalf("redraw sent %d messages, want %d", len(out.sent), NumColumns)
	}
	for col, msg := range out.sent {
		want := [3]byte{0x99, PadData[col], byte(muteColour(col == 0 || col == 5))}
		if msg != want {
			t.Errorf("column %d = %v, want %v", col, msg, want)
		}
	}
}

func TestRedrawPerPage(t *testing.T) {
	tests := []struct {
		page Page
		want []Colour
	}{
		{Factory1, []Colour{YellowLow, GreenLow, RedLow, Off, Off, Off, Off, Off}},
		{Factory3, []Colour{Lime, Lime, Lime, Lime, Lime, Lime, Lime, Lime}},
		{Factory4, []Colour{RedLow, RedLow, RedLow, RedLow, RedLow, RedLow, RedLow, RedLow}},
		{3, nil},
		{14, nil},
	}
	for _, tt := range tests {
		s, _, out := newTestSurface()
		s.HandleSysEx(PageChangeSysEx(int(tt.page)))

		var got []Colour
		for _, msg := range out.sent {
			got = append(got, Colour(msg[2]))
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("redraw %s = %v, want %v", tt.page, got, tt.want)
		}
	}
}

func TestRefreshAfterEveryMessage(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory2))

	s.HandleMIDI(0xF8, 0, 0) // unroutable
	if len(out.sent) != 4+NumColumns {
		t.Fatalf("refresh sent %d messages, want %d", len(out.sent), 4+NumColumns)
	}
	for i := 0; i < 4; i++ {
		want := [3]byte{0xB8, 72 + byte(i), byte(Off)}
		if out.sent[i] != want {
			t.Errorf("side LED %d = %v, want %v", i, out.sent[i], want)
		}
	}
}

func TestSideLEDsFollowScrollSource(t *testing.T) {
	s, h, out := newTestSurface()
	h.bankObs[0].CanScrollTracksUpChanged(true)
	h.cursorObs[0].CanSelectPreviousChanged(true)

	// mixer aligned: side LEDs show the device chain; up stays dark
	// since the cursor device cannot select next
	selectPage(s, h, out, int(Factory1))
	s.HandleMIDI(0xF8, 0, 0)
	got := colours(out.sent[:4])
	if want := []Colour{Off, RedFull, Off, RedFull}; !reflect.DeepEqual(got, want) {
		t.Errorf("Factory1 side LEDs = %v, want %v", got, want)
	}

	selectPage(s, h, out, int(Factory3))
	s.HandleMIDI(0xF8, 0, 0)
	got = colours(out.sent[:4])
	if want := []Colour{RedFull, Off, RedFull, Off}; !reflect.DeepEqual(got, want) {
		t.Errorf("Factory3 side LEDs = %v, want %v", got, want)
	}
}

func TestIndications(t *testing.T) {
	s, h, out := newTestSurface()

	selectPage(s, h, out, int(Factory1))
	for i := 0; i < NumColumns; i++ {
		if !h.indications[[2]int{int(IndicateVolume), i}] || !h.indications[[2]int{int(IndicatePan), i}] {
			t.Errorf("Factory1: volume/pan %d not indicated", i)
		}
		if h.indications[[2]int{int(IndicateUserControl), i}] {
			t.Errorf("Factory1: user control %d indicated", i)
		}
	}

	selectPage(s, h, out, int(Factory3))
	if !h.indications[[2]int{int(IndicateMacro), 7}] || !h.indications[[2]int{int(IndicateParameter), 0}] {
		t.Error("Factory3: device not indicated")
	}
	if h.indications[[2]int{int(IndicateVolume), 0}] {
		t.Error("Factory3: volume still indicated")
	}

	selectPage(s, h, out, 5)
	if !h.indications[[2]int{int(IndicateUserControl), 3}] {
		t.Error("user page: user control not indicated")
	}
}

func colours(msgs [][3]byte) []Colour {
	var cs []Colour
	for _, m := range msgs {
		cs = append(cs, Colour(m[2]))
	}
	return cs
}
