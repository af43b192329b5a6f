package control

import (
	"reflect"
	"strconv"
	"testing"
)

func TestInitClearsAndLightsStop(t *testing.T) {
	h := newFakeHost()
	out := &recorder{}
	s := NewSurface(h, out)
	s.Init(nil)

	if len(out.sent) != NumPages+1 {
		t.Fatalf("Init sent %d messages, want %d: %v", len(out.sent), NumPages+1, out.sent)
	}
	for ch := 0; ch < NumPages; ch++ {
		if want := [3]byte{0xB0 | byte(ch), 0, 0}; out.sent[ch] != want {
			t.Errorf("clear %d = %v, want %v", ch, out.sent[ch], want)
		}
	}
	if want := [3]byte{0x98, 9, byte(YellowLow)}; out.sent[NumPages] != want {
		t.Errorf("stop pad = %v, want %v", out.sent[NumPages], want)
	}
	if s.Page() != PageNone {
		t.Errorf("initial page = %s, want none", s.Page())
	}
	if !s.State().IncontrolMix {
		t.Error("IncontrolMix should start true")
	}
}

func TestUserControlLabels(t *testing.T) {
	_, h, _ := newTestSurface()

	if got := h.labels[0]; got != "CC 21 - Channel 1" {
		t.Errorf("label 0 = %q", got)
	}
	if got := h.labels[65]; got != "CC 30 - Channel 3" {
		t.Errorf("label 65 = %q", got)
	}
	if len(h.labels) != NumPages*ccPerChannel {
		t.Errorf("%d labels, want %d", len(h.labels), NumPages*ccPerChannel)
	}
}

func TestExitSendsReset(t *testing.T) {
	s, _, out := newTestSurface()
	s.Exit()
	if want := [][3]byte{{0xB8, 0, 0}}; !reflect.DeepEqual(out.sent, want) {
		t.Errorf("Exit sent %v, want %v", out.sent, want)
	}
}

func TestTransportPads(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory1))

	for col := 0; col < NumColumns; col++ {
		s.HandleMIDI(padOn(Factory1, col))
	}
	want := []string{"stop", "play", "record", "automation", "loop", "click", "launcher overdub", "overdub"}
	if !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestPadReleaseIgnored(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory2))

	s.HandleMIDI(0x99, PadData[3], 0)
	if len(h.calls) != 0 {
		t.Errorf("release triggered %v", h.calls)
	}
}

func TestMixerKnobs(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory1))

	s.HandleMIDI(0xB8, 23, 100)
	s.HandleMIDI(0xB8, 46, 5)

	want := []string{"volume 2 100/128", "pan 5 5/128"}
	if !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestSendKnobs(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory2))

	s.HandleMIDI(0xB9, 22, 10)
	s.HandleMIDI(0xB9, 47, 20)

	want := []string{"send0 1 10/128", "send1 6 20/128"}
	if !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestDeviceKnobSplit(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory3))

	tests := []struct {
		cc   byte
		want string
	}{
		{21, "macro 0 1/128"},
		{24, "macro 3 1/128"},
		{25, "param 0 1/128"},
		{28, "param 3 1/128"},
		{41, "macro 4 1/128"},
		{44, "macro 7 1/128"},
		{45, "param 4 1/128"},
		{48, "param 7 1/128"},
	}
	for _, tt := range tests {
		h.reset()
		s.HandleMIDI(0xBA, tt.cc, 1)
		if len(h.calls) != 1 || h.calls[0] != tt.want {
			t.Errorf("CC %d: calls = %v, want [%s]", tt.cc, h.calls, tt.want)
		}
	}
}

func TestMutePad(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory2))

	s.HandleMIDI(padOn(Factory2, 6))
	if want := []string{"mute 6"}; !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestArmPadSelectsOnArm(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory3))

	s.HandleMIDI(padOn(Factory3, 2))
	if want := []string{"arm 2", "select 2"}; !reflect.DeepEqual(h.calls, want) {
		t.Errorf("first press calls = %v, want %v", h.calls, want)
	}
	if !s.State().Armed[2] {
		t.Error("armed[2] = false after first press")
	}

	h.reset()
	s.HandleMIDI(padOn(Factory3, 2))
	if want := []string{"arm 2"}; !reflect.DeepEqual(h.calls, want) {
		t.Errorf("second press calls = %v, want %v", h.calls, want)
	}
	if s.State().Armed[2] {
		t.Error("armed[2] = true after second press")
	}
}

func TestClipCreateFirstEmptySlot(t *testing.T) {
	s, h, out := newTestSurface()
	h.trackObs[3][0].SelectedChanged(true)
	h.trackObs[3][0].SlotContentChanged(0, true)
	h.trackObs[3][0].SlotContentChanged(1, true)
	selectPage(s, h, out, int(Factory4))

	for _, pad := range []int{0, 5} {
		h.reset()
		s.HandleMIDI(padOn(Factory4, pad))
		want := []string{"clip 3 slot 2 bars " + strconv.Itoa((pad+1)*4)}
		if !reflect.DeepEqual(h.calls, want) {
			t.Errorf("pad %d: calls = %v, want %v", pad, h.calls, want)
		}
	}
}

func TestClipCreateNoFreeSlot(t *testing.T) {
	s, h, out := newTestSurface()
	for slot := 0; slot < SlotsPerTrack; slot++ {
		h.trackObs[0][0].SlotContentChanged(slot, true)
	}
	selectPage(s, h, out, int(Factory4))

	s.HandleMIDI(padOn(Factory4, 1))
	if len(h.calls) != 0 {
		t.Errorf("calls = %v, want none", h.calls)
	}
}

func TestUserPagePadsUnmapped(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, 2)

	s.HandleMIDI(padOn(2, 0))
	if len(h.calls) != 0 {
		t.Errorf("calls = %v, want none", h.calls)
	}
}

func TestFreeCCForwardedToUserControl(t *testing.T) {
	s, h, _ := newTestSurface()

	s.HandleMIDI(0xB2, 30, 64)
	s.HandleMIDI(0xB2, 127, 64) // outside the window
	if want := []string{"user 65 64/128"}; !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestFreeCCFullValueNotSwallowed(t *testing.T) {
	s, h, _ := newTestSurface()

	s.HandleMIDI(0xB0, 21, 127)
	if want := []string{"user 0 127/128"}; !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestFactory4KnobsAreFree(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory4))

	s.HandleMIDI(0xBB, 21, 3)
	if want := []string{"user 308 3/128"}; !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestSideButtonsScrollBank(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory1))

	for _, b := range []byte{SideUp, SideDown, SideLeft, SideRight} {
		s.HandleMIDI(0xB8, b, 127)
		s.HandleMIDI(0xB8, b, 0)
	}
	want := []string{"scroll up", "scroll down", "scroll left", "scroll right"}
	if !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestSideButtonsNavigateDevice(t *testing.T) {
	s, h, out := newTestSurface()
	selectPage(s, h, out, int(Factory3))

	for _, b := range []byte{SideUp, SideDown, SideLeft, SideRight} {
		s.HandleMIDI(0xBA, b, 127)
	}
	want := []string{
		"param page previous",
		"param page next",
		"cursor previous", "device previous",
		"cursor next", "device next",
	}
	if !reflect.DeepEqual(h.calls, want) {
		t.Errorf("calls = %v, want %v", h.calls, want)
	}
}

func TestNotePassThrough(t *testing.T) {
	s, h, _ := newTestSurface()

	s.HandleMIDI(0x90, 60, 100)
	s.HandleMIDI(0x80, 60, 0)
	s.HandleMIDI(0x91, 60, 100)

	want := [][3]byte{{0x90, 60, 100}, {0x80, 60, 0}}
	if !reflect.DeepEqual(h.notes, want) {
		t.Errorf("notes = %v, want %v", h.notes, want)
	}
}

func TestInvertObserverSwitchesLayout(t *testing.T) {
	s, h, _ := newTestSurface()

	h.invertObs[0](true)
	if !s.Layout().Inverted() {
		t.Fatal("layout not inverted")
	}
	s.HandleSysEx(PageChangeSysEx(9))
	if s.Page() != 14 {
		t.Errorf("page = %d, want 14", s.Page())
	}

	h.invertObs[0](false)
	s.HandleSysEx(PageChangeSysEx(9))
	if s.Page() != 9 {
		t.Errorf("page = %d, want 9", s.Page())
	}
}
