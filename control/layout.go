package control

// MIDI status nibbles.
const (
	statusNoteOff       byte = 0x80
	statusNoteOn        byte = 0x90
	statusControlChange byte = 0xB0
	statusMask          byte = 0xF0
	channelMask         byte = 0x0F
)

// Data bytes of the physical controls.
var PadData = [NumColumns]byte{9, 10, 11, 12, 25, 26, 27, 28}

const (
	NumColumns = 8

	TopRowFirst    byte = 21
	BottomRowFirst byte = 41

	PadPressed byte = 127
)

// Row is a knob row.
type Row int

const (
	RowTop Row = iota
	RowBottom
)

func (r Row) String() string {
	if r == RowTop {
		return "top"
	}
	return "bottom"
}

// Layout maps pages to the MIDI identifiers the controller uses for them.
// Two immutable variants exist; the inverted one swaps the factory bank
// end to end (page 8 <-> 15, 9 <-> 14, ...).
type Layout struct {
	inverted bool
	channel  [NumPages]byte // page -> MIDI channel
	page     [NumPages]Page // MIDI channel -> page
}

var (
	normalLayout   = newLayout(false)
	invertedLayout = newLayout(true)
)

// LayoutFor returns the layout variant for the invert preference.
func LayoutFor(inverted bool) *Layout {
	if inverted {
		return invertedLayout
	}
	return normalLayout
}

func newLayout(inverted bool) *Layout {
	l := &Layout{inverted: inverted}
	for p := Page(0); p < NumPages; p++ {
		ch := byte(p)
		if inverted && p >= FactoryBank {
			ch = byte(invertCode(p))
		}
		l.channel[p] = ch
		l.page[ch] = p
	}
	return l
}

// invertCode mirrors a code inside the factory bank.
func invertCode(code Page) Page {
	return NumPages - 1 - (code - FactoryBank)
}

func (l *Layout) Inverted() bool {
	return l.inverted
}

// PageForCode maps a template code announced by the device to a page.
func (l *Layout) PageForCode(code int) Page {
	p := Page(code)
	if !p.Valid() {
		return PageNone
	}
	if l.inverted && p >= FactoryBank {
		return invertCode(p)
	}
	return p
}

// Channel returns the MIDI channel page p talks on.
func (l *Layout) Channel(p Page) (byte, bool) {
	if !p.Valid() {
		return 0, false
	}
	return l.channel[p], true
}

// PadStatus returns the note-on status byte of p's pads.
func (l *Layout) PadStatus(p Page) (byte, bool) {
	ch, ok := l.Channel(p)
	return statusNoteOn | ch, ok
}

// KnobStatus returns the control-change status byte of p's knobs.
func (l *Layout) KnobStatus(p Page) (byte, bool) {
	ch, ok := l.Channel(p)
	return statusControlChange | ch, ok
}

// PageForPadStatus returns the page owning a note-on status byte.
func (l *Layout) PageForPadStatus(status byte) Page {
	if status&statusMask != statusNoteOn {
		return PageNone
	}
	return l.page[status&channelMask]
}

// PageForKnobStatus returns the page owning a control-change status byte.
func (l *Layout) PageForKnobStatus(status byte) Page {
	if status&statusMask != statusControlChange {
		return PageNone
	}
	return l.page[status&channelMask]
}

// ResolvePad returns the column of a pad data byte.
func (l *Layout) ResolvePad(p Page, data byte) (int, bool) {
	if !p.Valid() {
		return 0, false
	}
	for col, d := range PadData {
		if d == data {
			return col, true
		}
	}
	return 0, false
}

// ResolveKnob returns the row and column of a knob CC number.
func (l *Layout) ResolveKnob(p Page, data byte) (Row, int, bool) {
	if !p.Valid() {
		return 0, 0, false
	}
	switch {
	case data >= TopRowFirst && data < TopRowFirst+NumColumns:
		return RowTop, int(data - TopRowFirst), true
	case data >= BottomRowFirst && data < BottomRowFirst+NumColumns:
		return RowBottom, int(data - BottomRowFirst), true
	}
	return 0, 0, false
}

// LEDAddress returns the status and data byte lighting pad col on page p.
func (l *Layout) LEDAddress(p Page, col int) (status, data byte, ok bool) {
	if col < 0 || col >= NumColumns {
		return 0, 0, false
	}
	status, ok = l.PadStatus(p)
	if !ok {
		return 0, 0, false
	}
	return status, PadData[col], true
}
