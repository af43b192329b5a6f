package midi

// MIDI message types
const (
	NoteOn  uint8 = 0x90
	NoteOff uint8 = 0x80
	CC      uint8 = 0xB0
)

// Event is a message received from the controller. Short messages fill
// Status/Data1/Data2; SysEx messages carry the full F0..F7 frame in SysEx.
type Event struct {
	Status uint8
	Data1  uint8
	Data2  uint8
	SysEx  []byte
}

func (e Event) IsSysEx() bool {
	return e.SysEx != nil
}

// Kind returns the status nibble (NoteOn, NoteOff, CC, ...).
func (e Event) Kind() uint8 {
	return e.Status & 0xF0
}

// Channel returns the 0-based MIDI channel.
func (e Event) Channel() uint8 {
	return e.Status & 0x0F
}
