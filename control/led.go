package control

import "go-launchcontrol/debug"

// Output writes raw MIDI short messages to the controller.
type Output interface {
	Send(status, data1, data2 byte) error
}

// LEDWrite is a single LED update.
type LEDWrite struct {
	Status byte
	Data   byte
	Colour Colour
}

const (
	sideLEDStatus byte = 0xB8
	sideLEDFirst  byte = 72
	resetStatus   byte = 0xB8
)

// LEDDriver sends LED updates. Write errors are logged and dropped.
type LEDDriver struct {
	out Output
}

func (d LEDDriver) Write(w LEDWrite) {
	d.send(w.Status, w.Data, byte(w.Colour))
}

func (d LEDDriver) WriteAll(ws []LEDWrite) {
	for _, w := range ws {
		d.Write(w)
	}
}

// Reset sends the reset message the controller expects on exit.
func (d LEDDriver) Reset() {
	d.send(resetStatus, 0, 0)
}

// ClearAll blanks the LEDs of every template.
func (d LEDDriver) ClearAll() {
	for ch := byte(0); ch < NumPages; ch++ {
		d.send(statusControlChange|ch, 0, 0)
	}
}

func (d LEDDriver) send(status, data1, data2 byte) {
	if d.out == nil {
		return
	}
	if err := d.out.Send(status, data1, data2); err != nil {
		debug.Log("led", "send %02X %02X %02X: %v", status, data1, data2, err)
	}
}

// sideLED addresses the side-button LED i (up, down, left, right).
func sideLED(i int, c Colour) LEDWrite {
	return LEDWrite{Status: sideLEDStatus, Data: sideLEDFirst + byte(i), Colour: c}
}
