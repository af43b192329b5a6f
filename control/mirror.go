package control

import "sync"

// LEDMirror remembers the last colour written to every LED address and
// forwards writes to the hardware output, if one is attached. It is safe
// to read from other goroutines.
type LEDMirror struct {
	mu   sync.RWMutex
	next Output
	leds map[[2]byte]Colour
}

func NewLEDMirror(next Output) *LEDMirror {
	return &LEDMirror{next: next, leds: make(map[[2]byte]Colour)}
}

// SetOutput swaps the hardware output; nil detaches it.
func (m *LEDMirror) SetOutput(next Output) {
	m.mu.Lock()
	m.next = next
	m.mu.Unlock()
}

func (m *LEDMirror) Send(status, data1, data2 byte) error {
	m.mu.Lock()
	if data1 == 0 && data2 == 0 && status&statusMask == statusControlChange {
		// reset blanks the template on that channel
		for k := range m.leds {
			if k[0]&channelMask == status&channelMask {
				delete(m.leds, k)
			}
		}
	} else {
		m.leds[[2]byte{status, data1}] = Colour(data2)
	}
	next := m.next
	m.mu.Unlock()

	if next == nil {
		return nil
	}
	return next.Send(status, data1, data2)
}

// Colour returns the last colour sent to an address.
func (m *LEDMirror) Colour(status, data byte) (Colour, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.leds[[2]byte{status, data}]
	return c, ok
}
