package midi

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go-launchcontrol/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var sendCount uint64

// LaunchControl handles a Novation Launch Control
type LaunchControl struct {
	id       string
	outPort  drivers.Out
	inPort   drivers.In
	send     func(msg gomidi.Message) error
	stopFunc func()

	mu     sync.Mutex
	closed bool
	events chan Event
}

// NewLaunchControl opens the controller's ports. Either port may be nil.
func NewLaunchControl(id string, inPort drivers.In, outPort drivers.Out) (*LaunchControl, error) {
	lc := &LaunchControl{
		id:      id,
		inPort:  inPort,
		outPort: outPort,
		events:  make(chan Event, 64),
	}

	// Open output
	if outPort != nil {
		send, err := gomidi.SendTo(outPort)
		if err != nil {
			return nil, fmt.Errorf("open output %s: %w", outPort, err)
		}
		lc.send = send
	}

	// Open input
	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, lc.receive, gomidi.UseSysEx())
		if err != nil {
			return nil, fmt.Errorf("open input %s: %w", inPort, err)
		}
		lc.stopFunc = stop
	}

	return lc, nil
}

func (lc *LaunchControl) receive(msg gomidi.Message, timestampms int32) {
	ev, ok := decode(msg)
	if !ok {
		return
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.closed {
		return
	}
	select {
	case lc.events <- ev:
	default:
		debug.LogEvery(16, "lc-recv", "event dropped, queue full")
	}
}

// decode turns a raw message into an Event. SysEx payloads are re-framed
// with F0/F7.
func decode(msg gomidi.Message) (Event, bool) {
	var bt []byte
	if msg.GetSysEx(&bt) {
		frame := make([]byte, 0, len(bt)+2)
		frame = append(frame, 0xF0)
		frame = append(frame, bt...)
		return Event{SysEx: append(frame, 0xF7)}, true
	}

	raw := msg.Bytes()
	if len(raw) == 0 || raw[0] < 0x80 || raw[0] >= 0xF0 {
		return Event{}, false
	}
	ev := Event{Status: raw[0]}
	if len(raw) > 1 {
		ev.Data1 = raw[1]
	}
	if len(raw) > 2 {
		ev.Data2 = raw[2]
	}
	return ev, true
}

func (lc *LaunchControl) ID() string {
	return lc.id
}

func (lc *LaunchControl) Events() <-chan Event {
	return lc.events
}

// Send writes a short message. It satisfies control.Output.
func (lc *LaunchControl) Send(status, data1, data2 uint8) error {
	if lc.send == nil {
		return nil
	}
	count := atomic.AddUint64(&sendCount, 1)
	if count%100 == 0 {
		debug.Log("lc-send", "count=%d", count)
	}
	return lc.send(gomidi.Message{status, data1, data2})
}

// SendSysEx writes a SysEx frame; data must include F0 and F7.
func (lc *LaunchControl) SendSysEx(data []byte) error {
	if lc.send == nil {
		return nil
	}
	if len(data) < 2 || data[0] != 0xF0 || data[len(data)-1] != 0xF7 {
		return fmt.Errorf("sysex: bad frame % X", data)
	}
	return lc.send(gomidi.SysEx(data[1 : len(data)-1]))
}

func (lc *LaunchControl) Close() error {
	if lc.stopFunc != nil {
		lc.stopFunc()
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()
	if !lc.closed {
		lc.closed = true
		close(lc.events)
	}
	return nil
}
