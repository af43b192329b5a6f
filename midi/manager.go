package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-launchcontrol/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// DeviceEvent is emitted when controllers connect/disconnect
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager handles hot-plug detection of MIDI controllers
type DeviceManager struct {
	controllers map[string]Controller
	mu          sync.RWMutex
	events      chan DeviceEvent
	pollRate    time.Duration
	matchIn     func(portName string) bool
	matchOut    func(portName string) bool
}

// NewDeviceManager creates a device manager that opens every input port
// accepted by matchIn, paired with an output accepted by matchOut.
func NewDeviceManager(matchIn, matchOut func(portName string) bool) *DeviceManager {
	return &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		pollRate:    time.Second,
		matchIn:     matchIn,
		matchOut:    matchOut,
	}
}

// PortMatcher accepts name exactly (case-insensitive) when it is set and
// falls back to fallback otherwise.
func PortMatcher(name string, fallback func(string) bool) func(string) bool {
	if name == "" {
		return fallback
	}
	return func(port string) bool {
		return strings.EqualFold(port, name)
	}
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Controllers returns a snapshot of connected controllers
func (dm *DeviceManager) Controllers() map[string]Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	copy := make(map[string]Controller, len(dm.controllers))
	for k, v := range dm.controllers {
		copy[k] = v
	}
	return copy
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	// Initial scan
	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	// Get current MIDI ports with timeout (CoreMIDI can hang)
	type portsResult struct {
		inPorts  []drivers.In
		outPorts []drivers.Out
	}

	ch := make(chan portsResult, 1)
	go func() {
		inPorts := gomidi.GetInPorts()
		outPorts := gomidi.GetOutPorts()
		ch <- portsResult{inPorts: inPorts, outPorts: outPorts}
	}()

	var inPorts []drivers.In
	var outPorts []drivers.Out

	select {
	case result := <-ch:
		inPorts = result.inPorts
		outPorts = result.outPorts
	case <-time.After(3 * time.Second):
		debug.Log("devices", "port scan timed out")
		return
	}

	inNames := make([]string, len(inPorts))
	for i, p := range inPorts {
		inNames[i] = p.String()
	}
	outNames := make([]string, len(outPorts))
	for i, p := range outPorts {
		outNames[i] = p.String()
	}

	pairs := matchPorts(inNames, outNames, dm.matchIn, dm.matchOut)
	seenIDs := make(map[string]bool)

	for _, pair := range pairs {
		id := inNames[pair.in]
		seenIDs[id] = true

		dm.mu.RLock()
		_, exists := dm.controllers[id]
		dm.mu.RUnlock()
		if exists {
			continue
		}

		var outPort drivers.Out
		if pair.out >= 0 {
			outPort = outPorts[pair.out]
		}
		lc, err := NewLaunchControl(id, inPorts[pair.in], outPort)
		if err != nil {
			debug.Log("devices", "open %s: %v", id, err)
			continue
		}

		dm.mu.Lock()
		dm.controllers[id] = lc
		dm.mu.Unlock()

		debug.Log("devices", "connected %s", id)
		dm.events <- DeviceEvent{
			Type:       DeviceConnected,
			Controller: lc,
			ID:         id,
		}
	}

	// Check for disconnects
	dm.mu.Lock()
	var toRemove []string
	for id := range dm.controllers {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		c := dm.controllers[id]
		c.Close()
		delete(dm.controllers, id)
		debug.Log("devices", "disconnected %s", id)
		dm.events <- DeviceEvent{
			Type: DeviceDisconnected,
			ID:   id,
		}
	}
	dm.mu.Unlock()
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}

// portPair indexes a matched input port and its output (-1 if none).
type portPair struct {
	in, out int
}

// matchPorts pairs every matching input with the output of the same
// name, or failing that the first matching output not yet taken.
func matchPorts(ins, outs []string, matchIn, matchOut func(string) bool) []portPair {
	taken := make(map[int]bool)
	var pairs []portPair
	for i, name := range ins {
		if !matchIn(name) {
			continue
		}
		out := -1
		for j, o := range outs {
			if !taken[j] && strings.EqualFold(o, name) {
				out = j
				break
			}
		}
		if out < 0 {
			for j, o := range outs {
				if !taken[j] && matchOut(o) {
					out = j
					break
				}
			}
		}
		if out >= 0 {
			taken[out] = true
		}
		pairs = append(pairs, portPair{in: i, out: out})
	}
	return pairs
}
