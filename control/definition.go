package control

import (
	"strings"

	"github.com/google/uuid"
)

// Definition identifies a supported controller and the port names it
// shows up under.
type Definition struct {
	Vendor  string
	Name    string
	Version string
	ID      uuid.UUID
	Ports   []string
}

var LaunchControl = Definition{
	Vendor:  "Novation",
	Name:    "Launch Control",
	Version: "1.0",
	ID:      uuid.MustParse("05e2b820-177e-11e4-8c21-0800200c9a66"),
	Ports:   []string{"Launch Control", "Launch Control MIDI 1"},
}

// Matches reports whether a MIDI port name belongs to this controller.
// The XL model shares the name prefix but has a different layout.
func (d Definition) Matches(portName string) bool {
	name := strings.ToLower(portName)
	if strings.Contains(name, " xl") {
		return false
	}
	for _, p := range d.Ports {
		if strings.Contains(name, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
