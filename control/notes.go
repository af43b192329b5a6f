package control

import (
	"fmt"
	"strings"
)

// NoteMask matches a short message written as six hex digits, '?' being a
// wildcard digit.
type NoteMask string

// Masks of the messages passed through to the host's note input. They are
// not consumed: the surface dispatches them as well.
var NoteInputMasks = []NoteMask{"80????", "90????"}

func (m NoteMask) Match(status, data1, data2 byte) bool {
	if len(m) != 6 {
		return false
	}
	msg := fmt.Sprintf("%02x%02x%02x", status, data1, data2)
	mask := strings.ToLower(string(m))
	for i := 0; i < len(msg); i++ {
		if mask[i] != '?' && mask[i] != msg[i] {
			return false
		}
	}
	return true
}

func matchesAny(masks []NoteMask, status, data1, data2 byte) bool {
	for _, m := range masks {
		if m.Match(status, data1, data2) {
			return true
		}
	}
	return false
}
