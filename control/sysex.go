package control

import (
	"bytes"

	"go-launchcontrol/debug"
)

// pageChangeHeader starts the message the controller sends when a
// template is selected: F0 00 20 29 02 0A 77 <code> F7.
var pageChangeHeader = []byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x0A, 0x77}

// ParsePageChange extracts the template code from a page-change message.
func ParsePageChange(data []byte) (int, bool) {
	if len(data) < len(pageChangeHeader)+1 || !bytes.HasPrefix(data, pageChangeHeader) {
		return 0, false
	}
	code := int(data[len(pageChangeHeader)])
	if code >= NumPages {
		return 0, false
	}
	return code, true
}

// PageChangeSysEx builds the message announcing template code.
func PageChangeSysEx(code int) []byte {
	msg := make([]byte, 0, len(pageChangeHeader)+2)
	msg = append(msg, pageChangeHeader...)
	return append(msg, byte(code), 0xF7)
}

// HandleSysEx switches page on a page-change message and ignores anything
// else.
func (s *Surface) HandleSysEx(data []byte) {
	code, ok := ParsePageChange(data)
	if !ok {
		debug.Log("sysex", "ignored % X", data)
		return
	}
	s.page = s.layout.PageForCode(code)

	switch SemanticsOf(s.page).Nav {
	case NavDevice:
		s.state.MixerAlignedGrid = false
		s.state.IncontrolMix = false
	case NavTrackBank:
		s.state.MixerAlignedGrid = true
		s.state.IncontrolMix = true
	}

	debug.Log("sysex", "template %d -> %s", code, s.page)
	s.Redraw()
}
