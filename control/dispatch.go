package control

import "go-launchcontrol/debug"

// Side buttons, sent as control changes on every template.
const (
	SideUp    byte = 114
	SideDown  byte = 115
	SideLeft  byte = 116
	SideRight byte = 117
)

// Free CC window forwarded to user controls.
const (
	LowestCC  byte = 21
	HighestCC byte = 48

	ccPerChannel = int(HighestCC-LowestCC) + 1
)

func userControlIndex(channel, cc byte) (int, bool) {
	if cc < LowestCC || cc > HighestCC || channel >= NumPages {
		return 0, false
	}
	return int(cc-LowestCC) + int(channel)*ccPerChannel, true
}

// HandleMIDI routes a short message from the controller. Unknown messages
// are dropped. Output state is refreshed after every message.
func (s *Surface) HandleMIDI(status, data1, data2 byte) {
	if matchesAny(NoteInputMasks, status, data1, data2) {
		s.host.NoteInput().Note(status, data1, data2)
	}
	if !s.dispatch(status, data1, data2) {
		debug.LogEvery(16, "midi", "unhandled %02X %02X %02X", status, data1, data2)
	}
	s.refresh()
}

func (s *Surface) dispatch(status, data1, data2 byte) bool {
	switch status & statusMask {
	case statusNoteOn:
		if data2 != PadPressed {
			return false
		}
		page := s.layout.PageForPadStatus(status)
		col, ok := s.layout.ResolvePad(page, data1)
		if !ok {
			return false
		}
		return s.pressPad(page, col)

	case statusControlChange:
		page := s.layout.PageForKnobStatus(status)
		if SemanticsOf(page).Knobs != KnobsFree {
			if row, col, ok := s.layout.ResolveKnob(page, data1); ok {
				s.turnKnob(page, row, col, int(data2))
				return true
			}
		}
		if isSideButton(data1) {
			if data2 == PadPressed {
				s.navigate(data1)
			}
			return true
		}
		idx, ok := userControlIndex(status&channelMask, data1)
		if !ok || idx >= s.host.UserControls().Len() {
			return false
		}
		s.host.UserControls().Set(idx, int(data2), Resolution)
		return true
	}
	return false
}

func isSideButton(data byte) bool {
	return data >= SideUp && data <= SideRight
}

// transportActions are the Factory 1 pads in column order.
var transportActions = [NumColumns]func(Transport){
	Transport.Stop,
	Transport.Play,
	Transport.Record,
	Transport.ToggleWriteArrangerAutomation,
	Transport.ToggleLoop,
	Transport.ToggleClick,
	Transport.ToggleLauncherOverdub,
	Transport.ToggleOverdub,
}

func (s *Surface) pressPad(page Page, col int) bool {
	bank := s.host.TrackBank()
	switch SemanticsOf(page).Pads {
	case PadsTransport:
		transportActions[col](s.host.Transport())

	case PadsMute:
		bank.Track(col).ToggleMute()

	case PadsArm:
		track := bank.Track(col)
		wasArmed := s.state.Armed[col]
		track.ToggleArm()
		s.state.Armed[col] = !wasArmed
		if !wasArmed {
			track.SelectInMixer()
		}

	case PadsClipCreate:
		sel := s.state.SelectedChannel
		slot, ok := s.state.FirstEmptySlot(sel)
		if !ok {
			debug.Log("surface", "no free clip slot on track %d", sel)
			return true
		}
		bank.Track(sel).CreateEmptyClip(slot, (col+1)*4)

	default:
		return false
	}
	return true
}

func (s *Surface) turnKnob(page Page, row Row, col, value int) {
	bank := s.host.TrackBank()
	switch SemanticsOf(page).Knobs {
	case KnobsMixer:
		if row == RowTop {
			bank.Track(col).SetVolume(value, Resolution)
		} else {
			bank.Track(col).SetPan(value, Resolution)
		}

	case KnobsSends:
		send := 0
		if row == RowBottom {
			send = 1
		}
		bank.Track(col).SetSend(send, value, Resolution)

	case KnobsDevice:
		dev := s.host.PrimaryDevice()
		// The bottom row keeps its own column for parameters, so bottom
		// columns 4-7 land on parameters 4-7 while top 4-7 land on 0-3.
		switch {
		case row == RowTop && col < 4:
			dev.SetMacro(col, value, Resolution)
		case row == RowTop:
			dev.SetParameter(col-4, value, Resolution)
		case col < 4:
			dev.SetMacro(col+4, value, Resolution)
		default:
			dev.SetParameter(col, value, Resolution)
		}
	}
}

func (s *Surface) navigate(button byte) {
	if s.state.IncontrolMix {
		bank := s.host.TrackBank()
		switch button {
		case SideUp:
			bank.ScrollTracksPageUp()
		case SideDown:
			bank.ScrollTracksPageDown()
		case SideLeft:
			bank.ScrollTracksPageLeft()
		case SideRight:
			bank.ScrollTracksPageRight()
		}
		return
	}

	dev := s.host.PrimaryDevice()
	switch button {
	case SideUp:
		dev.PreviousParameterPage()
	case SideDown:
		dev.NextParameterPage()
	case SideLeft:
		s.host.CursorDevice().SelectPrevious()
		dev.SwitchToPrevious()
	case SideRight:
		s.host.CursorDevice().SelectNext()
		dev.SwitchToNext()
	}
	s.Redraw()
}
