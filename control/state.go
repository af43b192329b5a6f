package control

const (
	NumTracks     = NumColumns
	SlotsPerTrack = 8
)

// TransportState caches the transport toggles.
type TransportState [numTransportToggles]bool

func (t TransportState) Get(toggle TransportToggle) bool {
	if toggle < 0 || toggle >= numTransportToggles {
		return false
	}
	return t[toggle]
}

// ScrollState caches what the host says about scrolling.
type ScrollState struct {
	TracksUp   bool
	TracksDown bool
	ScenesUp   bool // cursor device can select next
	ScenesDown bool // cursor device can select previous
}

// ControllerState is everything the surface mirrors from the host.
type ControllerState struct {
	Muted      [NumTracks]bool
	Armed      [NumTracks]bool
	HasContent [NumTracks * SlotsPerTrack]bool
	Transport  TransportState

	SelectedChannel int
	Scroll          ScrollState

	// MixerAlignedGrid makes the side LEDs follow the device chain
	// instead of the track bank.
	MixerAlignedGrid bool
	// IncontrolMix makes the side buttons scroll the track bank instead
	// of navigating device parameter pages and the device chain.
	IncontrolMix bool
}

func newControllerState() ControllerState {
	return ControllerState{IncontrolMix: true}
}

// HasClip reports whether slot of track holds a clip.
func (s *ControllerState) HasClip(track, slot int) bool {
	if track < 0 || track >= NumTracks || slot < 0 || slot >= SlotsPerTrack {
		return false
	}
	return s.HasContent[track*SlotsPerTrack+slot]
}

func (s *ControllerState) setHasClip(track, slot int, on bool) {
	if track < 0 || track >= NumTracks || slot < 0 || slot >= SlotsPerTrack {
		return
	}
	s.HasContent[track*SlotsPerTrack+slot] = on
}

// FirstEmptySlot returns the first slot of track without a clip.
func (s *ControllerState) FirstEmptySlot(track int) (int, bool) {
	for slot := 0; slot < SlotsPerTrack; slot++ {
		if !s.HasClip(track, slot) {
			return slot, true
		}
	}
	return 0, false
}

// CanScroll returns the availability shown on the four side LEDs.
func (s *ControllerState) CanScroll() (up, down, left, right bool) {
	if s.MixerAlignedGrid {
		return s.Scroll.ScenesUp, s.Scroll.ScenesDown, s.Scroll.ScenesUp, s.Scroll.ScenesDown
	}
	return s.Scroll.TracksUp, s.Scroll.TracksDown, s.Scroll.TracksUp, s.Scroll.TracksDown
}
