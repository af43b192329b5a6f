package daw

import "go-launchcontrol/control"

// Snapshot is a copy of the project state for display.
type Snapshot struct {
	Tracks     [BankSize]Track
	TrackNums  [BankSize]int // 1-based, 0 = past the project end
	Selected   int           // bank slot, -1 if outside the window
	Offset     int
	NumTracks  int
	Transport  [control.OverdubActive + 1]bool
	Device     Device
	DeviceIdx  int
	NumDevices int
	Cursor     int

	LastUser      int // -1 if no user control was touched
	LastUserValue float64
	LastUserLabel string

	Indications [control.NumIndicationTargets][BankSize]bool
	Notes       []Note
	Invert      bool
}

func (p *Project) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Snapshot{
		Selected:    -1,
		Offset:      p.offset,
		NumTracks:   len(p.tracks),
		Transport:   p.transport,
		DeviceIdx:   p.primary,
		NumDevices:  len(p.devices),
		Cursor:      p.cursor,
		LastUser:    p.lastUser,
		Indications: p.indications,
		Notes:       append([]Note(nil), p.notes...),
		Invert:      p.invert,
	}
	for slot := 0; slot < BankSize; slot++ {
		if t := p.trackAt(slot); t != nil {
			s.Tracks[slot] = *t
			s.TrackNums[slot] = p.offset + slot + 1
		}
	}
	if sel := p.selected - p.offset; sel >= 0 && sel < BankSize {
		s.Selected = sel
	}
	if p.primary < len(p.devices) {
		dev := *p.devices[p.primary]
		dev.Pages = append([][NumParams]float64(nil), dev.Pages...)
		s.Device = dev
	}
	if p.lastUser >= 0 {
		s.LastUserValue = p.userValues[p.lastUser]
		s.LastUserLabel = p.userLabels[p.lastUser]
	}
	return s
}

// Params returns the values of the device's current parameter page.
func (d Device) Params() [NumParams]float64 {
	if d.Page < 0 || d.Page >= len(d.Pages) {
		return [NumParams]float64{}
	}
	return d.Pages[d.Page]
}

// HasClip reports whether slot holds a clip.
func (t Track) HasClip(slot int) bool {
	return slot >= 0 && slot < SlotsPerTrack && t.Clips[slot] > 0
}
