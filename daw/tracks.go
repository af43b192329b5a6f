package daw

import "go-launchcontrol/control"

// trackBank is the 8-track window over the project.
type trackBank struct{ p *Project }

func (b trackBank) Track(index int) control.Track {
	return bankTrack{p: b.p, slot: index}
}

// Up and down move a whole page, left and right a single track.
func (b trackBank) ScrollTracksPageUp()    { b.p.scrollBy(-BankSize) }
func (b trackBank) ScrollTracksPageDown()  { b.p.scrollBy(BankSize) }
func (b trackBank) ScrollTracksPageLeft()  { b.p.scrollBy(-1) }
func (b trackBank) ScrollTracksPageRight() { b.p.scrollBy(1) }

func (b trackBank) AddObserver(o control.BankObserver) {
	b.p.mu.Lock()
	b.p.obs.bank = append(b.p.obs.bank, o)
	up, down := b.p.canScroll()
	b.p.mu.Unlock()

	o.CanScrollTracksUpChanged(up)
	o.CanScrollTracksDownChanged(down)
}

// canScroll must be called with the lock held.
func (p *Project) canScroll() (up, down bool) {
	return p.offset > 0, p.offset+BankSize < len(p.tracks)
}

func (p *Project) maxOffset() int {
	if n := len(p.tracks) - BankSize; n > 0 {
		return n
	}
	return 0
}

// scrollBy moves the bank window and re-reports every slot.
func (p *Project) scrollBy(delta int) {
	p.mu.Lock()
	offset := p.offset + delta
	if offset < 0 {
		offset = 0
	}
	if m := p.maxOffset(); offset > m {
		offset = m
	}
	if offset == p.offset {
		p.mu.Unlock()
		return
	}
	p.offset = offset

	var calls []func()
	for slot := 0; slot < BankSize; slot++ {
		calls = append(calls, p.slotCalls(slot)...)
	}
	up, down := p.canScroll()
	for _, o := range p.obs.bank {
		o := o
		calls = append(calls, func() {
			o.CanScrollTracksUpChanged(up)
			o.CanScrollTracksDownChanged(down)
		})
	}
	p.mu.Unlock()
	p.commit(calls)
}

// slotCalls reports the full state of a bank slot to its observers. Must
// be called with the lock held.
func (p *Project) slotCalls(slot int) []func() {
	var calls []func()
	t := p.trackAt(slot)
	selected := t != nil && p.offset+slot == p.selected
	for _, o := range p.obs.tracks[slot] {
		calls = append(calls, reportTrack(o, t, selected))
	}
	return calls
}

func reportTrack(o control.TrackObserver, t *Track, selected bool) func() {
	var snap Track
	if t != nil {
		snap = *t
	}
	return func() {
		o.MuteChanged(snap.Muted)
		o.ArmChanged(snap.Armed)
		o.SelectedChanged(selected)
		for slot, bars := range snap.Clips {
			o.SlotContentChanged(slot, bars > 0)
		}
	}
}

// trackAt returns the track in bank slot, or nil past the project end.
// Must be called with the lock held.
func (p *Project) trackAt(slot int) *Track {
	if slot < 0 || slot >= BankSize {
		return nil
	}
	i := p.offset + slot
	if i >= len(p.tracks) {
		return nil
	}
	return p.tracks[i]
}

// bankTrack is one slot of the bank window.
type bankTrack struct {
	p    *Project
	slot int
}

// update applies fn to the slot's track and collects observer calls.
func (bt bankTrack) update(fn func(t *Track, obs []control.TrackObserver) []func()) {
	p := bt.p
	p.mu.Lock()
	t := p.trackAt(bt.slot)
	if t == nil {
		p.mu.Unlock()
		return
	}
	calls := fn(t, p.obs.tracks[bt.slot])
	p.mu.Unlock()
	p.commit(calls)
}

func (bt bankTrack) SetVolume(value, resolution int) {
	bt.update(func(t *Track, _ []control.TrackObserver) []func() {
		t.Volume = scale(value, resolution)
		return nil
	})
}

func (bt bankTrack) SetPan(value, resolution int) {
	bt.update(func(t *Track, _ []control.TrackObserver) []func() {
		t.Pan = scale(value, resolution)
		return nil
	})
}

func (bt bankTrack) SetSend(send, value, resolution int) {
	if send < 0 || send >= NumSends {
		return
	}
	bt.update(func(t *Track, _ []control.TrackObserver) []func() {
		t.Sends[send] = scale(value, resolution)
		return nil
	})
}

func (bt bankTrack) ToggleMute() {
	bt.update(func(t *Track, obs []control.TrackObserver) []func() {
		t.Muted = !t.Muted
		muted := t.Muted
		var calls []func()
		for _, o := range obs {
			o := o
			calls = append(calls, func() { o.MuteChanged(muted) })
		}
		return calls
	})
}

func (bt bankTrack) ToggleArm() {
	bt.update(func(t *Track, obs []control.TrackObserver) []func() {
		t.Armed = !t.Armed
		armed := t.Armed
		var calls []func()
		for _, o := range obs {
			o := o
			calls = append(calls, func() { o.ArmChanged(armed) })
		}
		return calls
	})
}

func (bt bankTrack) SelectInMixer() {
	p := bt.p
	p.mu.Lock()
	if p.trackAt(bt.slot) == nil {
		p.mu.Unlock()
		return
	}
	prev := p.selected - p.offset
	p.selected = p.offset + bt.slot

	var calls []func()
	if prev != bt.slot && prev >= 0 && prev < BankSize {
		for _, o := range p.obs.tracks[prev] {
			o := o
			calls = append(calls, func() { o.SelectedChanged(false) })
		}
	}
	for _, o := range p.obs.tracks[bt.slot] {
		o := o
		calls = append(calls, func() { o.SelectedChanged(true) })
	}
	p.mu.Unlock()
	p.commit(calls)
}

func (bt bankTrack) CreateEmptyClip(slot, lengthBars int) {
	if slot < 0 || slot >= SlotsPerTrack || lengthBars <= 0 {
		return
	}
	bt.update(func(t *Track, obs []control.TrackObserver) []func() {
		if t.Clips[slot] > 0 {
			return nil
		}
		t.Clips[slot] = lengthBars
		var calls []func()
		for _, o := range obs {
			o := o
			calls = append(calls, func() { o.SlotContentChanged(slot, true) })
		}
		return calls
	})
}

// AddObserver registers o for this bank slot and reports its state.
func (bt bankTrack) AddObserver(o control.TrackObserver) {
	if bt.slot < 0 || bt.slot >= BankSize {
		return
	}
	p := bt.p
	p.mu.Lock()
	p.obs.tracks[bt.slot] = append(p.obs.tracks[bt.slot], o)
	t := p.trackAt(bt.slot)
	report := reportTrack(o, t, t != nil && p.offset+bt.slot == p.selected)
	p.mu.Unlock()
	report()
}
