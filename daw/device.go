package daw

import "go-launchcontrol/control"

type cursorDevice struct{ p *Project }

func (c cursorDevice) SelectPrevious() { c.p.moveCursor(-1) }
func (c cursorDevice) SelectNext()     { c.p.moveCursor(1) }

func (c cursorDevice) AddObserver(o control.CursorDeviceObserver) {
	c.p.mu.Lock()
	c.p.obs.cursor = append(c.p.obs.cursor, o)
	next, prev := c.p.canSelect()
	c.p.mu.Unlock()

	o.CanSelectNextChanged(next)
	o.CanSelectPreviousChanged(prev)
}

// canSelect must be called with the lock held.
func (p *Project) canSelect() (next, prev bool) {
	return p.cursor < len(p.devices)-1, p.cursor > 0
}

func (p *Project) moveCursor(delta int) {
	p.mu.Lock()
	i := p.cursor + delta
	if i < 0 || i >= len(p.devices) {
		p.mu.Unlock()
		return
	}
	p.cursor = i
	next, prev := p.canSelect()
	var calls []func()
	for _, o := range p.obs.cursor {
		o := o
		calls = append(calls, func() {
			o.CanSelectNextChanged(next)
			o.CanSelectPreviousChanged(prev)
		})
	}
	p.mu.Unlock()
	p.commit(calls)
}

// primaryDevice is the device the knobs talk to. It moves along the
// chain independently of the cursor.
type primaryDevice struct{ p *Project }

func (d primaryDevice) with(fn func(dev *Device)) {
	d.p.mu.Lock()
	if d.p.primary >= 0 && d.p.primary < len(d.p.devices) {
		fn(d.p.devices[d.p.primary])
	}
	d.p.mu.Unlock()
	d.p.notifyUpdate()
}

func (d primaryDevice) SetMacro(index, value, resolution int) {
	if index < 0 || index >= NumMacros {
		return
	}
	d.with(func(dev *Device) { dev.Macros[index] = scale(value, resolution) })
}

func (d primaryDevice) SetParameter(index, value, resolution int) {
	if index < 0 || index >= NumParams {
		return
	}
	d.with(func(dev *Device) { dev.Pages[dev.Page][index] = scale(value, resolution) })
}

func (d primaryDevice) PreviousParameterPage() {
	d.with(func(dev *Device) {
		if dev.Page > 0 {
			dev.Page--
		}
	})
}

func (d primaryDevice) NextParameterPage() {
	d.with(func(dev *Device) {
		if dev.Page < len(dev.Pages)-1 {
			dev.Page++
		}
	})
}

func (d primaryDevice) SwitchToPrevious() {
	d.p.mu.Lock()
	if d.p.primary > 0 {
		d.p.primary--
	}
	d.p.mu.Unlock()
	d.p.notifyUpdate()
}

func (d primaryDevice) SwitchToNext() {
	d.p.mu.Lock()
	if d.p.primary < len(d.p.devices)-1 {
		d.p.primary++
	}
	d.p.mu.Unlock()
	d.p.notifyUpdate()
}

type userControls struct{ p *Project }

func (u userControls) Len() int { return UserControlCount }

func (u userControls) Set(index, value, resolution int) {
	if index < 0 || index >= UserControlCount {
		return
	}
	u.p.mu.Lock()
	u.p.userValues[index] = scale(value, resolution)
	u.p.lastUser = index
	u.p.mu.Unlock()
	u.p.notifyUpdate()
}

func (u userControls) SetLabel(index int, label string) {
	if index < 0 || index >= UserControlCount {
		return
	}
	u.p.mu.Lock()
	u.p.userLabels[index] = label
	u.p.mu.Unlock()
}
