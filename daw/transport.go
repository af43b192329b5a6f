package daw

import "go-launchcontrol/control"

type transport struct{ p *Project }

func (t transport) set(toggle control.TransportToggle, on bool) {
	p := t.p
	p.mu.Lock()
	if p.transport[toggle] == on {
		p.mu.Unlock()
		return
	}
	p.transport[toggle] = on
	calls := make([]func(), 0, len(p.obs.transport))
	for _, o := range p.obs.transport {
		o := o
		calls = append(calls, func() { o.TransportChanged(toggle, on) })
	}
	p.mu.Unlock()
	p.commit(calls)
}

func (t transport) toggle(toggle control.TransportToggle) {
	t.p.mu.Lock()
	on := !t.p.transport[toggle]
	t.p.mu.Unlock()
	t.set(toggle, on)
}

func (t transport) Stop() {
	t.set(control.Playing, false)
	t.set(control.Recording, false)
}

func (t transport) Play()   { t.set(control.Playing, true) }
func (t transport) Record() { t.toggle(control.Recording) }

func (t transport) ToggleWriteArrangerAutomation() { t.toggle(control.WritingAutomation) }
func (t transport) ToggleLoop()                    { t.toggle(control.LoopActive) }
func (t transport) ToggleClick()                   { t.toggle(control.ClickActive) }
func (t transport) ToggleLauncherOverdub()         { t.toggle(control.LauncherOverdubActive) }
func (t transport) ToggleOverdub()                 { t.toggle(control.OverdubActive) }

// AddObserver registers o and reports every toggle's current state.
func (t transport) AddObserver(o control.TransportObserver) {
	t.p.mu.Lock()
	t.p.obs.transport = append(t.p.obs.transport, o)
	state := t.p.transport
	t.p.mu.Unlock()

	for i, on := range state {
		o.TransportChanged(control.TransportToggle(i), on)
	}
}
