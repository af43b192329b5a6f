package control

// Colour is a Launch Control LED velocity: green<<4 | flags | red,
// each of red and green in 0-3.
type Colour byte

const (
	Off        Colour = 12
	RedLow     Colour = 13
	RedFull    Colour = 15
	AmberLow   Colour = 29
	AmberFull  Colour = 63
	YellowFull Colour = 62
	YellowLow  Colour = 45
	Orange     Colour = 39
	Lime       Colour = 61
	GreenLow   Colour = 28
	GreenFull  Colour = 60
)

// Red returns the red brightness 0-3.
func (c Colour) Red() int {
	return int(c) & 0x03
}

// Green returns the green brightness 0-3.
func (c Colour) Green() int {
	return int(c>>4) & 0x03
}

// pick returns on or off depending on state.
func pick(state bool, on, off Colour) Colour {
	if state {
		return on
	}
	return off
}

func muteColour(muted bool) Colour {
	return pick(muted, Orange, YellowLow)
}

func armColour(armed bool) Colour {
	return pick(armed, RedFull, Lime)
}

const (
	clipCreateColour = RedLow
	stopColour       = YellowLow
)
