package control

import "fmt"

// Page is a controller template code as announced by the device.
// Codes 0-7 are the user templates, 8-15 the factory templates.
type Page int

const (
	PageNone Page = -1

	NumPages = 16

	FactoryBank Page = 8
)

// Factory pages with fixed semantics.
const (
	Factory1 Page = FactoryBank + iota // transport, volume/pan
	Factory2                           // mute, sends
	Factory3                           // arm, macros/parameters
	Factory4                           // clip creation
)

func (p Page) Valid() bool {
	return p >= 0 && p < NumPages
}

func (p Page) String() string {
	switch {
	case p == PageNone:
		return "none"
	case p >= FactoryBank && p < NumPages:
		return fmt.Sprintf("factory %d", int(p-FactoryBank)+1)
	case p.Valid():
		return fmt.Sprintf("user %d", int(p)+1)
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// PadRole is what the 8 pads of a page do.
type PadRole int

const (
	PadsUnmapped PadRole = iota
	PadsTransport
	PadsMute
	PadsArm
	PadsClipCreate
)

// KnobRole is what the 16 knobs of a page do.
type KnobRole int

const (
	KnobsFree KnobRole = iota // forwarded to user controls
	KnobsMixer
	KnobsSends
	KnobsDevice
)

// NavMode is how entering a page changes side-button navigation.
type NavMode int

const (
	NavKeep NavMode = iota
	NavTrackBank
	NavDevice
)

// PageSemantics is the single description of a page shared by input
// routing, LED reflection and page-change handling.
type PageSemantics struct {
	Pads  PadRole
	Knobs KnobRole
	Nav   NavMode
}

var factorySemantics = map[Page]PageSemantics{
	Factory1: {Pads: PadsTransport, Knobs: KnobsMixer, Nav: NavTrackBank},
	Factory2: {Pads: PadsMute, Knobs: KnobsSends, Nav: NavTrackBank},
	Factory3: {Pads: PadsArm, Knobs: KnobsDevice, Nav: NavDevice},
	Factory4: {Pads: PadsClipCreate, Knobs: KnobsFree, Nav: NavTrackBank},
}

// SemanticsOf returns the semantics of p. Pages without fixed semantics
// (user pages, factory 5-8, PageNone) get the zero value: unmapped pads,
// free knobs and untouched navigation flags.
func SemanticsOf(p Page) PageSemantics {
	return factorySemantics[p]
}

// pageWithPads returns the page whose pads carry role.
func pageWithPads(role PadRole) Page {
	for p, sem := range factorySemantics {
		if sem.Pads == role {
			return p
		}
	}
	return PageNone
}
