package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go-launchcontrol/control"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Pad      rune // ■ pad LED
	Side     rune // ▲ side button LED
	KnobOff  rune // ○ knob not selected
	KnobOn   rune // ● knob under the cursor
	Flag     rune // ● track flag set
	FlagOff  rune // · track flag clear
	ClipFull rune // ▮ slot with a clip
	ClipNone rune // ▯ empty slot
}

func New(palette *Palette) *Theme {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Pad:      '■',
			Side:     '▲',
			KnobOff:  '○',
			KnobOn:   '●',
			Flag:     '●',
			FlagOff:  '·',
			ClipFull: '▮',
			ClipNone: '▯',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0  // deep purple
	RoleMuted   = 0.2  // purple-magenta
	RoleFG      = 0.4  // pink-purple (readable)
	RoleAccent  = 0.5  // vivid magenta
	RoleCursor  = 0.6  // rose pink
	RoleActive  = 0.7  // soft red
	RoleWarning = 0.8  // orange
	RoleSuccess = 1.0  // bright yellow
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Active() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleActive))
}

func (t *Theme) Cursor() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleCursor))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

// ledUnlit is drawn for LEDs that are off or were never written.
var ledUnlit = RGB{40, 40, 40}

// LEDRGB approximates the colour a Launch Control LED shows. The red and
// green elements have four brightness steps each.
func LEDRGB(c control.Colour) RGB {
	r, g := c.Red(), c.Green()
	if r == 0 && g == 0 {
		return ledUnlit
	}
	return RGB{uint8(r * 85), uint8(g * 85), 0}
}

// LED returns the lipgloss colour of a Launch Control LED.
func (t *Theme) LED(c control.Colour) lipgloss.Color {
	return rgbToLipgloss(LEDRGB(c))
}

// Unlit is the colour of an LED with no known state.
func (t *Theme) Unlit() lipgloss.Color {
	return rgbToLipgloss(ledUnlit)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
