package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Face is what the controller shows: two rows of knobs, eight pads and
// the four side buttons.
type Face struct {
	Knobs  [2][8]uint8 // last value sent per knob, top row first
	Cursor int         // selected knob column, -1 for none
	Pads   [8]lipgloss.Color
	Side   [4]lipgloss.Color // up, down, left, right

	KnobColor   lipgloss.Color
	CursorColor lipgloss.Color
}

var sideGlyphs = [4]string{"▲", "▼", "◀", "▶"}

// RenderPad renders a single colored pad
func RenderPad(color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render("■")
}

// RenderKnob renders a knob as an 8-step arc for a 0-127 value.
func RenderKnob(value uint8, color lipgloss.Color) string {
	steps := []rune("▁▂▃▄▅▆▇█")
	i := int(value) * len(steps) / 128
	if i >= len(steps) {
		i = len(steps) - 1
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(steps[i]))
}

// RenderFace draws the controller front panel.
func RenderFace(f Face) string {
	var lines []string
	for row := 0; row < 2; row++ {
		var line strings.Builder
		for col := 0; col < 8; col++ {
			color := f.KnobColor
			if col == f.Cursor {
				color = f.CursorColor
			}
			line.WriteString(RenderKnob(f.Knobs[row][col], color))
			line.WriteString("  ")
		}
		if row == 0 {
			line.WriteString(renderSide(f.Side, 0, 1))
		} else {
			line.WriteString(renderSide(f.Side, 2, 3))
		}
		lines = append(lines, line.String())
	}

	var pads strings.Builder
	for col, c := range f.Pads {
		if col > 0 {
			pads.WriteString("  ")
		}
		pads.WriteString(RenderPad(c))
	}
	lines = append(lines, pads.String())
	return strings.Join(lines, "\n")
}

func renderSide(colors [4]lipgloss.Color, a, b int) string {
	return lipgloss.NewStyle().Foreground(colors[a]).Render(sideGlyphs[a]) + " " +
		lipgloss.NewStyle().Foreground(colors[b]).Render(sideGlyphs[b])
}

// RenderMeter renders a 0-1 value as a horizontal bar of width cells.
func RenderMeter(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	n := int(v*float64(width) + 0.5)
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
