package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderMeter(t *testing.T) {
	tests := []struct {
		v     float64
		width int
		want  string
	}{
		{0, 4, "░░░░"},
		{1, 4, "████"},
		{0.5, 4, "██░░"},
		{2, 2, "██"},
		{-1, 2, "░░"},
	}
	for _, tt := range tests {
		if got := RenderMeter(tt.v, tt.width); got != tt.want {
			t.Errorf("RenderMeter(%v, %d) = %q, want %q", tt.v, tt.width, got, tt.want)
		}
	}
}

func TestRenderFaceShape(t *testing.T) {
	f := Face{Cursor: 2}
	for i := range f.Pads {
		f.Pads[i] = lipgloss.Color("#ff0000")
	}
	out := RenderFace(f)
	if got := lipgloss.Height(out); got != 3 {
		t.Errorf("face height = %d, want 3", got)
	}
	if got := strings.Count(out, "■"); got != 8 {
		t.Errorf("face has %d pads, want 8", got)
	}
}

func TestRenderKeyHelp(t *testing.T) {
	out := RenderKeyHelp([]KeySection{{
		Title: "Pads",
		Keys:  []KeyBinding{{Key: "1-8", Desc: "press pad"}},
	}})
	if !strings.Contains(out, "Pads") || !strings.Contains(out, "press pad") {
		t.Errorf("help = %q", out)
	}
}
