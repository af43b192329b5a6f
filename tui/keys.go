package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"go-launchcontrol/widgets"
)

type keyMap struct {
	NextPage  key.Binding
	PrevPage  key.Binding
	Pads      key.Binding
	KnobLeft  key.Binding
	KnobRight key.Binding
	TopDown   key.Binding
	TopUp     key.Binding
	BotDown   key.Binding
	BotUp     key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Invert    key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	NextPage:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next template")),
	PrevPage:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous template")),
	Pads:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "press pad")),
	KnobLeft:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h/l", "select knob column")),
	KnobRight: key.NewBinding(key.WithKeys("l")),
	TopDown:   key.NewBinding(key.WithKeys("j"), key.WithHelp("j/k", "turn top knob")),
	TopUp:     key.NewBinding(key.WithKeys("k")),
	BotDown:   key.NewBinding(key.WithKeys("J"), key.WithHelp("J/K", "turn bottom knob")),
	BotUp:     key.NewBinding(key.WithKeys("K")),
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows", "side buttons")),
	Down:      key.NewBinding(key.WithKeys("down")),
	Left:      key.NewBinding(key.WithKeys("left")),
	Right:     key.NewBinding(key.WithKeys("right")),
	Invert:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "invert factory bank")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// helpSections turns the bindings that carry help text into the help
// widget's sections.
func (k keyMap) helpSections() []widgets.KeySection {
	section := func(title string, bs ...key.Binding) widgets.KeySection {
		s := widgets.KeySection{Title: title}
		for _, b := range bs {
			h := b.Help()
			if h.Key == "" {
				continue
			}
			s.Keys = append(s.Keys, widgets.KeyBinding{Key: h.Key, Desc: h.Desc})
		}
		return s
	}
	return []widgets.KeySection{
		section("Controller", k.NextPage, k.PrevPage, k.Pads, k.KnobLeft, k.TopDown, k.BotDown, k.Up),
		section("App", k.Invert, k.Quit),
	}
}
