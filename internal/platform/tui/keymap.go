package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/console-shooter/internal/core"
)

// KeyMap holds the bindings shown on the title screen.
// The game itself reads raw codes; see Codes.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Fire      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Fire, k.Quit},
	}
}

// DefaultKeyMap returns the shooter controls.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d/→", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "shoot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// Codes translates a key message into the raw key codes the game polls.
// Arrow keys become the two-code extended sequence; printable ASCII keys
// report their character. Other runes are dropped so they can never pose
// as an extended prefix. Keys the game has no code for return nil.
func Codes(msg tea.KeyMsg) []core.KeyCode {
	switch msg.Type {
	case tea.KeyLeft:
		return []core.KeyCode{core.KeyExtended, core.KeyArrowLeft}
	case tea.KeyRight:
		return []core.KeyCode{core.KeyExtended, core.KeyArrowRight}
	case tea.KeySpace:
		return []core.KeyCode{core.KeyFire}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		var codes []core.KeyCode
		for _, r := range msg.Runes {
			if printableASCII(r) {
				codes = append(codes, core.KeyCode(r))
			}
		}
		return codes
	}
	return nil
}

func printableASCII(r rune) bool {
	return r >= ' ' && r <= '~'
}
