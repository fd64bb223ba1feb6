package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
)

func newInput(theme *Theme, prompt, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt + " "
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.PromptStyle = theme.HelpKey
	ti.Cursor.Style = theme.HelpKey
	ti.TextStyle = theme.Normal
	ti.PlaceholderStyle = theme.Subtle
	return ti
}

// NewSearchInput creates the live property search input.
func NewSearchInput(theme *Theme) textinput.Model {
	return newInput(theme, IconSearch, "Search keys and values...", 256)
}

// NewAliasInput creates the pin alias editor prefilled with current.
func NewAliasInput(theme *Theme, current string) textinput.Model {
	ti := newInput(theme, IconPin, "Alias (empty resets to key)", 128)
	ti.SetValue(current)
	return ti
}

// InputBox frames a rendered input, accented when focused.
func (t *Theme) InputBox(input string, focused bool) string {
	if focused {
		return t.InputFocused.Render(input)
	}
	return t.Input.Render(input)
}
