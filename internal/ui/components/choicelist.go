package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/compass/internal/ui/theme"
)

// choiceLabels letters the options like an exam sheet. Options beyond
// the list fall back to their number.
var choiceLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// ChoiceList is a single-select option list. Unlike a graded quiz there
// is no correct answer; the selection itself is the answer, reported as
// a 1-based index.
type ChoiceList struct {
	Prompt  string
	Options []string
	Cursor  int

	// HasSelection is false until the user confirms an option.
	HasSelection bool
}

// NewChoiceList creates a choice list. A previous answer (1-based)
// restores the cursor when answered is true.
func NewChoiceList(prompt string, options []string, value int, answered bool) ChoiceList {
	cursor := 0
	if answered && value >= 1 && value <= len(options) {
		cursor = value - 1
	} else {
		answered = false
	}
	return ChoiceList{
		Prompt:       prompt,
		Options:      options,
		Cursor:       cursor,
		HasSelection: answered,
	}
}

// Update handles keyboard navigation. Moving the cursor counts as
// selecting; submission is the caller's concern.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if !c.HasSelection {
			c.HasSelection = true
		} else if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if !c.HasSelection {
			c.HasSelection = true
		} else if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// Value returns the 1-based selected option index and whether a
// selection has been made.
func (c ChoiceList) Value() (int, bool) {
	if !c.HasSelection {
		return 0, false
	}
	return c.Cursor + 1, true
}

// View renders the prompt and the option list.
func (c ChoiceList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	out := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}

		prefix := "  "
		if c.HasSelection && i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if c.HasSelection && i == c.Cursor {
			out += theme.Selected.Render(line) + "\n"
		} else {
			out += theme.Unselected.Render(line) + "\n"
		}
	}

	if !c.HasSelection {
		out += "\n" + theme.Hint.Render("  Use ↑/↓ to choose an option") + "\n"
	}

	return out
}
