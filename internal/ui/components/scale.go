package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/compass/internal/ui/theme"
)

// Scale is a horizontal rating selector over an integer range.
type Scale struct {
	Prompt   string
	Min      int
	Max      int
	Selected int // current value; meaningful only when HasSelection

	// HasSelection is false until the user picks a value, so an
	// untouched question is distinguishable from a rating of Min.
	HasSelection bool
}

// NewScale creates a scale selector. If a previous answer exists, pass
// it as value with answered true so revisiting a question restores the
// selection.
func NewScale(prompt string, min, max, value int, answered bool) Scale {
	if !answered || value < min || value > max {
		value = min
		answered = false
	}
	return Scale{
		Prompt:       prompt,
		Min:          min,
		Max:          max,
		Selected:     value,
		HasSelection: answered,
	}
}

// Update handles keyboard movement. Left/right (or h/l) move the
// selection; a digit jumps straight to that rating.
func (s Scale) Update(msg tea.Msg) (Scale, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if !s.HasSelection {
			s.HasSelection = true
		} else if s.Selected > s.Min {
			s.Selected--
		}
	case "right", "l":
		if !s.HasSelection {
			s.HasSelection = true
		} else if s.Selected < s.Max {
			s.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			v := int(key[0] - '0')
			if v >= s.Min && v <= s.Max {
				s.Selected = v
				s.HasSelection = true
			}
		}
	}

	return s, nil
}

// Value returns the selected rating and whether one has been made.
func (s Scale) Value() (int, bool) {
	return s.Selected, s.HasSelection
}

// View renders the prompt, the numbered cells, and the anchor labels.
func (s Scale) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	out := promptStyle.Render(s.Prompt) + "\n\n"

	var cells []string
	for v := s.Min; v <= s.Max; v++ {
		cell := fmt.Sprintf(" %d ", v)
		switch {
		case s.HasSelection && v == s.Selected:
			cells = append(cells, theme.ButtonActive.Render(cell))
		default:
			cells = append(cells, theme.ButtonInactive.Render(cell))
		}
	}
	out += "  " + strings.Join(cells, " ") + "\n\n"

	anchors := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  %d = Strongly Disagree   %d = Strongly Agree", s.Min, s.Max))
	out += anchors + "\n"

	if !s.HasSelection {
		out += "\n" + theme.Hint.Render("  Use ←/→ or a number key to rate") + "\n"
	}

	return out
}
