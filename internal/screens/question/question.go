// Package question renders the active question of an assessment run
// and feeds selections into the engine.
package question

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/compass/internal/assessment"
	"github.com/abhisek/compass/internal/router"
	"github.com/abhisek/compass/internal/screen"
	"github.com/abhisek/compass/internal/session"
	"github.com/abhisek/compass/internal/ui/components"
	"github.com/abhisek/compass/internal/ui/layout"
	"github.com/abhisek/compass/internal/ui/theme"
)

// answerInput is the common surface of the scale and choice selectors.
type answerInput interface {
	Value() (int, bool)
	View() string
}

// QuestionScreen walks the questionnaire one question at a time.
type QuestionScreen struct {
	engine  *session.Engine
	results func() screen.Screen
	intro   func() screen.Screen

	// questionID guards against rebuilding the input mid-question.
	questionID string
	scale      components.Scale
	choices    components.ChoiceList
	isScale    bool
	notice     string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen. results and intro produce the screens
// entered on finishing the last question and on retreating past the
// first one.
func New(engine *session.Engine, results, intro func() screen.Screen) *QuestionScreen {
	s := &QuestionScreen{engine: engine, results: results, intro: intro}
	s.syncInput()
	return s
}

// syncInput rebuilds the answer input for the engine's current
// question, restoring any stored answer.
func (s *QuestionScreen) syncInput() {
	q := s.engine.CurrentQuestion()
	if q == nil || q.ID == s.questionID {
		return
	}
	s.questionID = q.ID
	s.notice = ""

	prev, answered := s.engine.Answers().Get(q.ID)
	switch q.Type {
	case assessment.TypeScale:
		s.isScale = true
		s.scale = components.NewScale(q.Prompt, q.Min, q.Max, prev.Value, answered)
	default:
		s.isScale = false
		s.choices = components.NewChoiceList(q.Prompt, q.Options, prev.Value, answered)
	}
}

func (s *QuestionScreen) input() answerInput {
	if s.isScale {
		return s.scale
	}
	return s.choices
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	if sec := s.engine.CurrentSection(); sec != nil {
		return sec.Title
	}
	return s.engine.Questionnaire().Title
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
	}
	if s.isScale {
		hints = []layout.KeyHint{{Key: "←→", Description: "Rate"}}
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Next"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, s.submitAndAdvance()
		case "esc":
			s.engine.Retreat()
			if s.engine.Phase() == session.PhaseIntroduction {
				introScreen := s.intro()
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: introScreen}
				}
			}
			s.syncInput()
			return s, nil
		}
	}

	if s.isScale {
		s.scale, _ = s.scale.Update(msg)
	} else {
		s.choices, _ = s.choices.Update(msg)
	}
	return s, nil
}

// submitAndAdvance stores the current selection and moves forward. An
// unanswered question blocks with a notice; the engine enforces the
// same rule, so an empty submit surfaces ErrPrematureAdvance.
func (s *QuestionScreen) submitAndAdvance() tea.Cmd {
	q := s.engine.CurrentQuestion()
	if q == nil {
		return nil
	}

	if v, ok := s.input().Value(); ok {
		if err := s.engine.SubmitAnswer(q.ID, v); err != nil &&
			!errors.Is(err, session.ErrOutOfRangeAnswer) {
			s.notice = err.Error()
			return nil
		}
	}

	if err := s.engine.Advance(); err != nil {
		if errors.Is(err, session.ErrPrematureAdvance) {
			s.notice = "Choose an answer to continue"
		}
		return nil
	}

	if s.engine.Phase() == session.PhaseResults {
		resultsScreen := s.results()
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: resultsScreen}
		}
	}

	s.syncInput()
	return nil
}

func (s *QuestionScreen) View(width, height int) string {
	sec := s.engine.CurrentSection()
	q := s.engine.CurrentQuestion()
	if sec == nil || q == nil {
		return ""
	}

	var b strings.Builder

	position := fmt.Sprintf("Question %d of %d", s.engine.QuestionIndex()+1, len(sec.Questions))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(position))
	b.WriteString("\n")
	if sec.Description != "" {
		b.WriteString(theme.Hint.Render(sec.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.input().View())

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render("  " + s.notice))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	bar := components.NewProgressBar("", s.engine.ProgressPercent()/100, true, min(width-4, 76)).View()

	content := lipgloss.JoinVertical(lipgloss.Left, card, "", bar)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
