// Package intro renders the assessment introduction: what the
// assessment covers, how long it takes, and who it is for.
package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/compass/internal/router"
	"github.com/abhisek/compass/internal/screen"
	"github.com/abhisek/compass/internal/session"
	"github.com/abhisek/compass/internal/ui/components"
	"github.com/abhisek/compass/internal/ui/layout"
	"github.com/abhisek/compass/internal/ui/theme"
)

// IntroScreen is the entry screen of an assessment run.
type IntroScreen struct {
	engine *session.Engine
	next   func() screen.Screen
	start  components.Button
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen. next produces the question screen entered
// when the user starts the assessment.
func New(engine *session.Engine, next func() screen.Screen) *IntroScreen {
	s := &IntroScreen{engine: engine, next: next}
	s.start = components.NewButton("Start Assessment", true, s.begin)
	return s
}

func (s *IntroScreen) begin() tea.Cmd {
	if err := s.engine.Begin(); err != nil {
		return nil
	}
	nextScreen := s.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return s.engine.Questionnaire().Title
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.start, cmd = s.start.Update(msg)
	return s, cmd
}

func (s *IntroScreen) View(width, height int) string {
	qn := s.engine.Questionnaire()
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(qn.Title))
	b.WriteString("\n")
	if qn.Subtitle != "" {
		b.WriteString(center.Foreground(theme.TextDim).Render(qn.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if qn.Description != "" {
		b.WriteString(center.Foreground(theme.Text).Render(qn.Description))
		b.WriteString("\n\n")
	}
	if qn.Duration != "" {
		b.WriteString(center.Foreground(theme.Accent).Render("Duration: " + qn.Duration))
		b.WriteString("\n\n")
	}

	if qn.WhatIs != "" {
		b.WriteString(center.Foreground(theme.TextDim).Render(qn.WhatIs))
		b.WriteString("\n\n")
	}

	cols := make([]string, 0, 2)
	if len(qn.TypicalCareers) > 0 {
		cols = append(cols, renderList("Typical careers", qn.TypicalCareers))
	}
	if len(qn.WhoShouldConsider) > 0 {
		cols = append(cols, renderList("Who should consider it", qn.WhoShouldConsider))
	}
	if len(cols) > 0 {
		row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.start.View()))

	return b.String()
}

func renderList(title string, items []string) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 3).Render(b.String())
}
