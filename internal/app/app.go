package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/compass/internal/router"
	"github.com/abhisek/compass/internal/screen"
	"github.com/abhisek/compass/internal/screens/intro"
	"github.com/abhisek/compass/internal/screens/question"
	"github.com/abhisek/compass/internal/screens/results"
	"github.com/abhisek/compass/internal/session"
	"github.com/abhisek/compass/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine *session.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel wires the three assessment phases together. The phases
// replace each other on a single-screen stack; the factory closures
// break the intro -> question -> results -> intro reference cycle.
func newAppModel(engine *session.Engine) AppModel {
	var newIntro, newQuestion, newResults func() screen.Screen
	newIntro = func() screen.Screen { return intro.New(engine, newQuestion) }
	newQuestion = func() screen.Screen { return question.New(engine, newResults, newIntro) }
	newResults = func() screen.Screen { return results.New(engine, newIntro) }

	return AppModel{
		engine: engine,
		router: router.New(newIntro()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.engine.ProgressPercent(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program for the given engine.
func Run(engine *session.Engine) error {
	p := tea.NewProgram(newAppModel(engine))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
