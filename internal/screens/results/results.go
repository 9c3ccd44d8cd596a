// Package results renders the final recommendation, the score
// breakdown, and the career matches.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/compass/internal/router"
	"github.com/abhisek/compass/internal/screen"
	"github.com/abhisek/compass/internal/scoring"
	"github.com/abhisek/compass/internal/session"
	"github.com/abhisek/compass/internal/ui/components"
	"github.com/abhisek/compass/internal/ui/layout"
	"github.com/abhisek/compass/internal/ui/theme"
)

const barWidth = 32

// ResultsScreen is the terminal screen of a completed run.
type ResultsScreen struct {
	engine *session.Engine
	intro  func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. intro produces the screen shown after a
// restart.
func New(engine *session.Engine, intro func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{engine: engine, intro: intro}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "r", "R":
			s.engine.Restart()
			introScreen := s.intro()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: introScreen}
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	res := s.engine.Result()
	if res == nil {
		return ""
	}

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Render(banner(res.Recommendation)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Confidence score: %d/100", res.ConfidenceScore)))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(res.Reason))
	b.WriteString("\n\n")

	left := renderScores(res)
	right := renderNextSteps(res)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderCareers(res)))

	return b.String()
}

func banner(rec scoring.Recommendation) string {
	switch rec {
	case scoring.RecommendYes:
		return theme.BannerYes.Render("✓ Data science looks like a strong fit")
	case scoring.RecommendMaybe:
		return theme.BannerMaybe.Render("~ A possible fit, with gaps to close")
	default:
		return theme.BannerNo.Render("✗ Other paths may fit you better")
	}
}

func renderScores(res *scoring.Result) string {
	var b strings.Builder

	b.WriteString(sectionHeading("Section scores"))
	for _, sc := range res.SectionScores {
		b.WriteString(scoreLine(sc.SectionID, sc.Score))
	}

	if len(res.Profile) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionHeading("Profile"))
		for _, ax := range res.Profile {
			b.WriteString(scoreLine(fmt.Sprintf("%s · %s", ax.Key, ax.Label), ax.Score))
		}
	}

	return b.String()
}

func scoreLine(label string, score int) string {
	bar := components.NewProgressBar("", float64(score)/100, false, barWidth).View()
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(28).Render(label)
	value := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%3d", score))
	return fmt.Sprintf("%s %s %s\n", text, bar, value)
}

func renderNextSteps(res *scoring.Result) string {
	var b strings.Builder
	b.WriteString(sectionHeading("Next steps"))
	for i, step := range res.NextSteps {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(b.String())
}

func renderCareers(res *scoring.Result) string {
	if len(res.Careers) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeading("Career alignment"))
	for _, c := range res.Careers {
		role := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Role)
		level := theme.Hint.Render(fmt.Sprintf("(%s)", c.SkillLevel))
		score := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d%%", c.AlignmentScore))
		b.WriteString(fmt.Sprintf("%s %s — %s  %s\n", role, level, c.Description, score))
	}
	return b.String()
}

func sectionHeading(title string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title) + "\n"
}
