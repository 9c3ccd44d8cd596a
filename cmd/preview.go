package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/compass/internal/assessment"
	"github.com/abhisek/compass/internal/session"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run an assessment as a plain stdin prompt loop (no TUI)",
	Long: `Walk the assessment question by question on plain stdin/stdout.

This is a stateless developer tool for checking questionnaire content and
scoring output without the full-screen interface.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	def, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}
	engine, err := session.New(def.Questionnaire, def.Scoring)
	if err != nil {
		return err
	}

	qn := engine.Questionnaire()
	fmt.Printf("%s\n%s\n\n", qn.Title, qn.Subtitle)
	fmt.Printf("%d sections, %d questions. Enter a number to answer, blank to quit.\n\n",
		len(qn.Sections), qn.QuestionCount())

	if err := engine.Begin(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for engine.Phase() == session.PhaseQuestions {
		sec := engine.CurrentSection()
		q := engine.CurrentQuestion()

		fmt.Printf("── %s · question %d/%d ──\n", sec.Title, engine.QuestionIndex()+1, len(sec.Questions))
		fmt.Println(q.Prompt)
		if q.Type == assessment.TypeMultipleChoice {
			for i, opt := range q.Options {
				fmt.Printf("  %d) %s\n", i+1, opt)
			}
		} else {
			fmt.Printf("  rate %d (low) to %d (high)\n", q.Min, q.Max)
		}

		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Println("(quit)")
			return nil
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("not a number, try again")
			fmt.Println()
			continue
		}

		if err := engine.SubmitAnswer(q.ID, value); err != nil {
			if errors.Is(err, session.ErrOutOfRangeAnswer) {
				fmt.Println("note:", err)
			} else {
				return err
			}
		}
		if err := engine.Advance(); err != nil {
			return err
		}
		fmt.Println()
	}

	res := engine.Result()
	fmt.Printf("── Result ──\n")
	fmt.Printf("Recommendation: %s (confidence %d/100)\n", res.Recommendation, res.ConfidenceScore)
	fmt.Println(res.Reason)

	fmt.Println("\nSection scores:")
	for _, sc := range res.SectionScores {
		fmt.Printf("  %-24s %3d\n", sc.SectionID, sc.Score)
	}

	if len(res.Profile) > 0 {
		fmt.Println("\nProfile:")
		for _, ax := range res.Profile {
			fmt.Printf("  %s  %-24s %3d\n", ax.Key, ax.Label, ax.Score)
		}
	}

	if len(res.NextSteps) > 0 {
		fmt.Println("\nNext steps:")
		for i, step := range res.NextSteps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}

	if len(res.Careers) > 0 {
		fmt.Println("\nCareer alignment:")
		for _, c := range res.Careers {
			fmt.Printf("  %-32s %3d%%  %s\n", c.Role, c.AlignmentScore, c.SkillLevel)
		}
	}

	return nil
}
