package cmd

import (
	"fmt"

	"github.com/abhisek/compass/internal/catalog"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a questionnaire definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		qn := def.Questionnaire
		fmt.Printf("%s: OK (%d sections, %d questions, %d tiers, %d careers)\n",
			qn.ID, len(qn.Sections), qn.QuestionCount(),
			len(def.Scoring.Tiers), len(def.Scoring.Careers))
		return nil
	},
}
