package cmd

import (
	"github.com/abhisek/compass/internal/app"
	"github.com/abhisek/compass/internal/catalog"
	"github.com/abhisek/compass/internal/session"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compass",
	Short: "Career readiness self-assessments in the terminal",
	Long: "Compass administers multi-section self-assessments and turns your answers\n" +
		"into a recommendation: a fit score, a readiness profile, and next steps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}
		engine, err := session.New(def.Questionnaire, def.Scoring)
		if err != nil {
			return err
		}
		return app.Run(engine)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "Path to a questionnaire definition (JSON or YAML); default is the bundled assessment")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveCatalog loads the definition named by --file, falling back to
// the bundled assessment.
func resolveCatalog(cmd *cobra.Command) (*catalog.Definition, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return catalog.Load(path)
	}
	return catalog.Default(), nil
}
