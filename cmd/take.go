package cmd

import (
	"github.com/spf13/cobra"
)

// takeCmd is the explicit form of the default action.
var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take an assessment in the terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.RunE(cmd, args)
	},
}
