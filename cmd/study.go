package cmd

import (
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
