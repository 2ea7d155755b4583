package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/minhtran/vocamaster/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vocamaster",
	Short: "AI vocabulary trainer for English learners",
	Long:  "VocaMaster — terminal app for learning English vocabulary with AI-generated word lists, flashcards and quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Keys and preferences may live in a local .env; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCAMASTER_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile name to study under (overrides VOCAMASTER_USER env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then VOCAMASTER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
