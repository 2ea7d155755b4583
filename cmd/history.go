package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhtran/vocamaster/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		auth := resolveAuth(cmd)
		profile, err := s.Profile(context.Background(), auth.UID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		if len(profile.History) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		fmt.Println("Quiz history")
		fmt.Println(strings.Repeat("─", 64))
		for _, h := range profile.History {
			fmt.Printf("%s  %-24s  %4d pts  %2d/%-2d  streak %d\n",
				h.TakenAt.Local().Format("2006-01-02 15:04"), h.TopicName,
				h.Score, h.Correct, h.Total, h.MaxStreak)
		}
		return nil
	},
}
