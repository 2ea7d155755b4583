package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhtran/vocamaster/internal/store"
	"github.com/minhtran/vocamaster/internal/vocab"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List built-in and saved custom topics",
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

		fmt.Println("Built-in topics")
		fmt.Println(strings.Repeat("─", 60))
		for _, t := range vocab.DefaultTopics() {
			fmt.Printf("%-6s  %-28s  %s\n", t.ID, t.Name, t.Category)
		}

		auth := resolveAuth(cmd)
		records, err := s.ListTopics(context.Background(), auth.UID)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}

		fmt.Println()
		fmt.Printf("Saved topics for %s\n", auth.Name)
		fmt.Println(strings.Repeat("─", 60))
		if len(records) == 0 {
			fmt.Println("(none yet)")
			return nil
		}
		for _, r := range records {
			fmt.Printf("%-24s  %3d words  updated %s\n",
				r.Name, len(r.Words), r.UpdatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}
