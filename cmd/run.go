package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/minhtran/vocamaster/internal/app"
	"github.com/minhtran/vocamaster/internal/llm"
	"github.com/minhtran/vocamaster/internal/session"
	"github.com/minhtran/vocamaster/internal/store"
	"github.com/minhtran/vocamaster/internal/wordgen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	auth := resolveAuth(cmd)

	// Build the word source. The app works without an LLM provider:
	// static topics still load and custom topics get canned fallbacks.
	var words session.WordSource = wordgen.Unavailable{}
	provider, err := llm.NewProviderFromEnv(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI word generation will be unavailable.")
	} else {
		words = wordgen.New(provider, wordgen.DefaultConfig())
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	ctrl := session.NewController(auth, words, st, rng)

	return app.Run(app.Options{
		Controller: ctrl,
		Rng:        rng,
	})
}

// resolveAuth builds the local identity: --user flag, then
// VOCAMASTER_USER, then the OS account name.
func resolveAuth(cmd *cobra.Command) session.AuthSession {
	name, _ := cmd.Flags().GetString("user")
	if name == "" {
		name = os.Getenv("VOCAMASTER_USER")
	}
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}
	if name == "" {
		name = "learner"
	}
	return session.AuthSession{
		UID:   name,
		Name:  name,
		Email: os.Getenv("VOCAMASTER_EMAIL"),
	}
}
