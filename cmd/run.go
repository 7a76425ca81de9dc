package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/gramly/internal/app"
	"github.com/abhisek/gramly/internal/store"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Launch the practice interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, loads the progress record, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	progressRepo := st.ProgressRepo()
	prog, err := progressRepo.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	return app.Run(app.Options{
		Progress:     prog,
		ProgressRepo: progressRepo,
		EventRepo:    st.EventRepo(),
	})
}
