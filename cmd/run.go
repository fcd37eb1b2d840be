package cmd

import (
	"fmt"

	"github.com/rsahni/topiq/internal/app"
	"github.com/spf13/cobra"
)

// runApp resolves the database path and learner identity, then launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	learner, _ := cmd.Flags().GetString("learner")

	return app.Run(app.Options{
		DBPath:  dbPath,
		Learner: learner,
	})
}
