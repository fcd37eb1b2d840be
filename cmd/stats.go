package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rsahni/topiq/internal/app"
	"github.com/rsahni/topiq/internal/store"
	"github.com/rsahni/topiq/internal/topics"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit, _ := cmd.Flags().GetString("learner")
		learner := app.ResolveLearner(explicit)
		if learner == "" {
			return fmt.Errorf("no learner identity: pass --learner or set TOPIQ_LEARNER")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		entries, err := s.MasteryRepo().All(context.Background(), learner)
		if err != nil {
			return fmt.Errorf("query mastery: %w", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No topics assessed yet for %s.\n", learner)
			return nil
		}

		fmt.Printf("Mastery for %s\n", learner)
		fmt.Println(strings.Repeat("─", 62))
		fmt.Printf("%-24s  %-12s  %7s  %s\n", "Topic", "Category", "Mastery", "Updated")
		fmt.Println(strings.Repeat("─", 62))

		var sum float64
		for _, e := range entries {
			title, category := e.TopicID, ""
			if t, err := topics.Get(e.TopicID); err == nil {
				title, category = t.Title, t.Category
			}
			fmt.Printf("%-24s  %-12s  %7.2f  %s\n",
				title, category, e.Mastery, e.UpdatedAt.Local().Format("2006-01-02"))
			sum += e.Mastery
		}

		fmt.Println(strings.Repeat("─", 62))
		fmt.Printf("%-24s  %-12s  %7.2f\n", "AVERAGE", "", sum/float64(len(entries)))
		fmt.Printf("\n%d of %d topics assessed\n", len(entries), len(topics.All()))
		return nil
	},
}
