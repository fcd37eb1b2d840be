package cmd

import (
	"fmt"
	"strings"

	"github.com/rsahni/topiq/internal/topics"
	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Browse the topic catalog",
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		all := topics.All()
		var list []topics.Topic
		for _, t := range all {
			if category != "" && !strings.EqualFold(t.Category, category) {
				continue
			}
			list = append(list, t)
		}
		if len(list) == 0 {
			return fmt.Errorf("no topics found for category %q (have: %s)",
				category, strings.Join(topics.Categories(), ", "))
		}

		fmt.Printf("%-20s  %-24s  %-12s  %s\n", "ID", "Title", "Category", "Description")
		fmt.Println(strings.Repeat("─", 110))

		for _, t := range list {
			desc := t.Description
			if len(desc) > 48 {
				desc = desc[:45] + "..."
			}
			fmt.Printf("%-20s  %-24s  %-12s  %s\n", t.ID, t.Title, t.Category, desc)
		}

		fmt.Printf("\n%d topics\n", len(list))
		return nil
	},
}

func init() {
	topicListCmd.Flags().String("category", "", "Filter by category (e.g. Networking)")

	topicCmd.AddCommand(topicListCmd)
}
