package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rsahni/topiq/internal/llm"
	"github.com/rsahni/topiq/internal/quizgen"
	"github.com/rsahni/topiq/internal/topics"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a topic (no database)",
	Long: `Generate and interactively answer questions for a specific topic.

This is a stateless developer tool — no database, no mastery tracking, no events.
Useful for evaluating question quality and tuning prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic ID (required; see 'topiq topic list')")
	previewCmd.Flags().Float64("mastery", 0.5, "Mastery estimate to generate for, in [0,1]")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topicID, _ := cmd.Flags().GetString("topic")
	mastery, _ := cmd.Flags().GetFloat64("mastery")
	count, _ := cmd.Flags().GetInt("count")

	topic, err := topics.Get(topicID)
	if err != nil {
		return err
	}
	if mastery < 0 || mastery > 1 {
		return fmt.Errorf("mastery %v out of range [0,1]", mastery)
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Topic: %s — %s (mastery %.2f)\n", topic.Title, topic.Description, mastery)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct int
	for i := 1; i <= count; i++ {
		q, level, err := gen.GenerateQuestion(ctx, topic.Title, mastery)
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Question %d/%d [%s] ──\n", i, count, level)
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Print("(invalid choice, skipped)\n\n")
			continue
		}

		if q.Options[n-1] == q.CorrectAnswer {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.CorrectAnswer)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
