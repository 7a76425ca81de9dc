package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/gramly/internal/achievements"
	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime practice statistics",
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

		prog, err := s.ProgressRepo().Load(context.Background())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Println("Overview")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("  Day streak:     %d\n", prog.CurrentStreak)
		fmt.Printf("  Questions:      %d\n", prog.TotalQuestions)
		fmt.Printf("  Correct:        %d\n", prog.CorrectAnswers)
		fmt.Printf("  Accuracy:       %d%%\n", prog.OverallAccuracy())
		if prog.LastPracticeDate != "" {
			fmt.Printf("  Last practiced: %s\n", prog.LastPracticeDate)
		}

		fmt.Println()
		fmt.Println("Accuracy by Rule")
		fmt.Println(strings.Repeat("─", 48))
		for _, rule := range bank.Rules() {
			tally := prog.QuestionsPerRule[rule.ID]
			if tally.Total == 0 {
				fmt.Printf("  %-30s  %s\n", rule.Title, "—")
				continue
			}
			fmt.Printf("  %-30s  %3d%%  (%d/%d)\n",
				rule.Title, prog.AccuracyForRule(rule.ID), tally.Correct, tally.Total)
		}

		earned := 0
		for _, a := range achievements.All() {
			if prog.HasAchievement(a.ID) {
				earned++
			}
		}
		fmt.Println()
		fmt.Printf("Achievements (%d/%d)\n", earned, len(achievements.All()))
		fmt.Println(strings.Repeat("─", 48))
		for _, a := range achievements.All() {
			mark := " "
			if prog.HasAchievement(a.ID) {
				mark = "✓"
			}
			fmt.Printf("  [%s] %-20s %s\n", mark, a.Title, a.Description)
		}

		return nil
	},
}
