package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Browse the grammar rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rules (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		var rules []bank.Rule
		if category != "" {
			rules = bank.RulesByCategory(bank.Category(category))
			if len(rules) == 0 {
				var names []string
				for _, c := range bank.AllCategories() {
					names = append(names, string(c))
				}
				return fmt.Errorf("no rules in category %q (categories: %s)", category, strings.Join(names, ", "))
			}
		} else {
			rules = bank.Rules()
		}

		fmt.Printf("%-24s  %-14s  %-9s  %s\n", "ID", "Category", "Questions", "Title")
		fmt.Println(strings.Repeat("─", 80))
		for _, r := range rules {
			fmt.Printf("%-24s  %-14s  %9d  %s\n",
				r.ID, r.Category, len(bank.QuestionsForRule(r.ID)), r.Title)
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one rule with its examples",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rule, err := bank.RuleByID(args[0])
		if err != nil {
			return fmt.Errorf("rule %q not found (see: gramly rules list)", args[0])
		}

		fmt.Printf("%s (%s)\n", rule.Title, rule.Category)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(rule.Description)
		if len(rule.Examples) > 0 {
			fmt.Println()
			for _, ex := range rule.Examples {
				fmt.Printf("  • %s\n", ex)
			}
		}
		fmt.Printf("\n%d questions in the bank.\n", len(bank.QuestionsForRule(rule.ID)))
		return nil
	},
}

func init() {
	rulesListCmd.Flags().StringP("category", "c", "", "Filter by category (e.g. Tenses)")

	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesShowCmd)
}
