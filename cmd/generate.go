package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/llm"
	"github.com/abhisek/gramly/internal/questiongen"
	"github.com/abhisek/gramly/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft new questions with an LLM for manual curation",
	Long: `Generate a batch of draft grammar questions using the configured LLM provider.

The batch is printed as JSON for review; nothing is added to the question
bank automatically. Review findings go to stderr; fix or drop flagged
questions before merging the batch into the seed data.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntP("count", "n", 20, "Number of questions to request")
	generateCmd.Flags().StringSliceP("rule", "r", nil, "Limit to specific rule IDs (repeatable)")
	generateCmd.Flags().StringP("out", "o", "", "Write the batch to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	ruleIDs, _ := cmd.Flags().GetStringSlice("rule")
	outPath, _ := cmd.Flags().GetString("out")

	var rules []bank.Rule
	for _, id := range ruleIDs {
		r, err := bank.RuleByID(id)
		if err != nil {
			return fmt.Errorf("rule %q not found (see: gramly rules list)", id)
		}
		rules = append(rules, r)
	}

	ctx := context.Background()

	// Log LLM usage when the store is reachable; generation works without it.
	var eventRepo store.EventRepo
	if dbPath, err := resolveDBPath(cmd); err == nil {
		if st, err := store.Open(dbPath); err == nil {
			defer st.Close()
			eventRepo = st.EventRepo()
		}
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())

	fmt.Fprintf(os.Stderr, "Generating %d questions with %s...\n", count, provider.ModelID())
	questions, err := gen.Generate(ctx, questiongen.GenerateInput{
		Rules: rules,
		Count: count,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	findings := questiongen.Review(questions)
	for _, f := range findings {
		fmt.Fprintf(os.Stderr, "review: %s\n", f)
	}
	fmt.Fprintf(os.Stderr, "%d questions, %d review findings\n", len(questions), len(findings))

	out, err := json.MarshalIndent(map[string]any{"questions": questions}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}
	out = append(out, '\n')

	if outPath != "" {
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
		return nil
	}

	_, err = os.Stdout.Write(out)
	return err
}
