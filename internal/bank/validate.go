package bank

import (
	"fmt"
	"strings"
)

// validateBank performs all structural checks on the given rules and questions.
// Returns a combined error describing all problems found, or nil if valid.
func validateBank(rules []Rule, questions []Question) error {
	var errs []string

	ruleIDs := make(map[string]bool, len(rules))
	catSet := make(map[Category]bool)

	// Check for duplicate rule IDs and empty fields
	for _, r := range rules {
		if ruleIDs[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate rule ID: %q", r.ID))
		}
		ruleIDs[r.ID] = true
		catSet[r.Category] = true
		if r.Title == "" {
			errs = append(errs, fmt.Sprintf("rule %q has empty title", r.ID))
		}
		if len(r.Examples) == 0 {
			errs = append(errs, fmt.Sprintf("rule %q has no examples", r.ID))
		}
	}

	// Check all declared categories are populated
	for _, cat := range AllCategories() {
		if !catSet[cat] {
			errs = append(errs, fmt.Sprintf("category %q has no rules", cat))
		}
	}

	knownTypes := make(map[QuestionType]bool)
	for _, t := range AllQuestionTypes() {
		knownTypes[t] = true
	}

	questionIDs := make(map[string]bool, len(questions))
	for _, q := range questions {
		if questionIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		questionIDs[q.ID] = true

		if !ruleIDs[q.RuleID] {
			errs = append(errs, fmt.Sprintf("question %q references nonexistent rule %q", q.ID, q.RuleID))
		}
		if !knownTypes[q.Type] {
			errs = append(errs, fmt.Sprintf("question %q has unknown type %q", q.ID, q.Type))
		}
		if q.Prompt == "" {
			errs = append(errs, fmt.Sprintf("question %q has empty prompt", q.ID))
		}
		if q.Answer == "" {
			errs = append(errs, fmt.Sprintf("question %q has empty answer", q.ID))
		}
		if q.Explanation == "" {
			errs = append(errs, fmt.Sprintf("question %q has empty explanation", q.ID))
		}

		if q.Type == TypeMultipleChoice {
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("question %q: multiple-choice needs at least 2 options, got %d", q.ID, len(q.Options)))
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.Answer {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, fmt.Sprintf("question %q: answer %q is not among the options", q.ID, q.Answer))
			}
		} else if len(q.Options) > 0 {
			errs = append(errs, fmt.Sprintf("question %q: type %q must not carry options", q.ID, q.Type))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
