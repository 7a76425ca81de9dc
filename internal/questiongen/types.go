package questiongen

import "github.com/abhisek/gramly/internal/bank"

// GeneratedQuestion is a question drafted by the LLM. It mirrors the bank
// question shape and carries the JSON tags used for the curation file, so a
// reviewed batch can be pasted straight into the seed data.
//
// Generated questions are drafts: they are reviewed by a human before
// entering the bank, so bank invariants are not enforced on them.
type GeneratedQuestion struct {
	ID          string   `json:"id"`
	RuleID      string   `json:"ruleId"`
	Type        string   `json:"type"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"correctAnswer"`
	Explanation string   `json:"explanation"`
}

// GenerateInput holds all context needed to generate a question batch.
type GenerateInput struct {
	// Rules are the grammar rules to draw questions from. Defaults to the
	// full rule set when empty.
	Rules []bank.Rule

	// Count is the number of questions to request.
	Count int

	// StartID is the first question ID to assign, e.g. "q49". IDs continue
	// sequentially from there. Defaults to the first unused bank ID.
	StartID string
}
