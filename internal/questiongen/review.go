package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/gramly/internal/bank"
)

// Finding is a single issue spotted in a generated batch. Findings are
// advisory: the batch is still emitted for curation, and the reviewer
// decides what to keep.
type Finding struct {
	QuestionID string
	Message    string
}

func (f Finding) String() string {
	if f.QuestionID == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.QuestionID, f.Message)
}

// Review checks a generated batch against the question bank and reports
// anything a curator should look at before merging.
func Review(questions []GeneratedQuestion) []Finding {
	var findings []Finding
	seen := make(map[string]bool)

	validTypes := make(map[string]bool)
	for _, t := range bank.AllQuestionTypes() {
		validTypes[string(t)] = true
	}

	for i, q := range questions {
		id := q.ID
		if id == "" {
			id = fmt.Sprintf("question %d", i+1)
			findings = append(findings, Finding{QuestionID: id, Message: "missing id"})
		}
		if seen[q.ID] && q.ID != "" {
			findings = append(findings, Finding{QuestionID: id, Message: "duplicate id within batch"})
		}
		seen[q.ID] = true

		if q.ID != "" {
			if _, err := bank.QuestionByID(q.ID); err == nil {
				findings = append(findings, Finding{QuestionID: id, Message: "id already exists in the question bank"})
			}
		}
		if _, err := bank.RuleByID(q.RuleID); err != nil {
			findings = append(findings, Finding{QuestionID: id, Message: fmt.Sprintf("unknown rule %q", q.RuleID)})
		}
		if !validTypes[q.Type] {
			findings = append(findings, Finding{QuestionID: id, Message: fmt.Sprintf("unknown question type %q", q.Type)})
		}
		if strings.TrimSpace(q.Prompt) == "" {
			findings = append(findings, Finding{QuestionID: id, Message: "empty question text"})
		}
		if strings.TrimSpace(q.Answer) == "" {
			findings = append(findings, Finding{QuestionID: id, Message: "empty answer"})
		}
		if strings.TrimSpace(q.Explanation) == "" {
			findings = append(findings, Finding{QuestionID: id, Message: "empty explanation"})
		}

		switch q.Type {
		case string(bank.TypeMultipleChoice):
			if len(q.Options) != 4 {
				findings = append(findings, Finding{QuestionID: id, Message: fmt.Sprintf("expected 4 options, got %d", len(q.Options))})
			}
			if q.Answer != "" && !containsFold(q.Options, q.Answer) {
				findings = append(findings, Finding{QuestionID: id, Message: "answer not found among options"})
			}
		default:
			if len(q.Options) > 0 {
				findings = append(findings, Finding{QuestionID: id, Message: "options set on a non-multiple-choice question"})
			}
		}
	}

	return findings
}

func containsFold(options []string, answer string) bool {
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(o), strings.TrimSpace(answer)) {
			return true
		}
	}
	return false
}
