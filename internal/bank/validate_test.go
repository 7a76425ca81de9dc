package bank

import (
	"strings"
	"testing"
)

func validRule(id string, cat Category) Rule {
	return Rule{ID: id, Title: "Title", Category: cat, Description: "desc", Examples: []string{"example"}}
}

// rulesCoveringAllCategories returns one valid rule per category so that the
// category-population check passes.
func rulesCoveringAllCategories() []Rule {
	var rules []Rule
	for i, cat := range AllCategories() {
		rules = append(rules, validRule("r"+string(rune('a'+i)), cat))
	}
	return rules
}

func TestValidateDuplicateQuestionID(t *testing.T) {
	rules := rulesCoveringAllCategories()
	questions := []Question{
		{ID: "q1", RuleID: rules[0].ID, Type: TypeFillBlank, Prompt: "p", Answer: "a", Explanation: "e"},
		{ID: "q1", RuleID: rules[0].ID, Type: TypeFillBlank, Prompt: "p", Answer: "a", Explanation: "e"},
	}
	err := validateBank(rules, questions)
	if err == nil || !strings.Contains(err.Error(), "duplicate question ID") {
		t.Errorf("expected duplicate question ID error, got %v", err)
	}
}

func TestValidateDanglingRuleReference(t *testing.T) {
	rules := rulesCoveringAllCategories()
	questions := []Question{
		{ID: "q1", RuleID: "missing", Type: TypeFillBlank, Prompt: "p", Answer: "a", Explanation: "e"},
	}
	err := validateBank(rules, questions)
	if err == nil || !strings.Contains(err.Error(), "nonexistent rule") {
		t.Errorf("expected dangling rule error, got %v", err)
	}
}

func TestValidateMultipleChoiceAnswerNotInOptions(t *testing.T) {
	rules := rulesCoveringAllCategories()
	questions := []Question{
		{
			ID: "q1", RuleID: rules[0].ID, Type: TypeMultipleChoice,
			Prompt: "p", Options: []string{"x", "y"}, Answer: "z", Explanation: "e",
		},
	}
	err := validateBank(rules, questions)
	if err == nil || !strings.Contains(err.Error(), "not among the options") {
		t.Errorf("expected answer-not-in-options error, got %v", err)
	}
}

func TestValidateNonChoiceWithOptions(t *testing.T) {
	rules := rulesCoveringAllCategories()
	questions := []Question{
		{
			ID: "q1", RuleID: rules[0].ID, Type: TypeFillBlank,
			Prompt: "p", Options: []string{"x"}, Answer: "a", Explanation: "e",
		},
	}
	err := validateBank(rules, questions)
	if err == nil || !strings.Contains(err.Error(), "must not carry options") {
		t.Errorf("expected options-on-non-choice error, got %v", err)
	}
}

func TestValidateEmptyCategory(t *testing.T) {
	rules := []Rule{validRule("r1", CategoryBasics)}
	err := validateBank(rules, nil)
	if err == nil || !strings.Contains(err.Error(), "has no rules") {
		t.Errorf("expected empty category error, got %v", err)
	}
}

func TestValidateUnknownQuestionType(t *testing.T) {
	rules := rulesCoveringAllCategories()
	questions := []Question{
		{ID: "q1", RuleID: rules[0].ID, Type: "essay", Prompt: "p", Answer: "a", Explanation: "e"},
	}
	err := validateBank(rules, questions)
	if err == nil || !strings.Contains(err.Error(), "unknown type") {
		t.Errorf("expected unknown type error, got %v", err)
	}
}
