package bank

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// index holds the rule and question bank with precomputed lookups.
type index struct {
	rules           []Rule
	ruleByID        map[string]*Rule
	rulesByCategory map[Category][]Rule
	questions       []Question
	questionByID    map[string]*Question
	byRule          map[string][]Question
	byCategory      map[Category][]Question
}

// idx is the package-level bank singleton, built from the seed data.
var idx *index

func init() {
	idx = buildIndex(seedRules, seedQuestions)
}

// buildIndex constructs all lookups. Slice groupings preserve bank order so
// practice sessions walk questions in a stable sequence.
func buildIndex(rules []Rule, questions []Question) *index {
	ix := &index{
		rules:           rules,
		ruleByID:        make(map[string]*Rule, len(rules)),
		rulesByCategory: make(map[Category][]Rule),
		questions:       questions,
		questionByID:    make(map[string]*Question, len(questions)),
		byRule:          make(map[string][]Question),
		byCategory:      make(map[Category][]Question),
	}

	for i := range ix.rules {
		r := &ix.rules[i]
		ix.ruleByID[r.ID] = r
		ix.rulesByCategory[r.Category] = append(ix.rulesByCategory[r.Category], *r)
	}

	for i := range ix.questions {
		q := &ix.questions[i]
		ix.questionByID[q.ID] = q
		ix.byRule[q.RuleID] = append(ix.byRule[q.RuleID], *q)
		if r, ok := ix.ruleByID[q.RuleID]; ok {
			ix.byCategory[r.Category] = append(ix.byCategory[r.Category], *q)
		}
	}

	return ix
}

// Rules returns all grammar rules in bank order.
func Rules() []Rule {
	return slices.Clone(idx.rules)
}

// RuleByID returns a rule by ID, or an error if not found.
func RuleByID(id string) (Rule, error) {
	r, ok := idx.ruleByID[id]
	if !ok {
		return Rule{}, fmt.Errorf("rule not found: %q", id)
	}
	return *r, nil
}

// RulesByCategory returns all rules in a category, in bank order.
func RulesByCategory(cat Category) []Rule {
	return slices.Clone(idx.rulesByCategory[cat])
}

// Questions returns all questions in bank order.
func Questions() []Question {
	return slices.Clone(idx.questions)
}

// QuestionByID returns a question by ID, or an error if not found.
func QuestionByID(id string) (Question, error) {
	q, ok := idx.questionByID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return *q, nil
}

// QuestionsForRule returns all questions for a rule, in bank order.
func QuestionsForRule(ruleID string) []Question {
	return slices.Clone(idx.byRule[ruleID])
}

// QuestionsForCategory returns all questions whose rule belongs to the given
// category, in bank order. An unknown category yields an empty slice.
func QuestionsForCategory(cat Category) []Question {
	return slices.Clone(idx.byCategory[cat])
}

// NextQuestionID returns the first unused sequential question ID (e.g. "q49"
// for a bank ending at q48). Non-numeric IDs are ignored.
func NextQuestionID() string {
	max := 0
	for _, q := range idx.questions {
		n, err := strconv.Atoi(strings.TrimPrefix(q.ID, "q"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return "q" + strconv.Itoa(max+1)
}

// Validate checks the bank for structural issues.
func Validate() error {
	return validateBank(idx.rules, idx.questions)
}
