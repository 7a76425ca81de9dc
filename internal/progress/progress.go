package progress

import "math"

// RuleTally holds the per-rule answer counters.
type RuleTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// UserProgress is the single learner's lifetime progress record. It is
// persisted as JSON, so field tags are part of the storage format.
type UserProgress struct {
	TotalQuestions   int                  `json:"totalQuestions"`
	CorrectAnswers   int                  `json:"correctAnswers"`
	QuestionsPerRule map[string]RuleTally `json:"questionsPerRule"`
	CurrentStreak    int                  `json:"currentStreak"`
	LastPracticeDate string               `json:"lastPracticeDate"`
	Achievements     []string             `json:"achievements"`
}

// New returns a zero-valued progress record with initialized maps.
func New() *UserProgress {
	return &UserProgress{
		QuestionsPerRule: make(map[string]RuleTally),
		Achievements:     []string{},
	}
}

// RecordAnswer updates the lifetime counters for a graded answer.
// Both the overall and the per-rule tallies move together, so the sum of
// per-rule totals always equals TotalQuestions.
func (p *UserProgress) RecordAnswer(ruleID string, correct bool) {
	p.TotalQuestions++
	if correct {
		p.CorrectAnswers++
	}

	if p.QuestionsPerRule == nil {
		p.QuestionsPerRule = make(map[string]RuleTally)
	}
	tally := p.QuestionsPerRule[ruleID]
	tally.Total++
	if correct {
		tally.Correct++
	}
	p.QuestionsPerRule[ruleID] = tally
}

// AccuracyForRule returns the rounded percentage of correct answers for a
// rule, or 0 if the rule has no attempts.
func (p *UserProgress) AccuracyForRule(ruleID string) int {
	tally, ok := p.QuestionsPerRule[ruleID]
	if !ok || tally.Total == 0 {
		return 0
	}
	return percent(tally.Correct, tally.Total)
}

// OverallAccuracy returns the rounded percentage of correct answers across
// all rules, or 0 before any practice.
func (p *UserProgress) OverallAccuracy() int {
	if p.TotalQuestions == 0 {
		return 0
	}
	return percent(p.CorrectAnswers, p.TotalQuestions)
}

// HasAchievement reports whether the given achievement ID has been earned.
func (p *UserProgress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// percent computes a rounded integer percentage. Rounding is half away from
// zero, matching how the stats are displayed.
func percent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
