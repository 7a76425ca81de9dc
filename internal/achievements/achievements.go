package achievements

import (
	"fmt"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/progress"
)

// Achievement defines a milestone the learner can earn once.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Earned      func(p *progress.UserProgress) bool
}

// masteryMinAttempts is the attempt floor before a rule can count as mastered.
const masteryMinAttempts = 10

// masteryAccuracy is the rounded accuracy threshold for rule mastery.
const masteryAccuracy = 90

// defs lists every achievement in display order.
var defs = []Achievement{
	{
		ID:          "streak-3",
		Title:       "Warming Up",
		Description: "Practice 3 days in a row",
		Icon:        "🔥",
		Earned:      func(p *progress.UserProgress) bool { return p.CurrentStreak >= 3 },
	},
	{
		ID:          "streak-7",
		Title:       "One Full Week",
		Description: "Practice 7 days in a row",
		Icon:        "⚡",
		Earned:      func(p *progress.UserProgress) bool { return p.CurrentStreak >= 7 },
	},
	{
		ID:          "streak-30",
		Title:       "Habit Formed",
		Description: "Practice 30 days in a row",
		Icon:        "🏆",
		Earned:      func(p *progress.UserProgress) bool { return p.CurrentStreak >= 30 },
	},
	{
		ID:          "questions-50",
		Title:       "Getting Serious",
		Description: "Answer 50 questions",
		Icon:        "📚",
		Earned:      func(p *progress.UserProgress) bool { return p.TotalQuestions >= 50 },
	},
	{
		ID:          "questions-100",
		Title:       "Century Club",
		Description: "Answer 100 questions",
		Icon:        "💯",
		Earned:      func(p *progress.UserProgress) bool { return p.TotalQuestions >= 100 },
	},
}

func init() {
	// One mastery achievement per grammar rule.
	for _, r := range bank.Rules() {
		rule := r
		defs = append(defs, Achievement{
			ID:          "mastery-" + rule.ID,
			Title:       "Mastered: " + rule.Title,
			Description: fmt.Sprintf("Reach %d%% accuracy over at least %d attempts", masteryAccuracy, masteryMinAttempts),
			Icon:        "💎",
			Earned: func(p *progress.UserProgress) bool {
				tally := p.QuestionsPerRule[rule.ID]
				return tally.Total >= masteryMinAttempts && p.AccuracyForRule(rule.ID) >= masteryAccuracy
			},
		})
	}
}

// All returns every achievement definition in display order.
func All() []Achievement {
	return defs
}

// ByID returns an achievement definition by ID, or nil if not found.
func ByID(id string) *Achievement {
	for i := range defs {
		if defs[i].ID == id {
			return &defs[i]
		}
	}
	return nil
}

// Evaluate checks all definitions against the progress record, appends any
// newly earned achievement IDs to it, and returns the new awards in display
// order. Already-earned achievements are never awarded twice.
func Evaluate(p *progress.UserProgress) []Achievement {
	var earned []Achievement
	for _, a := range defs {
		if p.HasAchievement(a.ID) {
			continue
		}
		if a.Earned(p) {
			p.Achievements = append(p.Achievements, a.ID)
			earned = append(earned, a)
		}
	}
	return earned
}
