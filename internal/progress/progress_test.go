package progress

import (
	"encoding/json"
	"testing"
)

func TestRecordAnswer(t *testing.T) {
	p := New()

	p.RecordAnswer("be-verb", true)
	p.RecordAnswer("be-verb", false)
	p.RecordAnswer("articles", true)

	if p.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", p.TotalQuestions)
	}
	if p.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", p.CorrectAnswers)
	}

	be := p.QuestionsPerRule["be-verb"]
	if be.Correct != 1 || be.Total != 2 {
		t.Errorf("be-verb tally = %+v, want {1 2}", be)
	}
	art := p.QuestionsPerRule["articles"]
	if art.Correct != 1 || art.Total != 1 {
		t.Errorf("articles tally = %+v, want {1 1}", art)
	}
}

func TestRecordAnswerPerRuleTotalsSumToOverall(t *testing.T) {
	p := New()
	rules := []string{"be-verb", "articles", "future", "be-verb", "future", "future"}
	for i, r := range rules {
		p.RecordAnswer(r, i%2 == 0)
	}

	sum := 0
	for _, tally := range p.QuestionsPerRule {
		sum += tally.Total
	}
	if sum != p.TotalQuestions {
		t.Errorf("sum of per-rule totals = %d, want %d", sum, p.TotalQuestions)
	}
}

func TestRecordAnswerNilMap(t *testing.T) {
	var p UserProgress // zero value, as after unmarshaling a partial record
	p.RecordAnswer("be-verb", true)
	if p.QuestionsPerRule["be-verb"].Total != 1 {
		t.Errorf("tally = %+v, want total 1", p.QuestionsPerRule["be-verb"])
	}
}

func TestAccuracyForRule(t *testing.T) {
	p := New()

	if got := p.AccuracyForRule("be-verb"); got != 0 {
		t.Errorf("accuracy with no attempts = %d, want 0", got)
	}

	p.RecordAnswer("be-verb", true)
	p.RecordAnswer("be-verb", true)
	p.RecordAnswer("be-verb", false)

	// 2/3 rounds to 67.
	if got := p.AccuracyForRule("be-verb"); got != 67 {
		t.Errorf("accuracy = %d, want 67", got)
	}
}

func TestAccuracyBounds(t *testing.T) {
	p := New()
	for i := 0; i < 10; i++ {
		p.RecordAnswer("r", i < 7)
	}
	if got := p.AccuracyForRule("r"); got < 0 || got > 100 {
		t.Errorf("accuracy = %d, out of [0, 100]", got)
	}

	all := New()
	for i := 0; i < 4; i++ {
		all.RecordAnswer("r", true)
	}
	if got := all.OverallAccuracy(); got != 100 {
		t.Errorf("all-correct accuracy = %d, want 100", got)
	}

	none := New()
	none.RecordAnswer("r", false)
	if got := none.OverallAccuracy(); got != 0 {
		t.Errorf("all-wrong accuracy = %d, want 0", got)
	}
}

func TestOverallAccuracyEmpty(t *testing.T) {
	p := New()
	if got := p.OverallAccuracy(); got != 0 {
		t.Errorf("OverallAccuracy() on fresh record = %d, want 0", got)
	}
}

func TestProgressJSONRoundTrip(t *testing.T) {
	p := New()
	p.RecordAnswer("be-verb", true)
	p.CurrentStreak = 4
	p.LastPracticeDate = "2025-06-10"
	p.Achievements = append(p.Achievements, "streak-3")

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got UserProgress
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.CurrentStreak != 4 || got.LastPracticeDate != "2025-06-10" {
		t.Errorf("round trip = %+v", got)
	}
	if got.QuestionsPerRule["be-verb"].Correct != 1 {
		t.Errorf("per-rule tally lost in round trip: %+v", got.QuestionsPerRule)
	}
	if !got.HasAchievement("streak-3") {
		t.Error("achievement lost in round trip")
	}
}
