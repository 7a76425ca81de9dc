package bank

import "testing"

func TestBankCounts(t *testing.T) {
	if got := len(Rules()); got != 13 {
		t.Errorf("len(Rules()) = %d, want 13", got)
	}
	if got := len(Questions()); got != 48 {
		t.Errorf("len(Questions()) = %d, want 48", got)
	}
}

func TestRuleByID(t *testing.T) {
	r, err := RuleByID("be-verb")
	if err != nil {
		t.Fatalf("RuleByID(be-verb): %v", err)
	}
	if r.Category != CategoryBasics {
		t.Errorf("category = %q, want %q", r.Category, CategoryBasics)
	}

	if _, err := RuleByID("nonexistent"); err == nil {
		t.Error("expected error for unknown rule ID")
	}
}

func TestQuestionByID(t *testing.T) {
	q, err := QuestionByID("q1")
	if err != nil {
		t.Fatalf("QuestionByID(q1): %v", err)
	}
	if q.RuleID != "sentence-structure" {
		t.Errorf("rule ID = %q, want sentence-structure", q.RuleID)
	}
	if q.Answer != "I eat breakfast." {
		t.Errorf("answer = %q, want %q", q.Answer, "I eat breakfast.")
	}

	if _, err := QuestionByID("q999"); err == nil {
		t.Error("expected error for unknown question ID")
	}
}

func TestQuestionsForRule(t *testing.T) {
	qs := QuestionsForRule("prepositions")
	if len(qs) != 5 {
		t.Fatalf("len = %d, want 5", len(qs))
	}
	// Bank order is preserved.
	want := []string{"q21", "q22", "q23", "q24", "q44"}
	for i, q := range qs {
		if q.ID != want[i] {
			t.Errorf("qs[%d].ID = %q, want %q", i, q.ID, want[i])
		}
	}
}

func TestQuestionsForCategory(t *testing.T) {
	qs := QuestionsForCategory(CategoryTenses)
	if len(qs) != 13 {
		t.Fatalf("len = %d, want 13", len(qs))
	}
	for _, q := range qs {
		r, err := RuleByID(q.RuleID)
		if err != nil {
			t.Fatalf("RuleByID(%q): %v", q.RuleID, err)
		}
		if r.Category != CategoryTenses {
			t.Errorf("question %q belongs to category %q, want Tenses", q.ID, r.Category)
		}
	}

	if qs := QuestionsForCategory("Unknown"); len(qs) != 0 {
		t.Errorf("unknown category returned %d questions, want 0", len(qs))
	}
}

func TestEveryRuleHasQuestions(t *testing.T) {
	for _, r := range Rules() {
		if len(QuestionsForRule(r.ID)) == 0 {
			t.Errorf("rule %q has no questions", r.ID)
		}
	}
}

func TestNextQuestionID(t *testing.T) {
	if got := NextQuestionID(); got != "q49" {
		t.Errorf("NextQuestionID() = %q, want q49", got)
	}
}

func TestSeedBankIsValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
