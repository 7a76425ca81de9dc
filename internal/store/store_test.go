package store

import (
	"context"
	"testing"

	"github.com/abhisek/gramly/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"user_progress", "llm_request_events", "answer_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestProgressLoadDefault(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil default progress")
	}
	if p.TotalQuestions != 0 || p.CurrentStreak != 0 {
		t.Errorf("default progress = %+v, want zero values", p)
	}
	if p.QuestionsPerRule == nil {
		t.Error("default progress has nil per-rule map")
	}
}

func TestProgressLoadCorruptRecord(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	_, err := s.DB().Exec(
		`INSERT INTO user_progress (id, data, updated_at) VALUES (1, 'not json', CURRENT_TIMESTAMP)`,
	)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (corrupt): %v", err)
	}
	if p.TotalQuestions != 0 || p.CurrentStreak != 0 || p.LastPracticeDate != "" {
		t.Errorf("corrupt record loaded as %+v, want zero values", p)
	}
	if p.QuestionsPerRule == nil {
		t.Error("fallback progress has nil per-rule map")
	}

	// The next save must replace the corrupt row.
	p.RecordAnswer("be-verb", true)
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save over corrupt row: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.TotalQuestions != 1 {
		t.Errorf("TotalQuestions = %d after overwrite, want 1", got.TotalQuestions)
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p := progress.New()
	p.RecordAnswer("be-verb", true)
	p.RecordAnswer("be-verb", false)
	p.CurrentStreak = 3
	p.LastPracticeDate = "2025-06-10"

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TotalQuestions != 2 || got.CorrectAnswers != 1 {
		t.Errorf("counters = %d/%d, want 2/1", got.TotalQuestions, got.CorrectAnswers)
	}
	if got.QuestionsPerRule["be-verb"].Total != 2 {
		t.Errorf("per-rule tally = %+v", got.QuestionsPerRule["be-verb"])
	}
	if got.CurrentStreak != 3 || got.LastPracticeDate != "2025-06-10" {
		t.Errorf("streak state = %d %q", got.CurrentStreak, got.LastPracticeDate)
	}
}

func TestProgressSaveReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first := progress.New()
	first.CurrentStreak = 1
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := progress.New()
	second.CurrentStreak = 2
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CurrentStreak != 2 {
		t.Errorf("streak = %d, want 2 (latest save wins)", got.CurrentStreak)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM user_progress").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("progress rows = %d, want 1", count)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "question-gen",
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    int64(50 + i),
			Success:      true,
			RequestBody:  "req",
			ResponseBody: "resp",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not newest-first: %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", events[0].InputTokens)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen",
		Success: false, ErrorMessage: "boom",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.ErrorMessage != "boom" {
		t.Errorf("event = %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing event = %+v, want nil", missing)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	record := func(purpose, model string, in, out int) {
		t.Helper()
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: model, Purpose: purpose,
			InputTokens: in, OutputTokens: out, LatencyMs: 100, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	record("question-gen", "model-a", 10, 20)
	record("question-gen", "model-a", 30, 40)
	record("review", "model-b", 5, 5)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Ordered by purpose name: question-gen before review.
	if byPurpose[0].Purpose != "question-gen" || byPurpose[0].Calls != 2 ||
		byPurpose[0].InputTokens != 40 || byPurpose[0].OutputTokens != 60 {
		t.Errorf("question-gen usage = %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	if byModel[0].Model != "model-a" || byModel[0].InputTokens != 40 {
		t.Errorf("model-a usage = %+v", byModel[0])
	}
}

func TestAppendAndQueryAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionID: "q1", RuleID: "sentence-structure", Type: "multiple-choice", Submitted: "I eat breakfast.", Correct: true},
		{SessionID: "s1", QuestionID: "q2", RuleID: "be-verb", Type: "fill-blank", Submitted: "is", Correct: false},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryAnswers(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].QuestionID != "q2" || events[1].QuestionID != "q1" {
		t.Errorf("order = %q, %q, want q2 then q1", events[0].QuestionID, events[1].QuestionID)
	}
	if events[1].Submitted != "I eat breakfast." || !events[1].Correct {
		t.Errorf("q1 event = %+v", events[1])
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{SessionID: "s", QuestionID: "q1", RuleID: "r", Type: "fill-blank", Submitted: "x"}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	answerEvents, err := repo.QueryAnswers(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	if answerEvents[0].Sequence <= llmEvents[0].Sequence {
		t.Errorf("answer sequence %d not after llm sequence %d",
			answerEvents[0].Sequence, llmEvents[0].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
