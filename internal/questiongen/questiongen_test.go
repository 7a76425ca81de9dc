package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/llm"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{"questions": [
		{"id": "q49", "ruleId": "simple-present", "type": "multiple-choice",
		 "question": "She ___ to the gym every morning.",
		 "options": ["go", "goes", "going", "gone"],
		 "correctAnswer": "goes",
		 "explanation": "Third person singular takes -es in the present simple."},
		{"id": "q50", "ruleId": "articles", "type": "fill-blank",
		 "question": "I saw ___ elephant at the zoo.",
		 "correctAnswer": "an",
		 "explanation": "Use 'an' before a vowel sound."}
	]}`)
}

func TestGenerate_ParsesBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	g := New(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), GenerateInput{Count: 2})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	if questions[0].ID != "q49" {
		t.Errorf("questions[0].ID = %q, want %q", questions[0].ID, "q49")
	}
	if questions[1].Type != string(bank.TypeFillBlank) {
		t.Errorf("questions[1].Type = %q, want %q", questions[1].Type, bank.TypeFillBlank)
	}
}

func TestGenerate_PromptIncludesRulesAndStartID(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{Count: 10}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, r := range bank.Rules() {
		if !strings.Contains(msg, r.ID+": "+r.Title) {
			t.Errorf("prompt missing rule line for %q", r.ID)
		}
	}
	if !strings.Contains(msg, `"`+bank.NextQuestionID()+`"`) {
		t.Errorf("prompt missing start ID %q", bank.NextQuestionID())
	}
	if !strings.Contains(msg, "Generate 10 English grammar practice questions") {
		t.Errorf("prompt missing count, got:\n%s", msg)
	}
	if mock.Calls[0].Schema != QuestionSetSchema {
		t.Error("request did not carry QuestionSetSchema")
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Generate 20 English grammar practice questions") {
		t.Errorf("prompt did not use default count, got:\n%s", msg)
	}
}

func TestGenerate_EmptyBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{}); err == nil {
		t.Fatal("Generate() error = nil, want error for empty batch")
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{}); err == nil {
		t.Fatal("Generate() error = nil, want parse error")
	}
}

func TestReview_CleanBatch(t *testing.T) {
	questions := []GeneratedQuestion{
		{
			ID: "q49", RuleID: "simple-present", Type: "multiple-choice",
			Prompt:  "She ___ to the gym every morning.",
			Options: []string{"go", "goes", "going", "gone"},
			Answer:  "goes", Explanation: "Third person singular takes -es.",
		},
		{
			ID: "q50", RuleID: "articles", Type: "fill-blank",
			Prompt: "I saw ___ elephant.",
			Answer: "an", Explanation: "Use 'an' before a vowel sound.",
		},
	}
	if findings := Review(questions); len(findings) != 0 {
		t.Errorf("Review() = %v, want no findings", findings)
	}
}

func TestReview_Findings(t *testing.T) {
	tests := []struct {
		name     string
		question GeneratedQuestion
		want     string
	}{
		{
			name: "id collides with bank",
			question: GeneratedQuestion{
				ID: "q1", RuleID: "simple-present", Type: "fill-blank",
				Prompt: "p", Answer: "a", Explanation: "e",
			},
			want: "already exists",
		},
		{
			name: "unknown rule",
			question: GeneratedQuestion{
				ID: "q49", RuleID: "no-such-rule", Type: "fill-blank",
				Prompt: "p", Answer: "a", Explanation: "e",
			},
			want: "unknown rule",
		},
		{
			name: "unknown type",
			question: GeneratedQuestion{
				ID: "q49", RuleID: "simple-present", Type: "essay",
				Prompt: "p", Answer: "a", Explanation: "e",
			},
			want: "unknown question type",
		},
		{
			name: "answer not in options",
			question: GeneratedQuestion{
				ID: "q49", RuleID: "simple-present", Type: "multiple-choice",
				Prompt: "p", Options: []string{"a", "b", "c", "d"},
				Answer: "z", Explanation: "e",
			},
			want: "answer not found among options",
		},
		{
			name: "wrong option count",
			question: GeneratedQuestion{
				ID: "q49", RuleID: "simple-present", Type: "multiple-choice",
				Prompt: "p", Options: []string{"a", "z"},
				Answer: "z", Explanation: "e",
			},
			want: "expected 4 options",
		},
		{
			name: "options on fill-blank",
			question: GeneratedQuestion{
				ID: "q49", RuleID: "simple-present", Type: "fill-blank",
				Prompt: "p", Options: []string{"a"},
				Answer: "a", Explanation: "e",
			},
			want: "non-multiple-choice",
		},
		{
			name: "empty explanation",
			question: GeneratedQuestion{
				ID: "q49", RuleID: "simple-present", Type: "fill-blank",
				Prompt: "p", Answer: "a",
			},
			want: "empty explanation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Review([]GeneratedQuestion{tt.question})
			if len(findings) == 0 {
				t.Fatal("Review() returned no findings")
			}
			found := false
			for _, f := range findings {
				if strings.Contains(f.Message, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("Review() = %v, want a finding containing %q", findings, tt.want)
			}
		})
	}
}

func TestReview_DuplicateIDs(t *testing.T) {
	q := GeneratedQuestion{
		ID: "q49", RuleID: "simple-present", Type: "fill-blank",
		Prompt: "p", Answer: "a", Explanation: "e",
	}
	findings := Review([]GeneratedQuestion{q, q})
	found := false
	for _, f := range findings {
		if strings.Contains(f.Message, "duplicate id") {
			found = true
		}
	}
	if !found {
		t.Errorf("Review() = %v, want duplicate id finding", findings)
	}
}
