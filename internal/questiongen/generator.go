package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/gramly/internal/bank"
	"github.com/abhisek/gramly/internal/llm"
)

// Generator produces draft question batches using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before review.
type batchOutput struct {
	Questions []GeneratedQuestion `json:"questions"`
}

// Generate produces a batch of draft questions for the given input. The
// result is intended for human curation; call Review to surface issues.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) ([]GeneratedQuestion, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	if len(input.Rules) == 0 {
		input.Rules = bank.Rules()
	}
	if input.StartID == "" {
		input.StartID = bank.NextQuestionID()
	}
	count := input.Count
	if count <= 0 {
		count = g.config.DefaultCount
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(input, count)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions")
	}

	return raw.Questions, nil
}
