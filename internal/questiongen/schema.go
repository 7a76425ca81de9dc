package questiongen

import "github.com/abhisek/gramly/internal/llm"

// QuestionSetSchema defines the JSON schema for LLM question batch responses.
var QuestionSetSchema = &llm.Schema{
	Name:        "grammar-questions",
	Description: "A batch of English grammar practice questions with answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Sequential question ID, e.g. q49",
						},
						"ruleId": map[string]any{
							"type":        "string",
							"description": "ID of the grammar rule this question tests",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple-choice", "fill-blank", "error-correction", "sentence-construction"},
							"description": "The question format",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple-choice. Empty array for other types.",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For multiple-choice: the text of the correct option.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A concise explanation of the rule being tested",
						},
					},
					"required":             []any{"id", "ruleId", "type", "question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
