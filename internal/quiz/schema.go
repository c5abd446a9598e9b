package quiz

import "github.com/abhisek/tutor/internal/llm"

// QuizSchema is the JSON shape every generated quiz must have. Counts and
// answer membership are checked separately by checkStructure.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A multiple-choice quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer options, shown as A, B, C, ...",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct option, copied verbatim from options",
						},
					},
					"required": []any{"question", "options", "correct_answer"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
