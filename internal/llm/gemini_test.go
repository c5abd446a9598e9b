package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, resolveModel(tt.input, geminiModels), tt.input)
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})

	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, "hello", contents[1].Parts[0].Text)
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":       map[string]any{"type": "string"},
						"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"correct_answer": map[string]any{"type": "string"},
						"level":          map[string]any{"type": "string", "enum": []any{"Beginner", "Advanced"}},
					},
					"required": []any{"question", "options", "correct_answer"},
				},
			},
		},
		"required": []any{"questions"},
	}

	schema := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"questions"}, schema.Required)

	questions := schema.Properties["questions"]
	require.NotNil(t, questions)
	assert.Equal(t, genai.TypeArray, questions.Type)

	item := questions.Items
	require.NotNil(t, item)
	assert.Len(t, item.Properties, 4)
	assert.Equal(t, genai.TypeArray, item.Properties["options"].Type)
	assert.Equal(t, genai.TypeString, item.Properties["options"].Items.Type)
	assert.Equal(t, []string{"Beginner", "Advanced"}, item.Properties["level"].Enum)
	assert.Len(t, item.Required, 3)
}
