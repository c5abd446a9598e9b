package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pairSchema = &Schema{
	Name: "test-pair",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"count": map[string]any{"type": "integer"},
		},
		"required": []any{"name", "count"},
	},
}

func TestValidate_Passes(t *testing.T) {
	require.NoError(t, Validate(pairSchema, []byte(`{"name":"a","count":2}`)))
}

func TestValidate_SchemaViolation(t *testing.T) {
	err := Validate(pairSchema, []byte(`{"name":"a"}`))
	var inv *ErrInvalidResponse
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, `{"name":"a"}`, inv.Content)
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := Validate(pairSchema, []byte(`{"name":`))
	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestValidate_NilSchemaChecksSyntaxOnly(t *testing.T) {
	assert.NoError(t, Validate(nil, []byte(`{"anything": [1, 2]}`)))
	assert.Error(t, Validate(nil, []byte(`nope`)))
}
