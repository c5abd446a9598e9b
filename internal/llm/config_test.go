package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestDiscover_PriorityOrder(t *testing.T) {
	clearKeys(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := DefaultConfig()
	require.True(t, cfg.Discover())
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg = DefaultConfig()
	require.True(t, cfg.Discover())
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
}

func TestDiscover_NothingSet(t *testing.T) {
	clearKeys(t)
	cfg := DefaultConfig()
	assert.False(t, cfg.Discover())
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"gemini without key", func(c *Config) {}, "GOOGLE_API_KEY"},
		{"gemini with key", func(c *Config) { c.Gemini.APIKey = "k" }, ""},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, "OPENAI_API_KEY"},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, "ANTHROPIC_API_KEY"},
		{"openrouter without key", func(c *Config) { c.Provider = "openrouter" }, "OPENROUTER_API_KEY"},
		{"mock", func(c *Config) { c.Provider = "mock" }, ""},
		{"unknown", func(c *Config) { c.Provider = "llama" }, "unknown LLM provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"

	_, err := NewProvider(context.Background(), cfg, nil, nil)
	assert.Error(t, err)
}
