package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/tutor/internal/learner"
	"github.com/abhisek/tutor/internal/llm"
	"github.com/abhisek/tutor/internal/logger"
)

// Config controls quiz generation and review.
type Config struct {
	// QuestionCount is the number of questions requested per quiz.
	QuestionCount int `yaml:"question_count"`

	// OptionCount is the number of options requested per question.
	OptionCount int `yaml:"option_count"`

	// MaxTokens is the token budget for the quiz reply.
	MaxTokens int `yaml:"max_tokens"`

	// ReviewMaxTokens is the token budget for the review reply.
	ReviewMaxTokens int `yaml:"review_max_tokens"`

	Temperature float64 `yaml:"temperature"`

	// StructuredOutput also passes QuizSchema to providers with a native
	// JSON mode. The reply is extracted and validated either way.
	StructuredOutput bool `yaml:"structured_output"`
}

// DefaultConfig returns the quiz defaults.
func DefaultConfig() Config {
	return Config{
		QuestionCount:   10,
		OptionCount:     4,
		MaxTokens:       4096,
		ReviewMaxTokens: 2048,
		Temperature:     0.1,
	}
}

// Validate reports counts that cannot produce a usable quiz.
func (c Config) Validate() error {
	if c.QuestionCount < 1 {
		return fmt.Errorf("quiz.question_count must be at least 1, got %d", c.QuestionCount)
	}
	if c.OptionCount < 1 || c.OptionCount > maxOptions {
		return fmt.Errorf("quiz.option_count must be between 1 and %d, got %d", maxOptions, c.OptionCount)
	}
	return nil
}

// QuizGenerator produces a quiz for a topic and level.
type QuizGenerator interface {
	Generate(ctx context.Context, topic, level string, prefs learner.Profile) (*Quiz, error)
}

// Generator implements QuizGenerator with one model call per quiz.
type Generator struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

// NewGenerator creates a Generator. log may be nil.
func NewGenerator(provider llm.Provider, cfg Config, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Generator{provider: provider, config: cfg, log: log}
}

// Generate asks the model for a quiz and parses the reply. Unusable
// replies are returned as *ParseError and are not retried.
func (g *Generator) Generate(ctx context.Context, topic, level string, prefs learner.Profile) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	req := llm.UserPrompt(buildQuizPrompt(topic, level, prefs, g.config), g.config.MaxTokens, g.config.Temperature)
	if g.config.StructuredOutput {
		req.Schema = QuizSchema
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	q, err := ParseQuiz(resp.Text)
	if err != nil {
		g.log.Warn("unusable quiz response", "topic", topic, "level", level, "error", err)
		return nil, err
	}

	g.log.Info("quiz generated", "topic", topic, "level", level, "questions", len(q.Questions))
	return q, nil
}

// ParseQuiz recovers a quiz from model text: fence lines and surrounding
// prose are dropped, the first balanced JSON object is validated against
// QuizSchema, decoded and checked for structural problems.
func ParseQuiz(text string) (*Quiz, error) {
	obj, err := llm.ExtractJSONObject(text)
	if err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	if err := llm.Validate(QuizSchema, []byte(obj)); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}

	var q Quiz
	if err := json.Unmarshal([]byte(obj), &q); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	if verr := checkStructure(&q); verr != nil {
		return nil, &ParseError{Raw: text, Err: verr}
	}
	return &q, nil
}
