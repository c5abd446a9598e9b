package learner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/abhisek/tutor/internal/llm"
	"github.com/abhisek/tutor/internal/logger"
	"github.com/abhisek/tutor/internal/store"
)

// ErrInsufficientQuestions is returned when the model produced too few
// elicitation questions to build a profile from.
var ErrInsufficientQuestions = errors.New("not enough profile questions received")

// AnswerPrompt is shown before each interview answer.
const AnswerPrompt = "➤ "

// numbering matches a leading "1." or "1)" list marker.
var numbering = regexp.MustCompile(`^\s*\d+[.)]\s*`)

// Prompter is the console surface the interview needs.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Show(text string)
}

// Answer pairs an elicitation question with the learner's reply.
type Answer struct {
	Question string
	Answer   string
}

// Config controls the intake interview.
type Config struct {
	// QuestionCount is how many questions the model is asked for.
	QuestionCount int `yaml:"question_count"`

	// MinQuestions is the fewest usable questions accepted.
	MinQuestions int `yaml:"min_questions"`

	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// Validate reports question counts the intake cannot work with.
func (c Config) Validate() error {
	if c.MinQuestions < 1 {
		return fmt.Errorf("intake.min_questions must be at least 1, got %d", c.MinQuestions)
	}
	if c.QuestionCount < c.MinQuestions {
		return fmt.Errorf("intake.question_count (%d) is below intake.min_questions (%d)", c.QuestionCount, c.MinQuestions)
	}
	return nil
}

// DefaultConfig returns the intake defaults.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 15,
		MinQuestions:  10,
		MaxTokens:     2048,
		Temperature:   0.1,
	}
}

// Intake loads existing profiles and interviews first-time learners.
type Intake struct {
	provider llm.Provider
	profiles store.ProfileRepo
	config   Config
	log      *logger.Logger
}

// NewIntake creates an Intake. log may be nil.
func NewIntake(provider llm.Provider, profiles store.ProfileRepo, cfg Config, log *logger.Logger) *Intake {
	if log == nil {
		log = logger.NewNop()
	}
	return &Intake{provider: provider, profiles: profiles, config: cfg, log: log}
}

// Load returns the stored profile for name, or nil for a first-time learner.
func (in *Intake) Load(ctx context.Context, name string) (Profile, error) {
	key, err := Key(name)
	if err != nil {
		return nil, err
	}
	rec, err := in.profiles.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	prof := Profile{}
	if err := json.Unmarshal(rec.Data, &prof); err != nil {
		return nil, fmt.Errorf("decode profile for %q: %w", key, err)
	}
	return prof, nil
}

// Elicit asks the model for preference questions, one per line.
func (in *Intake) Elicit(ctx context.Context) ([]string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeProfileQuestions)

	req := llm.UserPrompt(buildElicitPrompt(in.config.QuestionCount), in.config.MaxTokens, in.config.Temperature)
	resp, err := in.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate profile questions: %w", err)
	}

	questions := ParseQuestions(resp.Text)
	if len(questions) < in.config.MinQuestions {
		in.log.Warn("too few profile questions", "got", len(questions), "want", in.config.MinQuestions)
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientQuestions, len(questions), in.config.MinQuestions)
	}
	return questions, nil
}

// ParseQuestions splits model text into questions, dropping blank lines
// and leading list numbering.
func ParseQuestions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = numbering.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Interview asks each question in turn and collects the replies.
func (in *Intake) Interview(ctx context.Context, p Prompter, questions []string) ([]Answer, error) {
	answers := make([]Answer, 0, len(questions))
	for i, q := range questions {
		p.Show(fmt.Sprintf("Q%d. %s", i+1, q))
		reply, err := p.Ask(ctx, AnswerPrompt)
		if err != nil {
			return nil, fmt.Errorf("read answer %d: %w", i+1, err)
		}
		answers = append(answers, Answer{Question: q, Answer: reply})
	}
	return answers, nil
}

// Analyze derives a profile from the interview. A reply with no parseable
// JSON object is returned as *llm.ErrInvalidResponse.
func (in *Intake) Analyze(ctx context.Context, answers []Answer) (Profile, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeProfileAnalysis)

	req := llm.UserPrompt(buildAnalysisPrompt(answers), in.config.MaxTokens, in.config.Temperature)
	resp, err := in.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("analyze profile answers: %w", err)
	}

	obj, err := llm.ExtractJSONObject(resp.Text)
	if err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Text, Err: err}
	}
	prof := Profile{}
	if err := json.Unmarshal([]byte(obj), &prof); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Text, Err: err}
	}
	return prof, nil
}

// Create runs the whole intake for a first-time learner and persists the
// resulting profile.
func (in *Intake) Create(ctx context.Context, p Prompter, name string) (Profile, error) {
	key, err := Key(name)
	if err != nil {
		return nil, err
	}

	questions, err := in.Elicit(ctx)
	if err != nil {
		return nil, err
	}
	answers, err := in.Interview(ctx, p, questions)
	if err != nil {
		return nil, err
	}
	prof, err := in.Analyze(ctx, answers)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(prof)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	err = in.profiles.Create(ctx, store.ProfileRecord{
		Name:        key,
		DisplayName: strings.TrimSpace(name),
		Data:        data,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	in.log.Info("profile created", "learner", key, "dimensions", len(prof))
	return prof, nil
}
