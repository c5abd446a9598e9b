package quiz

import (
	"context"
	"fmt"

	"github.com/abhisek/tutor/internal/llm"
)

// NothingToReview is returned when no questions were missed.
const NothingToReview = "Nothing to review."

// Reviewer explains missed questions in plain language.
type Reviewer struct {
	provider llm.Provider
	config   Config
}

// NewReviewer creates a Reviewer.
func NewReviewer(provider llm.Provider, cfg Config) *Reviewer {
	return &Reviewer{provider: provider, config: cfg}
}

// Review returns the model's explanation of st.ReviewNeeded as free text.
// With nothing missed it returns NothingToReview without calling the model.
func (r *Reviewer) Review(ctx context.Context, st *SessionState) (string, error) {
	if len(st.ReviewNeeded) == 0 {
		return NothingToReview, nil
	}

	prompt, err := buildReviewPrompt(st.ReviewNeeded)
	if err != nil {
		return "", err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeReview)
	resp, err := r.provider.Generate(ctx, llm.UserPrompt(prompt, r.config.ReviewMaxTokens, r.config.Temperature))
	if err != nil {
		return "", fmt.Errorf("review generation failed: %w", err)
	}
	return resp.Text, nil
}
