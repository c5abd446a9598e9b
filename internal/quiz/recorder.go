package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/tutor/internal/store"
)

// HistoryRecorder persists completed quizzes beyond the session.
type HistoryRecorder interface {
	Record(ctx context.Context, st *SessionState, res *Result) error
}

// StoreRecorder appends attempts to the quiz history table.
type StoreRecorder struct {
	repo store.QuizRepo
}

// NewStoreRecorder creates a StoreRecorder.
func NewStoreRecorder(repo store.QuizRepo) *StoreRecorder {
	return &StoreRecorder{repo: repo}
}

func (r *StoreRecorder) Record(ctx context.Context, st *SessionState, res *Result) error {
	results, err := json.Marshal(res.Records)
	if err != nil {
		return fmt.Errorf("encode quiz results: %w", err)
	}
	_, err = r.repo.AppendAttempt(ctx, store.QuizAttemptData{
		Learner: st.Key,
		Topic:   st.topicOrDefault(),
		Level:   res.Level,
		Score:   res.Score,
		Correct: res.Correct,
		Total:   res.Total,
		Results: results,
	})
	return err
}
