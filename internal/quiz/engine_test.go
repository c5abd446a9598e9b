package quiz

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/tutor/internal/llm"
	"github.com/abhisek/tutor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_InvalidModeLeavesStateUntouched(t *testing.T) {
	mock := llm.NewMockProvider()
	e := NewEngine(NewGenerator(mock, DefaultConfig(), nil), newPrompter(), nil, nil)

	st := &SessionState{
		Name:         "Ada",
		Topic:        "go",
		QuizMode:     "foo",
		Answers:      []string{"x"},
		History:      []HistoryEntry{{Score: 50}},
		ReviewNeeded: []Question{{Question: "q"}},
	}
	before := *st

	done, err := e.Step(context.Background(), st)
	var modeErr *InvalidModeError
	require.ErrorAs(t, err, &modeErr)
	assert.Equal(t, "foo", modeErr.Mode)
	assert.False(t, done)
	assert.Equal(t, before, *st)
	assert.Equal(t, 0, mock.CallCount())
}

func TestRun_GenerateThenEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizJSON(4)})
	p := newPrompter("B", "b", "A", "z", "B")

	var recorded *Result
	rec := recorderFunc(func(_ context.Context, _ *SessionState, res *Result) error {
		recorded = res
		return nil
	})
	e := NewEngine(NewGenerator(mock, DefaultConfig(), nil), p, rec, nil)

	st := &SessionState{Name: "Ada", Key: "ada", Topic: "go", Level: "Beginner"}
	require.NoError(t, e.Run(context.Background(), st))

	assert.Equal(t, ModeGenerate, st.QuizMode, "mode resets after evaluation")
	require.NotNil(t, st.LastResult)
	assert.Equal(t, 3, st.LastResult.Correct)
	assert.InDelta(t, 75.0, st.LastResult.Score, 1e-9)
	assert.Contains(t, p.output(), "Your score: 75.00%")

	require.Len(t, st.History, 1)
	entry := st.History[0]
	assert.Equal(t, st.LastResult.Score, entry.Score)
	assert.Equal(t, "Beginner", entry.Level)
	assert.Len(t, entry.Results, len(st.LastQuiz.Questions))

	require.Len(t, st.ReviewNeeded, 1)
	assert.Equal(t, "Q2?", st.ReviewNeeded[0].Question)
	assert.Same(t, st.LastResult, recorded)
}

func TestRun_HistoryOnlyGrows(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: quizJSON(2)},
		llm.MockResponse{Text: quizJSON(2)},
	)
	p := newPrompter("A", "A", "B", "B")
	e := NewEngine(NewGenerator(mock, DefaultConfig(), nil), p, nil, nil)
	st := &SessionState{}

	require.NoError(t, e.Run(context.Background(), st))
	assert.Len(t, st.ReviewNeeded, 2)
	require.NoError(t, e.Run(context.Background(), st))

	require.Len(t, st.History, 2)
	assert.Equal(t, 0.0, st.History[0].Score)
	assert.Equal(t, 100.0, st.History[1].Score)
	assert.Empty(t, st.ReviewNeeded, "second quiz replaces the review list")
	assert.Equal(t, DefaultLevel, st.History[0].Level)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "on the topic: "+DefaultTopic)
}

func TestRun_ParseErrorAbortsAttempt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "oops"})
	p := newPrompter()
	e := NewEngine(NewGenerator(mock, DefaultConfig(), nil), p, nil, nil)
	st := &SessionState{}

	err := e.Run(context.Background(), st)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "oops", perr.Raw)
	assert.Equal(t, Mode(""), st.QuizMode)
	assert.Nil(t, st.LastQuiz)
	assert.Empty(t, st.History)
	assert.Equal(t, 0, p.asked)
}

func TestRun_EvaluateModeWithMismatchFails(t *testing.T) {
	e := NewEngine(NewGenerator(llm.NewMockProvider(), DefaultConfig(), nil), newPrompter(), nil, nil)
	st := &SessionState{
		QuizMode: ModeEvaluate,
		LastQuiz: sampleQuiz(3),
		Answers:  []string{"r0"},
	}

	err := e.Run(context.Background(), st)
	assert.ErrorIs(t, err, ErrAnswerCountMismatch)
	assert.Empty(t, st.History)
	assert.Equal(t, ModeEvaluate, st.QuizMode)
}

func TestRun_RecorderFailureIsNotFatal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizJSON(1)})
	rec := recorderFunc(func(context.Context, *SessionState, *Result) error {
		return errors.New("disk full")
	})
	e := NewEngine(NewGenerator(mock, DefaultConfig(), nil), newPrompter("B"), rec, nil)
	st := &SessionState{}

	require.NoError(t, e.Run(context.Background(), st))
	assert.Len(t, st.History, 1)
}

func TestStoreRecorder(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "tutor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider(llm.MockResponse{Text: quizJSON(2)})
	e := NewEngine(NewGenerator(mock, DefaultConfig(), nil), newPrompter("B", "A"),
		NewStoreRecorder(s.QuizRepo()), nil)
	st := &SessionState{Name: "Ada", Key: "ada", Topic: "go", Level: "Intermediate"}
	require.NoError(t, e.Run(context.Background(), st))

	attempts, err := s.QuizRepo().ListAttempts(context.Background(), "ada", 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	a := attempts[0]
	assert.Equal(t, "go", a.Topic)
	assert.Equal(t, "Intermediate", a.Level)
	assert.Equal(t, 1, a.Correct)
	assert.Equal(t, 2, a.Total)
	assert.InDelta(t, 50.0, a.Score, 1e-9)
	assert.Contains(t, string(a.Results), `"user_answer":"w1"`)
}
