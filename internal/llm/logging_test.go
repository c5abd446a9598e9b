package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/tutor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRepo captures appended events in memory.
type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Text:  `{"ok":true}`,
		Usage: Usage{InputTokens: 12, OutputTokens: 34, TotalTokens: 46},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo, nil)

	ctx := WithPurpose(context.Background(), PurposeQuizGen)
	req := Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "quiz me"}},
	}
	resp, err := p.Generate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, PurposeQuizGen, ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, 34, ev.OutputTokens)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, "mock", ev.Provider)
	assert.Contains(t, ev.RequestBody, "[system]\nbe brief")
	assert.Contains(t, ev.RequestBody, "[user]\nquiz me")
	assert.Equal(t, `{"ok":true}`, ev.ResponseBody)
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo, nil)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Equal(t, "unknown", repo.events[0].Purpose)
	assert.Contains(t, repo.events[0].ErrorMessage, "down")
}

func TestLogging_RepoFailureDoesNotFailCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "hello"})
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(mock, repo, nil)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
}

func TestLogging_WithStore(t *testing.T) {
	s, err := store.Open(t.TempDir() + "/events.db")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	p := WithLogging(NewMockProvider(MockResponse{Text: "hi"}), s.EventRepo(), nil)
	_, err = p.Generate(WithPurpose(context.Background(), PurposeChat), Request{})
	require.NoError(t, err)

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Purpose: PurposeChat})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "hi", events[0].ResponseBody)
}
