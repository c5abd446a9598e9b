package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Purpose string // exact purpose match when non-empty
}

// ProfileRecord is a persisted learner profile. Data is the profile
// mapping encoded as a JSON object.
type ProfileRecord struct {
	Name        string
	DisplayName string
	Data        json.RawMessage
	CreatedAt   time.Time
}

// ProfileRepo stores one profile per sanitised learner name.
type ProfileRepo interface {
	// Get returns the profile for name, or nil if none exists.
	Get(ctx context.Context, name string) (*ProfileRecord, error)

	// Create inserts a new profile. It fails if one already exists:
	// profiles are replaced only by deleting and regenerating.
	Create(ctx context.Context, rec ProfileRecord) error

	// Delete removes the profile for name. Missing profiles are not an error.
	Delete(ctx context.Context, name string) error

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]ProfileRecord, error)
}

// TranscriptMessage is one persisted chat message.
type TranscriptMessage struct {
	Role    string
	Content string
}

// TranscriptRepo stores one ordered chat transcript per learner.
type TranscriptRepo interface {
	// Load returns the learner's messages in order; empty if none.
	Load(ctx context.Context, learner string) ([]TranscriptMessage, error)

	// Replace atomically rewrites the learner's whole transcript.
	Replace(ctx context.Context, learner string, msgs []TranscriptMessage) error

	// Delete removes the learner's transcript.
	Delete(ctx context.Context, learner string) error
}

// QuizAttemptData captures one completed quiz for the history log.
type QuizAttemptData struct {
	Learner string
	Topic   string
	Level   string
	Score   float64
	Correct int
	Total   int
	// Results is the JSON-encoded ordered answer records.
	Results json.RawMessage
}

// QuizAttempt is a persisted quiz attempt.
type QuizAttempt struct {
	ID        string
	Sequence  int64
	CreatedAt time.Time
	QuizAttemptData
}

// QuizRepo is the append-only quiz history log.
type QuizRepo interface {
	// AppendAttempt records a completed quiz and returns its id.
	AppendAttempt(ctx context.Context, data QuizAttemptData) (string, error)

	// ListAttempts returns the learner's most recent attempts, newest first.
	// limit <= 0 returns all of them.
	ListAttempts(ctx context.Context, learner string, limit int) ([]QuizAttempt, error)

	// DeleteAttempts removes the learner's whole history (used by reset).
	DeleteAttempts(ctx context.Context, learner string) error
}

// LLMRequestEventData captures the data for a single gateway call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored gateway call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates calls and tokens for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to gateway call events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
	// GetLLMEvent returns the event with id, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
