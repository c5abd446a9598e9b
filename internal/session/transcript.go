package session

import (
	"context"
	"fmt"

	"github.com/abhisek/tutor/internal/llm"
	"github.com/abhisek/tutor/internal/store"
)

// Transcript is one learner's chat history. It holds only user and
// assistant messages; the system prompt is rebuilt every session.
type Transcript struct {
	learner  string
	messages []llm.Message
	repo     store.TranscriptRepo
}

// LoadTranscript reads the learner's saved transcript, dropping any
// system messages.
func LoadTranscript(ctx context.Context, repo store.TranscriptRepo, learner string) (*Transcript, error) {
	saved, err := repo.Load(ctx, learner)
	if err != nil {
		return nil, err
	}

	t := &Transcript{learner: learner, repo: repo}
	for _, m := range saved {
		role := llm.Role(m.Role)
		if role != llm.RoleUser && role != llm.RoleAssistant {
			continue
		}
		t.messages = append(t.messages, llm.Message{Role: role, Content: m.Content})
	}
	return t, nil
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(role llm.Role, content string) {
	t.messages = append(t.messages, llm.Message{Role: role, Content: content})
}

// DropLast removes the most recent message, if any.
func (t *Transcript) DropLast() {
	if len(t.messages) > 0 {
		t.messages = t.messages[:len(t.messages)-1]
	}
}

// Messages returns a copy of the messages in order.
func (t *Transcript) Messages() []llm.Message {
	out := make([]llm.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Save rewrites the stored transcript with the current messages.
func (t *Transcript) Save(ctx context.Context) error {
	msgs := make([]store.TranscriptMessage, len(t.messages))
	for i, m := range t.messages {
		msgs[i] = store.TranscriptMessage{Role: string(m.Role), Content: m.Content}
	}
	if err := t.repo.Replace(ctx, t.learner, msgs); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}
