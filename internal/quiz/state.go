package quiz

import "github.com/abhisek/tutor/internal/learner"

// Mode is the engine state marker.
type Mode string

const (
	// ModeGenerate generates and administers a new quiz. It is also the
	// meaning of an unset mode.
	ModeGenerate Mode = "generate"

	// ModeEvaluate scores the answers collected for the last quiz.
	ModeEvaluate Mode = "evaluate"
)

// Defaults used when the session has no topic or level yet.
const (
	DefaultTopic = "general"
	DefaultLevel = "Beginner"
)

// SessionState is the mutable record the engine and the reviewer share
// for one learner session.
type SessionState struct {
	// Name is the learner's name as typed; Key is its storage key.
	Name string
	Key  string

	Topic string
	Level string

	Profile learner.Profile

	QuizMode Mode
	LastQuiz *Quiz
	Answers  []string

	LastResult *Result

	// History only grows.
	History []HistoryEntry

	// ReviewNeeded holds every question missed in the last evaluated quiz.
	ReviewNeeded []Question
}

// topicOrDefault returns the topic, falling back to DefaultTopic.
func (s *SessionState) topicOrDefault() string {
	if s.Topic == "" {
		return DefaultTopic
	}
	return s.Topic
}

// levelOrDefault returns the level, falling back to DefaultLevel.
func (s *SessionState) levelOrDefault() string {
	if s.Level == "" {
		return DefaultLevel
	}
	return s.Level
}
