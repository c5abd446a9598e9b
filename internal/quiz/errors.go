package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrAnswerCountMismatch means the answers do not line up with the
	// questions. Evaluation never proceeds past it.
	ErrAnswerCountMismatch = errors.New("mismatch in questions and answers")

	// ErrEmptyQuiz means there is no quiz, or it has no questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")
)

// ParseError is returned when the model reply cannot be turned into a
// quiz. Raw holds the reply exactly as received so it can be shown.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse quiz response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidModeError is returned by the engine for any mode other than
// generate or evaluate.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid quiz mode %q: use %q or %q", e.Mode, ModeGenerate, ModeEvaluate)
}

// ValidationError describes a structurally unusable quiz.
type ValidationError struct {
	Question int // 1-based; 0 for quiz-level problems
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Question == 0 {
		return "quiz: " + e.Message
	}
	return fmt.Sprintf("question %d: %s", e.Question, e.Message)
}
