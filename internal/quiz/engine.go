package quiz

import (
	"context"
	"fmt"

	"github.com/abhisek/tutor/internal/logger"
)

// Engine runs the quiz state machine: generate (and administer), then
// evaluate. Each state has its own handler; Step dispatches on the mode.
type Engine struct {
	generator QuizGenerator
	prompter  Prompter
	recorder  HistoryRecorder
	log       *logger.Logger
}

// NewEngine creates an Engine. recorder and log may be nil.
func NewEngine(gen QuizGenerator, p Prompter, recorder HistoryRecorder, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNop()
	}
	return &Engine{generator: gen, prompter: p, recorder: recorder, log: log}
}

// Step runs the handler for st.QuizMode once. done reports that a quiz
// was evaluated. An unknown mode returns *InvalidModeError and leaves st
// untouched.
func (e *Engine) Step(ctx context.Context, st *SessionState) (done bool, err error) {
	switch st.QuizMode {
	case "", ModeGenerate:
		return false, e.generate(ctx, st)
	case ModeEvaluate:
		return true, e.evaluate(ctx, st)
	default:
		return false, &InvalidModeError{Mode: string(st.QuizMode)}
	}
}

// Run steps the engine until the current quiz is evaluated. A session in
// evaluate mode is scored straight away.
func (e *Engine) Run(ctx context.Context, st *SessionState) error {
	for {
		done, err := e.Step(ctx, st)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// generate produces a quiz, collects the answers and moves to evaluate.
func (e *Engine) generate(ctx context.Context, st *SessionState) error {
	q, err := e.generator.Generate(ctx, st.topicOrDefault(), st.levelOrDefault(), st.Profile)
	if err != nil {
		return err
	}
	st.LastQuiz = q
	st.Answers = nil

	answers, err := Administer(ctx, e.prompter, q)
	if err != nil {
		return err
	}
	st.Answers = answers
	st.QuizMode = ModeEvaluate
	return nil
}

// evaluate scores the last quiz, records it and resets to generate.
func (e *Engine) evaluate(ctx context.Context, st *SessionState) error {
	level := st.levelOrDefault()
	res, missed, err := Evaluate(st.LastQuiz, st.Answers, level)
	if err != nil {
		return fmt.Errorf("evaluate quiz: %w", err)
	}

	e.prompter.Show("")
	e.prompter.Show(FormatScore(res.Score))

	st.LastResult = res
	st.History = append(st.History, res.HistoryEntry())
	st.ReviewNeeded = missed
	st.QuizMode = ModeGenerate

	if e.recorder != nil {
		if err := e.recorder.Record(ctx, st, res); err != nil {
			e.log.Warn("failed to record quiz attempt", "learner", st.Key, "error", err)
		}
	}
	e.log.Info("quiz evaluated", "learner", st.Key, "topic", st.topicOrDefault(),
		"level", level, "correct", res.Correct, "total", res.Total)
	return nil
}
