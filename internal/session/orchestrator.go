// Package session drives one interactive tutoring session: identify the
// learner, profile and quiz newcomers, then hold the chat loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/tutor/internal/learner"
	"github.com/abhisek/tutor/internal/llm"
	"github.com/abhisek/tutor/internal/logger"
	"github.com/abhisek/tutor/internal/quiz"
	"github.com/abhisek/tutor/internal/store"
)

// HelpText lists the chat commands.
const HelpText = "Commands: !quiz, !review, !help, q"

// CommandPrefix marks a chat line as a command.
const CommandPrefix = "!"

// UI is the console surface the session talks through.
type UI interface {
	quiz.Prompter
	Title(text string)
	Info(text string)
	Success(text string)
	Error(text string)
	Assistant(text string)
}

// Config controls the chat loop.
type Config struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// DefaultConfig returns the chat defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 2048, Temperature: 0.1}
}

// Options carries values given on the command line. Empty fields are asked
// for interactively where the flow needs them.
type Options struct {
	Name  string
	Topic string
	Level string
}

// Deps are the collaborators an Orchestrator drives.
type Deps struct {
	Provider    llm.Provider
	Intake      *learner.Intake
	Engine      *quiz.Engine
	Reviewer    *quiz.Reviewer
	Transcripts store.TranscriptRepo
	UI          UI
}

// Orchestrator sequences intake, the first quiz and the chat loop.
type Orchestrator struct {
	deps   Deps
	config Config
	log    *logger.Logger
}

// New creates an Orchestrator. log may be nil.
func New(deps Deps, cfg Config, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Orchestrator{deps: deps, config: cfg, log: log}
}

// Run executes a whole session. It returns nil when the learner quits or
// input ends; the transcript is saved on every exit from the chat loop.
func (o *Orchestrator) Run(ctx context.Context, opts Options) error {
	st, err := o.Start(ctx, opts)
	if err != nil {
		return err
	}

	transcript, err := LoadTranscript(ctx, o.deps.Transcripts, st.Key)
	if err != nil {
		return err
	}
	if transcript.Len() > 0 {
		o.deps.UI.Info(fmt.Sprintf("Chat history loaded (%d messages).", transcript.Len()))
	}

	loopErr := o.Chat(ctx, st, transcript)

	// Save even when the session context is already cancelled.
	if err := transcript.Save(context.WithoutCancel(ctx)); err != nil {
		o.deps.UI.Error(err.Error())
		return errors.Join(loopErr, err)
	}
	o.deps.UI.Success(fmt.Sprintf("Chat saved (%d messages).", transcript.Len()))
	o.log.Info("session ended", "learner", st.Key, "messages", transcript.Len(), "quizzes", len(st.History))
	return loopErr
}

// Start identifies the learner and loads or creates their profile. A
// first-time learner then picks a topic and level and takes a quiz and
// its review.
func (o *Orchestrator) Start(ctx context.Context, opts Options) (*quiz.SessionState, error) {
	ui := o.deps.UI

	name, key, err := o.learnerName(ctx, opts.Name)
	if err != nil {
		return nil, err
	}
	st := &quiz.SessionState{Name: name, Key: key, Topic: opts.Topic, Level: opts.Level}

	prof, err := o.deps.Intake.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if prof != nil {
		st.Profile = prof
		ui.Success(fmt.Sprintf("Loaded existing learning profile for %s.", name))
		return st, nil
	}

	ui.Info("Let's build your learning profile. Answer each question in your own words.")
	prof, err = o.deps.Intake.Create(ctx, ui, name)
	if err != nil {
		return nil, fmt.Errorf("create learning profile: %w", err)
	}
	st.Profile = prof
	ui.Success(fmt.Sprintf("Saved learning profile for %s.", name))

	if st.Topic == "" {
		if st.Topic, err = o.askNonEmpty(ctx, "What topic would you like to learn? "); err != nil {
			return nil, err
		}
	}
	if st.Level == "" {
		if st.Level, err = o.askNonEmpty(ctx, "Your level (Beginner, Intermediate, Advanced): "); err != nil {
			return nil, err
		}
	}

	ui.Info("Launching quiz...")
	if err := o.RunQuiz(ctx, st); err != nil {
		return nil, err
	}
	ui.Info("Reviewing quiz mistakes...")
	o.RunReview(ctx, st)
	ui.Success("Quiz and review complete.")
	return st, nil
}

// learnerName returns the flag value or asks until a usable name is given.
func (o *Orchestrator) learnerName(ctx context.Context, flagName string) (string, string, error) {
	if flagName != "" {
		key, err := learner.Key(flagName)
		if err != nil {
			return "", "", err
		}
		return strings.TrimSpace(flagName), key, nil
	}
	for {
		name, err := o.deps.UI.Ask(ctx, "Enter your Name: ")
		if err != nil {
			return "", "", err
		}
		key, err := learner.Key(name)
		if errors.Is(err, learner.ErrEmptyName) {
			o.deps.UI.Error("Please enter a name with at least one letter or digit.")
			continue
		}
		return strings.TrimSpace(name), key, err
	}
}

func (o *Orchestrator) askNonEmpty(ctx context.Context, prompt string) (string, error) {
	for {
		v, err := o.deps.UI.Ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, nil
		}
	}
}

// Chat runs the command and chat loop until the learner quits or input
// ends, including input ending inside a quiz. It does not save the
// transcript.
func (o *Orchestrator) Chat(ctx context.Context, st *quiz.SessionState, t *Transcript) error {
	ui := o.deps.UI
	system := BuildSystemPrompt(st)

	ui.Title("Welcome to the Interactive Session.")
	ui.Info("You can now chat with your AI tutor or use commands (!quiz, !review, q to quit).")

	for {
		line, err := ui.Ask(ctx, "User: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue
		case isQuit(input):
			ui.Info("Goodbye!")
			return nil
		case strings.HasPrefix(input, CommandPrefix):
			err := o.command(ctx, st, strings.TrimPrefix(input, CommandPrefix))
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
		default:
			o.chatTurn(ctx, system, t, input)
		}
	}
}

func isQuit(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit", "q":
		return true
	}
	return false
}

// command runs one "!" command. Only fatal errors are returned.
func (o *Orchestrator) command(ctx context.Context, st *quiz.SessionState, name string) error {
	ui := o.deps.UI
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quiz":
		ui.Info("Launching quiz...")
		return o.RunQuiz(ctx, st)
	case "review":
		ui.Info("Launching review...")
		o.RunReview(ctx, st)
	case "help":
		ui.Show(HelpText)
	default:
		ui.Error("Unknown command.")
	}
	return nil
}

// chatTurn sends one learner message with the whole transcript. A failed
// turn is reported and its user message removed.
func (o *Orchestrator) chatTurn(ctx context.Context, system string, t *Transcript, input string) {
	t.Append(llm.RoleUser, input)

	req := llm.Request{
		System:      system,
		Messages:    t.Messages(),
		MaxTokens:   o.config.MaxTokens,
		Temperature: o.config.Temperature,
	}
	resp, err := o.deps.Provider.Generate(llm.WithPurpose(ctx, llm.PurposeChat), req)
	if err != nil {
		t.DropLast()
		o.log.Warn("chat turn failed", "error", err)
		o.deps.UI.Error(fmt.Sprintf("The tutor could not answer: %v", err))
		return
	}

	o.deps.UI.Assistant(resp.Text)
	t.Append(llm.RoleAssistant, resp.Text)
}

// RunQuiz runs one quiz. Generation and gateway failures are reported and
// swallowed; precondition violations and input errors are returned.
func (o *Orchestrator) RunQuiz(ctx context.Context, st *quiz.SessionState) error {
	err := o.deps.Engine.Run(ctx, st)
	if err == nil {
		return nil
	}
	if isFatal(ctx, err) {
		return err
	}

	ui := o.deps.UI
	var perr *quiz.ParseError
	if errors.As(err, &perr) {
		ui.Error("Failed to parse the quiz response as JSON.")
		ui.Show("Response was:")
		ui.Show(perr.Raw)
	} else {
		ui.Error(err.Error())
	}
	o.log.Warn("quiz attempt aborted", "learner", st.Key, "error", err)
	return nil
}

// isFatal reports errors that end the session rather than the attempt.
func isFatal(ctx context.Context, err error) bool {
	var modeErr *quiz.InvalidModeError
	switch {
	case ctx.Err() != nil,
		errors.Is(err, io.EOF),
		errors.Is(err, quiz.ErrAnswerCountMismatch),
		errors.Is(err, quiz.ErrEmptyQuiz),
		errors.As(err, &modeErr):
		return true
	}
	return false
}

// RunReview explains the misses of the last quiz. Errors are reported.
func (o *Orchestrator) RunReview(ctx context.Context, st *quiz.SessionState) {
	ui := o.deps.UI
	text, err := o.deps.Reviewer.Review(ctx, st)
	if err != nil {
		ui.Error(fmt.Sprintf("Review failed: %v", err))
		return
	}
	if text == quiz.NothingToReview {
		ui.Info(text)
		return
	}
	ui.Title("Review:")
	ui.Show(text)
}
