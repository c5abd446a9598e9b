package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/tutor/internal/config"
	"github.com/abhisek/tutor/internal/console"
	"github.com/abhisek/tutor/internal/learner"
	"github.com/abhisek/tutor/internal/llm"
	"github.com/abhisek/tutor/internal/logger"
	"github.com/abhisek/tutor/internal/quiz"
	"github.com/abhisek/tutor/internal/session"
	"github.com/abhisek/tutor/internal/store"
	"github.com/spf13/cobra"
)

// env is what every command runs against: resolved config, the log file
// and the open store.
type env struct {
	cfg   config.Config
	log   *logger.Logger
	store *store.Store
}

// loadConfig reads the layered config and applies the --db flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if err := cfg.ResolvePaths(); err != nil {
		return cfg, fmt.Errorf("resolve paths: %w", err)
	}
	return cfg, nil
}

// openEnv loads config, starts the logger and opens the store.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Path)
	if err != nil {
		return nil, err
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &env{cfg: cfg, log: log, store: s}, nil
}

func (e *env) Close() {
	e.store.Close()
	e.log.Sync()
}

// provider builds the configured model gateway with event logging.
func (e *env) provider(ctx context.Context) (llm.Provider, error) {
	p, err := llm.NewProvider(ctx, e.cfg.LLM, e.store.EventRepo(), e.log)
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	return p, nil
}

// orchestrator wires a session around ui.
func (e *env) orchestrator(provider llm.Provider, ui *console.Console) *session.Orchestrator {
	gen := quiz.NewGenerator(provider, e.cfg.Quiz, e.log)
	recorder := quiz.NewStoreRecorder(e.store.QuizRepo())

	return session.New(session.Deps{
		Provider:    provider,
		Intake:      learner.NewIntake(provider, e.store.ProfileRepo(), e.cfg.Intake, e.log),
		Engine:      quiz.NewEngine(gen, ui, recorder, e.log),
		Reviewer:    quiz.NewReviewer(provider, e.cfg.Quiz),
		Transcripts: e.store.TranscriptRepo(),
		UI:          ui,
	}, e.cfg.Chat, e.log)
}
