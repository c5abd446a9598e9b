// Package config assembles tutor settings from defaults, an optional YAML
// file, a .env file and TUTOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/tutor/internal/learner"
	"github.com/abhisek/tutor/internal/llm"
	"github.com/abhisek/tutor/internal/quiz"
	"github.com/abhisek/tutor/internal/session"
	"github.com/abhisek/tutor/internal/store"
)

// Config is the complete tutor configuration.
type Config struct {
	// DBPath is the SQLite file. Empty resolves to store.DefaultDBPath.
	DBPath string `yaml:"db_path"`

	Log    LogConfig      `yaml:"log"`
	LLM    llm.Config     `yaml:"llm"`
	Quiz   quiz.Config    `yaml:"quiz"`
	Intake learner.Config `yaml:"intake"`
	Chat   session.Config `yaml:"chat"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// Mode is "prod" (JSON, info) or "dev" (console, debug).
	Mode string `yaml:"mode"`

	// Path is the log file. Empty puts tutor.log next to the database.
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    LogConfig{Mode: "prod"},
		LLM:    llm.DefaultConfig(),
		Quiz:   quiz.DefaultConfig(),
		Intake: learner.DefaultConfig(),
		Chat:   session.DefaultConfig(),
	}
}

// Load builds the configuration. path names a YAML file that must exist;
// when empty, TUTOR_CONFIG and then $XDG_CONFIG_HOME/tutor/config.yaml are
// tried and skipped if absent. A .env file in the working directory is
// loaded without overriding variables that are already set.
func Load(path string) (Config, error) {
	cfg := Default()

	required := path != ""
	if path == "" {
		path = os.Getenv("TUTOR_CONFIG")
		required = path != ""
	}
	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	applyProviderKeys(&cfg.LLM)
	return cfg, nil
}

// Validate checks the quiz and intake counts. Provider credentials are
// checked when the provider is built.
func (c Config) Validate() error {
	if err := c.Quiz.Validate(); err != nil {
		return err
	}
	return c.Intake.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tutor", "config.yaml")
}

// applyEnv overlays TUTOR_* variables.
func applyEnv(cfg *Config) error {
	str := map[string]*string{
		"TUTOR_DB":                 &cfg.DBPath,
		"TUTOR_LOG_MODE":           &cfg.Log.Mode,
		"TUTOR_LOG_FILE":           &cfg.Log.Path,
		"TUTOR_LLM_PROVIDER":       &cfg.LLM.Provider,
		"TUTOR_GEMINI_API_KEY":     &cfg.LLM.Gemini.APIKey,
		"TUTOR_GEMINI_MODEL":       &cfg.LLM.Gemini.Model,
		"TUTOR_OPENAI_API_KEY":     &cfg.LLM.OpenAI.APIKey,
		"TUTOR_OPENAI_MODEL":       &cfg.LLM.OpenAI.Model,
		"TUTOR_OPENAI_BASE_URL":    &cfg.LLM.OpenAI.BaseURL,
		"TUTOR_ANTHROPIC_API_KEY":  &cfg.LLM.Anthropic.APIKey,
		"TUTOR_ANTHROPIC_MODEL":    &cfg.LLM.Anthropic.Model,
		"TUTOR_OPENROUTER_API_KEY": &cfg.LLM.OpenRouter.APIKey,
		"TUTOR_OPENROUTER_MODEL":   &cfg.LLM.OpenRouter.Model,
	}
	for name, dst := range str {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"TUTOR_QUIZ_QUESTIONS":   &cfg.Quiz.QuestionCount,
		"TUTOR_QUIZ_OPTIONS":     &cfg.Quiz.OptionCount,
		"TUTOR_LLM_MAX_ATTEMPTS": &cfg.LLM.Retry.MaxAttempts,
	}
	for name, dst := range ints {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: want a positive integer, got %q", name, v)
		}
		*dst = n
	}

	if v := os.Getenv("TUTOR_LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TUTOR_LLM_TIMEOUT: %w", err)
		}
		cfg.LLM.Timeout = d
	}
	if v := os.Getenv("TUTOR_QUIZ_STRUCTURED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TUTOR_QUIZ_STRUCTURED: %w", err)
		}
		cfg.Quiz.StructuredOutput = b
	}
	return nil
}

// applyProviderKeys fills API keys from the providers' standard variables.
// Without an explicit TUTOR_LLM_PROVIDER and with no usable key for the
// configured provider, the first provider with a key set is selected.
func applyProviderKeys(c *llm.Config) {
	if c.Validate() == nil {
		return
	}
	if os.Getenv("TUTOR_LLM_PROVIDER") == "" {
		probe := *c
		if probe.Discover() {
			*c = probe
			return
		}
	}

	switch c.Provider {
	case "gemini":
		c.Gemini.APIKey = firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY")
	case "openai":
		c.OpenAI.APIKey = firstEnv("OPENAI_API_KEY")
	case "anthropic":
		c.Anthropic.APIKey = firstEnv("ANTHROPIC_API_KEY")
	case "openrouter":
		c.OpenRouter.APIKey = firstEnv("OPENROUTER_API_KEY")
	}
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// ResolvePaths fills in the database and log paths and creates their
// directories.
func (c *Config) ResolvePaths() error {
	if c.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return err
		}
		c.DBPath = p
	} else if err := store.EnsureDir(c.DBPath); err != nil {
		return fmt.Errorf("create database dir: %w", err)
	}

	if c.Log.Path == "" {
		c.Log.Path = filepath.Join(filepath.Dir(c.DBPath), "tutor.log")
	}
	return nil
}
