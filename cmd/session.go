package cmd

import (
	"github.com/abhisek/tutor/internal/console"
	"github.com/abhisek/tutor/internal/session"
	"github.com/spf13/cobra"
)

// runSession starts the interactive tutoring session.
func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	provider, err := e.provider(ctx)
	if err != nil {
		return err
	}

	var opts session.Options
	opts.Name, _ = cmd.Flags().GetString("name")
	opts.Topic, _ = cmd.Flags().GetString("topic")
	opts.Level, _ = cmd.Flags().GetString("level")

	e.log.Info("session starting", "provider", e.cfg.LLM.Provider, "model", provider.ModelID())
	return e.orchestrator(provider, console.Stdio()).Run(ctx, opts)
}
