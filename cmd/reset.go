package cmd

import (
	"fmt"

	"github.com/abhisek/tutor/internal/learner"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <name>",
	Short: "Delete a learner's profile, chat transcript and quiz history",
	Long: `Delete everything stored for a learner. The next session starts over
with the profile interview.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		key, err := learner.Key(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.ProfileRepo().Delete(ctx, key); err != nil {
			return err
		}
		if err := e.store.TranscriptRepo().Delete(ctx, key); err != nil {
			return err
		}
		if err := e.store.QuizRepo().DeleteAttempts(ctx, key); err != nil {
			return err
		}

		e.log.Info("learner reset", "learner", key)
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s: profile, transcript and quiz history deleted.\n", key)
		return nil
	},
}
