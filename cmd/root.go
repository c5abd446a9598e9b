package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Personalized AI tutor in your terminal",
	Long: `tutor profiles how you learn, quizzes you on a topic, explains what you
missed and then keeps teaching in an adaptive chat.

Chat commands: !quiz, !review, !help and q to quit.`,
	SilenceUsage: true,
	RunE:         runSession,
}

// Execute runs the root command with ctx, which is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTOR_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides TUTOR_CONFIG env var)")

	rootCmd.Flags().String("name", "", "Learner name (asked interactively when empty)")
	rootCmd.Flags().String("topic", "", "Topic to learn")
	rootCmd.Flags().String("level", "", "Current level: Beginner, Intermediate or Advanced")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
