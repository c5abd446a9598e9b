package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutor/internal/learner"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show a learner's quiz history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		key, err := learner.Key(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		attempts, err := e.store.QuizRepo().ListAttempts(cmd.Context(), key, limit)
		if err != nil {
			return fmt.Errorf("query quiz history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintf(out, "No quizzes recorded for %s.\n", key)
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-24s  %-14s  %8s  %7s\n", "Date", "Topic", "Level", "Score", "Correct")
		fmt.Fprintln(out, strings.Repeat("─", 77))

		var sum float64
		for _, a := range attempts {
			sum += a.Score
			fmt.Fprintf(out, "%-16s  %-24s  %-14s  %7.2f%%  %3d/%-3d\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				truncate(a.Topic, 24),
				truncate(a.Level, 14),
				a.Score,
				a.Correct, a.Total,
			)
		}

		fmt.Fprintln(out, strings.Repeat("─", 77))
		fmt.Fprintf(out, "%d quizzes, average score %.2f%%\n", len(attempts), sum/float64(len(attempts)))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show (0 for all)")
}
