package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/tutor/internal/learner"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect stored learning profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a learner's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := learner.Key(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		rec, err := e.store.ProfileRepo().Get(cmd.Context(), key)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("no profile for %q", args[0])
		}

		var prof learner.Profile
		if err := json.Unmarshal(rec.Data, &prof); err != nil {
			return fmt.Errorf("decode profile: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name:     %s\n", rec.DisplayName)
		fmt.Fprintf(out, "Key:      %s\n", rec.Name)
		fmt.Fprintf(out, "Created:  %s\n\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintln(out, prof.JSON())
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learners with a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		recs, err := e.store.ProfileRepo().List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No profiles found.")
			return nil
		}

		fmt.Fprintf(out, "%-24s  %-24s  %s\n", "Key", "Name", "Created")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, r := range recs {
			fmt.Fprintf(out, "%-24s  %-24s  %s\n",
				truncate(r.Name, 24), truncate(r.DisplayName, 24),
				r.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileListCmd)
}
