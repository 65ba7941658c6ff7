package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}

			if !session.Active() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Logged in as %s\n", session.User.DisplayName())
			if session.HasUserID() {
				_, _ = fmt.Fprintf(out, "User ID: %d\n", session.User.ID)
			}
			if session.User.Email != "" {
				_, _ = fmt.Fprintf(out, "Email: %s\n", session.User.Email)
			}
			return nil
		},
	}
}
