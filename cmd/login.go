package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the CreditWise backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.auth.Login(cmd.Context(), domain.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("login: %s", domain.FailureMessage(err, ""))
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (user %d)\n", session.User.DisplayName(), session.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
