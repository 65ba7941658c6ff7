package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

func newRegisterCmd(app *app) *cobra.Command {
	var email, username, fullName, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a CreditWise account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirmation, err := app.auth.Register(cmd.Context(), domain.Credentials{
				Email:    email,
				Username: username,
				FullName: fullName,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("register: %s", domain.FailureMessage(err, ""))
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), confirmation)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&fullName, "fullname", "", "Full name")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("fullname")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
