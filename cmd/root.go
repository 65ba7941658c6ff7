package cmd

import (
	"github.com/spf13/cobra"

	"github.com/creditwise/creditwise-cli/internal/ui"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cw",
		Short:         "CreditWise CLI (cw): check and improve your credit score from the terminal",
		Long:          "cw (CreditWise CLI) talks to the CreditWise backend: log in, fetch your credit score, run score calculations, and chat with the AI credit advisor. Run without arguments for the interactive client.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		session, err := app.sessions.Restore(cmd.Context())
		if err != nil {
			return err
		}
		return ui.Run(app.services, session)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newScoreCmd(app),
		newChatCmd(app),
	)

	return rootCmd
}
