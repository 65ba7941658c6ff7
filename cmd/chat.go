package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the AI credit advisor a one-off question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}

			message := strings.Join(args, " ")
			turns := app.chat.Send(cmd.Context(), session, message)
			if len(turns) == 0 {
				return fmt.Errorf("empty transcript after send")
			}

			last := turns[len(turns)-1]
			if last.Speaker != domain.SpeakerAdvisor {
				return fmt.Errorf("advisor did not answer")
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), last.Text)
			return nil
		},
	}
}
