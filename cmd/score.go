package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	scorerender "github.com/creditwise/creditwise-cli/internal/adapters/render/score"
	"github.com/creditwise/creditwise-cli/internal/application"
	"github.com/creditwise/creditwise-cli/internal/domain"
)

func newScoreCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Fetch your stored credit score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}

			var result domain.ScoreResult
			fetch := func(ctx context.Context) error {
				var fetchErr error
				result, fetchErr = app.scores.Fetch(ctx, session)
				return fetchErr
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching your score...", fetch); err != nil {
				if errors.Is(err, domain.ErrMissingUserID) {
					return errors.New(application.MissingUserMessage)
				}
				return errors.New(domain.FailureMessage(err, application.NoScoreFallback))
			}

			app.chat.NoteScore(result.Score)
			return printScore(cmd, result, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the score result as JSON")
	cmd.AddCommand(newScoreCalcCmd(app))

	return cmd
}

func newScoreCalcCmd(app *app) *cobra.Command {
	var (
		monthlyIncome     string
		existingLoans     string
		creditUtilization string
		paymentHistory    string
		jsonOutput        bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a fresh credit score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Restore(cmd.Context())
			if err != nil {
				return err
			}

			history, err := domain.ParsePaymentHistory(paymentHistory)
			if err != nil {
				return fmt.Errorf("%w: %q", err, paymentHistory)
			}

			form := application.CalculationForm{
				MonthlyIncome:     monthlyIncome,
				ExistingLoans:     existingLoans,
				CreditUtilization: creditUtilization,
				PaymentHistory:    history,
			}

			var result domain.ScoreResult
			calculate := func(ctx context.Context) error {
				var calcErr error
				result, calcErr = app.scores.Calculate(ctx, session, form)
				return calcErr
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Calculating your score...", calculate); err != nil {
				if errors.Is(err, domain.ErrMissingUserID) {
					return errors.New(application.MissingUserMessage)
				}
				return errors.New(domain.FailureMessage(err, application.CalculateFallback))
			}

			app.chat.NoteScore(result.Score)
			return printScore(cmd, result, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&monthlyIncome, "monthly-income", "", "Monthly income")
	cmd.Flags().StringVar(&existingLoans, "existing-loans", "", "Number of existing loans")
	cmd.Flags().StringVar(&creditUtilization, "credit-utilization", "", "Credit utilization percentage")
	cmd.Flags().StringVar(&paymentHistory, "payment-history", string(domain.PaymentHistoryGood), "Payment history (EXCELLENT, GOOD, FAIR, POOR)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the score result as JSON")
	_ = cmd.MarkFlagRequired("monthly-income")
	_ = cmd.MarkFlagRequired("existing-loans")
	_ = cmd.MarkFlagRequired("credit-utilization")

	return cmd
}

func printScore(cmd *cobra.Command, result domain.ScoreResult, jsonOutput bool) error {
	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode score result: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	card, err := scorerender.Render(result)
	if err != nil {
		return fmt.Errorf("render score card: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), card)
	return nil
}
