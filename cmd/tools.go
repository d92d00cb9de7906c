package main

import (
	"fmt"
	"strings"
	"utilbox/internal/config"
	"utilbox/internal/toolkit"
	"utilbox/pkg/serrors"

	"github.com/spf13/cobra"
)

// joinArgs rebuilds the text the user typed; unquoted words arrive as
// separate arguments.
func joinArgs(args []string) string { return strings.Join(args, " ") }

func palindromeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome <text...>",
		Short: "Checks whether the text is a palindrome once whitespace is removed",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk := toolkit.New(nil, toolkit.NewOptions(cfg))
			res := tk.CheckPalindrome(cmd.Context(), joinArgs(args))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Message())

			return err //nolint: wrapcheck
		},
	}
}

func countCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "count <text...>",
		Short: "Counts vowels and consonants in the text",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk := toolkit.New(nil, toolkit.NewOptions(cfg))
			tally := tk.CountCharacters(cmd.Context(), joinArgs(args))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), tally.Message())

			return err //nolint: wrapcheck
		},
	}
}

func tipCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Calculates the total amount to be paid including tip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subtotal, _ := cmd.Flags().GetString("subtotal")
			percent, _ := cmd.Flags().GetString("percent")

			tk := toolkit.New(nil, toolkit.NewOptions(cfg))
			bill, err := tk.CalculateTip(cmd.Context(), subtotal, percent)
			if err != nil {
				if msg := serrors.MessageOf(err); msg != "" {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}

				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), bill.Message(tk.CurrencySymbol()))

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringP("subtotal", "s", "", "Bill subtotal")
	cmd.Flags().StringP("percent", "p", "", "Tip percentage (out of 100)")

	return cmd
}
