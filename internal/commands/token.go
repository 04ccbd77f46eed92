package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chart-of-accounts/backend/internal/integration/adapters"
)

func newTokenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API access tokens",
	}

	cmd.AddCommand(newTokenIssueCommand(a))

	return cmd
}

func newTokenIssueCommand(a *app) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a bearer token for the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl == 0 {
				ttl = a.cfg.JWT.Expiry
			}
			tokens := adapters.NewTokenService(a.cfg.JWT.Secret, a.cfg.JWT.Issuer, ttl)

			token, expiresAt, err := tokens.Issue(cmd.Context(), subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "token subject (required)")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime, defaults to JWT_EXPIRY")

	return cmd
}
