package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chart-of-accounts/backend/internal/application/usecase/account"
)

func newAccountsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the accounts of a chart",
	}

	cmd.AddCommand(newAccountsListCommand(a))
	cmd.AddCommand(newAccountsAddCommand(a))

	return cmd
}

func newAccountsListCommand(a *app) *cobra.Command {
	var start, limit int
	var filter string

	cmd := &cobra.Command{
		Use:   "list <chart-id>",
		Short: "List a page of accounts ordered by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chartID, err := parseChartID(args[0])
			if err != nil {
				return err
			}

			charts, closeDB, err := a.open()
			if err != nil {
				return err
			}
			defer closeDB()

			if limit == 0 {
				limit = a.cfg.Pagination.DefaultLimit
			}
			output, err := account.NewListAccountsUseCase(charts).Execute(cmd.Context(), account.ListAccountsInput{
				ChartID: chartID,
				Start:   start,
				Limit:   limit,
				Filter:  filter,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tRECONCILABLE\tDEPRECATED")
			for _, acc := range output.Accounts {
				fmt.Fprintf(w, "%s\t%s\t%t\t%t\n", acc.Code, acc.Name, acc.ReconciliationAllowed, acc.Deprecated)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d accounts\n", len(output.Accounts), output.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "number of accounts to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of accounts to show")
	cmd.Flags().StringVar(&filter, "filter", "", "case-insensitive substring of code or name")

	return cmd
}

func newAccountsAddCommand(a *app) *cobra.Command {
	var reconcilable bool

	cmd := &cobra.Command{
		Use:   "add <chart-id> <code> <name>",
		Short: "Add an account to a chart",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			chartID, err := parseChartID(args[0])
			if err != nil {
				return err
			}

			charts, closeDB, err := a.open()
			if err != nil {
				return err
			}
			defer closeDB()

			output, err := account.NewCreateAccountUseCase(charts).Execute(cmd.Context(), account.CreateAccountInput{
				ChartID:               chartID,
				Code:                  args[1],
				Name:                  args[2],
				ReconciliationAllowed: reconcilable,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added account %s to chart %d\n", output.Account.Code, chartID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reconcilable, "reconcilable", false, "allow reconciliation on the account")

	return cmd
}
