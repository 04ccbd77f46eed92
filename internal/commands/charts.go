package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chart-of-accounts/backend/internal/application/usecase/chart"
)

func newChartsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Manage charts of accounts",
	}

	cmd.AddCommand(newChartsListCommand(a))
	cmd.AddCommand(newChartsAddCommand(a))
	cmd.AddCommand(newChartsRemoveCommand(a))
	cmd.AddCommand(newChartsActivateCommand(a))

	return cmd
}

func newChartsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			charts, closeDB, err := a.open()
			if err != nil {
				return err
			}
			defer closeDB()

			output, err := chart.NewListChartsUseCase(charts).Execute(cmd.Context(), chart.ListChartsInput{})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tVERSION\tSTATE\tACCOUNTS\tNAME")
			for _, c := range output.Charts {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", c.ID, c.Type, c.Version, c.State, c.AccountCount, c.Name)
			}
			return w.Flush()
		},
	}
}

func newChartsAddCommand(a *app) *cobra.Command {
	var chartType, version, entity string
	var seed bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := chart.CreateChartInput{Type: chartType, Version: version, Seed: seed}
			if entity != "" {
				entityID, err := uuid.Parse(entity)
				if err != nil {
					return fmt.Errorf("invalid entity ID: %w", err)
				}
				input.EntityID = entityID
			}

			charts, closeDB, err := a.open()
			if err != nil {
				return err
			}
			defer closeDB()

			output, err := chart.NewCreateChartUseCase(charts).Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created chart %d: %s (%d accounts)\n",
				output.Chart.ID, output.Chart.Name, output.Chart.AccountCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&chartType, "type", "", "chart type: SYSCOHADA, PCG or IFRS (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&version, "version", "", "chart version (required)")
	_ = cmd.MarkFlagRequired("version")
	cmd.Flags().StringVar(&entity, "entity", "", "owning entity UUID")
	cmd.Flags().BoolVar(&seed, "seed", false, "populate the chart with the default accounts of its type")

	return cmd
}

func newChartsRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <chart-id>",
		Short: "Delete a chart and its accounts",
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

			if err := chart.NewDeleteChartUseCase(charts).Execute(cmd.Context(), chart.DeleteChartInput{ChartID: chartID}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed chart %d\n", chartID)
			return nil
		},
	}
}

func newChartsActivateCommand(a *app) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "activate <chart-id>",
		Short: "Activate or deactivate a chart",
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

			output, err := chart.NewActivateChartUseCase(charts).Execute(cmd.Context(), chart.ActivateChartInput{
				ChartID: chartID,
				Active:  !off,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chart %d is %s\n", output.Chart.ID, output.Chart.State)
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "deactivate instead of activating")

	return cmd
}

func parseChartID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid chart ID %q", value)
	}
	return id, nil
}
