package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nmasri/laneplan/pkg/interfaces/cli/output"
)

func newAccuracyCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Score forecasted demand against observed fulfillment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, closeFn, err := flags.openService(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			key, err := flags.periodKey()
			if err != nil {
				return err
			}

			report, err := svc.AccuracyReport(ctx, key)
			if err != nil {
				return err
			}
			return output.RenderAccuracy(report, output.Config{Format: flags.format, Out: os.Stdout})
		},
	}

	cmd.Flags().StringVar(&flags.demand, "demand", "", "Demand scenario CSV file")
	cmd.Flags().StringVar(&flags.actuals, "actuals", "", "Actuals scenario CSV file")
	return cmd
}
