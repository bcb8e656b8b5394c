package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nmasri/laneplan/pkg/interfaces/cli/output"
)

func newPlanCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Reconcile demand against supply and report per-route gaps",
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

			report, err := svc.GapReport(ctx, key)
			if err != nil {
				return err
			}
			return output.RenderGap(report, output.Config{Format: flags.format, Out: os.Stdout})
		},
	}

	cmd.Flags().StringVar(&flags.demand, "demand", "", "Demand scenario CSV file")
	cmd.Flags().StringVar(&flags.supply, "supply", "", "Supply scenario CSV file")
	return cmd
}
