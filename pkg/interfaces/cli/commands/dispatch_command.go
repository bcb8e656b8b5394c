package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nmasri/laneplan/pkg/interfaces/cli/output"
)

func newDispatchCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Project committed supply into per-supplier dispatch sheets",
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

			report, err := svc.DispatchReport(ctx, key)
			if err != nil {
				return err
			}
			return output.RenderDispatch(report, output.Config{Format: flags.format, Out: os.Stdout})
		},
	}

	cmd.Flags().StringVar(&flags.supply, "supply", "", "Supply scenario CSV file")
	return cmd
}
