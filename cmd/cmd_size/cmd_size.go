package cmd_size

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rskv-p/sltree/cmd/cmd_opts"
	"github.com/rskv-p/sltree/recover"
	"github.com/rskv-p/sltree/report"
	"github.com/rskv-p/sltree/rho"
	"github.com/rskv-p/sltree/slt"
)

// NewCmd builds the size command.
func NewCmd() *cobra.Command {
	var opts cmd_opts.Options

	cmd := &cobra.Command{
		Use:          "size",
		Short:        "Count suffix-link-tree leaves and the SLT factorization size of a BWT",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ok, err := opts.Prepare(cmd)
			if err != nil || !ok {
				return err
			}
			ctx, err := cmd_opts.Start(cmd, cfg)
			if err != nil {
				return err
			}

			return recover.WrapRecover("size", "run", func(ctx context.Context) error {
				idx, err := cmd_opts.LoadIndex(ctx, cfg)
				if err != nil {
					return err
				}
				stats := rho.Enumerate(slt.New(idx), cmd_opts.Progress(ctx, cfg)...)
				cmd_opts.Done(ctx, stats)
				return report.Render(cmd.OutOrStdout(), report.Size(stats))
			})(ctx)
		},
	}

	opts.Bind(cmd)
	return cmd
}
