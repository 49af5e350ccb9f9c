package cmd_rho

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rskv-p/sltree/cmd/cmd_opts"
	"github.com/rskv-p/sltree/constant"
	"github.com/rskv-p/sltree/logger"
	"github.com/rskv-p/sltree/recover"
	"github.com/rskv-p/sltree/report"
	"github.com/rskv-p/sltree/rho"
	"github.com/rskv-p/sltree/slt"
)

// NewCmd builds the rho command.
func NewCmd() *cobra.Command {
	var opts cmd_opts.Options

	cmd := &cobra.Command{
		Use:          "rho",
		Short:        "Compute the rho measure of a BWT with bounded recursion",
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

			return recover.WrapRecover("rho", "run", func(ctx context.Context) error {
				idx, err := cmd_opts.LoadIndex(ctx, cfg)
				if err != nil {
					return err
				}
				nav := slt.New(idx)

				stats := rho.Rho(nav, cmd_opts.Progress(ctx, cfg)...)
				cmd_opts.Done(ctx, stats)

				if cfg.Check {
					naive := rho.NaiveRho(nav)
					if naive.Rho != stats.Rho {
						return fmt.Errorf("%w: bounded %d, naive %d", constant.ErrRhoMismatch, stats.Rho, naive.Rho)
					}
					logger.From(ctx).Info().
						Uint64("naive_depth", naive.MaxDepth).
						Msg("naive rho agrees")
				}

				return report.Render(cmd.OutOrStdout(), report.Rho(stats))
			})(ctx)
		},
	}

	opts.Bind(cmd)
	cmd.Flags().Bool("check", false, "verify against the unbounded recursion")
	return cmd
}
