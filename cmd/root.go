package cmd

import (
	"github.com/rskv-p/sltree/cmd/cmd_batch"
	"github.com/rskv-p/sltree/cmd/cmd_rho"
	"github.com/rskv-p/sltree/cmd/cmd_size"
	"github.com/rskv-p/sltree/logger"

	"github.com/spf13/cobra"
)

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sltree",
		Short: "Suffix-link-tree statistics of a DNA BWT",
	}
	root.AddCommand(cmd_rho.NewCmd())
	root.AddCommand(cmd_size.NewCmd())
	root.AddCommand(cmd_batch.NewCmd())
	return root
}

// Execute runs the command tree and closes the log file afterwards.
func Execute() error {
	err := NewRootCmd().Execute()
	if cerr := logger.Close(); err == nil {
		err = cerr
	}
	return err
}
