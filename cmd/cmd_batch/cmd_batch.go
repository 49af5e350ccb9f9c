package cmd_batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/rskv-p/sltree/cmd/cmd_rho"
	"github.com/rskv-p/sltree/cmd/cmd_size"
	"github.com/rskv-p/sltree/constant"
	"github.com/rskv-p/sltree/logger"
	"github.com/rskv-p/sltree/recover"
)

var actions = map[string]func() *cobra.Command{
	"rho":  cmd_rho.NewCmd,
	"size": cmd_size.NewCmd,
}

// Job is one parsed line of a batch file.
type Job struct {
	Line   int
	Action string
	Args   []string
}

// ParseJobs splits a batch file into jobs. Blank lines and lines starting
// with # are skipped.
func ParseJobs(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var jobs []Job
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("batch line %d: %w", n, err)
		}
		if len(parts) == 0 {
			continue
		}
		if _, ok := actions[parts[0]]; !ok {
			return nil, fmt.Errorf("batch line %d: %w %q", n, constant.ErrUnknownBatchAction, parts[0])
		}
		jobs = append(jobs, Job{Line: n, Action: parts[0], Args: parts[1:]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return jobs, nil
}

// NewCmd builds the batch command.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "batch <file>",
		Short:        "Run rho and size jobs listed one per line",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := ParseJobs(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			for _, job := range jobs {
				if err := runJob(ctx, cmd, job); err != nil {
					return fmt.Errorf("batch line %d: %w", job.Line, err)
				}
			}
			return nil
		},
	}
}

// runJob executes one job as a fresh subcommand. A panic anywhere in the
// job is logged with its line and returned as an error.
func runJob(ctx context.Context, parent *cobra.Command, job Job) error {
	l := logger.New("batch")
	l.Info().Int("line", job.Line).Str("action", job.Action).Strs("args", job.Args).Msg("job")

	run := recover.WrapRecover("batch", fmt.Sprintf("line %d", job.Line), func(ctx context.Context) error {
		c := actions[job.Action]()
		c.SetArgs(job.Args)
		c.SetOut(parent.OutOrStdout())
		c.SetErr(parent.ErrOrStderr())
		c.SilenceErrors = true
		return c.ExecuteContext(ctx)
	})
	return run(ctx)
}
