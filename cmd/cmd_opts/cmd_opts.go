// Package cmd_opts holds the flags and run setup shared by the analysis
// commands.
package cmd_opts

import (
	"context"
	"errors"

	"github.com/nats-io/nuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rskv-p/sltree/bwt"
	"github.com/rskv-p/sltree/config"
	"github.com/rskv-p/sltree/constant"
	"github.com/rskv-p/sltree/logger"
	"github.com/rskv-p/sltree/rho"
)

// flag name -> config key
var flagKeys = []struct{ flag, key string }{
	{"input", constant.KeyInput},
	{"terminator", constant.KeyTerminator},
	{"log-level", constant.KeyLogLevel},
	{"log-format", constant.KeyLogFormat},
	{"log-file", constant.KeyLogFile},
	{"progress", constant.KeyProgress},
	{"sample-rate", constant.KeySampleRate},
	{"check", constant.KeyCheck},
}

// Options are the flags every analysis command accepts.
type Options struct {
	ConfigPath string
}

// Bind registers the shared flags on cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("input", "i", "", "input BWT file (required)")
	f.IntP("terminator", "t", constant.DefaultTerminator, "terminator byte code")
	f.StringVar(&o.ConfigPath, "config", "", "JSON config file (default $"+constant.EnvConfigPath+")")
	f.String("log-level", constant.DefaultLogLevel, "debug, info, warn or error")
	f.String("log-format", constant.DefaultLogFormat, "console or json")
	f.String("log-file", "", "also log to this rotating file")
	f.Bool("progress", true, "log traversal progress")
	f.Int("sample-rate", constant.DefaultSampleRate, "rank checkpoint spacing")
}

// Resolve builds the run configuration. Flags set on the command line
// override the config file and the environment.
func (o *Options) Resolve(cmd *cobra.Command) (*config.Config, error) {
	var overrides []config.Option
	for _, fk := range flagKeys {
		f := cmd.Flags().Lookup(fk.flag)
		if f != nil && f.Changed {
			overrides = append(overrides, config.WithValue(fk.key, f.Value.String()))
		}
	}
	return config.Load(o.ConfigPath, overrides...)
}

// Prepare resolves and validates the configuration. ok is false when the
// command must stop after printing usage without failing.
func (o *Options) Prepare(cmd *cobra.Command) (cfg *config.Config, ok bool, err error) {
	cfg, err = o.Resolve(cmd)
	if err != nil {
		return nil, false, err
	}
	err = cfg.Validate()
	switch {
	case err == nil:
		return cfg, true, nil
	case errors.Is(err, constant.ErrMissingInput), errors.Is(err, constant.ErrInvalidTerminator):
		cmd.PrintErrln(err)
		_ = cmd.Usage()
		return nil, false, nil
	default:
		return nil, false, err
	}
}

// Start initialises the process logger and returns a context carrying a
// logger tagged with the command and a fresh run id.
func Start(cmd *cobra.Command, cfg *config.Config) (context.Context, error) {
	err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Out:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	l := logger.New(cmd.Name()).With().Str("run", nuid.Next()).Logger()
	l.Debug().Str("config", cfg.String()).Msg("resolved config")
	return logger.WithLogger(ctx, &l), nil
}

// LoadIndex reads and indexes the input BWT.
func LoadIndex(ctx context.Context, cfg *config.Config) (*bwt.Index, error) {
	l := logger.From(ctx)
	idx, err := bwt.Load(cfg.Input, cfg.TerminatorByte(), bwt.WithSampleRate(cfg.SampleRate))
	if err != nil {
		return nil, err
	}
	symbols := zerolog.Dict()
	for _, s := range bwt.Extensions {
		symbols.Uint64(s.String(), idx.Count(s))
	}
	l.Info().
		Str("input", cfg.Input).
		Uint64("length", idx.Len()).
		Str("terminator", string(idx.Terminator())).
		Uint64("sequences", idx.Count(bwt.Term)).
		Dict("symbols", symbols).
		Bool("has_n", idx.HasN()).
		Msg("index ready")
	return idx, nil
}

// Progress returns the traversal options for progress logging.
func Progress(ctx context.Context, cfg *config.Config) []rho.Option {
	if !cfg.Progress {
		return nil
	}
	l := logger.From(ctx)
	return []rho.Option{rho.WithProgress(func(percent int) {
		l.Info().Int("percent", percent).Msg("progress")
	})}
}

// Done logs the final counters.
func Done(ctx context.Context, stats rho.Stats) {
	logger.From(ctx).Info().
		Uint64("nodes", stats.Nodes).
		Uint64("leaves", stats.Leaves).
		Uint64("rho", stats.Rho).
		Dict("limits", zerolog.Dict().
			Uint64("max_stack", stats.MaxStack).
			Uint64("max_depth", stats.MaxDepth)).
		Msg("traversal done")
}
