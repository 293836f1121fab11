package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iostrovok/trimothy/internal/op"
	"github.com/iostrovok/trimothy/logger"
	"github.com/iostrovok/trimothy/logger/level"
)

var version = "dev"

type rootOptions struct {
	configFile string
	logLevel   level.Level
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logLevel: level.InfoLevel}

	cmd := &cobra.Command{
		Use:   "trimothy",
		Short: "Trim and whitespace-normalize bytes and text",
		Long: `trimothy trims leading and trailing whitespace or custom elements and
collapses runs of whitespace into single spaces.

Each operation reads the named files, or stdin when none is given, and writes
the results to stdout in argument order. Byte mode works on ASCII whitespace;
--text switches to UTF-8 text and Unicode whitespace.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("trimothy version {{.Version}}\n")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default: ./trimothy.yaml when present)")
	cmd.PersistentFlags().Var(&opts.logLevel, "log-level",
		"log level: panic, fatal, error, warning, info, debug or trace")

	for _, o := range op.All {
		cmd.AddCommand(newOpCmd(opts, o))
	}
	cmd.AddCommand(newServeCmd(opts), newOpsCmd())

	return cmd
}

// load merges the configuration and builds the command logger.
func (opts *rootOptions) load(cmd *cobra.Command) (*Config, *logger.Logger, error) {
	cfg, err := LoadConfig(opts.configFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	lg := logger.New().
		Writer(cmd.ErrOrStderr()).
		SetLevel(cfg.Level()).
		Add("command", cmd.Name())

	return cfg, lg, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
