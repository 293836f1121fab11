package main

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iostrovok/trimothy/internal/op"
	"github.com/iostrovok/trimothy/internal/textio"
	"github.com/iostrovok/trimothy/logger"
)

const stdinName = "-"

var ErrRepeatedStdin = errors.New("stdin (-) given more than once")

var opShort = map[op.Op]string{
	op.Trim:             "Drop leading and trailing whitespace",
	op.TrimStart:        "Drop leading whitespace",
	op.TrimEnd:          "Drop trailing whitespace",
	op.TrimMatches:      "Drop leading and trailing cutset elements",
	op.TrimStartMatches: "Drop leading cutset elements",
	op.TrimEndMatches:   "Drop trailing cutset elements",
	op.Normalize:        "Drop edge whitespace and collapse inner runs to one space",
	op.NormalizeControl: "Like normalize, treating control characters as whitespace",
	op.TrimNormalize:    "Like normalize, returning clean input unchanged",
}

func newOpCmd(opts *rootOptions, o op.Op) *cobra.Command {
	cmd := &cobra.Command{
		Use:   o.String() + " [files...]",
		Short: opShort[o],
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			req := op.Request{Op: o, Text: cfg.Text, Cutset: cfg.Cutset}
			if _, err := req.Validate(); err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			return runOp(ctx, req, cfg.Lossy, args, cmd.InOrStdin(), cmd.OutOrStdout(), lg)
		},
	}

	cmd.Flags().Bool("text", false, "treat input as UTF-8 text with Unicode whitespace")
	cmd.Flags().Bool("lossy", false, "with --text, replace invalid UTF-8 instead of failing")
	if o.IsMatching() {
		cmd.Flags().String("cutset", "", "elements to trim: bytes, or runes with --text")
	}

	return cmd
}

// runOp applies req to every input concurrently and writes the results in
// argument order. Nothing is written when any input fails.
func runOp(ctx context.Context, req op.Request, lossy bool, names []string, stdin io.Reader, out io.Writer, lg *logger.Logger) error {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	stdinCount := 0
	for _, name := range names {
		if name == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return errors.WithStack(ErrRepeatedStdin)
	}

	results := make([][]byte, len(names))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := processInput(req, lossy, name, stdin)
			if err != nil {
				return errors.Wrap(err, name)
			}
			results[i] = res

			lg.Clone().
				Add("input", name).
				Add("op", req.Op.String()).
				Add("out_bytes", len(res)).
				Debugf("processed")

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if _, err := out.Write(res); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	return nil
}

func processInput(req op.Request, lossy bool, name string, stdin io.Reader) ([]byte, error) {
	in, err := readInput(name, stdin)
	if err != nil {
		return nil, err
	}

	if req.Text {
		decode := textio.Decode
		if lossy {
			decode = textio.Repair
		}

		if in, err = decode(in); err != nil {
			return nil, err
		}
	}

	return op.Apply(req, in)
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == stdinName {
		b, err := io.ReadAll(stdin)
		return b, errors.Wrap(err, "read stdin")
	}

	b, err := os.ReadFile(name)
	return b, errors.WithStack(err)
}
