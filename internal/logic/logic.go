// Package logic runs a per-value operation over the command inputs.
package logic

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/fileutil"
)

// Operation transforms one input value into one output line.
type Operation func(input string) (string, error)

// Runner executes an Operation over every input of a Config.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// New returns a Runner writing to the process streams.
func New(cfg *config.Config) *Runner {
	return &Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: NewLogger(os.Stderr, cfg.Verbose),
	}
}

// NewLogger returns a text logger at debug level when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Run is a shorthand for New(cfg).Run(cfg, op).
func Run(cfg *config.Config, op Operation) error {
	return New(cfg).Run(cfg, op)
}

type result struct {
	input  string
	output string
	err    error
}

// Run applies op to every input in parallel and reports the results in input order.
// Failed inputs are reported on stderr and the first error is returned after all
// inputs have been processed. With an output path, nothing is written unless every
// input succeeded.
func (r *Runner) Run(cfg *config.Config, op Operation) error {
	start := time.Now()

	inputs, err := r.readInputs(cfg)
	if err != nil {
		return err
	}

	results := make([]result, len(inputs))

	group := errgroup.Group{}
	group.SetLimit(max(1, cfg.Parallel))

	for i, input := range inputs {
		group.Go(func() error {
			out, err := op(input)

			results[i] = result{input: input, output: out, err: err}

			return err
		})
	}

	runErr := group.Wait()

	var (
		processed, errored int
		builder            strings.Builder
	)

	for i, res := range results {
		if res.err != nil {
			errored++

			r.Logger.Debug("input failed", "index", i, "error", res.err)
			fmt.Fprintf(r.Stderr, "Error processing input %d: %v\n", i+1, res.err)

			continue
		}

		processed++

		r.Logger.Debug("input processed", "index", i, "in", len(res.input), "out", len(res.output))

		builder.WriteString(res.output)
		builder.WriteByte('\n')
	}

	var size int64

	switch {
	case cfg.Output != "" && runErr != nil:
		r.Logger.Debug("output not written", "path", cfg.Output)
	case cfg.Output != "":
		const ownerReadWrite = 0o600

		size, err = fileutil.WriteAtomic(cfg.Output, []byte(builder.String()), ownerReadWrite)
		if err != nil {
			runErr = fmt.Errorf("writing %q: %w", cfg.Output, err)
		} else {
			r.Logger.Debug("output written", "path", cfg.Output, "bytes", size)
		}
	case !cfg.Quiet:
		n, _ := io.WriteString(r.Stdout, builder.String())
		size = int64(n)
	}

	if cfg.Stats {
		r.printStats(len(inputs), processed, errored, size, time.Since(start))
	}

	if runErr != nil {
		return fmt.Errorf("processing inputs: %w", runErr)
	}

	return nil
}

// readInputs returns the positional arguments, or the contents of the files they name.
func (r *Runner) readInputs(cfg *config.Config) ([]string, error) {
	if !cfg.Files {
		return cfg.Inputs, nil
	}

	inputs := make([]string, 0, len(cfg.Inputs))

	for _, path := range cfg.Inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}

		r.Logger.Debug("input file read", "path", path, "bytes", len(data))

		inputs = append(inputs, strings.TrimRight(string(data), "\r\n"))
	}

	return inputs, nil
}

func (r *Runner) printStats(total, processed, errored int, size int64, duration time.Duration) {
	fmt.Fprintf(r.Stderr, "\nStats\n")
	fmt.Fprintf(r.Stderr, "  Inputs:    %d\n", total)
	fmt.Fprintf(r.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(r.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // size is never negative
	fmt.Fprintf(r.Stderr, "  Output:    %s\n", humanize.IBytes(uint64(max(0, size))))
	fmt.Fprintf(r.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
