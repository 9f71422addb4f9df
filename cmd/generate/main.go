package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/RedTeamPentesting/downpour/cli"
	"github.com/RedTeamPentesting/downpour/producer"
	"github.com/RedTeamPentesting/downpour/recorder"
	"github.com/RedTeamPentesting/downpour/reporter"
	"github.com/RedTeamPentesting/downpour/shell"
	"github.com/RedTeamPentesting/downpour/writer"
	"github.com/dustin/go-humanize"
	"github.com/fd0/termstatus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Options collect options for a run.
type Options struct {
	Spec producer.Spec

	Output string

	Logfile string
	Logdir  string

	BufferSize int
	Skip       uint64
	Limit      uint64

	WordsPerSecond float64
}

var opts Options

// valid validates the options and returns an error if something is invalid.
func (opts *Options) valid() error {
	if opts.BufferSize <= 0 {
		return errors.New("invalid buffer size")
	}

	return nil
}

// toStdout reports whether the words go to stdout instead of a file.
func (opts *Options) toStdout() bool {
	return opts.Output == "" || opts.Output == "-"
}

var cmd = &cobra.Command{
	Use:                   "generate [options] MIN MAX [CHARSET]",
	DisableFlagsInUseLine: true,

	Short:   helpShort,
	Long:    helpLong,
	Example: helpExamples,

	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.WithContext(func(ctx context.Context, g *errgroup.Group) error {
			return run(ctx, g, &opts, args)
		})
	},
}

// AddCommand adds the 'generate' command to cmd.
func AddCommand(c *cobra.Command) {
	c.AddCommand(cmd)

	fs := cmd.Flags()
	fs.SortFlags = false

	opts.Spec.AddFlags(fs)

	fs.StringVarP(&opts.Output, "output", "o", "", "write words to `filename` instead of stdout")

	fs.StringVar(&opts.Logfile, "logfile", "", "write copy of printed messages to `filename`.log")
	fs.StringVar(&opts.Logdir, "logdir", os.Getenv("DOWNPOUR_LOG_DIR"), "automatically log all output to files in `dir`")

	fs.IntVar(&opts.BufferSize, "buffer-size", 100000, "set number of buffered words to `n`")
	fs.Uint64Var(&opts.Skip, "skip", 0, "skip the first `n` words")
	fs.Uint64Var(&opts.Limit, "limit", 0, "only write `n` words, then exit")
	fs.Float64Var(&opts.WordsPerSecond, "words-per-second", 0, "write at most `n` words per second (e.g. 0.5)")
}

// logfilePath returns the prefix for the logfiles, if any.
func logfilePath(opts *Options) string {
	if opts.Logdir != "" && opts.Logfile == "" {
		ts := time.Now().Format("20060102_150405")
		return filepath.Join(opts.Logdir, "downpour_"+ts)
	}

	return opts.Logfile
}

func setupTerminal(ctx context.Context, g *errgroup.Group, maxFrameRate uint, toStdout bool, logfilePrefix string) (term cli.Terminal, cleanup func(), err error) {
	ctx, cancel := context.WithCancel(context.Background())

	msgWriter := io.Writer(os.Stdout)
	if toStdout {
		// stdout carries the words, keep messages and status on stderr
		msgWriter = os.Stderr
	}

	statusTerm := termstatus.New(msgWriter, os.Stderr, false)
	if maxFrameRate != 0 {
		statusTerm.MaxFrameRate = maxFrameRate
	}

	term = statusTerm

	if logfilePrefix != "" {
		fmt.Fprintf(msgWriter, reporter.Bold("Logfile:")+" %s.log\n", logfilePrefix)

		logfile, err := os.Create(logfilePrefix + ".log")
		if err != nil {
			return nil, cancel, err
		}

		fmt.Fprintln(logfile, shell.Join(os.Args))

		// write copies of messages to logfile
		term = &cli.LogTerminal{
			Terminal: statusTerm,
			Writer:   logfile,
		}
	}

	// make sure error messages logged via the log package are printed nicely
	w := cli.NewStdioWrapper(term)
	log.SetOutput(w.Stderr())

	g.Go(func() error {
		term.Run(ctx)
		return nil
	})

	return term, cancel, nil
}

func setupValueFilters(ctx context.Context, opts *Options, cancelProducer func(), valueCh <-chan string, countCh <-chan uint64) (<-chan string, <-chan uint64) {
	if opts.Skip > 0 {
		f := &producer.FilterSkip{Skip: opts.Skip}
		countCh = f.Count(ctx, countCh)
		valueCh = f.Select(ctx, valueCh)
	}

	if opts.Limit > 0 {
		f := &producer.FilterLimit{Max: opts.Limit, CancelProducer: cancelProducer}
		countCh = f.Count(ctx, countCh)
		valueCh = f.Select(ctx, valueCh)
	}

	return valueCh, countCh
}

func setupWriter(opts *Options) (*writer.Writer, error) {
	if opts.toStdout() {
		return writer.New(os.Stdout), nil
	}

	return writer.NewFile(opts.Output)
}

func run(ctx context.Context, g *errgroup.Group, opts *Options, args []string) error {
	// make sure the options and arguments are valid
	err := opts.Spec.ParseArgs(args)
	if err != nil {
		return err
	}

	err = opts.valid()
	if err != nil {
		return err
	}

	source, err := opts.Spec.Source()
	if err != nil {
		return err
	}

	// the totals are needed for the banner, computing them upfront also
	// rejects configurations whose count overflows before anything runs
	total, err := source.Count()
	if err != nil {
		return err
	}

	size, err := source.Size()
	if err != nil {
		return err
	}

	if opts.Skip > 0 && opts.Skip >= total {
		fmt.Fprintf(os.Stderr,
			reporter.Dim("Warning: --skip %d covers all %d words, nothing will be written\n"),
			opts.Skip, total)
	}

	logfilePrefix := logfilePath(opts)

	var maxFrameRate uint
	if s, ok := os.LookupEnv("DOWNPOUR_PROGRESS_FPS"); ok {
		rate, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fmt.Errorf("parse $DOWNPOUR_PROGRESS_FPS: %w", err)
		}
		maxFrameRate = uint(rate)
	}

	term, cleanup, err := setupTerminal(ctx, g, maxFrameRate, opts.toStdout(), logfilePrefix)
	defer cleanup()
	if err != nil {
		return err
	}

	sink, err := setupWriter(opts)
	if err != nil {
		return err
	}

	// setup the pipeline for the words
	vch := make(chan string, opts.BufferSize)
	var valueCh <-chan string = vch
	cch := make(chan uint64, 1)
	var countCh <-chan uint64 = cch

	// start the producer
	producerCtx, producerCancel := context.WithCancel(ctx)
	defer producerCancel()

	g.Go(func() error {
		return source.Yield(producerCtx, vch, cch)
	})

	// filter words (skip, limit)
	valueCh, countCh = setupValueFilters(ctx, opts, producerCancel, valueCh, countCh)

	// limit the throughput (if requested)
	if opts.WordsPerSecond > 0 {
		valueCh = producer.Limit(ctx, opts.WordsPerSecond, valueCh)
	}

	// write the words to the sink
	writtenCh := make(chan string)
	g.Go(func() error {
		return sink.Run(ctx, valueCh, writtenCh)
	})

	wordCh := (<-chan string)(writtenCh)

	if logfilePrefix != "" {
		rec := recorder.New(logfilePrefix+".json", &opts.Spec)

		// fill in information about this run
		rec.Data.Skip = opts.Skip
		rec.Data.Limit = opts.Limit
		rec.Data.OutputFile = opts.Output

		out := make(chan string)
		in := wordCh
		wordCh = out

		outCount := make(chan uint64)
		inCount := countCh
		countCh = outCount

		g.Go(func() error {
			return rec.Run(ctx, in, out, inCount, outCount)
		})
	}

	// run the reporter
	term.Printf(reporter.Bold("Will create approx:")+" %v (%v words)\n\n", humanize.Bytes(size), total)
	rep := reporter.New(term)
	err = rep.Display(wordCh, countCh)
	if err != nil {
		return err
	}

	return sink.Close()
}
