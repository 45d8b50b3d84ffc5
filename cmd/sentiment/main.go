// Command sentiment classifies text as Positive, Negative or Neutral with a
// large language model.
//
//	sentiment [-context note] [-sarcasm] [-json] text...
//	sentiment -bulk [-context note] [-sarcasm] [-json] [file]
//
// Single mode analyzes the arguments joined by spaces, or stdin when no text is
// given. Bulk mode analyzes one sentence per line of file (stdin when omitted)
// and prints a table followed by the sentiment distribution.
//
// The provider, API keys, rate limit and logging are configured through the
// environment; see Config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/sentiment/core/logger"
	"github.com/dmitrymomot/sentiment/pkg/ratelimiter"
	"github.com/dmitrymomot/sentiment/pkg/sentiment"
)

var errNoText = errors.New("no text to analyze")

type options struct {
	context     string
	sarcasm     bool
	json        bool
	bulk        bool
	provider    string
	model       string
	metricsFile string
	args        []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("sentiment", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.context, "context", "", "optional context for the text")
	fs.BoolVar(&o.sarcasm, "sarcasm", false, "ask the model to watch for sarcasm")
	fs.BoolVar(&o.json, "json", false, "print results as JSON")
	fs.BoolVar(&o.bulk, "bulk", false, "analyze one sentence per line of a file or stdin")
	fs.StringVar(&o.provider, "provider", "", "model provider: gemini, openai or anthropic (overrides SENTIMENT_PROVIDER)")
	fs.StringVar(&o.model, "model", "", "model name (overrides SENTIMENT_MODEL)")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file on exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: sentiment [flags] text...")
		fmt.Fprintln(fs.Output(), "       sentiment -bulk [flags] [file]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	o.args = fs.Args()
	return o, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "sentiment:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.provider != "" {
		cfg.Provider = opts.provider
	}
	if opts.model != "" {
		cfg.Model = opts.model
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	model, err := newModel(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("create model session: %w", err)
	}

	reg := prometheus.NewRegistry()
	interp, err := newInterpreter(cfg, model, log, reg)
	if err != nil {
		return err
	}

	if err := execute(ctx, opts, interp, stdin, stdout); err != nil {
		return err
	}

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func newInterpreter(cfg Config, model sentiment.Model, log *slog.Logger, reg prometheus.Registerer) (*sentiment.Interpreter, error) {
	bucket, err := ratelimiter.NewBucketFromConfig(cfg.RateLimit, ratelimiter.WithLogger(log))
	if err != nil {
		return nil, err
	}

	grammar, err := newGrammar(cfg.Grammar)
	if err != nil {
		return nil, err
	}

	concurrency := max(cfg.Concurrency, 1)

	return sentiment.New(model, bucket,
		sentiment.WithGrammar(grammar),
		sentiment.WithLogger(log),
		sentiment.WithMetrics(sentiment.NewMetrics(reg)),
		sentiment.WithCache(max(cfg.CacheSize, 0)),
		sentiment.WithConcurrency(concurrency),
	)
}

func execute(ctx context.Context, opts options, interp *sentiment.Interpreter, stdin io.Reader, stdout io.Writer) error {
	if opts.bulk {
		return executeBulk(ctx, opts, interp, stdin, stdout)
	}

	text := strings.TrimSpace(strings.Join(opts.args, " "))
	if text == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSpace(string(b))
	}
	if text == "" {
		return errNoText
	}

	res := interp.Analyze(ctx, sentiment.Request{Text: text, Context: opts.context, Sarcasm: opts.sarcasm})
	if opts.json {
		return writeJSON(stdout, toVerdict(text, res))
	}
	return writeResult(stdout, res)
}

func executeBulk(ctx context.Context, opts options, interp *sentiment.Interpreter, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if len(opts.args) > 0 && opts.args[0] != "-" {
		f, err := os.Open(opts.args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := sentiment.SplitLines(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(lines) == 0 {
		return errNoText
	}

	start := time.Now()
	items := interp.AnalyzeBatch(ctx, lines, opts.context, opts.sarcasm)
	summary := sentiment.Summarize(items)

	slog.InfoContext(ctx, "batch analyzed",
		logger.Component("cli"),
		logger.Count("items", summary.Total),
		logger.Count("failed", summary.Failed),
		logger.Duration(time.Since(start)),
	)

	if opts.json {
		return writeJSON(stdout, toBatchReport(items, summary))
	}
	if err := writeTable(stdout, items); err != nil {
		return err
	}
	return writeSummary(stdout, summary)
}
