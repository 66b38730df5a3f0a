// Cvss is a tool for working with CVSS vectors.
//
// Usage:
//
//	cvss [flags] SUBCOMMAND [subcommand flags] [ARG]
//
// The subcommands are "score", "format", and "classify". If the argument is
// omitted, it is read as a single line from stdin. Run "cvss -h" or
// "cvss SUBCOMMAND -h" for the flags.
//
// The exit status is 0 on success, 2 if the subcommand failed, 1 if
// interrupted, and 99 on usage errors.
package main

import (
	"bufio"
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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/quay/cvss"
	"github.com/quay/cvss/internal/log"
	"github.com/quay/cvss/internal/telemetry"
)

const pkgname = `github.com/quay/cvss/cmd/cvss`

var tracer trace.Tracer

func init() {
	tracer = otel.Tracer(pkgname)
}

// Exit statuses.
const (
	exitOK        = 0
	exitInterrupt = 1
	exitFailure   = 2
	exitUsage     = 99
)

// ErrUsage is returned by subcommands for bad flags or arguments.
var errUsage = errors.New("usage error")

type commonConfig struct {
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	Log       *slog.Logger
	Telemetry *telemetry.Telemetry

	verbose bool
}

type subcmd func(context.Context, *commonConfig, []string) error

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	exit := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(exit)
}

// Run is the whole program, minus process setup.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cvss", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage of cvss:")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nSubcommands\n\n")
		fmt.Fprintln(out, "score")
		fmt.Fprintln(out, "\tparse, optionally modify, and score a vector")
		fmt.Fprintln(out, "format")
		fmt.Fprintln(out, "\tprint the canonical form of a vector")
		fmt.Fprintln(out, "classify")
		fmt.Fprintln(out, "\tprint the qualitative severity of a score")
		fmt.Fprintln(out)
	}

	var tcfg telemetry.Config
	level := slog.LevelInfo
	fs.TextVar(&level, "log-level", slog.LevelInfo, "minimum `level` to log")
	logFormat := fs.String("log-format", "text", "log output format: text or json")
	fs.StringVar(&tcfg.TraceFile, "trace", "", "write trace spans to `file`")
	fs.BoolVar(&tcfg.OTLP, "otlp", false, "export traces, metrics, and logs over OTLP (see OTEL_EXPORTER_OTLP_*)")
	fs.StringVar(&tcfg.OTLPProtocol, "otlp-protocol", "http/protobuf", "OTLP `protocol`: http/protobuf or grpc")
	fs.StringVar(&tcfg.MetricsFile, "metrics", "", "write Prometheus metrics to `file` on exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	var cmd subcmd
	switch n := fs.Arg(0); n {
	case "score":
		cmd = Score
	case "format":
		cmd = Format
	case "classify":
		cmd = Classify
	case "":
		fs.Usage()
		return exitUsage
	default:
		fs.Usage()
		fmt.Fprintf(stderr, "\nunknown subcommand %q\n", n)
		return exitUsage
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch *logFormat {
	case "text":
		h = slog.NewTextHandler(stderr, opts)
	case "json":
		h = slog.NewJSONHandler(stderr, opts)
	default:
		fmt.Fprintf(stderr, "unknown log format %q\n", *logFormat)
		return exitUsage
	}

	tel, err := telemetry.Setup(ctx, tcfg)
	if err != nil {
		slog.New(h).ErrorContext(ctx, "telemetry setup failed", "reason", err)
		return exitFailure
	}
	cfg := commonConfig{
		In:        stdin,
		Out:       stdout,
		Err:       stderr,
		Log:       slog.New(log.WrapHandler(log.Tee(h, tel.LogHandler()))),
		Telemetry: tel,
	}
	defer func() {
		// The command context may be canceled, but the exporters still need
		// a chance to flush.
		ctx, done := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer done()
		if err := tel.Shutdown(ctx); err != nil {
			cfg.Log.WarnContext(ctx, "telemetry shutdown failed", "reason", err)
		}
	}()

	cmdctx := log.With(ctx, "cmd", fs.Arg(0))
	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd(cmdctx, &cfg, fs.Args()[1:])
	}()

	select {
	case <-ctx.Done():
		cfg.Log.ErrorContext(cmdctx, "interrupted", "reason", context.Cause(ctx))
		return exitInterrupt
	case err := <-errCh:
		switch {
		case err == nil:
			return exitOK
		case errors.Is(err, flag.ErrHelp):
			return exitOK
		case errors.Is(err, errUsage):
			fmt.Fprintln(stderr, err)
			return exitUsage
		default:
			cfg.Log.ErrorContext(cmdctx, "command failed", "reason", err)
			return exitFailure
		}
	}
}

// FlagSet returns a new FlagSet for the named subcommand, writing to the
// configured error output. Every subcommand has a "-v" flag.
func (c *commonConfig) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.Err)
	fs.BoolVar(&c.verbose, "v", false, "log debug messages for this command, regardless of -log-level")
	return fs
}

// ParseFlags parses "args" with "fs", reporting failures as usage errors.
//
// The returned Context logs at debug level if "-v" was passed.
func (c *commonConfig) parseFlags(ctx context.Context, fs *flag.FlagSet, args []string) (context.Context, error) {
	err := fs.Parse(args)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		return ctx, err
	default:
		return ctx, fmt.Errorf("%s: %w: %w", fs.Name(), errUsage, err)
	}
	if c.verbose {
		ctx = log.WithLevel(ctx, slog.LevelDebug)
	}
	return ctx, nil
}

// Arg returns the single positional argument of "fs", or the first line of
// the configured input if there is none.
func (c *commonConfig) arg(fs *flag.FlagSet) (string, error) {
	switch fs.NArg() {
	case 0:
	case 1:
		return strings.TrimSpace(fs.Arg(0)), nil
	default:
		return "", fmt.Errorf("%s: %w: too many arguments", fs.Name(), errUsage)
	}
	s := bufio.NewScanner(c.In)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", fmt.Errorf("%s: reading input: %w", fs.Name(), err)
		}
	}
	in := strings.TrimSpace(s.Text())
	if in == "" {
		return "", fmt.Errorf("%s: %w: no argument provided", fs.Name(), errUsage)
	}
	return in, nil
}

// ParseVector parses "in" and records the result.
func (c *commonConfig) parseVector(ctx context.Context, in string) (cvss.Vector, error) {
	v, err := cvss.Parse(in)
	var ver cvss.Version
	switch e := (*cvss.Error)(nil); {
	case err == nil:
		ver = v.Version()
	case errors.As(err, &e):
		ver = e.Version
	}
	c.Telemetry.RecordParse(ctx, ver, err)
	if err != nil {
		return nil, err
	}
	c.Log.DebugContext(ctx, "parsed vector", "version", ver)
	return v, nil
}

// EndSpan marks the span as failed if "err" is not nil, then ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
