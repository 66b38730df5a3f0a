package main

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/quay/cvss"
)

// Classify is the subcommand for reporting the qualitative severity of a
// score.
func Classify(ctx context.Context, cfg *commonConfig, args []string) (err error) {
	ver := cvss.Version31
	fs := cfg.flagSet("classify")
	fs.TextVar(&ver, "version", cvss.Version31, "use the severity scale for CVSS `version` (2.0, 3.0, or 3.1)")
	ctx, err = cfg.parseFlags(ctx, fs, args)
	if err != nil {
		return err
	}
	in, err := cfg.arg(fs)
	if err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "Classify", trace.WithAttributes(
		attribute.String("score", in),
		attribute.String("cvss.version", ver.String()),
	))
	defer func() { endSpan(span, err) }()

	f, err := strconv.ParseFloat(in, 64)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	if math.IsNaN(f) || f < 0 || f > 10 {
		return fmt.Errorf("classify: score out of range [0, 10]: %v", in)
	}
	sev := cvss.Classify(ver, cvss.Score(f))
	cfg.Log.DebugContext(ctx, "classified score", "score", f, "version", ver, "severity", sev)
	span.SetAttributes(attribute.String("cvss.severity", sev.String()))
	_, err = fmt.Fprintln(cfg.Out, sev)
	return err
}
