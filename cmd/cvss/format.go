package main

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/quay/cvss/internal/log"
)

// Format is the subcommand for printing a vector in its canonical form.
func Format(ctx context.Context, cfg *commonConfig, args []string) (err error) {
	fs := cfg.flagSet("format")
	ctx, err = cfg.parseFlags(ctx, fs, args)
	if err != nil {
		return err
	}
	in, err := cfg.arg(fs)
	if err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "Format", trace.WithAttributes(attribute.String("vector", in)))
	defer func() { endSpan(span, err) }()
	ctx = log.With(ctx, "vector", in)

	v, err := cfg.parseVector(ctx, in)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	out := v.String()
	if out != in {
		cfg.Log.DebugContext(ctx, "vector canonicalized", "result", out)
	}
	_, err = fmt.Fprintln(cfg.Out, out)
	return err
}
