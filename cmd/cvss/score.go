package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/quay/cvss"
	"github.com/quay/cvss/internal/log"
)

type scoreConfig struct {
	json  bool
	clamp bool
	set   tokenList
}

// TokenList is a repeatable flag of "metric:value" tokens.
type tokenList []string

func (l *tokenList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *tokenList) Set(s string) error {
	if s == "" {
		return errors.New("empty token")
	}
	*l = append(*l, s)
	return nil
}

// ScoreReport is the JSON output of the score subcommand.
type scoreReport struct {
	Vector string `json:"vector"`
	cvss.Scores
}

// Score is the subcommand for scoring a vector.
func Score(ctx context.Context, cfg *commonConfig, args []string) (err error) {
	var cmdcfg scoreConfig
	fs := cfg.flagSet("score")
	fs.BoolVar(&cmdcfg.json, "json", false, "print scores as JSON (instead of tabwriter)")
	fs.BoolVar(&cmdcfg.clamp, "clamp", false, "reset Modified metrics that are more severe than their base metric (v3 only)")
	fs.Var(&cmdcfg.set, "set", "apply `metric:value` before scoring (v3 only, may be repeated)")
	ctx, err = cfg.parseFlags(ctx, fs, args)
	if err != nil {
		return err
	}
	in, err := cfg.arg(fs)
	if err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "Score", trace.WithAttributes(attribute.String("vector", in)))
	defer func() { endSpan(span, err) }()
	ctx = log.With(ctx, "vector", in)

	v, err := cfg.parseVector(ctx, in)
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	if cmdcfg.clamp || len(cmdcfg.set) != 0 {
		v3, ok := v.(cvss.V3)
		if !ok {
			return fmt.Errorf("score: modifying v%v vectors is not supported", v.Version())
		}
		if v3, err = v3.Apply(cmdcfg.set...); err != nil {
			return fmt.Errorf("score: applying metrics: %w", err)
		}
		if cmdcfg.clamp {
			v3 = v3.Clamp()
		}
		cfg.Log.DebugContext(ctx, "modified vector", "result", v3)
		v = v3
	}

	s := cvss.Calculate(v)
	cfg.Telemetry.RecordScores(ctx, s)
	span.SetAttributes(
		attribute.String("cvss.version", s.Version.String()),
		attribute.Float64("cvss.base", float64(s.Base)),
		attribute.String("cvss.severity", s.Severity.String()),
	)
	cfg.Log.InfoContext(ctx, "scored vector",
		"base", s.Base,
		"temporal", s.Temporal,
		"environmental", s.Environmental)

	if cmdcfg.json {
		enc := json.NewEncoder(cfg.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scoreReport{Vector: v.String(), Scores: s}); err != nil {
			return fmt.Errorf("score: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(cfg.Out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "vector\t%v\n", v)
	fmt.Fprintf(tw, "base\t%v\t%v\n", s.Base, s.Severity)
	fmt.Fprintf(tw, "temporal\t%v\t%v\n", s.Temporal, cvss.Classify(s.Version, s.Temporal))
	fmt.Fprintf(tw, "environmental\t%v\t%v\n", s.Environmental, cvss.Classify(s.Version, s.Environmental))
	fmt.Fprintf(tw, "impact\t%.2f\n", s.Impact)
	fmt.Fprintf(tw, "exploitability\t%.2f\n", s.Exploitability)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	return nil
}
