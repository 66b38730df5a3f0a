package telemetry

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/quay/cvss"
)

// Metrics singletons.
var (
	meter metric.Meter

	parseCounter metric.Int64Counter
	scoreHist    metric.Float64Histogram
)

func init() {
	meter = otel.Meter(pkgname)

	var err error
	parseCounter, err = meter.Int64Counter("cvss.vectors.parsed",
		metric.WithDescription("total number of vectors parsed, by version and result"),
		metric.WithUnit("{vector}"),
	)
	if err != nil {
		panic(err)
	}
	scoreHist, err = meter.Float64Histogram("cvss.score",
		metric.WithDescription("calculated scores, by version and kind"),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	)
	if err != nil {
		panic(err)
	}
}

// ScoreBuckets has one bucket per whole point.
var scoreBuckets = prometheus.LinearBuckets(0, 1, 11)

var (
	parseLabels = []string{"version", "result"}
	scoreLabels = []string{"version", "kind"}
)

// PromMetrics are the Prometheus collectors, registered on the Telemetry's
// private registry.
type promMetrics struct {
	parsed *prometheus.CounterVec
	scores *prometheus.HistogramVec
}

func newPromMetrics(reg prometheus.Registerer) promMetrics {
	m := promMetrics{
		parsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cvss",
			Name:      "vectors_parsed_total",
			Help:      "Total number of vectors parsed, by version and result.",
		}, parseLabels),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cvss",
			Name:      "score_value",
			Help:      "Calculated scores, by version and kind.",
			Buckets:   scoreBuckets,
		}, scoreLabels),
	}
	reg.MustRegister(m.parsed, m.scores)
	return m
}

// RecordParse records the result of parsing a vector.
//
// The version may be zero if it couldn't be determined.
func (t *Telemetry) RecordParse(ctx context.Context, v cvss.Version, err error) {
	ver := "unknown"
	if v.Major() != 0 {
		ver = v.String()
	}
	res := result(err)
	t.prom.parsed.WithLabelValues(ver, res).Inc()
	parseCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("version", ver),
		attribute.String("result", res),
	))
}

// RecordScores records the Base, Temporal, and Environmental scores.
func (t *Telemetry) RecordScores(ctx context.Context, s cvss.Scores) {
	ver := s.Version.String()
	for _, k := range []struct {
		Kind  string
		Score cvss.Score
	}{
		{"base", s.Base},
		{"temporal", s.Temporal},
		{"environmental", s.Environmental},
	} {
		t.prom.scores.WithLabelValues(ver, k.Kind).Observe(float64(k.Score))
		scoreHist.Record(ctx, float64(k.Score), metric.WithAttributes(
			attribute.String("version", ver),
			attribute.String("kind", k.Kind),
		))
	}
}

// Result is the label value for a parse error: "ok", the snake-cased error
// kind, or "error".
func result(err error) string {
	if err == nil {
		return "ok"
	}
	var e *cvss.Error
	if errors.As(err, &e) {
		return strings.ReplaceAll(string(e.Kind), " ", "_")
	}
	return "error"
}
