// Package telemetry configures tracing, metrics, and log export for the cvss
// commands.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const pkgname = `github.com/quay/cvss/internal/telemetry`

// Config selects the telemetry outputs. The zero Config disables all of
// them.
type Config struct {
	// TraceFile is a path to write JSON-formatted spans to.
	TraceFile string
	// MetricsFile is a path to write Prometheus text-format metrics to on
	// Shutdown.
	MetricsFile string
	// OTLP enables export of spans, metrics, and logs over OTLP. The
	// exporters are configured by the standard OTEL_EXPORTER_OTLP_*
	// environment variables.
	OTLP bool
	// OTLPProtocol is the OTLP transport: "http/protobuf" (the default) or
	// "grpc".
	OTLPProtocol string
	// Service is reported as the "service.name" resource attribute.
	Service string
}

// Telemetry is the configured set of providers.
//
// The providers are installed as the [otel] globals, so instrumentation uses
// the usual [otel.Tracer] and [otel.Meter] functions.
type Telemetry struct {
	metricsFile string
	registry    *prometheus.Registry
	prom        promMetrics
	logHandler  slog.Handler
	// Shutdown functions, run in reverse order.
	shutdown []func(context.Context) error
}

// Setup configures the providers described by "cfg".
//
// If an error is returned, anything already configured has been shut down and
// the metrics file is not written.
func Setup(ctx context.Context, cfg Config) (_ *Telemetry, err error) {
	t := &Telemetry{
		metricsFile: cfg.MetricsFile,
		registry:    prometheus.NewRegistry(),
	}
	t.prom = newPromMetrics(t.registry)
	defer func() {
		if err != nil {
			err = errors.Join(err, t.stop(ctx))
		}
	}()

	svc := cfg.Service
	if svc == "" {
		svc = "cvss"
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", svc),
			attribute.String("service.instance.id", uuid.NewString()),
		))
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating resource: %w", err)
	}

	var tpOpts []sdktrace.TracerProviderOption
	if cfg.TraceFile != "" {
		f, err := os.Create(cfg.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("telemetry: opening trace file: %w", err)
		}
		t.shutdown = append(t.shutdown, func(context.Context) error {
			return errors.Join(f.Sync(), f.Close())
		})
		exp, err := stdouttrace.New(stdouttrace.WithWriter(f))
		if err != nil {
			return nil, fmt.Errorf("telemetry: creating stdout exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	}

	if cfg.OTLP {
		exp, err := newOTLP(ctx, cfg.OTLPProtocol)
		if err != nil {
			return nil, err
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp.trace))

		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp.metric)),
		)
		otel.SetMeterProvider(mp)
		t.shutdown = append(t.shutdown, mp.Shutdown)

		lp := sdklog.NewLoggerProvider(
			sdklog.WithResource(res),
			sdklog.WithProcessor(sdklog.NewBatchProcessor(exp.log)),
		)
		global.SetLoggerProvider(lp)
		t.shutdown = append(t.shutdown, lp.Shutdown)
		t.logHandler = otelslog.NewHandler(pkgname, otelslog.WithLoggerProvider(lp))
	}

	if len(tpOpts) != 0 {
		tpOpts = append(tpOpts,
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		tp := sdktrace.NewTracerProvider(tpOpts...)
		otel.SetTracerProvider(tp)
		t.shutdown = append(t.shutdown, tp.Shutdown)
	}

	return t, nil
}

// OtlpExporters is the set of exporters for one OTLP transport.
type otlpExporters struct {
	trace  *otlptrace.Exporter
	metric sdkmetric.Exporter
	log    sdklog.Exporter
}

// NewOTLP constructs the exporters for the named protocol.
//
// If an error is returned, any exporters already constructed have been shut
// down.
func newOTLP(ctx context.Context, proto string) (exp otlpExporters, err error) {
	switch proto {
	case "", "http/protobuf":
		if exp.trace, err = otlptracehttp.New(ctx); err != nil {
			break
		}
		if exp.metric, err = otlpmetrichttp.New(ctx); err != nil {
			exp.metric = nil
			break
		}
		if exp.log, err = otlploghttp.New(ctx); err != nil {
			exp.log = nil
		}
	case "grpc":
		if exp.trace, err = otlptracegrpc.New(ctx); err != nil {
			break
		}
		if exp.metric, err = otlpmetricgrpc.New(ctx); err != nil {
			exp.metric = nil
			break
		}
		if exp.log, err = otlploggrpc.New(ctx); err != nil {
			exp.log = nil
		}
	default:
		return exp, fmt.Errorf("telemetry: unknown OTLP protocol %q", proto)
	}
	if err != nil {
		return otlpExporters{}, errors.Join(
			fmt.Errorf("telemetry: creating OTLP exporter: %w", err),
			exp.shutdown(ctx),
		)
	}
	return exp, nil
}

// Shutdown stops the exporters that were constructed. The constructors return
// typed nil pointers on failure, so those fields are cleared by newOTLP.
func (e otlpExporters) shutdown(ctx context.Context) error {
	var errs []error
	if e.log != nil {
		errs = append(errs, e.log.Shutdown(ctx))
	}
	if e.metric != nil {
		errs = append(errs, e.metric.Shutdown(ctx))
	}
	if e.trace != nil {
		errs = append(errs, e.trace.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// LogHandler returns a [slog.Handler] that exports records over OTLP, or nil
// if OTLP export is not configured.
func (t *Telemetry) LogHandler() slog.Handler {
	return t.logHandler
}

// Shutdown flushes and stops all the configured providers, then writes the
// metrics file, if configured.
//
// Shutdown should be called exactly once.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	errs := []error{t.stop(ctx)}
	if t.metricsFile != "" {
		if err := prometheus.WriteToTextfile(t.metricsFile, t.registry); err != nil {
			errs = append(errs, fmt.Errorf("telemetry: writing metrics: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Stop runs the shutdown functions.
func (t *Telemetry) stop(ctx context.Context) error {
	var errs []error
	for _, f := range slices.Backward(t.shutdown) {
		errs = append(errs, f(ctx))
	}
	t.shutdown = nil
	return errors.Join(errs...)
}
