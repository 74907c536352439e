package observability

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsCollector manages all metrics for the analysis service
type MetricsCollector struct {
	meter metric.Meter

	// Analysis metrics
	analysesTotal    metric.Int64Counter
	analysisDuration metric.Float64Histogram
	analysisErrors   metric.Int64Counter

	// SOS metrics
	sosDispatches metric.Int64Counter

	// Result cache metrics
	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter

	// Server for Prometheus scraping
	prometheusServer *http.Server
}

// MetricsConfig configures the metrics collector
type MetricsConfig struct {
	Enabled        bool `yaml:"enabled"`
	PrometheusPort int  `yaml:"prometheus_port"`
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(config MetricsConfig) (*MetricsCollector, error) {
	if !config.Enabled {
		return &MetricsCollector{}, nil
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter("kiddoo")

	analysesTotal, err := meter.Int64Counter(
		"kiddoo.analyses.total",
		metric.WithDescription("Total number of completed analyses"),
		metric.WithUnit("{analysis}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyses counter: %w", err)
	}

	analysisDuration, err := meter.Float64Histogram(
		"kiddoo.analysis.duration",
		metric.WithDescription("Analysis pipeline duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis duration histogram: %w", err)
	}

	analysisErrors, err := meter.Int64Counter(
		"kiddoo.analysis.errors.total",
		metric.WithDescription("Total number of failed analyses"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis errors counter: %w", err)
	}

	sosDispatches, err := meter.Int64Counter(
		"kiddoo.sos.dispatches.total",
		metric.WithDescription("Total number of per-contact SOS dispatch outcomes"),
		metric.WithUnit("{dispatch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sos dispatches counter: %w", err)
	}

	cacheHits, err := meter.Int64Counter(
		"kiddoo.result_cache.hits.total",
		metric.WithDescription("Analysis result cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache hits counter: %w", err)
	}

	cacheMisses, err := meter.Int64Counter(
		"kiddoo.result_cache.misses.total",
		metric.WithDescription("Analysis result cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache misses counter: %w", err)
	}

	collector := &MetricsCollector{
		meter:            meter,
		analysesTotal:    analysesTotal,
		analysisDuration: analysisDuration,
		analysisErrors:   analysisErrors,
		sosDispatches:    sosDispatches,
		cacheHits:        cacheHits,
		cacheMisses:      cacheMisses,
	}

	if config.PrometheusPort > 0 {
		if err := collector.StartPrometheusServer(config.PrometheusPort); err != nil {
			return nil, fmt.Errorf("failed to start prometheus server: %w", err)
		}
	}

	return collector, nil
}

// StartPrometheusServer starts the Prometheus metrics server
func (m *MetricsCollector) StartPrometheusServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promclient.Handler())

	m.prometheusServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		log.Printf("Prometheus metrics server listening on :%d", port)
		if err := m.prometheusServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Prometheus server error: %v", err)
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the metrics collector
func (m *MetricsCollector) Shutdown(ctx context.Context) error {
	if m.prometheusServer != nil {
		return m.prometheusServer.Shutdown(ctx)
	}
	return nil
}

// RecordAnalysis records one completed analysis
func (m *MetricsCollector) RecordAnalysis(ctx context.Context, state string, mode string, duration time.Duration) {
	if m.analysesTotal == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("state", state),
		attribute.String("mode", mode),
	}

	m.analysesTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.analysisDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("state", state)))
}

// RecordAnalysisError records a failed analysis
func (m *MetricsCollector) RecordAnalysisError(ctx context.Context, reason string) {
	if m.analysisErrors == nil {
		return
	}
	m.analysisErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RecordSOSDispatch records one per-contact SOS dispatch outcome
func (m *MetricsCollector) RecordSOSDispatch(ctx context.Context, status string) {
	if m.sosDispatches == nil {
		return
	}
	m.sosDispatches.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordCacheHit records an analysis result cache hit
func (m *MetricsCollector) RecordCacheHit(ctx context.Context) {
	if m.cacheHits == nil {
		return
	}
	m.cacheHits.Add(ctx, 1)
}

// RecordCacheMiss records an analysis result cache miss
func (m *MetricsCollector) RecordCacheMiss(ctx context.Context) {
	if m.cacheMisses == nil {
		return
	}
	m.cacheMisses.Add(ctx, 1)
}
