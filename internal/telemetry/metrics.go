package telemetry

import (
	"context"
	"image"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ironsheep/tokenorder/internal/order"
)

// Metrics records order flow and detection metrics in its own registry.
type Metrics struct {
	registry *prometheus.Registry

	flows      *prometheus.CounterVec
	violations *prometheus.CounterVec
	selections prometheus.Histogram
	amount     prometheus.Histogram

	regions         *prometheus.CounterVec
	detectDuration  prometheus.Histogram
	detectionErrors prometheus.Counter
}

// NewMetrics creates and registers all collectors under namespace.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		flows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flows_total",
			Help:      "Order flows by outcome.",
		}, []string{"outcome"}),

		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Order rule violations by kind.",
		}, []string{"kind"}),

		selections: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_selections",
			Help:      "Dishes per assembled order.",
			Buckets:   []float64{0, 1, 2, 3, 4},
		}),

		amount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "confirmed_amount_tl",
			Help:      "Total of confirmed orders in TL.",
			Buckets:   []float64{10, 20, 40, 60, 80, 100, 150},
		}),

		regions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "regions_detected_total",
			Help:      "Token regions found in photos by category and whether the shape was recognized.",
		}, []string{"category", "recognized"}),

		detectDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "detection_duration_seconds",
			Help:      "Time spent detecting regions in one photo.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),

		detectionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detection_errors_total",
			Help:      "Photos the detector failed on.",
		}),
	}

	m.registry.MustRegister(
		m.flows,
		m.violations,
		m.selections,
		m.amount,
		m.regions,
		m.detectDuration,
		m.detectionErrors,
	)
	return m
}

// RecordFlow implements order.Recorder.
func (m *Metrics) RecordFlow(outcome order.Outcome, selections, total int) {
	m.flows.WithLabelValues(outcome.String()).Inc()
	if outcome == order.OutcomeNoOrder {
		return
	}
	m.selections.Observe(float64(selections))
	if outcome == order.OutcomeConfirmed {
		m.amount.Observe(float64(total))
	}
}

// RecordViolation implements order.Recorder.
func (m *Metrics) RecordViolation(kind order.Kind) {
	m.violations.WithLabelValues(kind.String()).Inc()
}

// RecordDetection counts the regions found in one photo.
func (m *Metrics) RecordDetection(observations []order.Observation, elapsed time.Duration) {
	m.detectDuration.Observe(elapsed.Seconds())
	for _, o := range observations {
		m.regions.WithLabelValues(o.Category.String(), strconv.FormatBool(o.Recognized())).Inc()
	}
}

// InstrumentDetector wraps d so that every call is timed and its regions
// counted.
func (m *Metrics) InstrumentDetector(d order.RegionDetector) order.RegionDetector {
	return &instrumentedDetector{next: d, metrics: m}
}

type instrumentedDetector struct {
	next    order.RegionDetector
	metrics *Metrics
}

func (d *instrumentedDetector) DetectRegions(ctx context.Context, img image.Image) ([]order.Observation, error) {
	start := time.Now()
	observations, err := d.next.DetectRegions(ctx, img)
	if err != nil {
		d.metrics.detectionErrors.Inc()
		return nil, err
	}
	d.metrics.RecordDetection(observations, time.Since(start))
	return observations, nil
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
