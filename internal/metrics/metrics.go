package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/spigell/career-predictor/internal/career"
)

const namespace = "career"

// Metrics holds the predictor collectors. A nil *Metrics records nothing.
type Metrics struct {
	Predictions      *prometheus.CounterVec
	Rejected         prometheus.Counter
	EvaluateDuration prometheus.Histogram
	TrainingDuration prometheus.Gauge
	TrainingSamples  prometheus.Gauge
	TrainingAccuracy prometheus.Gauge
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Predictions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "predictions_total",
				Help:      "Total number of evaluated submissions by predicted role",
			},
			[]string{"label"},
		),
		Rejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_submissions_total",
			Help:      "Total number of submissions rejected as malformed",
		}),
		EvaluateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluate_duration_seconds",
			Help:      "Duration of a single evaluation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		TrainingDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "training_duration_seconds",
			Help:      "Time spent building the corpus and fitting the model at startup",
		}),
		TrainingSamples: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "training_samples",
			Help:      "Size of the synthetic training corpus",
		}),
		TrainingAccuracy: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "training_accuracy",
			Help:      "Share of training samples the fitted model labels correctly",
		}),
	}
}

func (m *Metrics) ObservePrediction(label career.Label, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Predictions.WithLabelValues(label.String()).Inc()
	m.EvaluateDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRejected() {
	if m == nil {
		return
	}
	m.Rejected.Inc()
}

func (m *Metrics) ObserveTraining(samples int, elapsed time.Duration, accuracy float64) {
	if m == nil {
		return
	}
	m.TrainingSamples.Set(float64(samples))
	m.TrainingDuration.Set(elapsed.Seconds())
	m.TrainingAccuracy.Set(accuracy)
}
