package aprsobj

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes what the retransmission scheduler is doing.
// A nil *Metrics is fine to call and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	Transmissions   *prometheus.CounterVec
	KilledExhausted prometheus.Counter
	OwnedObjects    prometheus.Gauge
	SweepDuration   prometheus.Histogram
	LogErrors       prometheus.Counter
}

// NewMetrics registers against reg, or the default registerer if nil.
// Registering twice hands back the collectors already there.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	var gatherer = prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	var m = &Metrics{gatherer: gatherer}
	var err error

	if m.Transmissions, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aprsobj_transmissions_total",
		Help: "Object and item packets handed to the transmitter.",
	}, []string{"kind", "state"})); err != nil {
		return nil, err
	}

	if m.KilledExhausted, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aprsobj_killed_exhausted_total",
		Help: "Killed objects and items that have used up their retransmissions.",
	})); err != nil {
		return nil, err
	}

	if m.OwnedObjects, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "aprsobj_owned_objects",
		Help: "Objects and items currently owned by this station.",
	})); err != nil {
		return nil, err
	}

	if m.SweepDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aprsobj_sweep_duration_seconds",
		Help:    "Time taken by one retransmission sweep.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})); err != nil {
		return nil, err
	}

	if m.LogErrors, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aprsobj_log_errors_total",
		Help: "Failures writing the object log.",
	})); err != nil {
		return nil, err
	}

	return m, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return c, fmt.Errorf("collector already registered with incompatible type: %w", err)
		}
		return c, err
	}
	return c, nil
}

// Handler serves the registry the metrics were registered with.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) transmitted(o *Object, killed bool) {
	if m == nil {
		return
	}
	m.Transmissions.WithLabelValues(IfThenElse(o.IsItem(), "item", "object"), IfThenElse(killed, "killed", "live")).Inc()
}

func (m *Metrics) exhausted() {
	if m == nil {
		return
	}
	m.KilledExhausted.Inc()
}

func (m *Metrics) setOwned(n int) {
	if m == nil {
		return
	}
	m.OwnedObjects.Set(float64(n))
}

func (m *Metrics) observeSweep(d time.Duration) {
	if m == nil {
		return
	}
	m.SweepDuration.Observe(d.Seconds())
}

func (m *Metrics) logFailed() {
	if m == nil {
		return
	}
	m.LogErrors.Inc()
}
