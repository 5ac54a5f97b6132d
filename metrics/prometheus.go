package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xsync"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

var _ Config = (*prometheusConfig)(nil)

type prometheusConfig struct {
	registerer prometheus.Registerer
	namespace  string
	subsystems []string
	details    trace.Details

	// collectors shares created vectors between configs of one registry
	collectors *xsync.Map[string, prometheus.Collector]
}

// Prometheus returns Config which registers metrics in registerer.
func Prometheus(registerer prometheus.Registerer, namespace string, details trace.Details) *prometheusConfig {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &prometheusConfig{
		registerer: registerer,
		namespace:  namespace,
		details:    details,
		collectors: &xsync.Map[string, prometheus.Collector]{},
	}
}

func (c *prometheusConfig) Details() trace.Details {
	return c.details
}

func (c *prometheusConfig) WithSystem(subsystem string) Config {
	return &prometheusConfig{
		registerer: c.registerer,
		namespace:  c.namespace,
		subsystems: append(c.subsystems[:len(c.subsystems):len(c.subsystems)], subsystem),
		details:    c.details,
		collectors: c.collectors,
	}
}

func (c *prometheusConfig) subsystem() string {
	return strings.Join(c.subsystems, "_")
}

func (c *prometheusConfig) key(name string) string {
	return prometheus.BuildFQName(c.namespace, c.subsystem(), name)
}

// register returns cached collector by key or registers a new one.
func register[T prometheus.Collector](c *prometheusConfig, key string, create func() T) T {
	if existing, ok := c.collectors.Get(key); ok {
		if v, ok := existing.(T); ok {
			return v
		}
	}
	v := create()
	if err := c.registerer.Register(v); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok { //nolint:errorlint
			if existing, ok := are.ExistingCollector.(T); ok {
				v = existing
			}
		}
	}
	c.collectors.Set(key, v)

	return v
}

func (c *prometheusConfig) CounterVec(name string, labelNames ...string) CounterVec {
	return &counterVec{
		vec: register(c, c.key(name), func() *prometheus.CounterVec {
			return prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: c.namespace,
				Subsystem: c.subsystem(),
				Name:      name,
			}, labelNames)
		}),
	}
}

func (c *prometheusConfig) GaugeVec(name string, labelNames ...string) GaugeVec {
	return &gaugeVec{
		vec: register(c, c.key(name), func() *prometheus.GaugeVec {
			return prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: c.namespace,
				Subsystem: c.subsystem(),
				Name:      name,
			}, labelNames)
		}),
	}
}

func (c *prometheusConfig) TimerVec(name string, labelNames ...string) TimerVec {
	return &timerVec{
		vec: register(c, c.key(name), func() *prometheus.HistogramVec {
			return prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: c.namespace,
				Subsystem: c.subsystem(),
				Name:      name + "_seconds",
				Buckets:   prometheus.DefBuckets,
			}, labelNames)
		}),
	}
}

func (c *prometheusConfig) HistogramVec(name string, buckets []float64, labelNames ...string) HistogramVec {
	return &histogramVec{
		vec: register(c, c.key(name), func() *prometheus.HistogramVec {
			return prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: c.namespace,
				Subsystem: c.subsystem(),
				Name:      name,
				Buckets:   buckets,
			}, labelNames)
		}),
	}
}

type counterVec struct {
	vec *prometheus.CounterVec
}

func (v *counterVec) With(labels map[string]string) Counter {
	return v.vec.With(labels)
}

type gaugeVec struct {
	vec *prometheus.GaugeVec
}

func (v *gaugeVec) With(labels map[string]string) Gauge {
	return v.vec.With(labels)
}

type histogramVec struct {
	vec *prometheus.HistogramVec
}

func (v *histogramVec) With(labels map[string]string) Histogram {
	return observer{v.vec.With(labels)}
}

type observer struct {
	o prometheus.Observer
}

func (o observer) Record(value float64) {
	o.o.Observe(value)
}

type timerVec struct {
	vec *prometheus.HistogramVec
}

func (v *timerVec) With(labels map[string]string) Timer {
	return timer{v.vec.With(labels)}
}

type timer struct {
	o prometheus.Observer
}

func (t timer) Record(value time.Duration) {
	t.o.Observe(value.Seconds())
}
