package metrics

// Registry is interface for metrics registry
type Registry interface {
	// CounterVec returns CounterVec by name, subsystem and labels
	// If counter by args already created - return counter from cache
	// If counter by args nothing - create and return newest counter
	CounterVec(name string, labelNames ...string) CounterVec

	// GaugeVec returns GaugeVec by name, subsystem and labels
	// If gauge by args already created - return gauge from cache
	// If gauge by args nothing - create and return newest gauge
	GaugeVec(name string, labelNames ...string) GaugeVec

	// TimerVec returns TimerVec by name, subsystem and labels
	// If timer by args already created - return timer from cache
	// If timer by args nothing - create and return newest timer
	TimerVec(name string, labelNames ...string) TimerVec

	// HistogramVec returns HistogramVec by name, subsystem and labels
	// If histogram by args already created - return histogram from cache
	// If histogram by args nothing - create and return newest histogram
	HistogramVec(name string, buckets []float64, labelNames ...string) HistogramVec
}

// Counter counts value
type Counter interface {
	Inc()
}

// CounterVec returns Counter from CounterVec by labels
type CounterVec interface {
	With(labels map[string]string) Counter
}

// Gauge tracks single float64 value.
type Gauge interface {
	Add(value float64)
	Set(value float64)
}

// GaugeVec returns Gauge from GaugeVec by labels
type GaugeVec interface {
	With(labels map[string]string) Gauge
}

// HistogramVec stores multiple dynamically created histograms
type HistogramVec interface {
	With(labels map[string]string) Histogram
}

// Histogram tracks distribution of value.
type Histogram interface {
	Record(value float64)
}
