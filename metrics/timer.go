package metrics

import "time"

// TimerVec makes timers labelled e.g. by query name.
type TimerVec interface {
	With(labels map[string]string) Timer
}

// Timer records latencies of query calls.
type Timer interface {
	Record(value time.Duration)
}
