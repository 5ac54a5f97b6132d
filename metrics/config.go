package metrics

import (
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

// Config is a registry scoped to a subsystem with enabled trace details.
type Config interface {
	Registry
	trace.Detailer

	// WithSystem returns config with subsystem appended to the metric names prefix.
	WithSystem(subsystem string) Config
}
