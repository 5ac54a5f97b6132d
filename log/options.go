package log

import (
	"github.com/jonboulle/clockwork"
)

type (
	minLevelOption Level
	coloringOption bool
	clockOption    struct {
		clock clockwork.Clock
	}
)

func (o minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(o)
}

func (o coloringOption) applySimpleOption(l *defaultLogger) {
	l.coloring = bool(o)
}

func (o clockOption) applySimpleOption(l *defaultLogger) {
	if o.clock != nil {
		l.clock = o.clock
	}
}

func WithMinLevel(level Level) minLevelOption {
	return minLevelOption(level)
}

func WithColoring() coloringOption {
	return true
}

func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}

// Option configures trace adapters built by Query and Retry.
type Option func(l *wrapper)

// WithLogQuery enables logging of query texts.
func WithLogQuery() Option {
	return func(l *wrapper) {
		l.logQuery = true
	}
}
