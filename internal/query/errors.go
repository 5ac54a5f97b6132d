package query

import (
	"errors"
)

// ErrCancelled is returned to row consumers of a cancelled execution.
var ErrCancelled = errors.New("query execution cancelled")

var (
	errNotSubmitted     = errors.New("query execution is not submitted")
	errExhausted        = errors.New("all pages already delivered")
	errNoExecutionID    = errors.New("submission without execution id")
	errNilPage          = errors.New("nil page")
	errForeignExecution = errors.New("execution was not created by this executor")
)
