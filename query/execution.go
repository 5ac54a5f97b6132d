package query

import (
	"context"
	"iter"
)

type (
	// Execution is a handle of one submitted query.
	Execution interface {
		// ID returns the identifier assigned by the service or empty string
		// if the query was not accepted yet.
		ID() string
		Query() Query
		State() State
		// Err returns the recorded failure of a Failed execution.
		Err() error
		// Done is closed when the execution reaches a terminal state.
		Done() <-chan struct{}
	}

	// Executor runs queries and pages through their results.
	Executor interface {
		// Run submits q and returns after the submission completed or failed.
		// The returned execution is never nil.
		Run(ctx context.Context, q Query) (Execution, error)

		// Start submits q in background and returns at once. Rows waits for
		// the submission, Cancel may be called before the service assigned
		// an identifier.
		Start(ctx context.Context, q Query) Execution

		// Rows iterates all rows of e in page order. Iteration stops at the
		// first error. Every call to Rows shares the same underlying cursor:
		// rows already delivered are never delivered again.
		Rows(ctx context.Context, e Execution) iter.Seq2[Row, error]

		// Cancel asks the service to stop e. Cancel of a finished execution
		// is a no-op.
		Cancel(ctx context.Context, e Execution) error

		// ReadAll runs q and collects all its rows.
		ReadAll(ctx context.Context, q Query) ([]Row, error)
	}
)
