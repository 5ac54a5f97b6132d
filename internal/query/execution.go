package query

import (
	"context"
	"sync"
	"time"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/stack"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xcontext"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
)

var _ query.Execution = (*execution)(nil)

// execution owns the lifecycle of one query:
//
//	Created -> Submitted -> Running -> {Succeeded, Failed, Cancelled}
//
// All transitions happen under mu. fetchMu keeps at most one page fetch
// in flight. The cursor is set before submitted is closed and is only
// used by fetches after that.
type execution struct {
	q             query.Query
	client        transport.Client
	trace         *trace.Query
	clientToken   string
	cancelTimeout time.Duration

	fetchMu sync.Mutex
	// unread holds rows of the last page which the consumer stopped before
	unread []query.Row

	mu              sync.Mutex
	state           query.State
	id              string
	err             error
	cancelRequested bool
	cancelErr       error
	cursor          *pageCursor

	// submitted is closed when the submission resolves either way.
	submitted chan struct{}
	// cancelled is closed when the single Cancel call resolves or the
	// queued cancellation becomes unnecessary.
	cancelled chan struct{}
	done      chan struct{}
}

func newExecution(
	q query.Query,
	client transport.Client,
	t *trace.Query,
	clientToken string,
	cancelTimeout time.Duration,
) *execution {
	return &execution{
		q:             q,
		client:        client,
		trace:         t,
		clientToken:   clientToken,
		cancelTimeout: cancelTimeout,
		state:         query.StateCreated,
		submitted:     make(chan struct{}),
		cancelled:     make(chan struct{}),
		done:          make(chan struct{}),
	}
}

func (e *execution) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.id
}

func (e *execution) Query() query.Query {
	return e.q
}

func (e *execution) State() query.State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

func (e *execution) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.errLocked()
}

func (e *execution) errLocked() error {
	switch e.state {
	case query.StateFailed:
		return e.err
	case query.StateCancelled:
		return xerrors.WithStackTrace(ErrCancelled, xerrors.WithSkipDepth(1))
	default:
		return nil
	}
}

func (e *execution) Done() <-chan struct{} {
	return e.done
}

// setState must be called with mu held.
func (e *execution) setState(ctx context.Context, to query.State, err error) {
	from := e.state
	if from == to || from.IsTerminal() {
		return
	}
	e.state = to
	if to == query.StateFailed {
		e.err = err
	}
	trace.QueryOnStateChange(e.trace, ctx, e.id, e.q.Name(), from, to, err)
	if to.IsTerminal() {
		close(e.done)
	}
}

// submit sends the query to the service and waits for the answer.
// Failures are recorded in the execution and returned.
func (e *execution) submit(ctx context.Context) error {
	e.begin(ctx)

	return e.resolve(ctx)
}

// begin moves the execution to Submitted. Executions are begun once, right
// after newExecution.
func (e *execution) begin(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.setState(ctx, query.StateSubmitted, nil)
}

// resolve performs the Submit call of a begun execution.
func (e *execution) resolve(ctx context.Context) (finalErr error) {
	defer close(e.submitted)

	var (
		onDone = trace.QueryOnSubmit(e.trace, &ctx, stack.FunctionID(""), e.q.Text(), e.clientToken)
		rows   int
		more   bool
	)

	id, cursor, err := e.send(ctx)
	defer func() {
		onDone(id, rows, more, finalErr)
	}()
	if cursor != nil {
		rows = len(cursor.first.Rows)
		more = cursor.first.HasMore()
	}

	e.mu.Lock()
	e.id = id
	if err != nil {
		err = xerrors.WithStackTrace(err)
		switch {
		case e.cancelRequested && id != "":
			// the service knows the query: the queued cancel goes out
			e.mu.Unlock()
			e.dispatchCancel(ctx, id)

			return e.Err()
		case e.cancelRequested:
			defer e.mu.Unlock()
			e.setState(ctx, query.StateCancelled, nil)
			close(e.cancelled)

			return e.errLocked()
		default:
			defer e.mu.Unlock()
			e.setState(ctx, query.StateFailed, err)

			return e.err
		}
	}
	e.cursor = cursor
	e.setState(ctx, query.StateRunning, nil)
	pendingCancel := e.cancelRequested
	e.mu.Unlock()

	if pendingCancel {
		e.dispatchCancel(ctx, id)
	}

	return nil
}

// send returns the execution identifier whenever the service assigned one,
// also together with an error about the rest of the answer.
func (e *execution) send(ctx context.Context) (string, *pageCursor, error) {
	submission, err := e.client.Submit(ctx, transport.SubmitRequest{
		Text:         e.q.Text(),
		PageSizeHint: e.q.PageSizeHint(),
		ClientToken:  e.clientToken,
	})
	var id string
	if submission != nil {
		id = submission.ExecutionID
	}
	if err != nil {
		return id, nil, xerrors.WithStackTrace(err)
	}
	if id == "" {
		return "", nil, xerrors.WithStackTrace(xerrors.Protocol(errNoExecutionID))
	}
	cursor, err := newPageCursor(e.client, e.trace, id, submission.Page)
	if err != nil {
		return id, nil, xerrors.WithStackTrace(err)
	}

	return id, cursor, nil
}

// cancel asks the service to stop the execution and waits for the answer.
// Only the first call sends Cancel, the others wait for its result.
func (e *execution) cancel(ctx context.Context) error {
	e.mu.Lock()
	switch {
	case e.state == query.StateCreated:
		e.mu.Unlock()

		return xerrors.WithStackTrace(xerrors.InvalidState(errNotSubmitted))
	case e.state.IsTerminal():
		e.mu.Unlock()

		return nil
	}
	var (
		dispatch bool
		id       = e.id
	)
	if !e.cancelRequested {
		e.cancelRequested = true
		// without id the submission path dispatches the cancel
		dispatch = id != ""
	}
	e.mu.Unlock()

	if dispatch {
		e.dispatchCancel(ctx, id)
	}

	select {
	case <-e.cancelled:
		e.mu.Lock()
		defer e.mu.Unlock()

		return e.cancelErr
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	}
}

func (e *execution) dispatchCancel(ctx context.Context, id string) {
	ctx, cancel := xcontext.WithDetachedTimeout(ctx, e.cancelTimeout)
	defer cancel()

	onDone := trace.QueryOnCancel(e.trace, &ctx, stack.FunctionID(""), id)
	err := e.client.Cancel(ctx, id)
	onDone(err)

	e.mu.Lock()
	defer e.mu.Unlock()
	defer close(e.cancelled)

	if err != nil {
		e.cancelErr = xerrors.WithStackTrace(err)
		e.setState(ctx, query.StateFailed, e.cancelErr)

		return
	}
	e.setState(ctx, query.StateCancelled, nil)
}

// nextPage returns rows of the next page. It waits for a submission which
// is still in progress.
func (e *execution) nextPage(ctx context.Context) (_ []query.Row, hasMore bool, _ error) {
	select {
	case <-e.submitted:
	case <-ctx.Done():
		return nil, false, xerrors.WithStackTrace(ctx.Err())
	default:
		if e.State() == query.StateCreated {
			return nil, false, xerrors.WithStackTrace(xerrors.InvalidState(errNotSubmitted))
		}
		select {
		case <-e.submitted:
		case <-ctx.Done():
			return nil, false, xerrors.WithStackTrace(ctx.Err())
		}
	}

	e.fetchMu.Lock()
	defer e.fetchMu.Unlock()

	if len(e.unread) > 0 {
		return e.takeUnread()
	}

	e.mu.Lock()
	err := e.checkFetchable()
	e.mu.Unlock()
	if err != nil {
		return nil, false, err
	}

	rows, hasMore, err := e.cursor.fetchNext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	// cancellation requested during the fetch discards its result
	if cerr := e.checkFetchable(); cerr != nil {
		return nil, false, cerr
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && xerrors.Is(err, ctxErr) {
			return nil, false, xerrors.WithStackTrace(err)
		}
		e.setState(ctx, query.StateFailed, xerrors.WithStackTrace(err))

		return nil, false, e.err
	}
	if !hasMore {
		e.setState(ctx, query.StateSucceeded, nil)
	}

	return rows, hasMore, nil
}

// checkFetchable must be called with mu held.
func (e *execution) checkFetchable() error {
	switch {
	case e.state == query.StateCreated:
		return xerrors.WithStackTrace(xerrors.InvalidState(errNotSubmitted))
	case e.state == query.StateFailed:
		return e.err
	case e.state == query.StateCancelled || e.cancelRequested:
		return xerrors.WithStackTrace(ErrCancelled)
	case e.state == query.StateSucceeded:
		return xerrors.WithStackTrace(xerrors.InvalidState(errExhausted))
	case e.cursor == nil:
		return xerrors.WithStackTrace(xerrors.InvalidState(errNotSubmitted))
	default:
		return nil
	}
}

// takeUnread must be called with fetchMu held.
func (e *execution) takeUnread() ([]query.Row, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == query.StateCancelled || e.cancelRequested {
		e.unread = nil

		return nil, false, xerrors.WithStackTrace(ErrCancelled)
	}
	rows := e.unread
	e.unread = nil

	return rows, e.state == query.StateRunning, nil
}

// putBack returns rows which were fetched but not consumed.
func (e *execution) putBack(rows []query.Row) {
	if len(rows) == 0 {
		return
	}

	e.fetchMu.Lock()
	defer e.fetchMu.Unlock()

	e.unread = append(append([]query.Row(nil), rows...), e.unread...)
}
