package query

import (
	"context"
	"iter"

	"github.com/google/uuid"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/query/config"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/stack"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xcontext"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
)

var _ query.Executor = (*Executor)(nil)

type Executor struct {
	config *config.Config
	client transport.Client
}

func New(client transport.Client, cfg *config.Config) *Executor {
	return &Executor{
		config: cfg,
		client: newRetryClient(client, cfg),
	}
}

func (e *Executor) newExecution(q query.Query) *execution {
	if q.PageSizeHint() == 0 && e.config.PageSizeHint() > 0 {
		q = query.New(q.Text(), query.WithName(q.Name()), query.WithPageSizeHint(e.config.PageSizeHint()))
	}

	return newExecution(q, e.client, e.config.Trace(), uuid.NewString(), e.config.CancelTimeout())
}

func (e *Executor) Run(ctx context.Context, q query.Query) (_ query.Execution, finalErr error) {
	ex := e.newExecution(q)

	onDone := trace.QueryOnRun(e.config.Trace(), &ctx, stack.FunctionID(""), ex.q.Text(), ex.q.Name())
	defer func() {
		onDone(ex.ID(), finalErr)
	}()

	if err := ex.submit(ctx); err != nil {
		return ex, xerrors.WithStackTrace(err)
	}

	return ex, nil
}

func (e *Executor) Start(ctx context.Context, q query.Query) query.Execution {
	ex := e.newExecution(q)
	ex.begin(ctx)

	go func() {
		ctx := xcontext.ValueOnly(ctx)

		onDone := trace.QueryOnRun(e.config.Trace(), &ctx, stack.FunctionID(""), ex.q.Text(), ex.q.Name())
		err := ex.resolve(ctx)
		onDone(ex.ID(), err)
	}()

	return ex
}

func (e *Executor) own(x query.Execution) (*execution, error) {
	ex, ok := x.(*execution)
	if !ok || ex == nil || ex.client != e.client {
		return nil, xerrors.WithStackTrace(xerrors.InvalidState(errForeignExecution))
	}

	return ex, nil
}

func (e *Executor) Rows(ctx context.Context, x query.Execution) iter.Seq2[query.Row, error] {
	return func(yield func(query.Row, error) bool) {
		ex, err := e.own(x)
		if err != nil {
			yield(query.Row{}, err)

			return
		}

		if timeout := e.config.RowsTimeout(); timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		for {
			rows, hasMore, err := ex.nextPage(ctx)
			if err != nil {
				if xerrors.Is(ctx.Err(), context.DeadlineExceeded) {
					err = xerrors.DeadlineExceeded(err)
					cancelCtx, cancel := xcontext.WithDetachedTimeout(ctx, e.config.CancelTimeout())
					if cancelErr := ex.cancel(cancelCtx); cancelErr != nil {
						err = xerrors.Join(err, cancelErr)
					}
					cancel()
				}
				yield(query.Row{}, err)

				return
			}
			for i, row := range rows {
				if !yield(row, nil) {
					ex.putBack(rows[i+1:])

					return
				}
			}
			if !hasMore {
				return
			}
		}
	}
}

func (e *Executor) Cancel(ctx context.Context, x query.Execution) error {
	ex, err := e.own(x)
	if err != nil {
		return err
	}

	return ex.cancel(ctx)
}

func (e *Executor) ReadAll(ctx context.Context, q query.Query) (rows []query.Row, _ error) {
	ex, err := e.Run(ctx, q)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	for row, err := range e.Rows(ctx, ex) {
		if err != nil {
			return rows, xerrors.WithStackTrace(err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
