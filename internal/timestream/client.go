package timestream

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/timestreamquery"
	"golang.org/x/time/rate"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xsync"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
)

// MaxPageRows is the upper bound of MaxRows accepted by the service.
const MaxPageRows = 1000

var (
	_ transport.Client = (*Client)(nil)
	_ API              = (*timestreamquery.Client)(nil)

	errUnknownExecution = errors.New("unknown execution")
)

// API is the subset of the Timestream query client used by Client.
type API interface {
	Query(
		ctx context.Context, params *timestreamquery.QueryInput, optFns ...func(*timestreamquery.Options),
	) (*timestreamquery.QueryOutput, error)
	CancelQuery(
		ctx context.Context, params *timestreamquery.CancelQueryInput, optFns ...func(*timestreamquery.Options),
	) (*timestreamquery.CancelQueryOutput, error)
}

// Client implements transport.Client over the Timestream Query API.
// The service continues a query by the same query string and a next token,
// so Client remembers the request of every unfinished execution. The request
// is forgotten after the last page, a permanent fetch failure or Cancel;
// callers which abandon an execution midway should cancel it.
type Client struct {
	api     API
	limiter *rate.Limiter

	executions xsync.Map[string, *timestreamquery.QueryInput]
}

type Option func(c *Client)

// WithRequestRate limits the rate of API calls. Zero limit means no limit.
func WithRequestRate(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limiter = rate.NewLimiter(limit, max(1, burst))
		}
	}
}

func New(api API, opts ...Option) *Client {
	c := &Client{
		api:     api,
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// NewFromConfig makes a Client with the SDK retryer disabled: failed calls
// are retried by the query executor.
func NewFromConfig(cfg aws.Config, opts ...Option) *Client {
	return New(timestreamquery.NewFromConfig(cfg, func(o *timestreamquery.Options) {
		o.Retryer = aws.NopRetryer{}
	}), opts...)
}

func (c *Client) Submit(ctx context.Context, req transport.SubmitRequest) (*transport.Submission, error) {
	input := &timestreamquery.QueryInput{
		QueryString: aws.String(req.Text),
	}
	if req.ClientToken != "" {
		input.ClientToken = aws.String(req.ClientToken)
	}
	if req.PageSizeHint > 0 {
		input.MaxRows = aws.Int32(int32(min(req.PageSizeHint, MaxPageRows)))
	}

	output, err := c.query(ctx, input)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	id := aws.ToString(output.QueryId)
	if id == "" {
		return &transport.Submission{}, nil
	}
	page, err := decodePage(output)
	if err != nil {
		// the service runs the query, the caller may still cancel it
		return &transport.Submission{ExecutionID: id}, xerrors.WithStackTrace(err)
	}
	if page.HasMore() {
		c.executions.Set(id, &timestreamquery.QueryInput{
			QueryString: input.QueryString,
			MaxRows:     input.MaxRows,
		})
	}

	return &transport.Submission{
		ExecutionID: id,
		Page:        page,
	}, nil
}

// Pending returns the number of executions with pages left to fetch.
func (c *Client) Pending() int {
	return c.executions.Len()
}

func (c *Client) FetchPage(ctx context.Context, executionID, token string) (*transport.Page, error) {
	base, has := c.executions.Get(executionID)
	if !has {
		return nil, xerrors.WithStackTrace(
			transport.Permanent(errUnknownExecution, "UnknownExecution"),
		)
	}

	output, err := c.query(ctx, &timestreamquery.QueryInput{
		QueryString: base.QueryString,
		MaxRows:     base.MaxRows,
		NextToken:   aws.String(token),
	})
	if err != nil {
		if !retriable(err) {
			c.forget(executionID)
		}

		return nil, xerrors.WithStackTrace(err)
	}
	if id := aws.ToString(output.QueryId); id != "" && id != executionID {
		c.forget(executionID)

		return nil, xerrors.WithStackTrace(xerrors.Protocolf(
			"page of execution %q returned for %q", id, executionID,
		))
	}
	page, err := decodePage(output)
	if err != nil {
		c.forget(executionID)

		return nil, xerrors.WithStackTrace(err)
	}
	if !page.HasMore() {
		c.forget(executionID)
	}

	return page, nil
}

func (c *Client) Cancel(ctx context.Context, executionID string) error {
	if err := c.wait(ctx); err != nil {
		return xerrors.WithStackTrace(err)
	}
	_, err := c.api.CancelQuery(ctx, &timestreamquery.CancelQueryInput{
		QueryId: aws.String(executionID),
	})
	if err != nil {
		return xerrors.WithStackTrace(classify(err))
	}
	c.forget(executionID)

	return nil
}

func (c *Client) query(ctx context.Context, input *timestreamquery.QueryInput) (*timestreamquery.QueryOutput, error) {
	if err := c.wait(ctx); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	output, err := c.api.Query(ctx, input)
	if err != nil {
		return nil, xerrors.WithStackTrace(classify(err))
	}
	if output == nil {
		return nil, xerrors.WithStackTrace(xerrors.Protocolf("empty query output"))
	}

	return output, nil
}

// wait blocks until the limiter allows a call. A limiter refusal because
// of the ctx deadline is reported as context.DeadlineExceeded.
func (c *Client) wait(ctx context.Context) error {
	err := c.limiter.Wait(ctx)
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return xerrors.Join(context.DeadlineExceeded, err)
	}
}

// retriable reports whether a later FetchPage of the same page may succeed.
func retriable(err error) bool {
	return xerrors.IsTransient(err) ||
		xerrors.Is(err, context.Canceled) ||
		xerrors.Is(err, context.DeadlineExceeded)
}

func (c *Client) forget(executionID string) {
	c.executions.Extract(executionID)
}

func decodePage(output *timestreamquery.QueryOutput) (*transport.Page, error) {
	rows, err := decodeRows(output.ColumnInfo, output.Rows)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return &transport.Page{
		Columns:   decodeColumns(output.ColumnInfo),
		Rows:      rows,
		NextToken: aws.ToString(output.NextToken),
	}, nil
}
