package query

import (
	"context"
	"errors"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/query/config"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/retry"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
)

var _ transport.Client = (*retryClient)(nil)

// retryClient repeats Submit and FetchPage on transient failures.
// Cancel is sent once.
type retryClient struct {
	cc   transport.Client
	opts []retry.Option
}

func newRetryClient(cc transport.Client, cfg *config.Config) *retryClient {
	return &retryClient{
		cc: cc,
		opts: []retry.Option{
			retry.WithAttempts(cfg.RetryAttempts()),
			retry.WithFastBackoff(cfg.FastBackoff()),
			retry.WithSlowBackoff(cfg.SlowBackoff()),
			retry.WithClock(cfg.Clock()),
			retry.WithTrace(cfg.RetryTrace()),
		},
	}
}

func (c *retryClient) Submit(ctx context.Context, req transport.SubmitRequest) (s *transport.Submission, _ error) {
	err := retry.Retry(ctx, func(ctx context.Context) (err error) {
		s, err = c.cc.Submit(ctx, req)
		if err != nil {
			return classify(err)
		}

		return nil
	}, append(c.opts, retry.WithLabel("submit"))...)
	if err != nil {
		// s of the last attempt may carry the identifier of an accepted query
		return s, xerrors.WithStackTrace(err)
	}

	return s, nil
}

func (c *retryClient) FetchPage(ctx context.Context, executionID, token string) (p *transport.Page, _ error) {
	err := retry.Retry(ctx, func(ctx context.Context) (err error) {
		p, err = c.cc.FetchPage(ctx, executionID, token)
		if err != nil {
			return classify(err)
		}

		return nil
	}, append(c.opts, retry.WithLabel("fetch"))...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return p, nil
}

func (c *retryClient) Cancel(ctx context.Context, executionID string) error {
	if err := c.cc.Cancel(ctx, executionID); err != nil {
		return xerrors.WithStackTrace(classify(err))
	}

	return nil
}

// classify marks unknown failures of the service as permanent transport
// errors.
func classify(err error) error {
	switch {
	case xerrors.IsTransportError(err),
		xerrors.IsProtocolError(err),
		xerrors.RetryableError(err) != nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return xerrors.Transport(err)
	}
}
