package transport

import (
	"context"

	"github.com/tsquery-platform/tsquery-go-sdk/types"
)

//go:generate mockgen -destination ../internal/mock/transport_client.go -package mock . Client

// Client is the contract of the remote query service.
type Client interface {
	// Submit starts a query. The returned submission carries the execution
	// identifier and the first page of results. When the service accepted
	// the query but its answer is unusable, Submit returns the error along
	// with a submission which has only ExecutionID set.
	Submit(ctx context.Context, req SubmitRequest) (*Submission, error)

	// FetchPage returns the page which follows token.
	FetchPage(ctx context.Context, executionID, token string) (*Page, error)

	// Cancel asks the service to stop the execution.
	Cancel(ctx context.Context, executionID string) error
}

type SubmitRequest struct {
	Text string
	// PageSizeHint is the maximum number of rows per page, zero for the
	// service default.
	PageSizeHint int
	// ClientToken makes resubmission of the same request idempotent.
	ClientToken string
}

type Submission struct {
	ExecutionID string
	Page        *Page
}

// Page is one batch of rows. Empty NextToken means there are no more pages.
type Page struct {
	Columns   []types.Column
	Rows      [][]types.Value
	NextToken string
}

func (p *Page) HasMore() bool {
	return p != nil && p.NextToken != ""
}
