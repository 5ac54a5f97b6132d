package query

import (
	"context"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/stack"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
	"github.com/tsquery-platform/tsquery-go-sdk/types"
)

// pageCursor walks the pages of one execution. It is not safe for
// concurrent use: the owning execution serializes fetches.
type pageCursor struct {
	client      transport.Client
	trace       *trace.Query
	executionID string

	columns []types.Column
	// first is the page which came with the submission, nil once delivered.
	first *transport.Page
	// token to request the next page with, empty if no more pages.
	token string
	// pages counts delivered pages
	pages int
}

func newPageCursor(
	client transport.Client,
	t *trace.Query,
	executionID string,
	first *transport.Page,
) (*pageCursor, error) {
	columns, err := checkPage(nil, first, "")
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return &pageCursor{
		client:      client,
		trace:       t,
		executionID: executionID,
		columns:     columns,
		first:       first,
		token:       first.NextToken,
	}, nil
}

func (c *pageCursor) exhausted() bool {
	return c.first == nil && c.token == ""
}

// fetchNext returns the rows of the next page and reports whether more
// pages follow.
func (c *pageCursor) fetchNext(ctx context.Context) (_ []query.Row, hasMore bool, finalErr error) {
	if c.first != nil {
		page := c.first
		c.first = nil
		c.pages++

		return pageRows(c.columns, page), page.HasMore(), nil
	}
	if c.exhausted() {
		return nil, false, xerrors.WithStackTrace(xerrors.InvalidState(errExhausted))
	}

	onDone := trace.QueryOnFetchPage(c.trace, &ctx, stack.FunctionID(""), c.executionID, c.pages+1)
	var rows int
	defer func() {
		onDone(rows, hasMore, finalErr)
	}()

	page, err := c.client.FetchPage(ctx, c.executionID, c.token)
	if err != nil {
		return nil, false, xerrors.WithStackTrace(err)
	}
	columns, err := checkPage(c.columns, page, c.token)
	if err != nil {
		return nil, false, xerrors.WithStackTrace(err)
	}
	c.columns = columns
	c.token = page.NextToken
	c.pages++
	rows = len(page.Rows)

	return pageRows(c.columns, page), page.HasMore(), nil
}
