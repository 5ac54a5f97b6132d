package query

// Query is an immutable request to the query service.
type Query struct {
	text         string
	name         string
	pageSizeHint int
}

type Option func(q *Query)

// WithName labels the query in traces and logs.
func WithName(name string) Option {
	return func(q *Query) {
		q.name = name
	}
}

// WithPageSizeHint asks the service for at most n rows per page.
// Zero means the service default.
func WithPageSizeHint(n int) Option {
	return func(q *Query) {
		if n > 0 {
			q.pageSizeHint = n
		}
	}
}

func New(text string, opts ...Option) Query {
	q := Query{text: text}
	for _, opt := range opts {
		if opt != nil {
			opt(&q)
		}
	}

	return q
}

func (q Query) Text() string {
	return q.text
}

func (q Query) Name() string {
	return q.name
}

func (q Query) PageSizeHint() int {
	return q.pageSizeHint
}
