// Package catalog holds the named queries over the sample DevOps table.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
)

const (
	DefaultDatabase = "devops_multi_sample_application_db"
	DefaultTable    = "host_metrics_sample_application_table"
	DefaultHostname = "host-24Gju"
	DefaultLimit    = 20000
)

var (
	errUnknownQuery = errors.New("unknown query")
	errNoTable      = errors.New("database and table must be set")
)

// Params substitutes into query templates.
type Params struct {
	Database string
	Table    string
	Hostname string
	Limit    int
}

func DefaultParams() Params {
	return Params{
		Database: DefaultDatabase,
		Table:    DefaultTable,
		Hostname: DefaultHostname,
		Limit:    DefaultLimit,
	}
}

type Entry struct {
	Name        string
	Description string
	// Analytic entries are the ones run by RunAll.
	Analytic bool

	tmpl *template.Template
}

func (e Entry) Render(p Params) (string, error) {
	if p.Database == "" || p.Table == "" {
		return "", xerrors.WithStackTrace(errNoTable)
	}
	var b strings.Builder
	if err := e.tmpl.Execute(&b, p); err != nil {
		return "", xerrors.WithStackTrace(fmt.Errorf("render %q: %w", e.Name, err))
	}

	return strings.Join(strings.Fields(b.String()), " "), nil
}

// Query renders the entry into a query named after it.
func (e Entry) Query(p Params, opts ...query.Option) (query.Query, error) {
	text, err := e.Render(p)
	if err != nil {
		return query.Query{}, err
	}

	return query.New(text, append([]query.Option{query.WithName(e.Name)}, opts...)...), nil
}

var entries = func() []Entry {
	list := make([]Entry, len(sources))
	for i, s := range sources {
		list[i] = Entry{
			Name:        s.name,
			Description: s.description,
			Analytic:    s.analytic,
			tmpl:        template.Must(template.New(s.name).Option("missingkey=error").Parse(s.text)),
		}
	}

	return list
}()

// List returns all entries in catalog order.
func List() []Entry {
	return append([]Entry(nil), entries...)
}

func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}

	return Entry{}, xerrors.WithStackTrace(fmt.Errorf("%w: %q", errUnknownQuery, name))
}

// Analytic returns the queries of all analytic entries in catalog order.
func Analytic(p Params, opts ...query.Option) ([]query.Query, error) {
	var queries []query.Query
	for _, e := range entries {
		if !e.Analytic {
			continue
		}
		q, err := e.Query(p, opts...)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	return queries, nil
}
