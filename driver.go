package tsquery

import (
	"context"
	"errors"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	internalQuery "github.com/tsquery-platform/tsquery-go-sdk/internal/query"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/query/config"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/timestream"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/log"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
)

var errNoTransport = errors.New("configuration: neither transport nor timestream client defined")

// TimestreamAPI is the subset of *timestreamquery.Client used by the driver.
type TimestreamAPI = timestream.API

// Driver gives access to the query executor over a query service
type Driver struct {
	logger        log.Logger
	loggerOpts    []log.Option
	loggerDetails trace.Detailer

	opts []Option

	region         string
	transport      transport.Client
	timestreamAPI  TimestreamAPI
	timestreamOpts []timestream.Option

	config  *config.Config
	options []config.Option

	query *internalQuery.Executor

	panicCallback func(e interface{})
}

// Query returns the executor of queries
func (d *Driver) Query() query.Executor {
	return d.query
}

// Transport returns the client which the executor calls through
func (d *Driver) Transport() transport.Client {
	return d.transport
}

// Region returns AWS region of the timestream client made by Open
func (d *Driver) Region() string {
	return d.region
}

// Open makes a driver. Without WithTransport or WithTimestreamClient the
// Timestream client is made from the default AWS configuration chain.
func Open(ctx context.Context, opts ...Option) (_ *Driver, err error) {
	d, err := newDriverFromOptions(ctx, opts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if d.transport == nil && d.timestreamAPI == nil {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if d.region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(d.region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, xerrors.WithStackTrace(err)
		}
		d.region = cfg.Region
		d.transport = timestream.NewFromConfig(cfg, d.timestreamOpts...)
	}

	return build(d)
}

func MustOpen(ctx context.Context, opts ...Option) *Driver {
	d, err := Open(ctx, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// New makes a driver over explicitly given transport or timestream client.
func New(ctx context.Context, opts ...Option) (_ *Driver, err error) {
	d, err := newDriverFromOptions(ctx, opts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if d.transport == nil && d.timestreamAPI == nil {
		return nil, xerrors.WithStackTrace(errNoTransport)
	}

	return build(d)
}

func newDriverFromOptions(ctx context.Context, opts ...Option) (_ *Driver, err error) {
	d := &Driver{}
	if logLevel, has := os.LookupEnv("TSQUERY_LOG_SEVERITY_LEVEL"); has {
		if l := log.FromString(logLevel); l < log.QUIET {
			d.opts = append(d.opts,
				WithLogger(
					log.Default(os.Stderr,
						log.WithMinLevel(l),
						log.WithColoring(),
					),
					trace.MatchDetails(
						os.Getenv("TSQUERY_LOG_DETAILS"),
						trace.WithDefaultDetails(trace.DetailsAll),
					),
					log.WithLogQuery(),
				),
			)
		}
	}
	d.opts = append(d.opts, opts...)
	for _, opt := range d.opts {
		if opt != nil {
			err = opt(ctx, d)
			if err != nil {
				return nil, xerrors.WithStackTrace(err)
			}
		}
	}
	if d.logger != nil {
		for _, opt := range []Option{
			WithTraceQuery(*log.Query(d.logger, d.loggerDetails, d.loggerOpts...)),
			WithTraceRetry(*log.Retry(d.logger, d.loggerDetails, d.loggerOpts...)),
		} {
			if opt != nil {
				err = opt(ctx, d)
				if err != nil {
					return nil, xerrors.WithStackTrace(err)
				}
			}
		}
	}

	return d, nil
}

func build(d *Driver) (*Driver, error) {
	if d.transport == nil {
		d.transport = timestream.New(d.timestreamAPI, d.timestreamOpts...)
	}
	d.config = config.New(d.options...)
	d.query = internalQuery.New(d.transport, d.config)

	return d, nil
}
