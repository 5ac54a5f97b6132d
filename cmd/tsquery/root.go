package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/tsquery-platform/tsquery-go-sdk"
	"github.com/tsquery-platform/tsquery-go-sdk/log"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

type app struct {
	cfg    *Config
	logger *zap.Logger

	// open makes the driver, replaced in tests
	open func(ctx context.Context, opts ...tsquery.Option) (*tsquery.Driver, error)
	db   *tsquery.Driver
}

func newRootCommand() *cobra.Command {
	return newApp(tsquery.Open).command()
}

func newApp(open func(ctx context.Context, opts ...tsquery.Option) (*tsquery.Driver, error)) *app {
	return &app{open: open}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "tsquery",
		Short:         "Run queries against Amazon Timestream and page through results",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	bindFlags(root)

	root.AddCommand(
		a.listCommand(),
		a.runCommand(),
		a.cancelCommand(),
		a.pagesCommand(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) (err error) {
	a.cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}
	a.logger, err = newLogger(a.cfg.LogLevel)
	if err != nil {
		return err
	}

	return nil
}

// driver opens the driver on first use: list works without AWS credentials.
func (a *app) driver(ctx context.Context, extra ...tsquery.Option) (*tsquery.Driver, error) {
	if a.db != nil {
		return a.db, nil
	}
	opts := []tsquery.Option{
		tsquery.WithLogger(log.Zap(a.logger), trace.DetailsAll),
		tsquery.WithPageSizeHint(a.cfg.PageSize),
		tsquery.WithRetryAttempts(a.cfg.Retries),
	}
	if a.cfg.Region != "" {
		opts = append(opts, tsquery.WithRegion(a.cfg.Region))
	}
	if a.cfg.RequestRate > 0 {
		opts = append(opts, tsquery.WithRequestRate(rate.Limit(a.cfg.RequestRate), 1))
	}
	db, err := a.open(ctx, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("open driver: %w", err)
	}
	a.db = db

	return db, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	return cfg.Build()
}
