package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/catalog"
)

const envPrefix = "TSQUERY"

// Config is merged from flags, TSQUERY_* environment variables and an
// optional tsquery.yaml in that order of precedence.
type Config struct {
	Region      string  `mapstructure:"region"`
	Database    string  `mapstructure:"database"`
	Table       string  `mapstructure:"table"`
	Hostname    string  `mapstructure:"hostname"`
	PageSize    int     `mapstructure:"page-size"`
	Retries     int     `mapstructure:"retries"`
	RequestRate float64 `mapstructure:"request-rate"`
	LogLevel    string  `mapstructure:"log-level"`
}

func (c *Config) Params() catalog.Params {
	p := catalog.DefaultParams()
	p.Database = c.Database
	p.Table = c.Table
	p.Hostname = c.Hostname

	return p
}

func bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./tsquery.yaml)")
	flags.String("region", "", "AWS region, default from the AWS configuration chain")
	flags.String("database", catalog.DefaultDatabase, "database of catalog queries")
	flags.String("table", catalog.DefaultTable, "table of catalog queries")
	flags.String("hostname", catalog.DefaultHostname, "host of catalog queries")
	flags.Int("page-size", 0, "maximum rows per page, 0 for the service default")
	flags.Int("retries", 0, "attempts of failed service calls, 0 for the default")
	flags.Float64("request-rate", 0, "maximum service calls per second, 0 for no limit")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
}

func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("tsquery")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
