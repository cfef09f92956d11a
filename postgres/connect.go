package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"github.com/thanhminhmr/go-errchain/errors"
)

const (
	errorParseConfig = errors.String("Postgres: Parse config failed")
	errorConnect     = errors.String("Postgres: Connect failed")
)

// Connect connects to the PostgreSQL instance that is specified in the
// environment variables, retrying on failure. Failures come back as chained
// errors so call sites render on a single line.
func Connect(
	logger *zerolog.Logger,
	config *Config,
	extraConfig *ExtraConfig,
) (*pgxpool.Pool, error) {
	// parse configuration
	parsedConfig, err := pgxpool.ParseConfig(connectionURL(config, extraConfig))
	if err != nil {
		return nil, errorParseConfig.WithCause(Describe(err))
	}

	// set log level
	logLevel, err := tracelog.LogLevelFromString(extraConfig.LogLevel)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed parsing log level for PostgreSQL, default to level Info.")
		logLevel = tracelog.LogLevelInfo
	}

	// set other parameters
	parsedConfig.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   tracelog.LoggerFunc(contextLogger),
		LogLevel: logLevel,
	}
	parsedConfig.MinConns = extraConfig.MinConnections
	parsedConfig.MaxConns = extraConfig.MaxConnections

	// try connect
	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(
		extraConfig.MaxRetry,
		retry.NewConstant(time.Duration(extraConfig.RetryInterval)*time.Second),
	)
	if err := retry.Do(context.Background(), backoff, retryConnect(logger, parsedConfig, &pool)); err != nil {
		described := errorConnect.WithCause(Describe(err))
		logger.Error().Err(described).Msg("Failed connecting to PostgreSQL!")
		return nil, described
	}

	return pool, nil
}

func connectionURL(config *Config, extraConfig *ExtraConfig) string {
	host := config.Host
	if port := config.Port; port != "" {
		host = host + ":" + port
	}
	targetUrl := &url.URL{
		Scheme: "postgres",
		Host:   host,
		Path:   config.DatabaseName,
	}
	if config.Username != "" || config.Password != "" {
		targetUrl.User = url.UserPassword(config.Username, config.Password)
	}
	query := targetUrl.Query()
	if timeout := extraConfig.ConnectionTimeout; timeout > 0 {
		query.Add("connect_timeout", fmt.Sprint(timeout))
	}
	if sslMode := extraConfig.SSLMode; sslMode != "" {
		query.Add("sslmode", sslMode)
	}
	if sslCert := extraConfig.SSLCert; sslCert != "" {
		query.Add("sslcert", sslCert)
	}
	if sslKey := extraConfig.SSLKey; sslKey != "" {
		query.Add("sslkey", sslKey)
	}
	if rootCert := extraConfig.SSLRootCert; rootCert != "" {
		query.Add("sslrootcert", rootCert)
	}
	targetUrl.RawQuery = query.Encode()
	return targetUrl.String()
}

func contextLogger(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	logger := zerolog.Ctx(ctx)
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelError:
		event = logger.Error()
	case tracelog.LogLevelWarn:
		event = logger.Warn()
	case tracelog.LogLevelInfo:
		event = logger.Info()
	case tracelog.LogLevelDebug:
		event = logger.Debug()
	case tracelog.LogLevelTrace:
		event = logger.Trace()
	default:
		return
	}
	event.Any("data", data).Msg(msg)
}

func retryConnect(logger *zerolog.Logger, config *pgxpool.Config, outputPool **pgxpool.Pool) retry.RetryFunc {
	return func(ctx context.Context) error {
		pool, err := pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed connecting to PostgreSQL, retrying...")
			return retry.RetryableError(err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			logger.Warn().Err(err).Msg("Failed connecting to PostgreSQL, retrying...")
			return retry.RetryableError(err)
		}
		*outputPool = pool
		return nil
	}
}
