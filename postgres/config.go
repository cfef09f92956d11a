package postgres

import "github.com/thanhminhmr/go-errchain/configuration"

// Config defines the options that are used when connecting to a PostgreSQL instance
type Config struct {
	Host         string `env:"POSTGRES_HOST" validate:"required,hostname|ip"`
	Port         string `env:"POSTGRES_PORT" validate:"omitempty,numeric"`
	Username     string `env:"POSTGRES_USER" validate:"required"`
	Password     string `env:"POSTGRES_PASSWORD" validate:"required"`
	DatabaseName string `env:"POSTGRES_DB_NAME" validate:"required"`
}

type ExtraConfig struct {
	LogLevel          string `env:"POSTGRES_LOG_LEVEL" validate:"oneof=trace debug info warn error none"`
	ConnectionTimeout uint32 `env:"POSTGRES_CONNECTION_TIMEOUT" validate:"min=0,max=600"`
	MinConnections    int32  `env:"POSTGRES_MIN_CONNECTIONS" validate:"min=0,max=1024"`
	MaxConnections    int32  `env:"POSTGRES_MAX_CONNECTIONS" validate:"min=1,max=1024"`
	MaxRetry          uint64 `env:"POSTGRES_MAX_RETRY" validate:"min=0,max=100"`
	RetryInterval     uint32 `env:"POSTGRES_RETRY_INTERVAL" validate:"min=1,max=600"`
	SSLMode           string `env:"POSTGRES_SSL_MODE"`
	SSLCert           string `env:"POSTGRES_SSL_CERT"`
	SSLKey            string `env:"POSTGRES_SSL_KEY"`
	SSLRootCert       string `env:"POSTGRES_SSL_ROOT_CERT"`
}

func init() {
	configuration.SetDefault("POSTGRES_LOG_LEVEL", "info")
	configuration.SetDefault("POSTGRES_CONNECTION_TIMEOUT", "10")
	configuration.SetDefault("POSTGRES_MIN_CONNECTIONS", "0")
	configuration.SetDefault("POSTGRES_MAX_CONNECTIONS", "4")
	configuration.SetDefault("POSTGRES_MAX_RETRY", "5")
	configuration.SetDefault("POSTGRES_RETRY_INTERVAL", "3")
}
