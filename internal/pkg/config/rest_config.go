package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SP_DATABASE_DSN
const EnvPrefix = "SP"

// RestConfig is the complete configuration of the REST API
type RestConfig struct {
	Port             string                   `mapstructure:"port"`
	Database         DatabaseSettings         `mapstructure:"database"`
	Logger           LoggerSettings           `mapstructure:"logger"`
	BlobConnector    BlobConnectorSettings    `mapstructure:"blob_connector"`
	PaymentGateway   PaymentGatewaySettings   `mapstructure:"payment_gateway"`
	ContentConnector ContentConnectorSettings `mapstructure:"content_connector"`
	Auth             AuthSettings             `mapstructure:"auth"`
	Redis            RedisSettings            `mapstructure:"redis"`
	Site             SiteSettings             `mapstructure:"site"`
}

// Validate validates every section of the configuration
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	sections := []interface{ Validate() error }{
		&c.Database,
		&c.Logger,
		&c.BlobConnector,
		&c.PaymentGateway,
		&c.ContentConnector,
		&c.Auth,
		&c.Redis,
		&c.Site,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// InitializeRestConfig loads the YAML file at path, applies .env and SP_* environment overrides and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	// a missing .env is the normal case outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.format", LogFormatText)
	v.SetDefault("blob_connector.cloud_provider", AzureCloudProvider)
	v.SetDefault("payment_gateway.timeout", 30*time.Second)
	v.SetDefault("content_connector.api_version", "2021-06-07")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("redis.db", 0)

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range []string{
		"database.type", "database.dsn", "database.name",
		"blob_connector.connection_string", "blob_connector.container_name", "blob_connector.public_base_url",
		"payment_gateway.base_url", "payment_gateway.consumer_key", "payment_gateway.consumer_secret",
		"payment_gateway.ipn_id", "payment_gateway.callback_url", "payment_gateway.currency",
		"content_connector.project_id", "content_connector.dataset", "content_connector.token", "content_connector.base_url",
		"auth.admin_username", "auth.admin_password_hash", "auth.jwt_secret",
		"redis.enabled", "redis.addr", "redis.password",
		"site.frontend_url", "site.application_fee", "site.currency",
	} {
		_ = v.BindEnv(key)
	}

	return v
}
