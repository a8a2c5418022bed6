package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var settingsValidator = validator.New()

func validateSection(name string, s interface{}) error {
	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}
	return nil
}

// DatabaseSettings holds the relational store connection details
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	// Name is created on first connect when set (postgres only)
	Name            string        `mapstructure:"name"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"min=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	return validateSection("DatabaseSettings", s)
}

// BlobConnectorSettings configures object storage for gallery images, resources and CVs
type BlobConnectorSettings struct {
	CloudProvider    string `mapstructure:"cloud_provider" validate:"required,oneof=azure"`
	ConnectionString string `mapstructure:"connection_string" validate:"required"`
	ContainerName    string `mapstructure:"container_name" validate:"required"`
	// PublicBaseURL replaces the storage account URL in generated links, e.g. a CDN host.
	PublicBaseURL string `mapstructure:"public_base_url" validate:"omitempty,url"`
}

// Validate checks that all fields in BlobConnectorSettings are valid
func (s *BlobConnectorSettings) Validate() error {
	return validateSection("BlobConnectorSettings", s)
}

// PaymentGatewaySettings configures the order/IPN/status payment API
type PaymentGatewaySettings struct {
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	ConsumerKey    string        `mapstructure:"consumer_key" validate:"required"`
	ConsumerSecret string        `mapstructure:"consumer_secret" validate:"required"`
	IPNID          string        `mapstructure:"ipn_id"`
	CallbackURL    string        `mapstructure:"callback_url" validate:"required,url"`
	Currency       string        `mapstructure:"currency" validate:"required,len=3"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in PaymentGatewaySettings are valid
func (s *PaymentGatewaySettings) Validate() error {
	return validateSection("PaymentGatewaySettings", s)
}

// ContentConnectorSettings configures the headless content backend. An empty ProjectID disables it.
type ContentConnectorSettings struct {
	ProjectID  string `mapstructure:"project_id"`
	Dataset    string `mapstructure:"dataset" validate:"required_with=ProjectID"`
	APIVersion string `mapstructure:"api_version" validate:"required_with=ProjectID"`
	Token      string `mapstructure:"token" validate:"required_with=ProjectID"`
	// BaseURL overrides https://<project_id>.api.sanity.io
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// Enabled reports whether documents should be mirrored to the content backend
func (s *ContentConnectorSettings) Enabled() bool {
	return s.ProjectID != ""
}

// Validate checks that all fields in ContentConnectorSettings are valid
func (s *ContentConnectorSettings) Validate() error {
	return validateSection("ContentConnectorSettings", s)
}

// AuthSettings holds the single admin account and the JWT signing parameters
type AuthSettings struct {
	AdminUsername     string        `mapstructure:"admin_username" validate:"required"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash" validate:"required"`
	JWTSecret         string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenTTL          time.Duration `mapstructure:"token_ttl" validate:"required"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	return validateSection("AuthSettings", s)
}

// RedisSettings configures the shared gateway token cache
type RedisSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	return validateSection("RedisSettings", s)
}

// SiteSettings holds values the public website depends on
type SiteSettings struct {
	FrontendURL    string   `mapstructure:"frontend_url" validate:"required,url"`
	ApplicationFee string   `mapstructure:"application_fee"`
	Currency       string   `mapstructure:"currency" validate:"required,len=3"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Fee parses ApplicationFee; an empty value means applications are free.
func (s *SiteSettings) Fee() (decimal.Decimal, error) {
	if s.ApplicationFee == "" {
		return decimal.Zero, nil
	}
	fee, err := decimal.NewFromString(s.ApplicationFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid application fee %q: %w", s.ApplicationFee, err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("application fee must not be negative")
	}
	return fee, nil
}

// Validate checks that all fields in SiteSettings are valid
func (s *SiteSettings) Validate() error {
	if err := validateSection("SiteSettings", s); err != nil {
		return err
	}
	_, err := s.Fee()
	return err
}
