package commands

import (
	"fmt"
	"os"

	"github.com/hillcrest-schools/school-portal/internal/app"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/connector"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	configFlag        = "config"
	defaultConfigPath = "../../configs/rest-app.yaml"
)

// InitCommands registers every command group on rootCmd
func InitCommands(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(configFlag, "", "Path to the REST API configuration file")

	initMigrateCommands(rootCmd)
	initPasswordCommands(rootCmd)
	initPaymentCommands(rootCmd)
}

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		Format:   config.LogFormatText,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig resolves the config path from --config, then CONFIG_PATH, then the default
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", configFlag, err)
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

// openDatabase connects to the configured database
func openDatabase(cfg *config.RestConfig) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return db, nil
}

// newGateway creates a gateway client caching its token in memory for the lifetime of the command.
// Metrics are not collected.
func newGateway(cfg *config.RestConfig, log logger.Logger) (payments.Gateway, error) {
	gateway, err := connector.NewPaymentGatewayClient(&cfg.PaymentGateway, connector.NewMemoryTokenStore(), nil, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment gateway client: %w", err)
	}
	return gateway, nil
}

// newPaymentService wires the reconciliation service against the configured database and gateway
func newPaymentService(cfg *config.RestConfig, db *gorm.DB, log logger.Logger) (payments.PaymentService, error) {
	gateway, err := newGateway(cfg, log)
	if err != nil {
		return nil, err
	}

	tickets, err := persistence.NewGormTicketRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket repository: %w", err)
	}

	applications, err := persistence.NewGormApplicationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create application repository: %w", err)
	}

	service, err := app.NewPaymentService(gateway, tickets, applications, nil, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}
	return service, nil
}
