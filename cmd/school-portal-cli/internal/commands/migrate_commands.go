package commands

import (
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler runs the schema migration
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes a MigrateCommandHandler with a console logger
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &MigrateCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates every table of the configured database
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("Failed to close database", "error", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	commandHandler.logger.Info("Database migrations completed successfully", "type", cfg.Database.Type)
	return nil
}

func initMigrateCommands(rootCmd *cobra.Command) {
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewMigrateCommandHandler()
			if err != nil {
				return err
			}
			return handler.MigrateCmd(cmd, args)
		},
	}
	rootCmd.AddCommand(migrateCmd)
}
