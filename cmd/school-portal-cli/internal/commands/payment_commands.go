package commands

import (
	"encoding/json"
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PaymentCommandHandler encapsulates the payment gateway maintenance commands
type PaymentCommandHandler struct {
	logger logger.Logger
}

// NewPaymentCommandHandler initializes a PaymentCommandHandler with a console logger
func NewPaymentCommandHandler() (*PaymentCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &PaymentCommandHandler{logger: loggerInstance}, nil
}

// RegisterIPNCmd registers the --url notification endpoint and prints the ipn id for payment_gateway.ipn_id
func (commandHandler *PaymentCommandHandler) RegisterIPNCmd(cmd *cobra.Command, _ []string) error {
	ipnURL, err := cmd.Flags().GetString("url")
	if err != nil {
		return fmt.Errorf("invalid url flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	gateway, err := newGateway(cfg, commandHandler.logger)
	if err != nil {
		return err
	}

	ipnID, err := gateway.RegisterIPN(cmd.Context(), ipnURL)
	if err != nil {
		return fmt.Errorf("failed to register IPN url: %w", err)
	}

	commandHandler.logger.Info("IPN url registered", "url", ipnURL, "ipn_id", ipnID)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ipnID)
	return err
}

// StatusCmd reconciles one order tracking id and prints the result as JSON
func (commandHandler *PaymentCommandHandler) StatusCmd(cmd *cobra.Command, args []string) error {
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

	service, err := newPaymentService(cfg, db, commandHandler.logger)
	if err != nil {
		return err
	}

	result, err := service.Reconcile(cmd.Context(), args[0], "")
	if err != nil {
		return fmt.Errorf("failed to reconcile %s: %w", args[0], err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func initPaymentCommands(rootCmd *cobra.Command) {
	var paymentsCmd = &cobra.Command{
		Use:   "payments",
		Short: "Payment gateway maintenance",
	}

	var registerIPNCmd = &cobra.Command{
		Use:   "register-ipn",
		Short: "Register the IPN url with the payment gateway and print its ipn id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewPaymentCommandHandler()
			if err != nil {
				return err
			}
			return handler.RegisterIPNCmd(cmd, args)
		},
	}
	registerIPNCmd.Flags().StringP("url", "", "", "Public URL of GET /api/v1/sp/payments/ipn")
	_ = registerIPNCmd.MarkFlagRequired("url")
	paymentsCmd.AddCommand(registerIPNCmd)

	var statusCmd = &cobra.Command{
		Use:   "status <orderTrackingId>",
		Short: "Reconcile one transaction with the payment gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewPaymentCommandHandler()
			if err != nil {
				return err
			}
			return handler.StatusCmd(cmd, args)
		},
	}
	paymentsCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(paymentsCmd)
}
