package commands

import (
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/app"

	"github.com/spf13/cobra"
)

// HashPasswordCmd prints the bcrypt hash of the password argument for auth.admin_password_hash
func HashPasswordCmd(cmd *cobra.Command, args []string) error {
	hash, err := app.HashPassword(args[0])
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
	return err
}

func initPasswordCommands(rootCmd *cobra.Command) {
	var hashPasswordCmd = &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash of an admin password",
		Args:  cobra.ExactArgs(1),
		RunE:  HashPasswordCmd,
	}
	rootCmd.AddCommand(hashPasswordCmd)
}
