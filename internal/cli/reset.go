package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radiostream/server/internal/config"
	"github.com/radiostream/server/internal/logging"
	"github.com/radiostream/server/internal/services"
)

var resetCmd = &cobra.Command{
	Use:   "reset-credentials",
	Short: "Reset the admin account to a fresh random password",
	Long: `Resets the admin username to "admin" with a newly generated random password,
printed once to stdout. Use this when the admin credentials are lost.
This does not start the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset()
	},
}

func init() {
	RootCmd.AddCommand(resetCmd)
}

func runReset() error {
	credentials := services.NewCredentialService()

	store := config.NewStore(configPath, credentials)
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	password, err := credentials.GeneratePassword()
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := credentials.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	next := cfg.Clone()
	next.Username = config.DefaultUsername
	next.PasswordHash = hash
	if err := store.Replace(next); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logging.Log.Info("Admin credentials reset")
	fmt.Printf("Admin credentials reset.\n  username: %s\n  password: %s\nStore this password now, it is not shown again.\n", next.Username, password)
	return nil
}
