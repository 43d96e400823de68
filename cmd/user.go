package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	userEmail    string
	userPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		password := userPassword
		if password == "" {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = string(raw)
		}

		user, err := appInstance.AuthService.Register(cmd.Context(), args[0], userEmail, password)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		fmt.Printf("Created user %q with ID %d.\n", user.Username, user.ID)
		return nil
	},
}

var userPurgeSessionsCmd = &cobra.Command{
	Use:   "purge-sessions",
	Short: "Delete expired sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		n, err := appInstance.AuthService.PurgeExpiredSessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to purge sessions: %w", err)
		}
		fmt.Printf("Deleted %d expired sessions.\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userPurgeSessionsCmd)

	userCreateCmd.Flags().StringVarP(&userEmail, "email", "e", "", "Email address for the account")
	userCreateCmd.Flags().StringVarP(&userPassword, "password", "p", "", "Password (prompted interactively when omitted)")
}
