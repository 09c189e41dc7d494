package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"go-business-ws/internal/model"
	"go-business-ws/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	email    string
	password string
)

// reset-password --email ops@example.com --password newsecret
var rootCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset an operator's password and sign out their active session",
	PreRun: func(cmd *cobra.Command, args []string) {
		// 1. Load Env
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found, relying on system env")
		}
		if email == "" {
			email = os.Getenv("ADMIN_EMAIL")
		}
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if email == "" || password == "" {
			return errors.New("--email and --password are required (or ADMIN_EMAIL / ADMIN_PASSWORD)")
		}
		if len(password) < 6 {
			return errors.New("password must be at least 6 characters")
		}

		// 2. Setup Database
		db := database.ConnectDB()

		// 3. Find User
		var user model.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			return fmt.Errorf("user %s not found in database: %w", email, err)
		}

		// 4. Hash new password and end existing sessions
		if err := user.SetPassword(password); err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if err := db.Model(&user).Updates(map[string]interface{}{
			"password":      user.Password,
			"token_version": uuid.New().String(),
		}).Error; err != nil {
			return fmt.Errorf("failed to update password in DB: %w", err)
		}

		log.Printf("✅ Password for %s has been reset; active sessions were signed out", email)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&email, "email", "", "email of the account to reset (default $ADMIN_EMAIL)")
	rootCmd.Flags().StringVar(&password, "password", "", "new password (default $ADMIN_PASSWORD)")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
