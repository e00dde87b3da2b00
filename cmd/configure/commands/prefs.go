package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"petminder/internal/config"
	"petminder/internal/database"
	"petminder/internal/models"
	"petminder/internal/validation"

	"github.com/spf13/cobra"
)

// NewPrefsCmd creates the preferences command with list and set subcommands.
func NewPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage stored preferences",
		Long:  "List or update the theme and notification preferences stored in the database.",
	}
	cmd.AddCommand(newPrefsListCmd())
	cmd.AddCommand(newPrefsSetCmd())
	return cmd
}

func newPrefsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeDB, err := openPreferences()
			if err != nil {
				return err
			}
			defer closeDB()

			prefs, err := repo.Load(context.Background())
			if err != nil {
				return fmt.Errorf("load preferences: %w", err)
			}

			fmt.Println("Preferences:")
			fmt.Printf("  Theme: %s\n", prefs.Theme)
			fmt.Printf("  Notifications: %t\n", prefs.NotificationsEnabled)
			return nil
		},
	}
}

func newPrefsSetCmd() *cobra.Command {
	var theme string
	var notifications string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set preferences",
		Long:  "Update the theme (light, dark) and/or the notifications flag (true, false).",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme = strings.TrimSpace(theme)
			notifications = strings.TrimSpace(notifications)
			if theme == "" && notifications == "" {
				return fmt.Errorf("nothing to set: provide --theme and/or --notifications")
			}

			repo, closeDB, err := openPreferences()
			if err != nil {
				return err
			}
			defer closeDB()

			ctx := context.Background()
			if theme != "" {
				if err := validation.ValidateTheme(theme); err != nil {
					return err
				}
				if err := repo.SetTheme(ctx, models.Theme(theme)); err != nil {
					return fmt.Errorf("set theme: %w", err)
				}
			}
			if notifications != "" {
				enabled := notifications == "true"
				if notifications != "true" && notifications != "false" {
					return fmt.Errorf("--notifications must be 'true' or 'false'")
				}
				if err := repo.SetNotificationsEnabled(ctx, enabled); err != nil {
					return fmt.Errorf("set notifications: %w", err)
				}
			}

			fmt.Println("Preferences updated.")
			return nil
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "Theme (light, dark)")
	cmd.Flags().StringVar(&notifications, "notifications", "", "Notifications enabled (true, false)")
	return cmd
}

// openPreferences opens the database and returns the preferences repository
// plus a close function for deferred cleanup.
func openPreferences() (*database.PreferencesRepository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := database.New(cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
		}
	}
	return database.NewPreferencesRepository(db), closeDB, nil
}
