package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"petminder/internal/models"
)

// Preference keys in the flat key-value namespace, separate from the
// record tables.
const (
	prefKeyTheme         = "theme"
	prefKeyNotifications = "notifications"
)

// PreferencesRepository handles the singleton scalar preferences. Unlike
// the record repositories it exposes per-scalar reads and writes so the
// presentation layer can load its initial state in one cheap call and
// persist each change explicitly.
type PreferencesRepository struct {
	db *DB
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Load reads both preference scalars, substituting the documented defaults
// for any that has never been set.
func (r *PreferencesRepository) Load(ctx context.Context) (models.Preferences, error) {
	prefs := models.DefaultPreferences()

	theme, err := r.GetTheme(ctx)
	if err != nil {
		return prefs, err
	}
	prefs.Theme = theme

	enabled, err := r.GetNotificationsEnabled(ctx)
	if err != nil {
		return prefs, err
	}
	prefs.NotificationsEnabled = enabled

	return prefs, nil
}

// GetTheme returns the stored theme, or the light default when unset.
func (r *PreferencesRepository) GetTheme(ctx context.Context) (models.Theme, error) {
	value, err := r.get(ctx, prefKeyTheme)
	if err == sql.ErrNoRows {
		return models.ThemeLight, nil
	}
	if err != nil {
		return models.ThemeLight, fmt.Errorf("failed to read theme: %w", err)
	}

	theme := models.Theme(value)
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return models.ThemeLight, nil
	}
	return theme, nil
}

// SetTheme persists the theme scalar.
func (r *PreferencesRepository) SetTheme(ctx context.Context, theme models.Theme) error {
	return r.set(ctx, prefKeyTheme, string(theme))
}

// GetNotificationsEnabled returns the stored notification flag, or false
// when unset.
func (r *PreferencesRepository) GetNotificationsEnabled(ctx context.Context) (bool, error) {
	value, err := r.get(ctx, prefKeyNotifications)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read notifications flag: %w", err)
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return enabled, nil
}

// SetNotificationsEnabled persists the notification flag.
func (r *PreferencesRepository) SetNotificationsEnabled(ctx context.Context, enabled bool) error {
	return r.set(ctx, prefKeyNotifications, strconv.FormatBool(enabled))
}

func (r *PreferencesRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	return value, err
}

func (r *PreferencesRepository) set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}
