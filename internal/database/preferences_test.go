package database

import (
	"context"
	"testing"

	"petminder/internal/models"
)

func TestPreferencesRepository_Defaults(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPreferencesRepository(db)
	ctx := context.Background()

	prefs, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if prefs.Theme != models.ThemeLight {
		t.Errorf("Expected default theme light, got %q", prefs.Theme)
	}
	if prefs.NotificationsEnabled {
		t.Error("Expected notifications disabled by default")
	}
}

func TestPreferencesRepository_SetAndGet(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPreferencesRepository(db)
	ctx := context.Background()

	if err := repo.SetTheme(ctx, models.ThemeDark); err != nil {
		t.Fatalf("SetTheme() returned error: %v", err)
	}
	if err := repo.SetNotificationsEnabled(ctx, true); err != nil {
		t.Fatalf("SetNotificationsEnabled() returned error: %v", err)
	}

	theme, err := repo.GetTheme(ctx)
	if err != nil {
		t.Fatalf("GetTheme() returned error: %v", err)
	}
	if theme != models.ThemeDark {
		t.Errorf("Expected theme dark, got %q", theme)
	}

	enabled, err := repo.GetNotificationsEnabled(ctx)
	if err != nil {
		t.Fatalf("GetNotificationsEnabled() returned error: %v", err)
	}
	if !enabled {
		t.Error("Expected notifications enabled")
	}

	// Overwrite and read back again.
	if err := repo.SetTheme(ctx, models.ThemeLight); err != nil {
		t.Fatalf("SetTheme() returned error: %v", err)
	}
	theme, err = repo.GetTheme(ctx)
	if err != nil {
		t.Fatalf("GetTheme() returned error: %v", err)
	}
	if theme != models.ThemeLight {
		t.Errorf("Expected theme light after overwrite, got %q", theme)
	}
}

func TestPreferencesRepository_UnknownStoredThemeFallsBack(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewPreferencesRepository(db)
	ctx := context.Background()

	if err := repo.set(ctx, prefKeyTheme, "sepia"); err != nil {
		t.Fatalf("set() returned error: %v", err)
	}

	theme, err := repo.GetTheme(ctx)
	if err != nil {
		t.Fatalf("GetTheme() returned error: %v", err)
	}
	if theme != models.ThemeLight {
		t.Errorf("Expected fallback to light for unknown value, got %q", theme)
	}
}
