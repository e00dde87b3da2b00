package handlers

import (
	"net/http"
	"testing"

	"petminder/internal/models"
)

func TestPreferencesHandler_Defaults(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	w := env.do(t, "GET", "/api/v1/preferences", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var prefs models.Preferences
	decodeData(t, w, &prefs)
	if prefs.Theme != models.ThemeLight {
		t.Errorf("Expected default theme light, got %q", prefs.Theme)
	}
	if prefs.NotificationsEnabled {
		t.Error("Expected notifications disabled by default")
	}
}

func TestPreferencesHandler_Update(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	w := env.do(t, "PUT", "/api/v1/preferences", map[string]any{
		"theme":                 "dark",
		"notifications_enabled": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var prefs models.Preferences
	decodeData(t, w, &prefs)
	if prefs.Theme != models.ThemeDark {
		t.Errorf("Expected theme dark, got %q", prefs.Theme)
	}
	if !prefs.NotificationsEnabled {
		t.Error("Expected notifications enabled")
	}

	// Partial update: only the theme changes, the flag stays on.
	w = env.do(t, "PUT", "/api/v1/preferences", map[string]any{"theme": "light"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	decodeData(t, w, &prefs)
	if prefs.Theme != models.ThemeLight {
		t.Errorf("Expected theme light, got %q", prefs.Theme)
	}
	if !prefs.NotificationsEnabled {
		t.Error("Expected notifications setting untouched by partial update")
	}
}

func TestPreferencesHandler_InvalidTheme(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	w := env.do(t, "PUT", "/api/v1/preferences", map[string]any{"theme": "sepia"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
