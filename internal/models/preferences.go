package models

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences holds the singleton scalar settings. They are loaded
// explicitly at startup and persisted on every change; a full reset
// restores the defaults.
type Preferences struct {
	Theme                Theme `json:"theme"`
	NotificationsEnabled bool  `json:"notifications_enabled"`
}

// DefaultPreferences returns the documented defaults: light theme,
// notifications off.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:                ThemeLight,
		NotificationsEnabled: false,
	}
}
