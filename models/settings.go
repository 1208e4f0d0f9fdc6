package models

import "time"

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Settings are the per-client preferences.
type Settings struct {
	Theme     string    `json:"theme" firestore:"theme"`
	Model     string    `json:"model" firestore:"model"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func DefaultSettings() Settings {
	return Settings{Theme: ThemeSystem}
}
