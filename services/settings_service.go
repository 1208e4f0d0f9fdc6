package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"IsletmeBulucu/models"
	"IsletmeBulucu/utils"
)

type SettingsService struct {
	Store         SettingsStore
	AllowedModels []string
	now           func() time.Time
}

// NewSettingsService creates the service. Clients may only pick one of
// allowedModels; an empty model always means the configured default.
func NewSettingsService(store SettingsStore, allowedModels ...string) *SettingsService {
	return &SettingsService{Store: store, AllowedModels: allowedModels, now: time.Now}
}

// ModelAllowed reports whether a stored model may still be used.
func (s *SettingsService) ModelAllowed(model string) bool {
	if model == "" {
		return true
	}
	for _, m := range s.AllowedModels {
		if m == model {
			return true
		}
	}
	return false
}

// SettingsUpdate carries the fields a client wants to change; nil leaves a
// field as it is.
type SettingsUpdate struct {
	Theme *string `json:"theme"`
	Model *string `json:"model"`
}

func (s *SettingsService) Get(ctx context.Context, clientID string) (models.Settings, error) {
	settings, err := s.Store.GetSettings(ctx, clientID)
	if errors.Is(err, ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	if settings.Theme == "" {
		settings.Theme = models.ThemeSystem
	}
	return *settings, nil
}

func (s *SettingsService) Update(ctx context.Context, clientID string, update SettingsUpdate) (models.Settings, error) {
	settings, err := s.Get(ctx, clientID)
	if err != nil {
		return models.Settings{}, err
	}

	if update.Theme != nil {
		theme := strings.ToLower(strings.TrimSpace(*update.Theme))
		if !validTheme(theme) {
			return models.Settings{}, utils.BadRequest("Theme must be one of light, dark or system")
		}
		settings.Theme = theme
	}
	if update.Model != nil {
		model := strings.TrimSpace(*update.Model)
		if !s.ModelAllowed(model) {
			return models.Settings{}, utils.BadRequest("Model must be one of: " + strings.Join(s.AllowedModels, ", "))
		}
		settings.Model = model
	}

	return s.save(ctx, clientID, settings)
}

// ToggleTheme flips between light and dark. A client on the system theme
// switches to dark.
func (s *SettingsService) ToggleTheme(ctx context.Context, clientID string) (models.Settings, error) {
	settings, err := s.Get(ctx, clientID)
	if err != nil {
		return models.Settings{}, err
	}
	if settings.Theme == models.ThemeDark {
		settings.Theme = models.ThemeLight
	} else {
		settings.Theme = models.ThemeDark
	}
	return s.save(ctx, clientID, settings)
}

func (s *SettingsService) save(ctx context.Context, clientID string, settings models.Settings) (models.Settings, error) {
	settings.UpdatedAt = s.now().UTC()
	if err := s.Store.SaveSettings(ctx, clientID, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func validTheme(theme string) bool {
	switch theme {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		return true
	}
	return false
}
