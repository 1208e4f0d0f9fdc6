package services

import (
	"context"
	"net/http"
	"testing"

	"IsletmeBulucu/models"
	"IsletmeBulucu/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_DefaultsToSystemTheme(t *testing.T) {
	svc := NewSettingsService(NewMemoryStore())

	settings, err := svc.Get(context.Background(), "client")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeSystem, settings.Theme)
	assert.Empty(t, settings.Model)
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(NewMemoryStore(), "gpt-4o-mini", "gpt-4o")

	theme, model := " Dark ", "gpt-4o"
	settings, err := svc.Update(ctx, "client", SettingsUpdate{Theme: &theme, Model: &model})
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, settings.Theme)
	assert.Equal(t, "gpt-4o", settings.Model)
	assert.False(t, settings.UpdatedAt.IsZero())

	// A partial update keeps the other field.
	theme = "light"
	settings, err = svc.Update(ctx, "client", SettingsUpdate{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", settings.Model)

	bad := "sepia"
	_, err = svc.Update(ctx, "client", SettingsUpdate{Theme: &bad})
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))

	stored, err := svc.Get(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, stored.Theme)
}

func TestSettingsService_RejectsModelOutsideAllowList(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(NewMemoryStore(), "gpt-4o-mini")

	expensive := "gpt-4.5-preview"
	_, err := svc.Update(ctx, "client", SettingsUpdate{Model: &expensive})
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
	assert.Equal(t, "Model must be one of: gpt-4o-mini", err.Error())

	stored, err := svc.Get(ctx, "client")
	require.NoError(t, err)
	assert.Empty(t, stored.Model)

	// An empty model resets to the configured default.
	empty := ""
	settings, err := svc.Update(ctx, "client", SettingsUpdate{Model: &empty})
	require.NoError(t, err)
	assert.Empty(t, settings.Model)

	assert.False(t, NewSettingsService(NewMemoryStore()).ModelAllowed("gpt-4o-mini"))
}

func TestSettingsService_ToggleTheme(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(NewMemoryStore())

	for _, want := range []string{models.ThemeDark, models.ThemeLight, models.ThemeDark} {
		settings, err := svc.ToggleTheme(ctx, "client")
		require.NoError(t, err)
		assert.Equal(t, want, settings.Theme)
	}
}
