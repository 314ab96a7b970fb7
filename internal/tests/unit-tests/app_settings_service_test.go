package unit_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridgeai/internal/models"
	"ridgeai/internal/repositories"
	"ridgeai/internal/services"
	"ridgeai/internal/tests/mocks"
)

func TestAppSettingsService_Get_Success(t *testing.T) {
	expectedSettings := &models.AppSettings{
		ID:           1,
		Version:      1,
		Provider:     models.ProviderOpenRouter,
		DeepAnalysis: true,
		Locale:       "ar",
	}

	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return expectedSettings, nil
		},
	}
	service := services.NewAppSettingsService(mockRepo)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, expectedSettings.Provider, settings.Provider)
	assert.Equal(t, expectedSettings.DeepAnalysis, settings.DeepAnalysis)
	assert.Equal(t, expectedSettings.Locale, settings.Locale)
}

func TestAppSettingsService_Get_RepositoryError(t *testing.T) {
	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return nil, errors.New("database error")
		},
	}
	service := services.NewAppSettingsService(mockRepo)

	_, err := service.Get()
	assert.EqualError(t, err, "database error")
}

func TestAppSettingsService_Get_UnavailableStoreReadsAsDefaults(t *testing.T) {
	service := services.NewAppSettingsService(repositories.NewUnavailableAppSettingsRepository())

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, models.ProviderGemini, settings.Provider)
	assert.False(t, settings.DeepAnalysis)
	assert.Equal(t, "ar", settings.Locale)

	// Saving remains impossible; the error reaches the caller.
	_, err = service.Update(models.ProviderOpenRouter, false, "ar")
	assert.ErrorIs(t, err, repositories.ErrStorageUnavailable)
}

func TestAppSettingsService_Update_Success(t *testing.T) {
	currentSettings := &models.AppSettings{
		ID:       1,
		Version:  1,
		Provider: models.ProviderGemini,
		Locale:   "ar",
	}

	mockRepo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return currentSettings, nil
		},
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			assert.Equal(t, uint(1), settings.ID)
			assert.Equal(t, models.ProviderOpenRouter, settings.Provider)
			assert.True(t, settings.DeepAnalysis)
			return nil
		},
	}
	service := services.NewAppSettingsService(mockRepo)

	updated, err := service.Update(models.ProviderOpenRouter, true, "en")
	require.NoError(t, err)
	assert.Equal(t, models.ProviderOpenRouter, updated.Provider)
	assert.True(t, updated.DeepAnalysis)
	assert.Equal(t, "en", updated.Locale)
}

func TestAppSettingsService_Update_EmptyProvider(t *testing.T) {
	service := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{})

	_, err := service.Update("", false, "ar")
	assert.EqualError(t, err, "provider is required")
}

func TestAppSettingsService_Update_UnknownProvider(t *testing.T) {
	service := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{})

	_, err := service.Update("grok", false, "ar")
	assert.EqualError(t, err, "provider must be 'gemini' or 'openrouter'")
}

func TestAppSettingsService_Update_EmptyLocale(t *testing.T) {
	service := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{})

	_, err := service.Update(models.ProviderGemini, false, "")
	assert.EqualError(t, err, "locale is required")
}
