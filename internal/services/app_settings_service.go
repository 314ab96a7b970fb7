package services

import (
	"context"
	"errors"
	"time"

	"ridgeai/internal/models"
	"ridgeai/internal/repositories"
)

type AppSettingsService interface {
	Get() (*models.AppSettings, error)
	Update(provider string, deepAnalysis bool, locale string) (*models.AppSettings, error)
	Startup(ctx context.Context)
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
	context     context.Context
}

func (s *appSettingsService) Startup(ctx context.Context) {
	s.context = ctx
}

func NewAppSettingsService(appSettings repositories.AppSettingsRepository) AppSettingsService {
	return &appSettingsService{appSettings: appSettings}
}

func (s *appSettingsService) Get() (*models.AppSettings, error) {
	settings, err := s.appSettings.Get(context.Background())
	if errors.Is(err, repositories.ErrStorageUnavailable) {
		// Without a usable store the settings are simply absent.
		return models.DefaultAppSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *appSettingsService) Update(provider string, deepAnalysis bool, locale string) (*models.AppSettings, error) {
	if provider == "" {
		return nil, errors.New("provider is required")
	}
	if provider != models.ProviderGemini && provider != models.ProviderOpenRouter {
		return nil, errors.New("provider must be 'gemini' or 'openrouter'")
	}
	if locale == "" {
		return nil, errors.New("locale is required")
	}

	// Get current settings
	current, err := s.appSettings.Get(context.Background())
	if err != nil {
		return nil, err
	}

	// Update fields
	current.Provider = provider
	current.DeepAnalysis = deepAnalysis
	current.Locale = locale
	current.UpdatedAt = time.Now()

	if err := s.appSettings.Update(context.Background(), current); err != nil {
		return nil, err
	}

	return current, nil
}
