package services

import (
	"context"

	"gorm.io/gorm"

	"ridgeai/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	AppSettings AppSettingsService
	Usage       UsageService
	History     HistoryService

	settingsRepo repositories.AppSettingsRepository
}

// NewDbServices constructs the service container using repositories backed by
// db. A nil db wires the unavailable repositories instead, so the app keeps
// running with default settings and empty history when the database cannot be
// opened.
func NewDbServices(db *gorm.DB) *DbServices {
	var (
		settingsRepo repositories.AppSettingsRepository
		usageRepo    repositories.UsageRepository
		historyRepo  repositories.HistoryRepository
	)
	if db != nil {
		settingsRepo = repositories.NewAppSettingsRepository(db)
		usageRepo = repositories.NewUsageRepository(db)
		historyRepo = repositories.NewHistoryRepository(db)
	} else {
		settingsRepo = repositories.NewUnavailableAppSettingsRepository()
		usageRepo = repositories.NewUnavailableUsageRepository()
		historyRepo = repositories.NewUnavailableHistoryRepository()
	}

	return &DbServices{
		AppSettings:  NewAppSettingsService(settingsRepo),
		Usage:        NewUsageService(usageRepo),
		History:      NewHistoryService(historyRepo),
		settingsRepo: settingsRepo,
	}
}

// SettingsRepo exposes the settings repository for constructor injection
// into the comparison orchestrator.
func (s *DbServices) SettingsRepo() repositories.AppSettingsRepository {
	return s.settingsRepo
}

// StartDbServices hands the runtime context to every DB-backed service.
func (s *DbServices) StartDbServices(ctx context.Context) {
	s.AppSettings.Startup(ctx)
	s.Usage.Startup(ctx)
	s.History.Startup(ctx)
}
