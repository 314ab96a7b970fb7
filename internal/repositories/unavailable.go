package repositories

import (
	"context"
	"errors"

	"ridgeai/internal/models"
)

// ErrStorageUnavailable is returned by every operation of the unavailable
// repositories. Services treat it as "settings absent, history empty" so a
// comparison can still run off an environment key when the local database
// cannot be opened.
var ErrStorageUnavailable = errors.New("storage unavailable")

// NewUnavailableAppSettingsRepository returns a settings repository whose
// every operation fails with ErrStorageUnavailable.
func NewUnavailableAppSettingsRepository() AppSettingsRepository {
	return unavailableSettingsRepository{}
}

// NewUnavailableUsageRepository returns a usage repository whose every
// operation fails with ErrStorageUnavailable.
func NewUnavailableUsageRepository() UsageRepository {
	return unavailableUsageRepository{}
}

// NewUnavailableHistoryRepository returns a history repository whose every
// operation fails with ErrStorageUnavailable.
func NewUnavailableHistoryRepository() HistoryRepository {
	return unavailableHistoryRepository{}
}

type unavailableSettingsRepository struct{}

func (unavailableSettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	return nil, ErrStorageUnavailable
}

func (unavailableSettingsRepository) Update(ctx context.Context, settings *models.AppSettings) error {
	return ErrStorageUnavailable
}

type unavailableUsageRepository struct{}

func (unavailableUsageRepository) Get(ctx context.Context) (*models.UsageStat, error) {
	return nil, ErrStorageUnavailable
}

func (unavailableUsageRepository) RecordScan(ctx context.Context, day string, tokens int64) (*models.UsageStat, error) {
	return nil, ErrStorageUnavailable
}

type unavailableHistoryRepository struct{}

func (unavailableHistoryRepository) Create(ctx context.Context, record *models.HistoryRecord) (uint, error) {
	return 0, ErrStorageUnavailable
}

func (unavailableHistoryRepository) List(ctx context.Context) ([]models.HistoryRecord, error) {
	return nil, ErrStorageUnavailable
}

func (unavailableHistoryRepository) Get(ctx context.Context, id uint) (*models.HistoryRecord, error) {
	return nil, ErrStorageUnavailable
}

func (unavailableHistoryRepository) Delete(ctx context.Context, id uint) error {
	return ErrStorageUnavailable
}
