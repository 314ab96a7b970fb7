package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ridgeai/internal/models"
)

type UsageRepository interface {
	Get(ctx context.Context) (*models.UsageStat, error)
	// RecordScan adds one scan (and a token estimate) to the counters for
	// day. When the stored day stamp differs from day the counters restart
	// from this increment instead of accumulating onto the stale value.
	RecordScan(ctx context.Context, day string, tokens int64) (*models.UsageStat, error)
}

type usageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) Get(ctx context.Context) (*models.UsageStat, error) {
	var stat models.UsageStat
	if err := r.db.WithContext(ctx).First(&stat, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UsageStat{ID: 1}, nil
		}
		return nil, err
	}
	return &stat, nil
}

func (r *usageRepository) RecordScan(ctx context.Context, day string, tokens int64) (*models.UsageStat, error) {
	var stat models.UsageStat
	// Read-modify-write in one transaction so concurrent scans on the same
	// day cannot lose an increment.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stat, 1).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			stat = models.UsageStat{ID: 1}
		}
		if stat.Day != day {
			stat.ScanCount = 0
			stat.TokensEstimated = 0
			stat.Day = day
		}
		stat.ScanCount++
		stat.TokensEstimated += tokens
		return tx.Save(&stat).Error
	})
	if err != nil {
		return nil, err
	}
	return &stat, nil
}
