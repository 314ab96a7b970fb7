package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ridgeai/internal/models"
)

type HistoryRepository interface {
	Create(ctx context.Context, record *models.HistoryRecord) (uint, error)
	// List returns all records newest first, without the image blobs.
	List(ctx context.Context) ([]models.HistoryRecord, error)
	// Get returns the full record including blobs, or nil when absent.
	Get(ctx context.Context, id uint) (*models.HistoryRecord, error)
	// Delete removes one record; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uint) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, record *models.HistoryRecord) (uint, error) {
	// Force auto-assignment so an existing id can never be overwritten.
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

func (r *historyRepository) List(ctx context.Context) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	res := r.db.WithContext(ctx).
		Omit("file1_data", "file2_data").
		Order("created_at desc").
		Find(&records)
	if res.Error != nil {
		return nil, res.Error
	}
	return records, nil
}

func (r *historyRepository) Get(ctx context.Context, id uint) (*models.HistoryRecord, error) {
	var record models.HistoryRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *historyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.HistoryRecord{}, id).Error
}
