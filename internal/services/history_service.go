package services

import (
	"context"
	"encoding/json"
	"errors"

	"ridgeai/internal/models"
	"ridgeai/internal/repositories"
)

type HistoryService interface {
	// Save persists one completed comparison with its original image bytes.
	Save(ctx context.Context, record *models.HistoryRecord) (uint, error)
	// List returns header rows (no blobs) newest first.
	List() ([]models.HistoryRecord, error)
	// Load returns the full record plus its decoded result, or nil when absent.
	Load(id uint) (*models.HistoryRecord, *models.ComparisonResult, error)
	Delete(id uint) error
	Startup(ctx context.Context)
}

type historyService struct {
	history repositories.HistoryRepository
	context context.Context
}

func NewHistoryService(history repositories.HistoryRepository) HistoryService {
	return &historyService{history: history}
}

func (s *historyService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *historyService) Save(ctx context.Context, record *models.HistoryRecord) (uint, error) {
	if record == nil {
		return 0, errors.New("record is required")
	}
	if record.ResultJSON == "" {
		return 0, errors.New("result payload is required")
	}
	return s.history.Create(ctx, record)
}

func (s *historyService) List() ([]models.HistoryRecord, error) {
	records, err := s.history.List(context.Background())
	if errors.Is(err, repositories.ErrStorageUnavailable) {
		// Without a usable store the history is simply empty.
		return []models.HistoryRecord{}, nil
	}
	return records, err
}

func (s *historyService) Load(id uint) (*models.HistoryRecord, *models.ComparisonResult, error) {
	record, err := s.history.Get(context.Background(), id)
	if errors.Is(err, repositories.ErrStorageUnavailable) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if record == nil {
		return nil, nil, nil
	}

	var result models.ComparisonResult
	if err := json.Unmarshal([]byte(record.ResultJSON), &result); err != nil {
		return nil, nil, err
	}
	return record, &result, nil
}

func (s *historyService) Delete(id uint) error {
	err := s.history.Delete(context.Background(), id)
	if errors.Is(err, repositories.ErrStorageUnavailable) {
		// Deleting from an empty history is a no-op.
		return nil
	}
	return err
}
