package mocks

import (
	"context"

	"ridgeai/internal/models"
)

type HistoryRepositoryMock struct {
	CreateFunc func(ctx context.Context, record *models.HistoryRecord) (uint, error)
	ListFunc   func(ctx context.Context) ([]models.HistoryRecord, error)
	GetFunc    func(ctx context.Context, id uint) (*models.HistoryRecord, error)
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *HistoryRepositoryMock) Create(ctx context.Context, record *models.HistoryRecord) (uint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return 1, nil
}

func (m *HistoryRepositoryMock) List(ctx context.Context) ([]models.HistoryRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *HistoryRepositoryMock) Get(ctx context.Context, id uint) (*models.HistoryRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *HistoryRepositoryMock) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
