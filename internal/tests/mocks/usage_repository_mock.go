package mocks

import (
	"context"

	"ridgeai/internal/models"
)

type UsageRepositoryMock struct {
	GetFunc        func(ctx context.Context) (*models.UsageStat, error)
	RecordScanFunc func(ctx context.Context, day string, tokens int64) (*models.UsageStat, error)
}

func (m *UsageRepositoryMock) Get(ctx context.Context) (*models.UsageStat, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return &models.UsageStat{ID: 1}, nil
}

func (m *UsageRepositoryMock) RecordScan(ctx context.Context, day string, tokens int64) (*models.UsageStat, error) {
	if m.RecordScanFunc != nil {
		return m.RecordScanFunc(ctx, day, tokens)
	}
	return &models.UsageStat{ID: 1, ScanCount: 1, TokensEstimated: tokens, Day: day}, nil
}
