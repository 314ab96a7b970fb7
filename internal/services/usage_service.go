package services

import (
	"context"
	"errors"
	"time"

	"ridgeai/internal/models"
	"ridgeai/internal/repositories"
)

const dayStampLayout = "2006-01-02"

type UsageService interface {
	// Today returns the counters for the current calendar day. A stored row
	// from an earlier day reads as zero.
	Today() (*models.UsageStat, error)
	// RecordScan counts one completed comparison plus its token estimate.
	RecordScan(ctx context.Context, tokens int64) (*models.UsageStat, error)
	Startup(ctx context.Context)
}

type usageService struct {
	usage   repositories.UsageRepository
	context context.Context
	now     func() time.Time
}

func NewUsageService(usage repositories.UsageRepository) UsageService {
	return &usageService{usage: usage, now: time.Now}
}

// NewUsageServiceAt is NewUsageService with an injectable clock for tests.
func NewUsageServiceAt(usage repositories.UsageRepository, now func() time.Time) UsageService {
	return &usageService{usage: usage, now: now}
}

func (s *usageService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *usageService) Today() (*models.UsageStat, error) {
	stat, err := s.usage.Get(context.Background())
	if errors.Is(err, repositories.ErrStorageUnavailable) {
		// Without a usable store today's counters are simply zero.
		return &models.UsageStat{ID: 1, Day: s.now().Format(dayStampLayout)}, nil
	}
	if err != nil {
		return nil, err
	}
	if stat.Day != s.now().Format(dayStampLayout) {
		return &models.UsageStat{ID: stat.ID, Day: s.now().Format(dayStampLayout)}, nil
	}
	return stat, nil
}

func (s *usageService) RecordScan(ctx context.Context, tokens int64) (*models.UsageStat, error) {
	return s.usage.RecordScan(ctx, s.now().Format(dayStampLayout), tokens)
}
