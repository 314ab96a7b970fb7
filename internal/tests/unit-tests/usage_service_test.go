package unit_tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridgeai/internal/models"
	"ridgeai/internal/repositories"
	"ridgeai/internal/services"
	"ridgeai/internal/tests/mocks"
)

func TestUsageService_RecordScanStampsCurrentDay(t *testing.T) {
	var gotDay string
	var gotTokens int64
	repo := &mocks.UsageRepositoryMock{
		RecordScanFunc: func(ctx context.Context, day string, tokens int64) (*models.UsageStat, error) {
			gotDay = day
			gotTokens = tokens
			return &models.UsageStat{ID: 1, ScanCount: 1, TokensEstimated: tokens, Day: day}, nil
		},
	}

	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	svc := services.NewUsageServiceAt(repo, func() time.Time { return fixed })

	stat, err := svc.RecordScan(context.Background(), 512)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", gotDay)
	assert.Equal(t, int64(512), gotTokens)
	assert.Equal(t, 1, stat.ScanCount)
}

func TestUsageService_TodayZeroesStaleDay(t *testing.T) {
	repo := &mocks.UsageRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.UsageStat, error) {
			return &models.UsageStat{ID: 1, ScanCount: 9, TokensEstimated: 9000, Day: "2026-03-13"}, nil
		},
	}

	fixed := time.Date(2026, 3, 14, 0, 0, 1, 0, time.UTC)
	svc := services.NewUsageServiceAt(repo, func() time.Time { return fixed })

	stat, err := svc.Today()
	require.NoError(t, err)
	assert.Equal(t, 0, stat.ScanCount)
	assert.Equal(t, int64(0), stat.TokensEstimated)
	assert.Equal(t, "2026-03-14", stat.Day)
}

func TestUsageService_TodayUnavailableStoreReadsAsZero(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := services.NewUsageServiceAt(repositories.NewUnavailableUsageRepository(), func() time.Time { return fixed })

	stat, err := svc.Today()
	require.NoError(t, err)
	assert.Equal(t, 0, stat.ScanCount)
	assert.Equal(t, int64(0), stat.TokensEstimated)
	assert.Equal(t, "2026-03-14", stat.Day)

	// Recording still fails; the orchestrator logs and moves on.
	_, err = svc.RecordScan(context.Background(), 100)
	assert.ErrorIs(t, err, repositories.ErrStorageUnavailable)
}

func TestUsageService_TodayKeepsSameDayCounters(t *testing.T) {
	repo := &mocks.UsageRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.UsageStat, error) {
			return &models.UsageStat{ID: 1, ScanCount: 3, TokensEstimated: 4500, Day: "2026-03-14"}, nil
		},
	}

	fixed := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	svc := services.NewUsageServiceAt(repo, func() time.Time { return fixed })

	stat, err := svc.Today()
	require.NoError(t, err)
	assert.Equal(t, 3, stat.ScanCount)
	assert.Equal(t, int64(4500), stat.TokensEstimated)
}
