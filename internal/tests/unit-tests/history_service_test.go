package unit_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridgeai/internal/models"
	"ridgeai/internal/repositories"
	"ridgeai/internal/services"
	"ridgeai/internal/tests/mocks"
)

func TestHistoryService_Save_RequiresResultPayload(t *testing.T) {
	service := services.NewHistoryService(&mocks.HistoryRepositoryMock{})

	_, err := service.Save(context.Background(), &models.HistoryRecord{File1Name: "a.png"})
	assert.EqualError(t, err, "result payload is required")

	_, err = service.Save(context.Background(), nil)
	assert.EqualError(t, err, "record is required")
}

func TestHistoryService_Load_DecodesStoredResult(t *testing.T) {
	stored := &models.HistoryRecord{
		ID:         4,
		File1Name:  "a.png",
		File2Name:  "b.png",
		File1Data:  []byte{1, 2, 3},
		ResultJSON: `{"finalResult": {"matchScore": 88, "isMatch": true, "confidenceLevel": "Medium", "forensicConclusion": "Probable"}}`,
	}
	repo := &mocks.HistoryRepositoryMock{
		GetFunc: func(ctx context.Context, id uint) (*models.HistoryRecord, error) {
			if id == 4 {
				return stored, nil
			}
			return nil, nil
		},
	}
	service := services.NewHistoryService(repo)

	record, result, err := service.Load(4)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.NotNil(t, result)
	assert.Equal(t, []byte{1, 2, 3}, record.File1Data)
	assert.Equal(t, float64(88), result.FinalResult.MatchScore)
}

func TestHistoryService_Load_AbsentRecordIsNil(t *testing.T) {
	service := services.NewHistoryService(&mocks.HistoryRepositoryMock{})

	record, result, err := service.Load(99)
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.Nil(t, result)
}

func TestHistoryService_UnavailableStoreReadsAsEmpty(t *testing.T) {
	service := services.NewHistoryService(repositories.NewUnavailableHistoryRepository())

	records, err := service.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	record, result, err := service.Load(1)
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.Nil(t, result)

	assert.NoError(t, service.Delete(1))

	// Writes still fail so the caller can log and move on.
	_, err = service.Save(context.Background(), &models.HistoryRecord{ResultJSON: "{}"})
	assert.ErrorIs(t, err, repositories.ErrStorageUnavailable)
}
