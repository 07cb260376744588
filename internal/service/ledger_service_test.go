package service_test

import (
	"context"
	"errors"
	"testing"

	"city-explorer/internal/domain"
	"city-explorer/internal/mocks"
	"city-explorer/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_Submit(t *testing.T) {
	ctx := context.Background()

	entries := []domain.RatingEntry{
		{PlaceName: "Tangkuban Perahu", Rating: 4.5},
		{PlaceName: "Kawah Putih", Rating: 3.8},
	}

	tests := []struct {
		name          string
		entries       []domain.RatingEntry
		prepareMocks  func(catalog *mocks.CatalogReader, ledger *mocks.RatingLedger)
		expectedError error
		expected      domain.SubmissionResult
	}{
		{
			name:    "first_submission_gets_user_id_1",
			entries: entries,
			prepareMocks: func(catalog *mocks.CatalogReader, ledger *mocks.RatingLedger) {
				ledger.On("NextUserID").Return(1, nil).Once()
				catalog.On("ResolveName", "Tangkuban Perahu").Return(101, true).Once()
				catalog.On("ResolveName", "Kawah Putih").Return(102, true).Once()
				ledger.On("Append", []domain.RatingRecord{
					{UserID: 1, PlaceID: 101, Rating: 4.5},
					{UserID: 1, PlaceID: 102, Rating: 3.8},
				}).Return(nil).Once()
			},
			expected: domain.SubmissionResult{UserID: 1, Saved: 2},
		},
		{
			name:    "later_submission_gets_next_user_id",
			entries: entries[:1],
			prepareMocks: func(catalog *mocks.CatalogReader, ledger *mocks.RatingLedger) {
				ledger.On("NextUserID").Return(7, nil).Once()
				catalog.On("ResolveName", "Tangkuban Perahu").Return(101, true).Once()
				ledger.On("Append", []domain.RatingRecord{
					{UserID: 7, PlaceID: 101, Rating: 4.5},
				}).Return(nil).Once()
			},
			expected: domain.SubmissionResult{UserID: 7, Saved: 1},
		},
		{
			name: "unresolved_name_is_skipped",
			entries: []domain.RatingEntry{
				{PlaceName: "Tangkuban Perahu", Rating: 4.5},
				{PlaceName: "Nowhere", Rating: 2.0},
			},
			prepareMocks: func(catalog *mocks.CatalogReader, ledger *mocks.RatingLedger) {
				ledger.On("NextUserID").Return(1, nil).Once()
				catalog.On("ResolveName", "Tangkuban Perahu").Return(101, true).Once()
				catalog.On("ResolveName", "Nowhere").Return(0, false).Once()
				ledger.On("Append", []domain.RatingRecord{
					{UserID: 1, PlaceID: 101, Rating: 4.5},
				}).Return(nil).Once()
			},
			expected: domain.SubmissionResult{UserID: 1, Saved: 1, Skipped: []string{"Nowhere"}},
		},
		{
			name:    "user_id_allocation_failure",
			entries: entries,
			prepareMocks: func(catalog *mocks.CatalogReader, ledger *mocks.RatingLedger) {
				ledger.On("NextUserID").Return(0, errors.New("store offline")).Once()
			},
			expectedError: service.ErrLedgerUnavailable,
		},
		{
			name:    "append_failure_rejects_whole_submission",
			entries: entries,
			prepareMocks: func(catalog *mocks.CatalogReader, ledger *mocks.RatingLedger) {
				ledger.On("NextUserID").Return(1, nil).Once()
				catalog.On("ResolveName", "Tangkuban Perahu").Return(101, true).Once()
				catalog.On("ResolveName", "Kawah Putih").Return(102, true).Once()
				ledger.On("Append", mock.Anything).Return(errors.New("disk full")).Once()
			},
			expectedError: service.ErrLedgerUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			catalog := mocks.NewCatalogReader(t)
			ledger := mocks.NewRatingLedger(t)
			testCase.prepareMocks(catalog, ledger)

			svc := service.NewLedgerService(catalog, ledger, nil)
			result, err := svc.Submit(ctx, testCase.entries)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestLedgerService_Submit_PublishesEvents(t *testing.T) {
	ctx := context.Background()

	catalog := mocks.NewCatalogReader(t)
	ledger := mocks.NewRatingLedger(t)
	publisher := mocks.NewRatingPublisher(t)

	ledger.On("NextUserID").Return(1, nil).Once()
	catalog.On("ResolveName", "Tangkuban Perahu").Return(101, true).Once()
	catalog.On("ResolveName", "Kawah Putih").Return(102, true).Once()
	ledger.On("Append", mock.Anything).Return(nil).Once()
	publisher.On("PublishRating", ctx, mock.Anything).Return(nil).Twice()

	svc := service.NewLedgerService(catalog, ledger, publisher)
	result, err := svc.Submit(ctx, []domain.RatingEntry{
		{PlaceName: "Tangkuban Perahu", Rating: 4.5},
		{PlaceName: "Kawah Putih", Rating: 3.8},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Saved)
}
