package service

import (
	"context"

	"city-explorer/internal/domain"
	"city-explorer/internal/storage"
)

// CatalogReader is the read-only view of the city-filtered catalog.
type CatalogReader interface {
	Places() []domain.Place
	ResolveName(name string) (int, bool)
	Get(placeID int) (domain.Place, bool)
	Categories() []string
}

// RatingLedger is the durable append-only rating store. Append must be
// all-or-nothing per call.
type RatingLedger interface {
	NextUserID() (int, error)
	Append(records []domain.RatingRecord) error
	ListRatings() ([]domain.RatingRecord, error)
}

type RatingPublisher interface {
	PublishRating(ctx context.Context, event domain.RatingEvent) error
}

// LeaderboardStore holds the aggregated per-place rating averages.
type LeaderboardStore interface {
	RecordRating(ctx context.Context, placeID int, rating float64) error
	TopPlaces(ctx context.Context, limit int) (map[int]float64, []int, error)
	RatingCount(ctx context.Context, placeID int) (int, error)
}

type PlannerServiceInterface interface {
	Select(prefs domain.Preferences) domain.Plan
}

type LedgerServiceInterface interface {
	Submit(ctx context.Context, entries []domain.RatingEntry) (domain.SubmissionResult, error)
}

type AnalyticsServiceInterface interface {
	TopPlaces(ctx context.Context, limit int) ([]domain.PlaceStats, error)
}

var (
	_ PlannerServiceInterface   = (*PlannerService)(nil)
	_ LedgerServiceInterface    = (*LedgerService)(nil)
	_ AnalyticsServiceInterface = (*AnalyticsService)(nil)

	_ CatalogReader    = (*storage.Catalog)(nil)
	_ RatingLedger     = (*storage.CSVLedger)(nil)
	_ RatingLedger     = (*storage.SheetLedger)(nil)
	_ RatingLedger     = (*storage.PostgresLedger)(nil)
	_ RatingPublisher  = (*storage.KafkaPublisher)(nil)
	_ LeaderboardStore = (*storage.Leaderboard)(nil)
)
