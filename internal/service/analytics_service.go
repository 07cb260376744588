package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"city-explorer/internal/domain"
)

// AnalyticsService serves the visitor-rating leaderboard. The fast path
// reads the Redis aggregates maintained by the aggregator; when Redis is
// absent or empty it recomputes averages from the ledger.
type AnalyticsService struct {
	catalog CatalogReader
	board   LeaderboardStore
	ledger  RatingLedger
}

func NewAnalyticsService(catalog CatalogReader, board LeaderboardStore, ledger RatingLedger) *AnalyticsService {
	return &AnalyticsService{catalog: catalog, board: board, ledger: ledger}
}

func (s *AnalyticsService) TopPlaces(ctx context.Context, limit int) ([]domain.PlaceStats, error) {
	if s.board != nil {
		stats, err := s.topFromBoard(ctx, limit)
		if err != nil {
			log.Printf("[itinerary-svc] leaderboard unavailable, falling back to ledger: %v", err)
		} else if len(stats) > 0 {
			return stats, nil
		}
	}
	return s.topFromLedger(limit)
}

func (s *AnalyticsService) topFromBoard(ctx context.Context, limit int) ([]domain.PlaceStats, error) {
	scores, order, err := s.board.TopPlaces(ctx, limit)
	if err != nil {
		return nil, err
	}

	var stats []domain.PlaceStats
	for _, placeID := range order {
		place, ok := s.catalog.Get(placeID)
		if !ok {
			// Place no longer in the city-filtered catalog, skip it.
			continue
		}
		count, err := s.board.RatingCount(ctx, placeID)
		if err != nil {
			count = 0
		}
		stats = append(stats, domain.PlaceStats{
			PlaceID:     placeID,
			PlaceName:   place.Name,
			AvgRating:   scores[placeID],
			RatingCount: count,
		})
	}
	return stats, nil
}

func (s *AnalyticsService) topFromLedger(limit int) ([]domain.PlaceStats, error) {
	records, err := s.ledger.ListRatings()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	sums := map[int]float64{}
	counts := map[int]int{}
	for _, record := range records {
		sums[record.PlaceID] += record.Rating
		counts[record.PlaceID]++
	}

	stats := make([]domain.PlaceStats, 0, len(sums))
	for placeID, sum := range sums {
		place, ok := s.catalog.Get(placeID)
		if !ok {
			continue
		}
		stats = append(stats, domain.PlaceStats{
			PlaceID:     placeID,
			PlaceName:   place.Name,
			AvgRating:   sum / float64(counts[placeID]),
			RatingCount: counts[placeID],
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].AvgRating > stats[j].AvgRating })
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}
