package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"city-explorer/internal/domain"
)

// ErrLedgerUnavailable marks a rating store that is unreachable or
// misconfigured. The submission is rejected as a whole; displayed
// itineraries are unaffected and the user can retry.
var ErrLedgerUnavailable = errors.New("rating store unavailable")

type LedgerService struct {
	catalog   CatalogReader
	ledger    RatingLedger
	publisher RatingPublisher
}

func NewLedgerService(catalog CatalogReader, ledger RatingLedger, publisher RatingPublisher) *LedgerService {
	return &LedgerService{
		catalog:   catalog,
		ledger:    ledger,
		publisher: publisher,
	}
}

// Submit resolves each place name against the catalog, drops pairs that
// do not resolve, and appends the rest under one freshly allocated
// user id. The append is atomic per call: on a store failure nothing is
// written. Allocation of the user id is read-then-write and not
// coordinated across processes.
func (s *LedgerService) Submit(ctx context.Context, entries []domain.RatingEntry) (domain.SubmissionResult, error) {
	userID, err := s.ledger.NextUserID()
	if err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	var records []domain.RatingRecord
	var skipped []string
	for _, entry := range entries {
		placeID, ok := s.catalog.ResolveName(entry.PlaceName)
		if !ok {
			log.Printf("[itinerary-svc] skipping rating for unknown place %q", entry.PlaceName)
			skipped = append(skipped, entry.PlaceName)
			continue
		}
		records = append(records, domain.RatingRecord{
			UserID:  userID,
			PlaceID: placeID,
			Rating:  entry.Rating,
		})
	}

	if err := s.ledger.Append(records); err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	if s.publisher != nil {
		for _, record := range records {
			_ = s.publisher.PublishRating(ctx, domain.RatingEvent{
				Type:      "new_rating",
				UserID:    record.UserID,
				PlaceID:   record.PlaceID,
				Rating:    record.Rating,
				Timestamp: time.Now(),
			})
		}
	}

	log.Printf("[itinerary-svc] stored %d ratings for user %d (%d skipped)",
		len(records), userID, len(skipped))

	return domain.SubmissionResult{
		UserID:  userID,
		Saved:   len(records),
		Skipped: skipped,
	}, nil
}
