package service

import (
	"context"
	"encoding/json"
	"log"

	"city-explorer/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer folds rating events into the Redis leaderboard.
type Consumer struct {
	Reader *kafka.Reader
	Board  LeaderboardStore
}

func NewConsumer(reader *kafka.Reader, board LeaderboardStore) *Consumer {
	return &Consumer{Reader: reader, Board: board}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting rating aggregation consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.RatingEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "new_rating" {
			c.ProcessRating(ctx, event)
		}
	}
}

func (c *Consumer) ProcessRating(ctx context.Context, event domain.RatingEvent) {
	if event.Type != "new_rating" {
		return
	}
	log.Printf("Processing rating: PlaceID=%d, UserID=%d, Rating=%.1f",
		event.PlaceID, event.UserID, event.Rating)

	if err := c.Board.RecordRating(ctx, event.PlaceID, event.Rating); err != nil {
		log.Printf("Error updating leaderboard: %v", err)
		return
	}

	log.Printf("Successfully processed rating for place %d", event.PlaceID)
}
