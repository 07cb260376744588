package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "analytics:places:by-rating"

// Leaderboard keeps per-place running rating aggregates in Redis: a
// sum/count hash per place and a sorted set ordered by average rating.
type Leaderboard struct {
	Client *redis.Client
}

func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{Client: client}
}

func (l *Leaderboard) RecordRating(ctx context.Context, placeID int, rating float64) error {
	statsKey := fmt.Sprintf("place:%d:ratings", placeID)

	sum, err := l.Client.HIncrByFloat(ctx, statsKey, "sum", rating).Result()
	if err != nil {
		return err
	}
	count, err := l.Client.HIncrBy(ctx, statsKey, "count", 1).Result()
	if err != nil {
		return err
	}

	avg := sum / float64(count)
	return l.Client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  avg,
		Member: strconv.Itoa(placeID),
	}).Err()
}

// TopPlaces returns up to limit (placeID, avgRating, count) entries,
// best rated first.
func (l *Leaderboard) TopPlaces(ctx context.Context, limit int) (map[int]float64, []int, error) {
	result, err := l.Client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, nil, err
	}

	scores := make(map[int]float64, len(result))
	var order []int
	for _, member := range result {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		scores[id] = member.Score
		order = append(order, id)
	}
	return scores, order, nil
}

func (l *Leaderboard) RatingCount(ctx context.Context, placeID int) (int, error) {
	statsKey := fmt.Sprintf("place:%d:ratings", placeID)
	count, err := l.Client.HGet(ctx, statsKey, "count").Int()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}
