package storage_test

import (
	"context"
	"testing"

	"city-explorer/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboard(t *testing.T) *storage.Leaderboard {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewLeaderboard(client)
}

func TestLeaderboard_RecordRatingKeepsRunningAverage(t *testing.T) {
	ctx := context.Background()
	board := newLeaderboard(t)

	require.NoError(t, board.RecordRating(ctx, 101, 4.0))
	require.NoError(t, board.RecordRating(ctx, 101, 5.0))
	require.NoError(t, board.RecordRating(ctx, 102, 3.0))

	scores, order, err := board.TopPlaces(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []int{101, 102}, order)
	assert.InDelta(t, 4.5, scores[101], 0.001)
	assert.InDelta(t, 3.0, scores[102], 0.001)

	count, err := board.RatingCount(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLeaderboard_TopPlacesHonorsLimit(t *testing.T) {
	ctx := context.Background()
	board := newLeaderboard(t)

	for id := 1; id <= 5; id++ {
		require.NoError(t, board.RecordRating(ctx, id, float64(id)))
	}

	_, order, err := board.TopPlaces(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3}, order)
}

func TestLeaderboard_RatingCountUnknownPlace(t *testing.T) {
	ctx := context.Background()
	board := newLeaderboard(t)

	count, err := board.RatingCount(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
