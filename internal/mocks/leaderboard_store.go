package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type LeaderboardStore struct {
	mock.Mock
}

func (m *LeaderboardStore) RecordRating(ctx context.Context, placeID int, rating float64) error {
	ret := m.Called(ctx, placeID, rating)
	return ret.Error(0)
}

func (m *LeaderboardStore) TopPlaces(ctx context.Context, limit int) (map[int]float64, []int, error) {
	ret := m.Called(ctx, limit)

	var scores map[int]float64
	if ret.Get(0) != nil {
		scores = ret.Get(0).(map[int]float64)
	}
	var order []int
	if ret.Get(1) != nil {
		order = ret.Get(1).([]int)
	}
	return scores, order, ret.Error(2)
}

func (m *LeaderboardStore) RatingCount(ctx context.Context, placeID int) (int, error) {
	ret := m.Called(ctx, placeID)
	return ret.Int(0), ret.Error(1)
}

func NewLeaderboardStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *LeaderboardStore {
	m := &LeaderboardStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
