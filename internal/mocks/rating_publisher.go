package mocks

import (
	"context"

	"city-explorer/internal/domain"

	"github.com/stretchr/testify/mock"
)

type RatingPublisher struct {
	mock.Mock
}

func (m *RatingPublisher) PublishRating(ctx context.Context, event domain.RatingEvent) error {
	ret := m.Called(ctx, event)
	return ret.Error(0)
}

func NewRatingPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *RatingPublisher {
	m := &RatingPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
