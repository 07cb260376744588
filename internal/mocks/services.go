package mocks

import (
	"context"

	"city-explorer/internal/domain"

	"github.com/stretchr/testify/mock"
)

type PlannerServiceInterface struct {
	mock.Mock
}

func (m *PlannerServiceInterface) Select(prefs domain.Preferences) domain.Plan {
	ret := m.Called(prefs)
	return ret.Get(0).(domain.Plan)
}

func NewPlannerServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *PlannerServiceInterface {
	m := &PlannerServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type LedgerServiceInterface struct {
	mock.Mock
}

func (m *LedgerServiceInterface) Submit(ctx context.Context, entries []domain.RatingEntry) (domain.SubmissionResult, error) {
	ret := m.Called(ctx, entries)
	return ret.Get(0).(domain.SubmissionResult), ret.Error(1)
}

func NewLedgerServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *LedgerServiceInterface {
	m := &LedgerServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type AnalyticsServiceInterface struct {
	mock.Mock
}

func (m *AnalyticsServiceInterface) TopPlaces(ctx context.Context, limit int) ([]domain.PlaceStats, error) {
	ret := m.Called(ctx, limit)

	var stats []domain.PlaceStats
	if ret.Get(0) != nil {
		stats = ret.Get(0).([]domain.PlaceStats)
	}
	return stats, ret.Error(1)
}

func NewAnalyticsServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnalyticsServiceInterface {
	m := &AnalyticsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
