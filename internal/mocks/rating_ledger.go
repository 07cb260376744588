package mocks

import (
	"city-explorer/internal/domain"

	"github.com/stretchr/testify/mock"
)

type RatingLedger struct {
	mock.Mock
}

func (m *RatingLedger) NextUserID() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

func (m *RatingLedger) Append(records []domain.RatingRecord) error {
	ret := m.Called(records)
	return ret.Error(0)
}

func (m *RatingLedger) ListRatings() ([]domain.RatingRecord, error) {
	ret := m.Called()

	var records []domain.RatingRecord
	if ret.Get(0) != nil {
		records = ret.Get(0).([]domain.RatingRecord)
	}
	return records, ret.Error(1)
}

func NewRatingLedger(t interface {
	mock.TestingT
	Cleanup(func())
}) *RatingLedger {
	m := &RatingLedger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
