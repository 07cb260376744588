package mocks

import (
	"city-explorer/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CatalogReader struct {
	mock.Mock
}

func (m *CatalogReader) Places() []domain.Place {
	ret := m.Called()

	var places []domain.Place
	if ret.Get(0) != nil {
		places = ret.Get(0).([]domain.Place)
	}
	return places
}

func (m *CatalogReader) ResolveName(name string) (int, bool) {
	ret := m.Called(name)
	return ret.Int(0), ret.Bool(1)
}

func (m *CatalogReader) Get(placeID int) (domain.Place, bool) {
	ret := m.Called(placeID)
	return ret.Get(0).(domain.Place), ret.Bool(1)
}

func (m *CatalogReader) Categories() []string {
	ret := m.Called()

	var categories []string
	if ret.Get(0) != nil {
		categories = ret.Get(0).([]string)
	}
	return categories
}

func NewCatalogReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogReader {
	m := &CatalogReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
