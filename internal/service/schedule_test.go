package service_test

import (
	"strings"
	"testing"

	"city-explorer/internal/domain"
	"city-explorer/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPlaces(n int) []domain.Place {
	places := make([]domain.Place, 0, n)
	for i := 0; i < n; i++ {
		places = append(places, domain.Place{PlaceID: i + 1, Price: 10})
	}
	return places
}

func TestAssignSlots_LabelsFollowItineraryOrder(t *testing.T) {
	stops, total := service.AssignSlots(stubPlaces(3))

	require.Len(t, stops, 3)
	assert.Equal(t, "Morning", stops[0].SlotLabel)
	assert.Equal(t, "08:00", stops[0].SlotTime)
	assert.Equal(t, "Midday", stops[1].SlotLabel)
	assert.Equal(t, "Afternoon", stops[2].SlotLabel)
	assert.Equal(t, 30.0, total)

	// Place order is preserved.
	assert.Equal(t, 1, stops[0].Place.PlaceID)
	assert.Equal(t, 3, stops[2].Place.PlaceID)
}

func TestAssignSlots_NoUnmarkedLabelReuse(t *testing.T) {
	stops, _ := service.AssignSlots(stubPlaces(5))

	seen := map[string]bool{}
	for _, stop := range stops {
		assert.False(t, seen[stop.SlotLabel], "label %q assigned twice", stop.SlotLabel)
		seen[stop.SlotLabel] = true
	}
	assert.Len(t, seen, 5)
}

func TestAssignSlots_OverflowMarkedOptional(t *testing.T) {
	stops, _ := service.AssignSlots(stubPlaces(7))

	require.Len(t, stops, 7)
	for _, stop := range stops[:5] {
		assert.NotContains(t, stop.SlotLabel, "(optional)")
	}
	assert.Equal(t, "Morning (optional)", stops[5].SlotLabel)
	assert.Equal(t, "Midday (optional)", stops[6].SlotLabel)
}

func TestAssignSlots_NeverFailsForLongItineraries(t *testing.T) {
	stops, _ := service.AssignSlots(stubPlaces(23))

	require.Len(t, stops, 23)
	optional := 0
	for _, stop := range stops {
		if strings.Contains(stop.SlotLabel, "(optional)") {
			optional++
		}
	}
	assert.Equal(t, 18, optional)
}

func TestAssignSlots_EmptyItinerary(t *testing.T) {
	stops, total := service.AssignSlots(nil)

	assert.Empty(t, stops)
	assert.Equal(t, 0.0, total)
}
