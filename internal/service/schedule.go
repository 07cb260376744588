package service

import "city-explorer/internal/domain"

// Slots is the fixed ordered list of display time slots.
var Slots = []domain.TimeSlot{
	{Label: "Morning", Time: "08:00"},
	{Label: "Midday", Time: "11:00"},
	{Label: "Afternoon", Time: "14:00"},
	{Label: "Evening", Time: "17:00"},
	{Label: "Night", Time: "19:00"},
}

// AssignSlots walks the slot list cyclically and gives each stop the
// next label not yet used in this itinerary. Once every label is taken,
// slots are reused with an "(optional)" marker, so assignment never
// fails however long the itinerary is. Slot order follows itinerary
// order, not clock order. Also returns the summed admission price.
func AssignSlots(places []domain.Place) ([]domain.ScheduledStop, float64) {
	stops := make([]domain.ScheduledStop, 0, len(places))
	used := map[string]bool{}
	idx := 0
	total := 0.0

	for _, place := range places {
		var label, at string
		for {
			slot := Slots[idx%len(Slots)]
			idx++
			if !used[slot.Label] {
				used[slot.Label] = true
				label, at = slot.Label, slot.Time
				break
			}
			if len(used) >= len(Slots) {
				label, at = slot.Label+" (optional)", slot.Time
				break
			}
		}

		stops = append(stops, domain.ScheduledStop{SlotLabel: label, SlotTime: at, Place: place})
		total += place.Price
	}

	return stops, total
}
