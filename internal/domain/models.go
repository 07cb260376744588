package domain

import "time"

type Place struct {
	PlaceID     int     `json:"place_id"`
	Name        string  `json:"place_name"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

// Preferences is the per-request input collected from the user form.
type Preferences struct {
	Categories []string `json:"categories"`
	MaxBudget  float64  `json:"max_budget"`
	Stops      int      `json:"stops"`
}

const (
	StrategyBestRated = "best_rated"
	StrategyCheapest  = "cheapest"
	StrategyMaxSpend  = "max_spend"
)

type Itinerary struct {
	Strategy   string  `json:"strategy"`
	Places     []Place `json:"places"`
	TotalPrice float64 `json:"total_price"`
}

// Plan bundles the three itineraries produced for one request.
type Plan struct {
	BestRated Itinerary `json:"best_rated"`
	Cheapest  Itinerary `json:"cheapest"`
	MaxSpend  Itinerary `json:"max_spend"`
}

type TimeSlot struct {
	Label string `json:"label"`
	Time  string `json:"time"`
}

// ScheduledStop is one itinerary entry with its assigned display slot.
type ScheduledStop struct {
	SlotLabel string `json:"slot_label"`
	SlotTime  string `json:"slot_time"`
	Place     Place  `json:"place"`
}

type RatingRecord struct {
	UserID  int     `json:"user_id"`
	PlaceID int     `json:"place_id"`
	Rating  float64 `json:"rating"`
}

// RatingEntry is one (name, value) pair of an incoming submission,
// before the name is resolved against the catalog.
type RatingEntry struct {
	PlaceName string  `json:"place_name"`
	Rating    float64 `json:"rating"`
}

// SubmissionResult reports what a rating submission actually stored.
type SubmissionResult struct {
	UserID  int      `json:"user_id"`
	Saved   int      `json:"saved"`
	Skipped []string `json:"skipped,omitempty"`
}

type RatingEvent struct {
	Type      string    `json:"type"`
	UserID    int       `json:"user_id"`
	PlaceID   int       `json:"place_id"`
	Rating    float64   `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

// PlaceStats is an aggregated leaderboard entry for one place.
type PlaceStats struct {
	PlaceID     int     `json:"place_id"`
	PlaceName   string  `json:"place_name"`
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
}
