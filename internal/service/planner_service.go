package service

import (
	"math/rand"
	"sort"
	"time"

	"city-explorer/internal/domain"
)

// PlannerService turns the catalog plus user preferences into three
// candidate itineraries. Every call reshuffles the filtered set with a
// fresh seed, so repeated requests with the same preferences can return
// different places; the UI exposes this as a refresh action.
type PlannerService struct {
	catalog CatalogReader
	seed    func() int64
}

// NewPlannerService builds a planner. A nil seed function means a fresh
// time-based seed per call; tests pass a fixed seed for deterministic
// output.
func NewPlannerService(catalog CatalogReader, seed func() int64) *PlannerService {
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}
	return &PlannerService{catalog: catalog, seed: seed}
}

func (s *PlannerService) Select(prefs domain.Preferences) domain.Plan {
	allowed := map[string]bool{}
	for _, category := range prefs.Categories {
		allowed[category] = true
	}

	var filtered []domain.Place
	for _, place := range s.catalog.Places() {
		if place.Price > prefs.MaxBudget {
			continue
		}
		if len(allowed) > 0 && !allowed[place.Category] {
			continue
		}
		filtered = append(filtered, place)
	}

	rng := rand.New(rand.NewSource(s.seed()))
	rng.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	return domain.Plan{
		BestRated: newItinerary(domain.StrategyBestRated, bestRated(filtered, prefs.Stops)),
		Cheapest:  newItinerary(domain.StrategyCheapest, cheapest(filtered, prefs.Stops)),
		MaxSpend:  newItinerary(domain.StrategyMaxSpend, maxSpend(filtered, prefs.Stops, prefs.MaxBudget)),
	}
}

func bestRated(places []domain.Place, stops int) []domain.Place {
	sorted := append([]domain.Place(nil), places...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	return head(sorted, stops)
}

func cheapest(places []domain.Place, stops int) []domain.Place {
	sorted := append([]domain.Place(nil), places...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})
	return head(sorted, stops)
}

// maxSpend greedily packs the priciest affordable places into the
// budget. It does not backtrack, so budget can stay unused when the
// first affordable high-price places do not fill every stop. That
// greedy behavior is visible to end users and kept as-is.
func maxSpend(places []domain.Place, stops int, budget float64) []domain.Place {
	sorted := append([]domain.Place(nil), places...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price > sorted[j].Price
	})

	var bundle []domain.Place
	total := 0.0
	for _, place := range sorted {
		if len(bundle) >= stops {
			break
		}
		if total+place.Price > budget {
			continue
		}
		bundle = append(bundle, place)
		total += place.Price
	}
	return bundle
}

func head(places []domain.Place, n int) []domain.Place {
	if len(places) > n {
		places = places[:n]
	}
	return places
}

func newItinerary(strategy string, places []domain.Place) domain.Itinerary {
	total := 0.0
	for _, place := range places {
		total += place.Price
	}
	if places == nil {
		places = []domain.Place{}
	}
	return domain.Itinerary{Strategy: strategy, Places: places, TotalPrice: total}
}
