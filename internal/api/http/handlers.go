package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"city-explorer/internal/domain"
	"city-explorer/internal/service"

	"github.com/gorilla/mux"
)

const (
	minStops = 2
	maxStops = 5

	minRating = 1.0
	maxRating = 5.0

	topPlacesLimit = 10
)

type Handler struct {
	Catalog   service.CatalogReader
	Planner   service.PlannerServiceInterface
	Ledger    service.LedgerServiceInterface
	Analytics service.AnalyticsServiceInterface
	QR        service.QRGenerator
}

func NewHandler(catalog service.CatalogReader, planner service.PlannerServiceInterface,
	ledger service.LedgerServiceInterface, analytics service.AnalyticsServiceInterface,
	qr service.QRGenerator) *Handler {
	return &Handler{
		Catalog:   catalog,
		Planner:   planner,
		Ledger:    ledger,
		Analytics: analytics,
		QR:        qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/places", h.getPlaces).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")

	r.HandleFunc("/api/itineraries", h.createItineraries).Methods("POST")
	r.HandleFunc("/api/itineraries/qrcode", h.getItineraryQRCode).Methods("GET")

	r.HandleFunc("/api/ratings", h.submitRatings).Methods("POST")
	r.HandleFunc("/api/analytics/top-places", h.getTopPlaces).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "itinerary-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getPlaces(w http.ResponseWriter, r *http.Request) {
	places := h.Catalog.Places()
	if places == nil {
		places = []domain.Place{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(places)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.Catalog.Categories()
	if categories == nil {
		categories = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}

type scheduledItinerary struct {
	Strategy   string                 `json:"strategy"`
	Stops      []domain.ScheduledStop `json:"stops"`
	TotalPrice float64                `json:"total_price"`
	QRCode     string                 `json:"qr_code,omitempty"`
}

func (h *Handler) createItineraries(w http.ResponseWriter, r *http.Request) {
	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if prefs.Stops < minStops || prefs.Stops > maxStops {
		http.Error(w, fmt.Sprintf("stops must be between %d and %d", minStops, maxStops), http.StatusBadRequest)
		return
	}
	if prefs.MaxBudget < 0 {
		http.Error(w, "max_budget must not be negative", http.StatusBadRequest)
		return
	}

	plan := h.Planner.Select(prefs)

	response := map[string]scheduledItinerary{
		domain.StrategyBestRated: h.schedule(plan.BestRated),
		domain.StrategyCheapest:  h.schedule(plan.Cheapest),
		domain.StrategyMaxSpend:  h.schedule(plan.MaxSpend),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) schedule(itinerary domain.Itinerary) scheduledItinerary {
	stops, total := service.AssignSlots(itinerary.Places)

	result := scheduledItinerary{
		Strategy:   itinerary.Strategy,
		Stops:      stops,
		TotalPrice: total,
	}
	if len(itinerary.Places) > 0 {
		ids := make([]string, 0, len(itinerary.Places))
		for _, place := range itinerary.Places {
			ids = append(ids, strconv.Itoa(place.PlaceID))
		}
		result.QRCode = "/api/itineraries/qrcode?places=" + strings.Join(ids, ",")
	}
	return result
}

func (h *Handler) getItineraryQRCode(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("places")
	if raw == "" {
		http.Error(w, "Missing places parameter", http.StatusBadRequest)
		return
	}

	var placeIDs []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			http.Error(w, "Invalid places parameter", http.StatusBadRequest)
			return
		}
		placeIDs = append(placeIDs, id)
	}

	png, err := h.QR.Generate(placeIDs)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) submitRatings(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Ratings []domain.RatingEntry `json:"ratings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if len(payload.Ratings) == 0 {
		http.Error(w, "Missing ratings", http.StatusBadRequest)
		return
	}
	for _, entry := range payload.Ratings {
		if entry.Rating < minRating || entry.Rating > maxRating {
			http.Error(w, fmt.Sprintf("rating for %q must be between %.1f and %.1f",
				entry.PlaceName, minRating, maxRating), http.StatusBadRequest)
			return
		}
	}

	result, err := h.Ledger.Submit(r.Context(), payload.Ratings)
	if err != nil {
		if errors.Is(err, service.ErrLedgerUnavailable) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) getTopPlaces(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Analytics.TopPlaces(r.Context(), topPlacesLimit)
	if err != nil {
		if errors.Is(err, service.ErrLedgerUnavailable) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	if stats == nil {
		stats = []domain.PlaceStats{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
