package storage

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"city-explorer/internal/domain"
)

// Catalog is the city-filtered point-of-interest dataset. It is loaded
// once at startup and read-only afterwards.
type Catalog struct {
	places []domain.Place
	byName map[string]int
	byID   map[int]domain.Place
}

var requiredColumns = []string{"place_id", "place_name", "city", "category", "price", "rating", "description"}

// LoadCatalog reads the tabular catalog file, normalizes column names
// (trim + lowercase) and keeps only rows whose city contains cityFilter,
// case-insensitively. Rows with unparseable id, price or rating are
// skipped.
func LoadCatalog(path, cityFilter string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("catalog is missing required column %q", name)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	catalog := &Catalog{
		byName: map[string]int{},
		byID:   map[int]domain.Place{},
	}
	filter := strings.ToLower(cityFilter)

	for _, row := range rows {
		city := field(row, columns["city"])
		if !strings.Contains(strings.ToLower(city), filter) {
			continue
		}

		id, err := strconv.Atoi(field(row, columns["place_id"]))
		if err != nil {
			log.Printf("[itinerary-svc] skipping catalog row with bad place_id %q", field(row, columns["place_id"]))
			continue
		}
		price, err := strconv.ParseFloat(field(row, columns["price"]), 64)
		if err != nil {
			log.Printf("[itinerary-svc] skipping catalog row %d with bad price", id)
			continue
		}
		rating, err := strconv.ParseFloat(field(row, columns["rating"]), 64)
		if err != nil {
			log.Printf("[itinerary-svc] skipping catalog row %d with bad rating", id)
			continue
		}

		place := domain.Place{
			PlaceID:     id,
			Name:        field(row, columns["place_name"]),
			City:        city,
			Category:    field(row, columns["category"]),
			Price:       price,
			Rating:      rating,
			Description: field(row, columns["description"]),
		}
		catalog.places = append(catalog.places, place)
		catalog.byName[place.Name] = place.PlaceID
		catalog.byID[place.PlaceID] = place
	}

	log.Printf("[itinerary-svc] loaded %d places for city filter %q", len(catalog.places), cityFilter)
	return catalog, nil
}

func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (c *Catalog) Places() []domain.Place {
	return c.places
}

// ResolveName maps an exact place name to its id.
func (c *Catalog) ResolveName(name string) (int, bool) {
	id, ok := c.byName[name]
	return id, ok
}

func (c *Catalog) Get(placeID int) (domain.Place, bool) {
	place, ok := c.byID[placeID]
	return place, ok
}

// Categories returns the distinct categories present in the catalog,
// sorted for stable output.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var categories []string
	for _, place := range c.places {
		if place.Category == "" || seen[place.Category] {
			continue
		}
		seen[place.Category] = true
		categories = append(categories, place.Category)
	}
	sort.Strings(categories)
	return categories
}
