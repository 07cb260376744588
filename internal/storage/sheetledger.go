package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"city-explorer/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SheetLedger stores ratings in a remote tabular document reachable at a
// stable URL. Reads fetch the sheet as CSV; appends POST all rows in one
// request so the remote end can apply them atomically.
//
// The sheet must carry the exact header user_id, place_id, place_ratings.
// A mismatch is a configuration error and the submission is rejected
// instead of silently renaming columns.
type SheetLedger struct {
	URL    string
	Client HTTPClient
}

var sheetHeader = []string{"user_id", "place_id", "place_ratings"}

func NewSheetLedger(url string, client HTTPClient) *SheetLedger {
	if client == nil {
		client = &http.Client{}
	}
	return &SheetLedger{URL: url, Client: client}
}

func (l *SheetLedger) NextUserID() (int, error) {
	records, err := l.ListRatings()
	if err != nil {
		return 0, err
	}

	maxID := 0
	for _, record := range records {
		if record.UserID > maxID {
			maxID = record.UserID
		}
	}
	return maxID + 1, nil
}

func (l *SheetLedger) Append(records []domain.RatingRecord) error {
	if len(records) == 0 {
		return nil
	}

	// Re-check the header before writing; a misconfigured sheet must
	// reject the whole submission.
	if _, err := l.fetchRows(); err != nil {
		return err
	}

	values := make([][]string, 0, len(records))
	for _, record := range records {
		values = append(values, []string{
			strconv.Itoa(record.UserID),
			strconv.Itoa(record.PlaceID),
			strconv.FormatFloat(record.Rating, 'f', 1, 64),
		})
	}

	payload, err := json.Marshal(map[string]interface{}{"values": values})
	if err != nil {
		return fmt.Errorf("failed to encode sheet rows: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, l.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create sheet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach rating sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("rating sheet append rejected with status %d", resp.StatusCode)
	}
	return nil
}

func (l *SheetLedger) ListRatings() ([]domain.RatingRecord, error) {
	rows, err := l.fetchRows()
	if err != nil {
		return nil, err
	}

	var records []domain.RatingRecord
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		userID, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			continue
		}
		placeID, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			continue
		}
		records = append(records, domain.RatingRecord{UserID: userID, PlaceID: placeID, Rating: rating})
	}
	return records, nil
}

// fetchRows downloads the sheet, validates the header and returns the
// data rows.
func (l *SheetLedger) fetchRows() ([][]string, error) {
	req, err := http.NewRequest(http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet request: %w", err)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach rating sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rating sheet returned status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rating sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("rating sheet is empty, expected header %s", strings.Join(sheetHeader, ", "))
	}

	header := rows[0]
	if len(header) < len(sheetHeader) {
		return nil, fmt.Errorf("rating sheet header mismatch: got %v, want %v", header, sheetHeader)
	}
	for i, want := range sheetHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != want {
			return nil, fmt.Errorf("rating sheet header mismatch: got %v, want %v", header, sheetHeader)
		}
	}
	return rows[1:], nil
}
