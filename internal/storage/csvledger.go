package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"city-explorer/internal/domain"
)

// CSVLedger appends rating records to a local tabular file with columns
// user_id, place_id, rating. The file is created on first append. Rows
// whose user_id does not parse (including a stray header row) are
// ignored on read.
type CSVLedger struct {
	Path string
}

func NewCSVLedger(path string) *CSVLedger {
	return &CSVLedger{Path: path}
}

func (l *CSVLedger) NextUserID() (int, error) {
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

// Append writes all records in a single write call so a failed
// submission leaves no partial rows behind.
func (l *CSVLedger) Append(records []domain.RatingRecord) error {
	if len(records) == 0 {
		return nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.UserID),
			strconv.Itoa(record.PlaceID),
			strconv.FormatFloat(record.Rating, 'f', 1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to encode rating row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to encode rating rows: %w", err)
	}

	file, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open rating store: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to append rating rows: %w", err)
	}
	return nil
}

func (l *CSVLedger) ListRatings() ([]domain.RatingRecord, error) {
	file, err := os.Open(l.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open rating store: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rating store: %w", err)
	}

	var records []domain.RatingRecord
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		userID, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		placeID, err := strconv.Atoi(row[1])
		if err != nil {
			continue
		}
		rating, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			continue
		}
		records = append(records, domain.RatingRecord{UserID: userID, PlaceID: placeID, Rating: rating})
	}
	return records, nil
}
