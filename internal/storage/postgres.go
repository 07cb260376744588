package storage

import (
	"database/sql"
	"fmt"

	"city-explorer/internal/domain"
)

type PostgresLedger struct {
	DB *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{DB: db}
}

func (l *PostgresLedger) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ratings (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			place_id INTEGER NOT NULL,
			rating NUMERIC(3,1) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := l.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (l *PostgresLedger) NextUserID() (int, error) {
	var maxID sql.NullInt64
	err := l.DB.QueryRow("SELECT MAX(user_id) FROM ratings").Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("failed to read max user_id: %w", err)
	}
	if !maxID.Valid {
		return 1, nil
	}
	return int(maxID.Int64) + 1, nil
}

// Append inserts all records in one transaction, so a failed submission
// commits nothing.
func (l *PostgresLedger) Append(records []domain.RatingRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := l.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		if _, err := tx.Exec(`
			INSERT INTO ratings (user_id, place_id, rating)
			VALUES ($1, $2, $3)
		`, record.UserID, record.PlaceID, record.Rating); err != nil {
			return fmt.Errorf("failed to insert rating: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ratings: %w", err)
	}
	return nil
}

func (l *PostgresLedger) ListRatings() ([]domain.RatingRecord, error) {
	rows, err := l.DB.Query(`
		SELECT user_id, place_id, rating
		FROM ratings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var records []domain.RatingRecord
	for rows.Next() {
		var record domain.RatingRecord
		if err := rows.Scan(&record.UserID, &record.PlaceID, &record.Rating); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
