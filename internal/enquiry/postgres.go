// internal/enquiry/postgres.go
package enquiry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresSource reads enquiry locations from the back-office enquiries table.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) GetEnquiryLocation(ctx context.Context, enquiryID string) (string, error) {
	var location sql.NullString
	query := `SELECT location FROM enquiries WHERE enquiry_id = $1`
	err := s.db.QueryRowContext(ctx, query, enquiryID).Scan(&location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("enquiry query failed: %w", err)
	}

	if !location.Valid || location.String == "" {
		return "", ErrNotFound
	}

	return location.String, nil
}
