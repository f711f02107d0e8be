// internal/enquiry/postgres_test.go
package enquiry

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSource_GetEnquiryLocation(t *testing.T) {
	query := `SELECT location FROM enquiries WHERE enquiry_id = \$1`

	tests := []struct {
		name             string
		setupMock        func(mock sqlmock.Sqlmock)
		expectedLocation string
		expectedErr      error
		expectError      bool
	}{
		{
			name: "row found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("ENQ-1001").
					WillReturnRows(sqlmock.NewRows([]string{"location"}).AddRow("kashmir"))
			},
			expectedLocation: "kashmir",
		},
		{
			name: "no row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("ENQ-1001").
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: ErrNotFound,
			expectError: true,
		},
		{
			name: "null location",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("ENQ-1001").
					WillReturnRows(sqlmock.NewRows([]string{"location"}).AddRow(nil))
			},
			expectedErr: ErrNotFound,
			expectError: true,
		},
		{
			name: "empty location",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("ENQ-1001").
					WillReturnRows(sqlmock.NewRows([]string{"location"}).AddRow(""))
			},
			expectedErr: ErrNotFound,
			expectError: true,
		},
		{
			name: "query failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("ENQ-1001").
					WillReturnError(errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setupMock(mock)

			source := NewPostgresSource(db)
			location, err := source.GetEnquiryLocation(context.Background(), "ENQ-1001")

			if tt.expectError {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedLocation, location)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
