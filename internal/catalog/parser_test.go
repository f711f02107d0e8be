// internal/catalog/parser_test.go
package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

const validTemplate = `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
Test Trip,2,1,2025-08-11,10000,120,2,2,0

day,time,activity,type,description
1,08:00 AM,Breakfast,meal,Morning meal
1,10:00 AM,City walk,,
2,09:00 AM,Checkout,transfer,Departure transfer`

// ==========================
// Core Functionality Tests
// ==========================

func TestParseTemplate_Success(t *testing.T) {
	tmpl, err := ParseTemplate("TEST001", validTemplate)
	require.NoError(t, err)

	assert.Equal(t, "TEST001", tmpl.ID)
	assert.Equal(t, "Test Trip", tmpl.Header.Name)
	assert.Equal(t, 2, tmpl.Header.Days)
	assert.Equal(t, 1, tmpl.Header.Nights)
	assert.Equal(t, time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC), tmpl.Header.StartDate)
	assert.Equal(t, 10000, tmpl.Header.CostINR)
	assert.Equal(t, 120, tmpl.Header.CostUSD)
	assert.Equal(t, 2, tmpl.Header.Guests)
	assert.Equal(t, 2, tmpl.Header.Adults)
	assert.Equal(t, 0, tmpl.Header.Kids)

	require.Len(t, tmpl.Rows, 3)
	assert.Equal(t, ActivityRow{
		Day: 1, Time: "08:00 AM", Activity: "Breakfast", Type: "meal", Description: "Morning meal",
	}, tmpl.Rows[0])
}

func TestParseTemplate_BlankTypeAndDescriptionDefaultToActivity(t *testing.T) {
	tmpl, err := ParseTemplate("TEST001", validTemplate)
	require.NoError(t, err)

	row := tmpl.Rows[1]
	assert.Equal(t, "City walk", row.Activity)
	assert.Equal(t, "City walk", row.Type)
	assert.Equal(t, "City walk", row.Description)
}

func TestParseTemplate_Failures(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expectedErr string
	}{
		{
			name:        "missing blank line separator",
			raw:         "name,days\nX,1\n1,08:00,walk",
			expectedErr: "two sections",
		},
		{
			name: "header without data row",
			raw: `name,days,nights,startDate,costINR,costUSD,guests,adults,kids

day,time,activity,type,description
1,08:00 AM,Breakfast,meal,x`,
			expectedErr: "no data row",
		},
		{
			name: "header with multiple data rows",
			raw: `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
A,1,0,2025-08-11,1,1,1,1,0
B,1,0,2025-08-11,1,1,1,1,0

day,time,activity,type,description
1,08:00 AM,Breakfast,meal,x`,
			expectedErr: "exactly one data row",
		},
		{
			name: "non-numeric day",
			raw: `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
A,1,0,2025-08-11,1,1,1,1,0

day,time,activity,type,description
one,08:00 AM,Breakfast,meal,x`,
			expectedErr: "not an integer",
		},
		{
			name: "day below one",
			raw: `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
A,1,0,2025-08-11,1,1,1,1,0

day,time,activity,type,description
0,08:00 AM,Breakfast,meal,x`,
			expectedErr: "day must be >= 1",
		},
		{
			name: "empty activity",
			raw: `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
A,1,0,2025-08-11,1,1,1,1,0

day,time,activity,type,description
1,08:00 AM,,meal,x`,
			expectedErr: "time and activity must be non-empty",
		},
		{
			name: "bad start date",
			raw: `name,days,nights,startDate,costINR,costUSD,guests,adults,kids
A,1,0,11-08-2025,1,1,1,1,0

day,time,activity,type,description
1,08:00 AM,Breakfast,meal,x`,
			expectedErr: "startDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate("TEST001", tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestParseTemplate_PureTransform(t *testing.T) {
	// Parsing the same text twice yields equal results and leaves no state behind.
	first, err := ParseTemplate("TEST001", validTemplate)
	require.NoError(t, err)
	second, err := ParseTemplate("TEST001", validTemplate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
