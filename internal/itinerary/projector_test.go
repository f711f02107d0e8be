// internal/itinerary/projector_test.go
package itinerary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameeshbx/trekking-b2b-sub001/internal/catalog"
)

// ==========================
// Test Helper Functions
// ==========================

func row(day int, clock, activity string) catalog.ActivityRow {
	return catalog.ActivityRow{
		Day: day, Time: clock, Activity: activity, Type: activity, Description: activity,
	}
}

var start = time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC)

// ==========================
// Core Functionality Tests
// ==========================

func TestProject_DateOffsets(t *testing.T) {
	days := Project("Kashmir Valley Escape", start, []catalog.ActivityRow{
		row(1, "08:00 AM", "Breakfast"),
		row(2, "09:00 AM", "Transfer"),
		row(3, "10:00 AM", "Departure"),
	})

	require.Len(t, days, 3)
	assert.Equal(t, "11 Aug 25", days[0].Date)
	assert.Equal(t, "12 Aug 25", days[1].Date)
	assert.Equal(t, "13 Aug 25", days[2].Date)
}

func TestProject_TitleSynthesis(t *testing.T) {
	days := Project("Goa Beach Getaway", start, []catalog.ActivityRow{
		row(1, "08:00 AM", "Breakfast"),
	})

	require.Len(t, days, 1)
	assert.Equal(t, "Day 1 - Goa Beach Getaway", days[0].Title)
}

func TestProject_StableOrderWithinDay(t *testing.T) {
	days := Project("Trip", start, []catalog.ActivityRow{
		row(1, "08:00 PM", "Dinner"),
		row(1, "08:00 AM", "Breakfast"),
		row(1, "01:00 PM", "Lunch"),
	})

	require.Len(t, days, 1)
	titles := []string{}
	for _, a := range days[0].Activities {
		titles = append(titles, a.Title)
	}
	// Source-row order, not clock order: no sort key beyond row order exists.
	assert.Equal(t, []string{"Dinner", "Breakfast", "Lunch"}, titles)
}

func TestProject_SkippedDaysAreOmitted(t *testing.T) {
	days := Project("Trip", start, []catalog.ActivityRow{
		row(1, "08:00 AM", "Breakfast"),
		row(3, "09:00 AM", "Checkout"),
	})

	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 3, days[1].Day)
	// Day 3 still lands on start+2 even with day 2 absent.
	assert.Equal(t, "13 Aug 25", days[1].Date)
}

func TestProject_UnorderedDaysSortAscending(t *testing.T) {
	days := Project("Trip", start, []catalog.ActivityRow{
		row(2, "09:00 AM", "Hike"),
		row(1, "08:00 AM", "Breakfast"),
	})

	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
}

func TestProject_NoRows(t *testing.T) {
	assert.Empty(t, Project("Trip", start, nil))
}
