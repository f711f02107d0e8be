// internal/itinerary/projector.go
package itinerary

import (
	"fmt"
	"sort"
	"time"

	"github.com/jameeshbx/trekking-b2b-sub001/internal/catalog"
)

// DateLayout is the calendar date format of projected days, e.g. "11 Aug 25".
const DateLayout = "02 Jan 06"

// Project groups activity rows by day number and anchors each day to a
// calendar date: start + (day-1) days. Within a day, activities keep their
// source-row order. Days with no rows are omitted; the catalog verification
// pass is responsible for flagging such gaps.
func Project(name string, start time.Time, rows []catalog.ActivityRow) []Day {
	byDay := make(map[int][]Activity)
	for _, row := range rows {
		byDay[row.Day] = append(byDay[row.Day], Activity{
			Time:        row.Time,
			Title:       row.Activity,
			Type:        row.Type,
			Description: row.Description,
		})
	}

	dayNumbers := make([]int, 0, len(byDay))
	for day := range byDay {
		dayNumbers = append(dayNumbers, day)
	}
	sort.Ints(dayNumbers)

	days := make([]Day, 0, len(dayNumbers))
	for _, day := range dayNumbers {
		days = append(days, Day{
			Day:        day,
			Date:       start.AddDate(0, 0, day-1).Format(DateLayout),
			Title:      fmt.Sprintf("Day %d - %s", day, name),
			Activities: byDay[day],
		})
	}
	return days
}
