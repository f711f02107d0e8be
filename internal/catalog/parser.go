// internal/catalog/parser.go
package catalog

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const startDateLayout = "2006-01-02"

// ParseTemplate converts a raw template text block into a typed Template.
// The block must contain a trip metadata section and an activities section
// separated by a blank line, each a CSV table with a header row.
func ParseTemplate(id, raw string) (*Template, error) {
	headerSection, activitySection, err := splitSections(raw)
	if err != nil {
		return nil, err
	}

	header, err := parseHeader(headerSection)
	if err != nil {
		return nil, fmt.Errorf("header section: %w", err)
	}

	rows, err := parseActivities(activitySection)
	if err != nil {
		return nil, fmt.Errorf("activities section: %w", err)
	}

	return &Template{ID: id, Header: header, Rows: rows}, nil
}

func splitSections(raw string) (string, string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), "\r\n", "\n")
	parts := strings.SplitN(normalized, "\n\n", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected two sections separated by a blank line")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// parseHeader parses the single metadata row. More or fewer than one data row
// is a malformed template, not a silent pick of row zero.
func parseHeader(section string) (Header, error) {
	records, err := csv.NewReader(strings.NewReader(section)).ReadAll()
	if err != nil {
		return Header{}, fmt.Errorf("csv parse: %w", err)
	}
	if len(records) < 2 {
		return Header{}, fmt.Errorf("no data row")
	}
	if len(records) > 2 {
		return Header{}, fmt.Errorf("expected exactly one data row, got %d", len(records)-1)
	}

	idx := columnIndex(records[0])
	row := records[1]

	field := func(name string) (string, error) {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return "", fmt.Errorf("missing column %q", name)
		}
		return strings.TrimSpace(row[i]), nil
	}
	intField := func(name string) (int, error) {
		s, err := field(name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		return n, nil
	}

	var h Header
	if h.Name, err = field("name"); err != nil {
		return Header{}, err
	}
	if h.Name == "" {
		return Header{}, fmt.Errorf("empty name")
	}
	if h.Days, err = intField("days"); err != nil {
		return Header{}, err
	}
	if h.Days < 1 {
		return Header{}, fmt.Errorf("days must be >= 1, got %d", h.Days)
	}
	if h.Nights, err = intField("nights"); err != nil {
		return Header{}, err
	}

	startRaw, err := field("startDate")
	if err != nil {
		return Header{}, err
	}
	if h.StartDate, err = time.Parse(startDateLayout, startRaw); err != nil {
		return Header{}, fmt.Errorf("column %q: %w", "startDate", err)
	}

	if h.CostINR, err = intField("costINR"); err != nil {
		return Header{}, err
	}
	if h.CostUSD, err = intField("costUSD"); err != nil {
		return Header{}, err
	}
	if h.Guests, err = intField("guests"); err != nil {
		return Header{}, err
	}
	if h.Adults, err = intField("adults"); err != nil {
		return Header{}, err
	}
	if h.Kids, err = intField("kids"); err != nil {
		return Header{}, err
	}

	return h, nil
}

func parseActivities(section string) ([]ActivityRow, error) {
	records, err := csv.NewReader(strings.NewReader(section)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parse: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	idx := columnIndex(records[0])
	for _, name := range []string{"day", "time", "activity"} {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	rows := make([]ActivityRow, 0, len(records)-1)
	for i, record := range records[1:] {
		get := func(name string) string {
			j, ok := idx[name]
			if !ok || j >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[j])
		}

		day, err := strconv.Atoi(get("day"))
		if err != nil {
			return nil, fmt.Errorf("row %d: day %q is not an integer", i+1, get("day"))
		}
		if day < 1 {
			return nil, fmt.Errorf("row %d: day must be >= 1, got %d", i+1, day)
		}

		clock := get("time")
		activity := get("activity")
		if clock == "" || activity == "" {
			return nil, fmt.Errorf("row %d: time and activity must be non-empty", i+1)
		}

		// Blank tag or description falls back to the activity label.
		typ := get("type")
		if typ == "" {
			typ = activity
		}
		description := get("description")
		if description == "" {
			description = activity
		}

		rows = append(rows, ActivityRow{
			Day:         day,
			Time:        clock,
			Activity:    activity,
			Type:        typ,
			Description: description,
		})
	}

	return rows, nil
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}
