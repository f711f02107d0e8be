// internal/catalog/models.go
package catalog

import "time"

// Header carries the trip metadata row of a template.
type Header struct {
	Name      string
	Days      int
	Nights    int
	StartDate time.Time
	CostINR   int
	CostUSD   int
	Guests    int
	Adults    int
	Kids      int
}

// ActivityRow is one scheduled event within a template day. Rows are owned by
// their parent template and keep source order.
type ActivityRow struct {
	Day         int
	Time        string
	Activity    string
	Type        string
	Description string
}

// Template is a parsed, pre-authored travel package.
type Template struct {
	ID     string
	Header Header
	Rows   []ActivityRow
}
