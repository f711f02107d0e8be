// internal/match/matcher.go
package match

import (
	"sort"
	"strings"
)

// Matcher turns free-text locations into template identifiers. Resolution is
// pure, total and deterministic: exact keyword lookup first, then a substring
// scan with longest-keyword-wins tie-breaking, then a fixed default.
type Matcher struct {
	keywords  map[string]string
	scanOrder []string
	defaultID string
}

// New builds a Matcher from a keyword -> template-id table. Keywords are
// normalized on the way in. The scan order is longest keyword first with
// lexicographic order on equal length, so overlapping keywords resolve the
// same way on every run regardless of map iteration order.
func New(keywords map[string]string, defaultID string) *Matcher {
	normalized := make(map[string]string, len(keywords))
	for keyword, id := range keywords {
		normalized[normalize(keyword)] = id
	}

	order := make([]string, 0, len(normalized))
	for keyword := range normalized {
		order = append(order, keyword)
	}
	sort.Slice(order, func(i, j int) bool {
		if len(order[i]) != len(order[j]) {
			return len(order[i]) > len(order[j])
		}
		return order[i] < order[j]
	})

	return &Matcher{
		keywords:  normalized,
		scanOrder: order,
		defaultID: defaultID,
	}
}

// Resolve returns a template id for any input. It never fails: input that
// matches nothing resolves to the default template.
func (m *Matcher) Resolve(text string) string {
	if id, ok := m.Scan(text); ok {
		return id
	}
	return m.defaultID
}

// Scan performs the exact and substring passes without applying the default,
// so callers that need a hard miss (raw enquiry references) can tell the
// difference.
func (m *Matcher) Scan(text string) (string, bool) {
	input := normalize(text)
	if input == "" {
		return "", false
	}

	if id, ok := m.keywords[input]; ok {
		return id, true
	}

	for _, keyword := range m.scanOrder {
		if strings.Contains(input, keyword) || strings.Contains(keyword, input) {
			return m.keywords[keyword], true
		}
	}

	return "", false
}

// DefaultTemplateID returns the id used when nothing matches.
func (m *Matcher) DefaultTemplateID() string {
	return m.defaultID
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
