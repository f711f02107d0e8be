// internal/catalog/store.go
package catalog

import (
	"sort"

	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/logger"
	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/metrics"
	"github.com/jameeshbx/trekking-b2b-sub001/pkg/registry"
)

// Store holds the fixed catalog of raw template text blocks keyed by template
// identifier. It is built once at startup and never mutated afterwards, so
// concurrent readers need no locking.
type Store struct {
	raw map[string]string
}

// NewStore builds a Store from a template map. The map is copied.
func NewStore(raw map[string]string) *Store {
	cp := make(map[string]string, len(raw))
	for id, text := range raw {
		cp[id] = text
	}
	return &Store{raw: cp}
}

// NewStoreFromRegistry builds a Store from the built-in catalog with registry
// entries layered on top. Registry entries override built-ins on id collision.
func NewStoreFromRegistry(builtin map[string]string, reg *registry.TemplateRegistry) *Store {
	store := NewStore(builtin)
	if reg != nil {
		for _, entry := range reg.Templates {
			store.raw[entry.ID] = entry.RawText
		}
	}
	return store
}

// Get returns the raw text block for a template id. The boolean is false for
// unknown ids; callers decide the fallback policy.
func (s *Store) Get(id string) (string, bool) {
	raw, ok := s.raw[id]
	return raw, ok
}

// Has reports whether a template id exists in the catalog.
func (s *Store) Has(id string) bool {
	_, ok := s.raw[id]
	return ok
}

// IDs returns the catalog's template ids in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.raw))
	for id := range s.raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Verify parses every catalog entry and checks that its day numbers cover
// exactly 1..declared-days. Violations are logged as integrity warnings, not
// dropped: the catalog stays serviceable and the warning points at the entry
// to fix. Returns the number of warnings raised.
func (s *Store) Verify(log logger.Logger) int {
	warnings := 0
	for _, id := range s.IDs() {
		tmpl, err := ParseTemplate(id, s.raw[id])
		if err != nil {
			log.Warn("catalog entry failed to parse", map[string]interface{}{
				"templateId": id,
				"error":      err.Error(),
			})
			metrics.CatalogIntegrityWarnings.Inc()
			warnings++
			continue
		}

		seen := make(map[int]bool)
		for _, row := range tmpl.Rows {
			seen[row.Day] = true
		}

		contiguous := len(seen) == tmpl.Header.Days
		for day := 1; day <= tmpl.Header.Days && contiguous; day++ {
			contiguous = seen[day]
		}
		if !contiguous {
			log.Warn("catalog entry day numbers do not cover declared trip length", map[string]interface{}{
				"templateId":   id,
				"declaredDays": tmpl.Header.Days,
				"distinctDays": len(seen),
			})
			metrics.CatalogIntegrityWarnings.Inc()
			warnings++
		}
	}
	return warnings
}
