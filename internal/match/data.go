// internal/match/data.go
package match

// DefaultKeywords maps place names and aliases to template identifiers.
// Many-to-one is expected; every value must exist in the template catalog
// (cmd wiring checks this at startup).
func DefaultKeywords() map[string]string {
	return map[string]string{
		"kashmir":     "KASH001",
		"srinagar":    "KASH001",
		"gulmarg":     "KASH001",
		"pahalgam":    "KASH001",
		"dal lake":    "KASH001",
		"goa":         "GOA001",
		"baga":        "GOA001",
		"calangute":   "GOA001",
		"panjim":      "GOA001",
		"kerala":      "KERL001",
		"munnar":      "KERL001",
		"alleppey":    "KERL001",
		"kochi":       "KERL001",
		"backwaters":  "KERL001",
		"rajasthan":   "RAJA001",
		"jaipur":      "RAJA001",
		"jodhpur":     "RAJA001",
		"jaisalmer":   "RAJA001",
		"udaipur":     "RAJA001",
		"himachal":    "HIMA001",
		"manali":      "HIMA001",
		"shimla":      "HIMA001",
		"solang":      "HIMA001",
		"dharamshala": "HIMA001",
	}
}
