// pkg/registry/schema.go
package registry

// TemplateRegistry is the on-disk catalog override file. Entries layer on top
// of the built-in catalog; keywords feed the location matcher.
type TemplateRegistry struct {
	Version     string          `json:"version"`
	LastUpdated string          `json:"lastUpdated"`
	Templates   []TemplateEntry `json:"templates"`
}

type TemplateEntry struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Keywords    []string `json:"keywords,omitempty"`
	RawText     string   `json:"rawText"`
}

// registrySchema validates registry files before they are trusted.
const registrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "templates"],
  "properties": {
    "version": { "type": "string", "minLength": 1 },
    "lastUpdated": { "type": "string" },
    "templates": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "displayName", "rawText"],
        "properties": {
          "id": { "type": "string", "pattern": "^[A-Z]{3,4}[0-9]{3}$" },
          "displayName": { "type": "string", "minLength": 1 },
          "keywords": {
            "type": "array",
            "items": { "type": "string", "minLength": 2 }
          },
          "rawText": { "type": "string", "minLength": 1 }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`
