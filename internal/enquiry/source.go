// internal/enquiry/source.go
package enquiry

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an enquiry exists in no backing store or has
// no location on record. The resolver treats it as "no additional signal".
var ErrNotFound = errors.New("enquiry location not found")

// LocationSource resolves an enquiry reference to its free-text location.
// Implementations must honour the context deadline; the resolver bounds every
// call with a timeout and treats any failure as best-effort.
type LocationSource interface {
	GetEnquiryLocation(ctx context.Context, enquiryID string) (string, error)
}
