// internal/resolver/validation.go
package resolver

import (
	"fmt"
	"time"

	commonerrors "github.com/jameeshbx/trekking-b2b-sub001/internal/common/errors"
)

const startDateLayout = "2006-01-02"

// ValidateRequest checks the caller supplied something to resolve from and
// that the optional start-date override parses. Returns nil when valid.
func ValidateRequest(req *Request) *commonerrors.StandardError {
	if req.QuoteID == "" && req.EnquiryID == "" && req.Location == "" {
		return commonerrors.NewInvalidRequestError(
			"one of quoteId, enquiryId or location is required")
	}

	if req.StartDate != "" {
		if _, err := time.Parse(startDateLayout, req.StartDate); err != nil {
			return commonerrors.NewInvalidRequestError(
				fmt.Sprintf("startDate %q is not a valid YYYY-MM-DD date", req.StartDate))
		}
	}

	return nil
}
