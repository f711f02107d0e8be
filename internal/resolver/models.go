// internal/resolver/models.go
package resolver

import "github.com/jameeshbx/trekking-b2b-sub001/internal/itinerary"

// Match provenance reported in the locationMatched field.
const (
	MatchExplicit   = "explicit"
	MatchLocation   = "location"
	MatchEnquiry    = "enquiry"
	MatchEnquiryRef = "enquiry-reference"
)

// Request carries the caller's identifying input. At least one of QuoteID,
// EnquiryID or Location must be set; StartDate (YYYY-MM-DD) is optional and
// overrides the template's nominal start date.
type Request struct {
	QuoteID   string
	EnquiryID string
	Location  string
	StartDate string
}

// Response is the assembled itinerary returned to the caller.
type Response struct {
	QuoteID         string          `json:"quoteId"`
	Name            string          `json:"name"`
	Days            int             `json:"days"`
	Nights          int             `json:"nights"`
	StartDate       string          `json:"startDate"`
	CostINR         int             `json:"costINR"`
	CostUSD         int             `json:"costUSD"`
	Guests          int             `json:"guests"`
	Adults          int             `json:"adults"`
	Kids            int             `json:"kids"`
	DailyItinerary  []itinerary.Day `json:"dailyItinerary"`
	LocationMatched string          `json:"locationMatched"`
}
