// internal/itinerary/models.go
package itinerary

// Activity is one scheduled event in a projected day.
type Activity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Day is one projected calendar day of a resolved itinerary.
type Day struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}
