// internal/enquiry/http.go
package enquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPSource fetches enquiry locations from the back-office enquiry API.
type HTTPSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type enquiryResponse struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Status   string `json:"status,omitempty"`
}

func NewHTTPSource(baseURL, apiKey string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *HTTPSource) GetEnquiryLocation(ctx context.Context, enquiryID string) (string, error) {
	endpoint := fmt.Sprintf("%s/enquiries/%s", s.baseURL, url.PathEscape(enquiryID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("enquiry lookup failed (status %d): %s", resp.StatusCode, string(body))
	}

	var enquiry enquiryResponse
	if err := json.NewDecoder(resp.Body).Decode(&enquiry); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if enquiry.Location == "" {
		return "", ErrNotFound
	}

	return enquiry.Location, nil
}
