// Package locations is a thin passthrough over the location-search API:
// paginate the store query, collect the result rows, append them to a CSV.
package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the HTTP request timeout for one result page.
const DefaultTimeout = 30 * time.Second

const defaultBaseURL = "https://serpapi.com"

// Location is one store-locator result row.
type Location struct {
	Position  int
	Title     string
	PlaceID   string
	Address   string
	Latitude  float64
	Longitude float64
}

// Client queries the location-search API.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
	BaseURL    string
}

// NewClient returns a client with default timeout and endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
	}
}

type searchResponse struct {
	LocalResults []localResult `json:"local_results"`
	Pagination   pagination    `json:"serpapi_pagination"`
}

type localResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	PlaceID  string `json:"place_id"`
	Address  string `json:"address"`
	GPS      struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"gps_coordinates"`
}

type pagination struct {
	NextLink string `json:"next_link"`
}

// Search runs a local-results query for the given store name and follows
// the pagination links until the last page.
func (c *Client) Search(ctx context.Context, query string) ([]Location, error) {
	next := fmt.Sprintf(
		"%s/search?q=%s&google_domain=google.de&location=germany&gl=de&engine=google&num=100&start=0&tbm=lcl&api_key=%s",
		c.BaseURL, url.QueryEscape(query), url.QueryEscape(c.APIKey),
	)

	var out []Location
	for next != "" {
		page, err := c.fetchPage(ctx, next)
		if err != nil {
			return out, err
		}
		for _, r := range page.LocalResults {
			out = append(out, Location{
				Position:  r.Position,
				Title:     r.Title,
				PlaceID:   r.PlaceID,
				Address:   r.Address,
				Latitude:  r.GPS.Latitude,
				Longitude: r.GPS.Longitude,
			})
		}
		next = page.Pagination.NextLink
		if next != "" {
			next += "&api_key=" + url.QueryEscape(c.APIKey)
		}
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, rawURL string) (*searchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("location search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("location search returned status %d", resp.StatusCode)
	}

	var page searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode location search response: %w", err)
	}
	return &page, nil
}
