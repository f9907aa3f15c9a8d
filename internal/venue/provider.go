package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const httpTimeout = 10 * time.Second

const (
	searchRadius     = "5000"
	searchCategories = "10000,13000,16000"
	searchFields     = "name,location,categories,popularity,rating,price,stats"
)

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// doGet performs a GET request with the given headers and decodes the JSON response into dst.
func doGet(ctx context.Context, client *http.Client, rawURL string, header http.Header, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", rawURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}

	return nil
}

// FoursquareClient searches venues near a point using the Foursquare Places API.
type FoursquareClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewFoursquareClientWithURL constructs a FoursquareClient pointing at a custom base URL.
func NewFoursquareClientWithURL(baseURL, apiKey string) *FoursquareClient {
	return &FoursquareClient{apiKey: apiKey, baseURL: baseURL, client: newHTTPClient()}
}

type searchResponse struct {
	Results []Venue `json:"results"`
}

// Search returns up to limit venues within 5km of city, most popular first.
func (c *FoursquareClient) Search(ctx context.Context, city City, limit int) ([]Venue, error) {
	q := url.Values{}
	q.Set("ll", city.Coords())
	q.Set("radius", searchRadius)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("categories", searchCategories)
	q.Set("sort", "POPULARITY")
	q.Set("fields", searchFields)

	header := http.Header{}
	header.Set("Authorization", c.apiKey)
	header.Set("Accept", "application/json")

	var raw searchResponse
	if err := doGet(ctx, c.client, c.baseURL+"/search?"+q.Encode(), header, &raw); err != nil {
		return nil, fmt.Errorf("foursquare search for %s: %w", city.Name, err)
	}

	return raw.Results, nil
}
