// Package brandfetch searches companies via the public Brandfetch API.
package brandfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

const defaultBaseURL = "https://api.brandfetch.io"

// SearchResult is one raw search hit.
type SearchResult struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
}

// Client is the concrete Brandfetch adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs the Brandfetch adapter.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: client, baseURL: defaultBaseURL}
}

// Search returns raw company hits for a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	endpoint := c.baseURL + "/v2/search/" + url.PathEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewNetwork("Failed to search companies", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetwork("Failed to search companies", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domain.NewNetwork("Failed to search companies", err)
	}
	if resp.StatusCode >= 300 {
		return nil, domain.NewUpstream("Failed to search companies", fmt.Sprintf("status=%d", resp.StatusCode))
	}

	var results []SearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, domain.NewUpstream("Failed to search companies", "unexpected response")
	}
	return results, nil
}
