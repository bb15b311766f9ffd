// Package linkedin resolves LinkedIn profiles through the RapidAPI
// fresh-linkedin-profile-data service.
package linkedin

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

const (
	defaultBaseURL = "https://fresh-linkedin-profile-data.p.rapidapi.com"
	rapidAPIHost   = "fresh-linkedin-profile-data.p.rapidapi.com"
)

// Client is the concrete RapidAPI LinkedIn adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs the LinkedIn adapter.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{httpClient: client, baseURL: defaultBaseURL}
}

// GetProfile fetches the raw profile payload for a public profile URL.
func (c *Client) GetProfile(ctx context.Context, apiKey, profileURL string) (json.RawMessage, error) {
	endpoint := c.baseURL + "/get-profile-data-by-url?url=" + url.QueryEscape(profileURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewNetwork("Failed to fetch LinkedIn profile", err)
	}
	req.Header.Set("x-rapidapi-key", apiKey)
	req.Header.Set("x-rapidapi-host", rapidAPIHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetwork("Failed to fetch LinkedIn profile", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, domain.NewNetwork("Failed to fetch LinkedIn profile", err)
	}
	if resp.StatusCode >= 300 {
		return nil, domain.NewUpstream("Failed to fetch LinkedIn data", fmt.Sprintf("status=%d", resp.StatusCode))
	}
	return json.RawMessage(body), nil
}
