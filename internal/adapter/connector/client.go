// Package connector fetches the server-managed fallback credential from a
// token-vending connector service.
package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/atharv2285/Stage-portdesign/internal/credential"
	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

// Client implements credential.Source against a connector endpoint that
// returns {"access_token": ..., "expires_at": RFC3339}.
type Client struct {
	httpClient *http.Client
	url        string
	authToken  string
}

var _ credential.Source = (*Client)(nil)

// NewClient constructs the connector source.
func NewClient(client *http.Client, url, authToken string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: client, url: url, authToken: authToken}
}

// Fetch retrieves a fresh fallback credential.
func (c *Client) Fetch(ctx context.Context) (credential.Credential, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return credential.Credential{}, domain.NewNetwork("Failed to fetch fallback credential", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return credential.Credential{}, domain.NewNetwork("Failed to fetch fallback credential", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return credential.Credential{}, domain.NewNetwork("Failed to fetch fallback credential", err)
	}
	if resp.StatusCode >= 300 {
		return credential.Credential{}, domain.NewUpstream("Failed to fetch fallback credential", fmt.Sprintf("status=%d", resp.StatusCode))
	}

	var payload struct {
		AccessToken string    `json:"access_token"`
		ExpiresAt   time.Time `json:"expires_at"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return credential.Credential{}, domain.NewUpstream("Failed to fetch fallback credential", "unexpected response")
	}
	if payload.AccessToken == "" {
		return credential.Credential{}, domain.NewUpstream("Failed to fetch fallback credential", "empty access token")
	}
	return credential.Credential{Token: payload.AccessToken, ExpiresAt: payload.ExpiresAt}, nil
}
