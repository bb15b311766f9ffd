// Package kite calls the Kite Connect trading API: checksum-signed session
// token exchange plus portfolio reads.
package kite

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

const (
	defaultBaseURL = "https://api.kite.trade"
	kiteVersion    = "3"
)

// Session is the result of a successful token exchange.
type Session struct {
	AccessToken string
	UserID      string
}

// Client is the concrete Kite Connect adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs the Kite adapter.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: client, baseURL: defaultBaseURL}
}

// Checksum computes the request signature Kite requires for the session
// token exchange: sha256 over api key, request token, and api secret.
func Checksum(apiKey, requestToken, apiSecret string) string {
	sum := sha256.Sum256([]byte(apiKey + requestToken + apiSecret))
	return hex.EncodeToString(sum[:])
}

// ExchangeToken swaps a request token for an access token. Request tokens are
// single-use upstream; a second exchange fails there and that failure is
// surfaced, never retried or masked.
func (c *Client) ExchangeToken(ctx context.Context, apiKey, apiSecret, requestToken string) (*Session, error) {
	form := url.Values{}
	form.Set("api_key", apiKey)
	form.Set("request_token", requestToken)
	form.Set("checksum", Checksum(apiKey, requestToken, apiSecret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, domain.NewNetwork("Failed to exchange token", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Kite-Version", kiteVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetwork("Failed to exchange token", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domain.NewNetwork("Failed to exchange token", err)
	}

	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			AccessToken string `json:"access_token"`
			UserID      string `json:"user_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, domain.NewUpstream("Failed to get access token", "unexpected response")
	}
	if result.Status == "error" || result.Data.AccessToken == "" {
		message := result.Message
		if message == "" {
			message = "Failed to get access token"
		}
		return nil, domain.NewUpstream(message, "").WithStatus(http.StatusBadRequest)
	}
	return &Session{AccessToken: result.Data.AccessToken, UserID: result.Data.UserID}, nil
}

// Holdings returns the raw holdings payload. A non-2xx upstream status is
// passed through to the caller.
func (c *Client) Holdings(ctx context.Context, apiKey, accessToken string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/portfolio/holdings", apiKey, accessToken, "Failed to fetch holdings")
}

// Positions returns the raw positions payload with the same passthrough rule.
func (c *Client) Positions(ctx context.Context, apiKey, accessToken string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/portfolio/positions", apiKey, accessToken, "Failed to fetch positions")
}

func (c *Client) getRaw(ctx context.Context, path, apiKey, accessToken, failMessage string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, domain.NewNetwork(failMessage, err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("token %s:%s", apiKey, accessToken))
	req.Header.Set("X-Kite-Version", kiteVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetwork(failMessage, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, domain.NewNetwork(failMessage, err)
	}
	if resp.StatusCode >= 300 {
		return nil, domain.NewUpstream(failMessage, "").WithStatus(resp.StatusCode)
	}
	return json.RawMessage(body), nil
}
