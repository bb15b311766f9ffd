// Package github calls the GitHub REST and OAuth APIs.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

const (
	defaultAPIBaseURL   = "https://api.github.com"
	defaultOAuthBaseURL = "https://github.com"
)

// Client is the concrete GitHub adapter.
type Client struct {
	httpClient   *http.Client
	apiBaseURL   string
	oauthBaseURL string
}

// NewClient constructs the GitHub adapter.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient:   client,
		apiBaseURL:   defaultAPIBaseURL,
		oauthBaseURL: defaultOAuthBaseURL,
	}
}

// ExchangeCode swaps an authorization code for an access token. An error
// payload from GitHub surfaces verbatim; the code is single-use upstream so
// the call is never retried.
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"client_id":     clientID,
		"client_secret": clientSecret,
		"code":          code,
		"redirect_uri":  redirectURI,
	})
	if err != nil {
		return "", domain.NewNetwork("Failed to exchange authorization code", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthBaseURL+"/login/oauth/access_token", bytes.NewReader(payload))
	if err != nil {
		return "", domain.NewNetwork("Failed to exchange authorization code", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewNetwork("Failed to exchange authorization code", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", domain.NewNetwork("Failed to exchange authorization code", err)
	}

	var result struct {
		AccessToken      string `json:"access_token"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", domain.NewUpstream("Failed to exchange authorization code", "unexpected token response")
	}
	if result.Error != "" {
		message := result.ErrorDescription
		if message == "" {
			message = result.Error
		}
		return "", domain.NewUpstream(message, "").WithStatus(http.StatusBadRequest)
	}
	if result.AccessToken == "" {
		return "", domain.NewUpstream("Failed to exchange authorization code", "empty access token")
	}
	return result.AccessToken, nil
}

// ListRepos returns the authenticated user's repositories, most recently
// updated first, as raw GitHub JSON.
func (c *Client) ListRepos(ctx context.Context, token string) (json.RawMessage, error) {
	return c.getRaw(ctx, token, "/user/repos?sort=updated&per_page=100&visibility=all", "Failed to fetch repositories")
}

// GetUser returns the authenticated user's profile as raw GitHub JSON.
func (c *Client) GetUser(ctx context.Context, token string) (json.RawMessage, error) {
	return c.getRaw(ctx, token, "/user", "Failed to fetch user profile")
}

// GetRepo returns one repository record as raw GitHub JSON.
func (c *Client) GetRepo(ctx context.Context, token, owner, repo string) (json.RawMessage, error) {
	return c.getRaw(ctx, token, fmt.Sprintf("/repos/%s/%s", owner, repo), "Failed to fetch repository details")
}

// GetReadme returns the repository README decoded to plain text.
func (c *Client) GetReadme(ctx context.Context, token, owner, repo string) (string, error) {
	raw, err := c.getRaw(ctx, token, fmt.Sprintf("/repos/%s/%s/readme", owner, repo), "Failed to fetch README")
	if err != nil {
		return "", err
	}
	var payload struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", domain.NewUpstream("Failed to fetch README", "unexpected readme response")
	}
	if payload.Encoding != "base64" {
		return payload.Content, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(stripNewlines(payload.Content))
	if err != nil {
		return "", domain.NewUpstream("Failed to fetch README", "invalid base64 content")
	}
	return string(decoded), nil
}

// ListLanguages returns the per-language byte counts for a repository.
func (c *Client) ListLanguages(ctx context.Context, token, owner, repo string) (map[string]int64, error) {
	raw, err := c.getRaw(ctx, token, fmt.Sprintf("/repos/%s/%s/languages", owner, repo), "Failed to fetch languages")
	if err != nil {
		return nil, err
	}
	languages := map[string]int64{}
	if err := json.Unmarshal(raw, &languages); err != nil {
		return nil, domain.NewUpstream("Failed to fetch languages", "unexpected languages response")
	}
	return languages, nil
}

func (c *Client) getRaw(ctx context.Context, token, path, failMessage string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path, nil)
	if err != nil {
		return nil, domain.NewNetwork(failMessage, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetwork(failMessage, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, domain.NewNetwork(failMessage, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.NewNotFound("Not found")
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, domain.NewAuthentication("GitHub rejected the credential")
	case resp.StatusCode >= 300:
		return nil, domain.NewUpstream(failMessage, fmt.Sprintf("status=%d", resp.StatusCode))
	}
	return json.RawMessage(body), nil
}

func stripNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
