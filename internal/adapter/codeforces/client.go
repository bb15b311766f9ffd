// Package codeforces calls the public Codeforces REST API.
package codeforces

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

const defaultBaseURL = "https://codeforces.com"

// User is the raw user.info record.
type User struct {
	Handle        string `json:"handle"`
	Rating        int    `json:"rating"`
	MaxRating     int    `json:"maxRating"`
	Rank          string `json:"rank"`
	MaxRank       string `json:"maxRank"`
	Country       string `json:"country"`
	Organization  string `json:"organization"`
	Contribution  int    `json:"contribution"`
	FriendOfCount int    `json:"friendOfCount"`
}

// Client is the concrete Codeforces adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs the Codeforces adapter.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: client, baseURL: defaultBaseURL}
}

// GetUserInfo fetches the profile for one handle. A FAILED envelope becomes a
// not-found error carrying the upstream comment.
func (c *Client) GetUserInfo(ctx context.Context, handle string) (*User, error) {
	var envelope struct {
		Status  string `json:"status"`
		Comment string `json:"comment"`
		Result  []User `json:"result"`
	}
	if err := c.getJSON(ctx, "/api/user.info?handles="+url.QueryEscape(handle), &envelope, "Failed to fetch Codeforces data"); err != nil {
		return nil, err
	}
	if envelope.Status != "OK" {
		message := envelope.Comment
		if message == "" {
			message = "User not found"
		}
		return nil, domain.NewNotFound(message)
	}
	if len(envelope.Result) == 0 {
		return nil, domain.NewNotFound("User not found")
	}
	return &envelope.Result[0], nil
}

// CountContests fetches the rating history and returns the number of rated
// contests the handle participated in.
func (c *Client) CountContests(ctx context.Context, handle string) (int, error) {
	var envelope struct {
		Status string            `json:"status"`
		Result []json.RawMessage `json:"result"`
	}
	if err := c.getJSON(ctx, "/api/user.rating?handle="+url.QueryEscape(handle), &envelope, "Failed to fetch rating history"); err != nil {
		return 0, err
	}
	if envelope.Status != "OK" {
		return 0, domain.NewUpstream("Failed to fetch rating history", envelope.Status)
	}
	return len(envelope.Result), nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any, failMessage string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return domain.NewNetwork(failMessage, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewNetwork(failMessage, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.NewNetwork(failMessage, err)
	}
	// Codeforces reports domain errors as 400s with a JSON comment; parse the
	// envelope before giving up on a non-2xx status.
	if err := json.Unmarshal(body, out); err != nil {
		if resp.StatusCode >= 300 {
			return domain.NewUpstream(failMessage, fmt.Sprintf("status=%d", resp.StatusCode))
		}
		return domain.NewUpstream(failMessage, "unexpected response")
	}
	return nil
}
