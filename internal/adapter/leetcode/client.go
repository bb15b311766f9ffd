// Package leetcode calls the public LeetCode GraphQL API.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

const defaultBaseURL = "https://leetcode.com"

const userProfileQuery = `
query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      ranking
      reputation
    }
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
    contributions {
      points
    }
  }
}`

// MatchedUser is the raw GraphQL user payload before normalization.
type MatchedUser struct {
	Username string `json:"username"`
	Profile  struct {
		Ranking    int `json:"ranking"`
		Reputation int `json:"reputation"`
	} `json:"profile"`
	SubmitStatsGlobal struct {
		ACSubmissionNum []SubmissionCount `json:"acSubmissionNum"`
	} `json:"submitStatsGlobal"`
	Contributions struct {
		Points int `json:"points"`
	} `json:"contributions"`
}

// SubmissionCount is one accepted-submission bucket by difficulty.
type SubmissionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// Client is the concrete LeetCode adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs the LeetCode adapter.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: client, baseURL: defaultBaseURL}
}

// GetUser fetches the matched user profile. A null matchedUser means the
// handle does not exist.
func (c *Client) GetUser(ctx context.Context, username string) (*MatchedUser, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     userProfileQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, domain.NewNetwork("Failed to fetch LeetCode stats", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewNetwork("Failed to fetch LeetCode stats", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetwork("Failed to fetch LeetCode stats", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domain.NewNetwork("Failed to fetch LeetCode stats", err)
	}
	if resp.StatusCode >= 300 {
		return nil, domain.NewUpstream("Failed to fetch LeetCode data", fmt.Sprintf("status=%d", resp.StatusCode))
	}

	var result struct {
		Data struct {
			MatchedUser *MatchedUser `json:"matchedUser"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, domain.NewUpstream("Failed to fetch LeetCode data", "unexpected response")
	}
	if result.Data.MatchedUser == nil {
		return nil, domain.NewNotFound("User not found")
	}
	return result.Data.MatchedUser, nil
}
