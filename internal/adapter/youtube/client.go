// Package youtube calls the YouTube Data API v3.
package youtube

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

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Channel is one raw channel item.
type Channel struct {
	ID      string `json:"id"`
	Snippet struct {
		Title      string `json:"title"`
		CustomURL  string `json:"customUrl"`
		Thumbnails struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		SubscriberCount string `json:"subscriberCount"`
		VideoCount      string `json:"videoCount"`
		ViewCount       string `json:"viewCount"`
	} `json:"statistics"`
}

// SearchItem is one raw channel search hit.
type SearchItem struct {
	ID struct {
		ChannelID string `json:"channelId"`
	} `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Thumbnails  struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}

// Client is the concrete YouTube adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs the YouTube adapter.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{httpClient: client, baseURL: defaultBaseURL}
}

// ListChannels fetches snippet and statistics for a channel id.
func (c *Client) ListChannels(ctx context.Context, apiKey, channelID string) ([]Channel, error) {
	query := url.Values{}
	query.Set("part", "snippet,statistics")
	query.Set("id", channelID)
	query.Set("key", apiKey)

	var envelope struct {
		Items []Channel `json:"items"`
	}
	if err := c.getJSON(ctx, "/channels?"+query.Encode(), &envelope, "Failed to fetch YouTube data"); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// SearchChannels searches channels by free-text query.
func (c *Client) SearchChannels(ctx context.Context, apiKey, q string, maxResults int) ([]SearchItem, error) {
	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("type", "channel")
	query.Set("q", q)
	query.Set("key", apiKey)
	query.Set("maxResults", fmt.Sprintf("%d", maxResults))

	var envelope struct {
		Items []SearchItem `json:"items"`
	}
	if err := c.getJSON(ctx, "/search?"+query.Encode(), &envelope, "Failed to search YouTube channels"); err != nil {
		return nil, err
	}
	return envelope.Items, nil
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
	if resp.StatusCode >= 300 {
		return domain.NewUpstream(failMessage, fmt.Sprintf("status=%d", resp.StatusCode))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewUpstream(failMessage, "unexpected response")
	}
	return nil
}
