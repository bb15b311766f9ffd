package domain

import "encoding/json"

// AuthorizationURL is the prepared third-party authorization redirect.
type AuthorizationURL struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state,omitempty"`
}

// TokenGrant is the result of exchanging an authorization code or request
// token. UserID is only populated by the brokerage exchange.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id,omitempty"`
}

// RepoDetail aggregates the three repository sub-resources. Readme and
// Languages hold documented defaults when their sub-calls fail.
type RepoDetail struct {
	Repo      json.RawMessage  `json:"repo"`
	Readme    string           `json:"readme"`
	Languages map[string]int64 `json:"languages"`
}

// LeetCodeStats flattens the nested submission stats into named counts.
type LeetCodeStats struct {
	Username           string `json:"username"`
	TotalSolved        int    `json:"totalSolved"`
	EasySolved         int    `json:"easySolved"`
	MediumSolved       int    `json:"mediumSolved"`
	HardSolved         int    `json:"hardSolved"`
	Ranking            int    `json:"ranking,omitempty"`
	Reputation         int    `json:"reputation,omitempty"`
	ContributionPoints int    `json:"contributionPoints,omitempty"`
}

// CodeforcesStats combines the profile with the derived contest count.
type CodeforcesStats struct {
	Handle        string `json:"handle"`
	Rating        int    `json:"rating"`
	MaxRating     int    `json:"maxRating"`
	Rank          string `json:"rank"`
	MaxRank       string `json:"maxRank"`
	Country       string `json:"country,omitempty"`
	Organization  string `json:"organization,omitempty"`
	Contribution  int    `json:"contribution"`
	FriendOfCount int    `json:"friendOfCount"`
	TotalContests int    `json:"totalContests"`
}

// YouTubeChannel is the first channel item reduced to the fields the UI uses.
type YouTubeChannel struct {
	ChannelID       string `json:"channelId"`
	ChannelTitle    string `json:"channelTitle"`
	SubscriberCount string `json:"subscriberCount"`
	VideoCount      string `json:"videoCount"`
	ViewCount       string `json:"viewCount"`
	ThumbnailURL    string `json:"thumbnailUrl,omitempty"`
	CustomURL       string `json:"customUrl,omitempty"`
}

// YouTubeSearchResult is one channel hit from the search endpoint.
type YouTubeSearchResult struct {
	ChannelID    string `json:"channelId"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Company is a normalized company search hit.
type Company struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
}

// MarketIndex is one quote in the static market snapshot.
type MarketIndex struct {
	Symbol        string  `json:"symbol"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}
