// Package stats normalizes coding-platform and channel statistics for the
// portfolio UI.
package stats

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/atharv2285/Stage-portdesign/internal/adapter/codeforces"
	"github.com/atharv2285/Stage-portdesign/internal/adapter/leetcode"
	"github.com/atharv2285/Stage-portdesign/internal/adapter/youtube"
	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

const searchMaxResults = 5

// LeetCodeAPI reads LeetCode user profiles.
type LeetCodeAPI interface {
	GetUser(ctx context.Context, username string) (*leetcode.MatchedUser, error)
}

// CodeforcesAPI reads Codeforces profiles and rating history.
type CodeforcesAPI interface {
	GetUserInfo(ctx context.Context, handle string) (*codeforces.User, error)
	CountContests(ctx context.Context, handle string) (int, error)
}

// YouTubeAPI reads channel statistics and performs channel search.
type YouTubeAPI interface {
	ListChannels(ctx context.Context, apiKey, channelID string) ([]youtube.Channel, error)
	SearchChannels(ctx context.Context, apiKey, q string, maxResults int) ([]youtube.SearchItem, error)
}

// Service exposes the unauthenticated stats proxies.
type Service struct {
	cfg    config.Config
	lc     LeetCodeAPI
	cf     CodeforcesAPI
	yt     YouTubeAPI
	logger *zap.Logger
}

// NewService wires the stats service.
func NewService(cfg config.Config, lc LeetCodeAPI, cf CodeforcesAPI, yt YouTubeAPI, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{cfg: cfg, lc: lc, cf: cf, yt: yt, logger: logger}
}

// LeetCodeStats reduces the nested submission buckets to named counts.
func (s *Service) LeetCodeStats(ctx context.Context, username string) (*domain.LeetCodeStats, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.NewValidation("Username is required")
	}
	user, err := s.lc.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	stats := &domain.LeetCodeStats{
		Username:           user.Username,
		Ranking:            user.Profile.Ranking,
		Reputation:         user.Profile.Reputation,
		ContributionPoints: user.Contributions.Points,
	}
	for _, bucket := range user.SubmitStatsGlobal.ACSubmissionNum {
		switch bucket.Difficulty {
		case "All":
			stats.TotalSolved = bucket.Count
		case "Easy":
			stats.EasySolved = bucket.Count
		case "Medium":
			stats.MediumSolved = bucket.Count
		case "Hard":
			stats.HardSolved = bucket.Count
		}
	}
	return stats, nil
}

// CodeforcesStats combines the profile with the derived contest count. The
// two upstream calls run concurrently; a missing profile fails the request
// while a rating-history failure only degrades totalContests to zero.
func (s *Service) CodeforcesStats(ctx context.Context, handle string) (*domain.CodeforcesStats, error) {
	if strings.TrimSpace(handle) == "" {
		return nil, domain.NewValidation("Handle is required")
	}

	var (
		user    *codeforces.User
		userErr error

		contests    int
		contestsErr error
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		user, userErr = s.cf.GetUserInfo(ctx, handle)
	}()
	go func() {
		defer wg.Done()
		contests, contestsErr = s.cf.CountContests(ctx, handle)
	}()
	wg.Wait()

	if userErr != nil {
		return nil, userErr
	}
	if contestsErr != nil {
		s.logger.Debug("rating history degraded", zap.String("handle", handle), zap.Error(contestsErr))
		contests = 0
	}

	stats := &domain.CodeforcesStats{
		Handle:        user.Handle,
		Rating:        user.Rating,
		MaxRating:     user.MaxRating,
		Rank:          user.Rank,
		MaxRank:       user.MaxRank,
		Country:       user.Country,
		Organization:  user.Organization,
		Contribution:  user.Contribution,
		FriendOfCount: user.FriendOfCount,
		TotalContests: contests,
	}
	if stats.Rank == "" {
		stats.Rank = "Unrated"
	}
	if stats.MaxRank == "" {
		stats.MaxRank = "Unrated"
	}
	return stats, nil
}

// YouTubeChannel reduces the channel list response to its single first item.
func (s *Service) YouTubeChannel(ctx context.Context, channelID string) (*domain.YouTubeChannel, error) {
	if s.cfg.YouTubeAPIKey == "" {
		return nil, domain.NewConfiguration("YouTube API key not configured")
	}
	if strings.TrimSpace(channelID) == "" {
		return nil, domain.NewValidation("Channel id is required")
	}
	channels, err := s.yt.ListChannels(ctx, s.cfg.YouTubeAPIKey, channelID)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, domain.NewNotFound("Channel not found")
	}

	channel := channels[0]
	return &domain.YouTubeChannel{
		ChannelID:       channel.ID,
		ChannelTitle:    channel.Snippet.Title,
		SubscriberCount: orZero(channel.Statistics.SubscriberCount),
		VideoCount:      orZero(channel.Statistics.VideoCount),
		ViewCount:       orZero(channel.Statistics.ViewCount),
		ThumbnailURL:    channel.Snippet.Thumbnails.Default.URL,
		CustomURL:       channel.Snippet.CustomURL,
	}, nil
}

// YouTubeSearch returns normalized channel hits, an empty slice when none.
func (s *Service) YouTubeSearch(ctx context.Context, query string) ([]domain.YouTubeSearchResult, error) {
	if s.cfg.YouTubeAPIKey == "" {
		return nil, domain.NewConfiguration("YouTube API key not configured")
	}
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidation("Search query is required")
	}
	items, err := s.yt.SearchChannels(ctx, s.cfg.YouTubeAPIKey, query, searchMaxResults)
	if err != nil {
		return nil, err
	}

	results := make([]domain.YouTubeSearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, domain.YouTubeSearchResult{
			ChannelID:    item.ID.ChannelID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: item.Snippet.Thumbnails.Default.URL,
		})
	}
	return results, nil
}

func orZero(v string) string {
	if v == "" {
		return "0"
	}
	return v
}
