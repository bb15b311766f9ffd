// Package profile proxies professional-network profile lookups.
package profile

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

// LinkedInAPI resolves a public profile URL to its profile payload.
type LinkedInAPI interface {
	GetProfile(ctx context.Context, apiKey, profileURL string) (json.RawMessage, error)
}

// Service exposes the LinkedIn profile proxy.
type Service struct {
	cfg config.Config
	api LinkedInAPI
}

// NewService wires the profile service.
func NewService(cfg config.Config, api LinkedInAPI) *Service {
	return &Service{cfg: cfg, api: api}
}

// LinkedInProfile fetches the raw profile payload for a profile URL.
func (s *Service) LinkedInProfile(ctx context.Context, profileURL string) (json.RawMessage, error) {
	if s.cfg.RapidAPIKey == "" {
		return nil, domain.NewConfiguration("RapidAPI key not configured")
	}
	if strings.TrimSpace(profileURL) == "" {
		return nil, domain.NewValidation("Profile URL is required")
	}
	return s.api.GetProfile(ctx, s.cfg.RapidAPIKey, profileURL)
}
