// Package broker handles the brokerage OAuth flow and portfolio proxies.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/atharv2285/Stage-portdesign/internal/adapter/kite"
	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

// BrokerAPI is the slice of the Kite Connect surface the gateway uses.
type BrokerAPI interface {
	ExchangeToken(ctx context.Context, apiKey, apiSecret, requestToken string) (*kite.Session, error)
	Holdings(ctx context.Context, apiKey, accessToken string) (json.RawMessage, error)
	Positions(ctx context.Context, apiKey, accessToken string) (json.RawMessage, error)
}

// Service exposes the brokerage gateway operations.
type Service struct {
	cfg config.Config
	api BrokerAPI
}

// NewService wires the broker service.
func NewService(cfg config.Config, api BrokerAPI) *Service {
	return &Service{cfg: cfg, api: api}
}

// AuthorizeURL builds the Kite connect login URL.
func (s *Service) AuthorizeURL() (*domain.AuthorizationURL, error) {
	if s.cfg.KiteAPIKey == "" {
		return nil, domain.NewConfiguration("Zerodha API key not configured")
	}
	callback := strings.TrimSuffix(s.cfg.OAuthRedirectURI, "/github-callback") + "/zerodha-callback"
	authURL := fmt.Sprintf(
		"https://kite.zerodha.com/connect/login?api_key=%s&redirect_params=%s",
		url.QueryEscape(s.cfg.KiteAPIKey),
		url.QueryEscape(callback),
	)
	return &domain.AuthorizationURL{AuthURL: authURL}, nil
}

// ExchangeToken swaps the one-time request token for an access token and the
// account id. Replayed tokens fail upstream and that failure propagates.
func (s *Service) ExchangeToken(ctx context.Context, requestToken string) (*domain.TokenGrant, error) {
	if s.cfg.KiteAPIKey == "" || s.cfg.KiteAPISecret == "" {
		return nil, domain.NewConfiguration("Zerodha API credentials not configured")
	}
	if strings.TrimSpace(requestToken) == "" {
		return nil, domain.NewValidation("Request token is required")
	}
	session, err := s.api.ExchangeToken(ctx, s.cfg.KiteAPIKey, s.cfg.KiteAPISecret, requestToken)
	if err != nil {
		return nil, err
	}
	return &domain.TokenGrant{AccessToken: session.AccessToken, UserID: session.UserID}, nil
}

// Holdings proxies the holdings listing for the caller's access token.
func (s *Service) Holdings(ctx context.Context, authorization string) (json.RawMessage, error) {
	token, err := s.callerToken(authorization)
	if err != nil {
		return nil, err
	}
	return s.api.Holdings(ctx, s.cfg.KiteAPIKey, token)
}

// Positions proxies the positions listing for the caller's access token.
func (s *Service) Positions(ctx context.Context, authorization string) (json.RawMessage, error) {
	token, err := s.callerToken(authorization)
	if err != nil {
		return nil, err
	}
	return s.api.Positions(ctx, s.cfg.KiteAPIKey, token)
}

// MarketIndices returns the static market snapshot.
func (s *Service) MarketIndices() []domain.MarketIndex {
	return []domain.MarketIndex{
		{Symbol: "NIFTY 50", Value: 22450.50, Change: 125.30, ChangePercent: 0.56},
		{Symbol: "SENSEX", Value: 74250.25, Change: 420.15, ChangePercent: 0.57},
		{Symbol: "NIFTY BANK", Value: 48320.80, Change: -180.40, ChangePercent: -0.37},
	}
}

// Brokerage data calls never fall back to a shared credential: the access
// token is account-bound and must come from the caller.
func (s *Service) callerToken(authorization string) (string, error) {
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", domain.NewAuthentication("Access token required")
	}
	return strings.TrimSpace(parts[1]), nil
}
