// Package github orchestrates the GitHub OAuth flow and authenticated
// repository proxying.
package github

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/credential"
	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

// NoReadmePlaceholder is returned when the README sub-call fails.
const NoReadmePlaceholder = "No README available"

const oauthScopes = "repo,read:user,user:email"

// RepoAPI is the narrow slice of the GitHub REST surface the gateway uses.
type RepoAPI interface {
	ListRepos(ctx context.Context, token string) (json.RawMessage, error)
	GetUser(ctx context.Context, token string) (json.RawMessage, error)
	GetRepo(ctx context.Context, token, owner, repo string) (json.RawMessage, error)
	GetReadme(ctx context.Context, token, owner, repo string) (string, error)
	ListLanguages(ctx context.Context, token, owner, repo string) (map[string]int64, error)
}

// OAuthAPI performs the authorization-code exchange.
type OAuthAPI interface {
	ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error)
}

// Service exposes the GitHub-facing gateway operations.
type Service struct {
	cfg      config.Config
	api      RepoAPI
	oauth    OAuthAPI
	resolver *credential.Resolver
	logger   *zap.Logger
}

// NewService wires the GitHub service.
func NewService(cfg config.Config, api RepoAPI, oauth OAuthAPI, resolver *credential.Resolver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{cfg: cfg, api: api, oauth: oauth, resolver: resolver, logger: logger}
}

// AuthorizeURL builds the GitHub authorization redirect with a fresh
// anti-replay state token. It never performs a network call.
func (s *Service) AuthorizeURL() (*domain.AuthorizationURL, error) {
	if s.cfg.GitHubClientID == "" {
		return nil, domain.NewConfiguration("GitHub OAuth client not configured")
	}
	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}
	authURL := fmt.Sprintf(
		"https://github.com/login/oauth/authorize?client_id=%s&redirect_uri=%s&scope=%s&state=%s",
		url.QueryEscape(s.cfg.GitHubClientID),
		url.QueryEscape(s.cfg.OAuthRedirectURI),
		url.QueryEscape(oauthScopes),
		state,
	)
	return &domain.AuthorizationURL{AuthURL: authURL, State: state}, nil
}

// ExchangeCode swaps the authorization code for an access token. Codes are
// single-use: whatever the upstream returns on a replay propagates as-is.
func (s *Service) ExchangeCode(ctx context.Context, code string) (*domain.TokenGrant, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.NewValidation("Authorization code is required")
	}
	token, err := s.oauth.ExchangeCode(ctx, s.cfg.GitHubClientID, s.cfg.GitHubClientSecret, code, s.cfg.OAuthRedirectURI)
	if err != nil {
		return nil, err
	}
	return &domain.TokenGrant{AccessToken: token}, nil
}

// ListRepos proxies the authenticated repository listing.
func (s *Service) ListRepos(ctx context.Context, authorization string) (json.RawMessage, error) {
	token, err := s.resolver.Resolve(ctx, authorization)
	if err != nil {
		return nil, err
	}
	return s.api.ListRepos(ctx, token)
}

// GetUser proxies the authenticated user profile.
func (s *Service) GetUser(ctx context.Context, authorization string) (json.RawMessage, error) {
	token, err := s.resolver.Resolve(ctx, authorization)
	if err != nil {
		return nil, err
	}
	return s.api.GetUser(ctx, token)
}

// GetRepoDetail aggregates the repository record, README, and language
// breakdown. The three sub-calls run concurrently and every one is awaited:
// the repo record is required, the other two degrade to defaults so one
// optional upstream outage cannot fail the whole response.
func (s *Service) GetRepoDetail(ctx context.Context, authorization, owner, repo string) (*domain.RepoDetail, error) {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(repo) == "" {
		return nil, domain.NewValidation("Repository owner and name are required")
	}
	token, err := s.resolver.Resolve(ctx, authorization)
	if err != nil {
		return nil, err
	}

	var (
		repoJSON json.RawMessage
		repoErr  error

		readme    string
		readmeErr error

		languages map[string]int64
		langErr   error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		repoJSON, repoErr = s.api.GetRepo(ctx, token, owner, repo)
	}()
	go func() {
		defer wg.Done()
		readme, readmeErr = s.api.GetReadme(ctx, token, owner, repo)
	}()
	go func() {
		defer wg.Done()
		languages, langErr = s.api.ListLanguages(ctx, token, owner, repo)
	}()
	wg.Wait()

	if repoErr != nil {
		var gerr *domain.Error
		if errors.As(repoErr, &gerr) && gerr.Kind == domain.KindNotFound {
			return nil, domain.NewNotFound("Repository not found")
		}
		return nil, repoErr
	}
	if readmeErr != nil {
		s.logger.Debug("readme fetch degraded",
			zap.String("owner", owner), zap.String("repo", repo), zap.Error(readmeErr))
		readme = NoReadmePlaceholder
	}
	if langErr != nil {
		s.logger.Debug("languages fetch degraded",
			zap.String("owner", owner), zap.String("repo", repo), zap.Error(langErr))
		languages = map[string]int64{}
	}
	if languages == nil {
		languages = map[string]int64{}
	}

	return &domain.RepoDetail{Repo: repoJSON, Readme: readme, Languages: languages}, nil
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
