package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/atharv2285/Stage-portdesign/internal/adapter/brandfetch"
	githubadapter "github.com/atharv2285/Stage-portdesign/internal/adapter/github"
	kiteadapter "github.com/atharv2285/Stage-portdesign/internal/adapter/kite"
	linkedinadapter "github.com/atharv2285/Stage-portdesign/internal/adapter/linkedin"
	"github.com/atharv2285/Stage-portdesign/internal/adapter/youtube"
	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/credential"
	httptransport "github.com/atharv2285/Stage-portdesign/internal/http"
	"github.com/atharv2285/Stage-portdesign/internal/http/handler"
	"github.com/atharv2285/Stage-portdesign/internal/middleware"
	brokersvc "github.com/atharv2285/Stage-portdesign/internal/service/broker"
	companysvc "github.com/atharv2285/Stage-portdesign/internal/service/company"
	githubsvc "github.com/atharv2285/Stage-portdesign/internal/service/github"
	profilesvc "github.com/atharv2285/Stage-portdesign/internal/service/profile"
	statssvc "github.com/atharv2285/Stage-portdesign/internal/service/stats"
)

type stubSearchAPI struct {
	hits []brandfetch.SearchResult
}

func (s stubSearchAPI) Search(context.Context, string) ([]brandfetch.SearchResult, error) {
	return s.hits, nil
}

type stubYouTubeAPI struct {
	lastQuery string
}

func (s *stubYouTubeAPI) ListChannels(context.Context, string, string) ([]youtube.Channel, error) {
	return nil, nil
}

func (s *stubYouTubeAPI) SearchChannels(_ context.Context, _, q string, _ int) ([]youtube.SearchItem, error) {
	s.lastQuery = q
	return nil, nil
}

// newRouter builds the full route tree over an empty config so every secret
// gated endpoint answers with its configuration error and no network call
// happens.
func newRouter(t *testing.T) *gin.Engine {
	return newRouterWith(t, brandfetch.NewClient(nil), nil, nil)
}

func newRouterWith(t *testing.T, search companysvc.SearchAPI, yt statssvc.YouTubeAPI, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{ServiceName: "portfolio-gateway-test"}
	if yt != nil {
		cfg.YouTubeAPIKey = "test-key"
	}
	resolver := credential.NewResolver(credential.NewMemoryStore())
	githubAPI := githubadapter.NewClient(nil)

	githubHandler := handler.NewGitHubHandler(
		githubsvc.NewService(cfg, githubAPI, githubAPI, resolver, nil), nil)
	statsHandler := handler.NewStatsHandler(
		statssvc.NewService(cfg, nil, nil, yt, nil), nil)
	profileHandler := handler.NewProfileHandler(
		profilesvc.NewService(cfg, linkedinadapter.NewClient(nil)), nil)
	brokerHandler := handler.NewBrokerHandler(
		brokersvc.NewService(cfg, kiteadapter.NewClient(nil)), nil)
	companyHandler := handler.NewCompanyHandler(
		companysvc.NewService(cfg, search), nil)

	return httptransport.NewRouter(cfg, githubHandler, statsHandler, profileHandler, brokerHandler, companyHandler, limiter)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	router := newRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// A caller-supplied request id is echoed back, not replaced.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	echo := httptest.NewRecorder()
	router.ServeHTTP(echo, req)
	require.Equal(t, "caller-supplied-id", echo.Header().Get("X-Request-ID"))
}

func TestRateLimitedRequestsGet429(t *testing.T) {
	// A 10 rpm budget has a burst of one: the second immediate request from
	// the same client must be throttled.
	router := newRouterWith(t, brandfetch.NewClient(nil), nil, middleware.NewRateLimiter(10))

	first := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	require.Contains(t, second.Body.String(), "Too many requests")
}

func TestGitHubAuthorizeNotConfigured(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/api/github/oauth/authorize", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "GitHub OAuth client not configured", payload["error"])
}

func TestGitHubTokenRequiresCode(t *testing.T) {
	router := newRouter(t)

	for _, body := range []string{"", `{}`, `{"code":""}`, `not-json`} {
		rec := doRequest(t, router, http.MethodPost, "/api/github/oauth/token", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		require.Equal(t, "Authorization code is required", payload["error"])
	}
}

func TestGitHubReposWithoutCredential(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/api/github/repos", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Authorization token required")
}

func TestYouTubeChannelNotConfigured(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/api/youtube/channel/UC123", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "YouTube API key not configured")
}

func TestYouTubeSearchQueryAlias(t *testing.T) {
	yt := &stubYouTubeAPI{}
	router := newRouterWith(t, brandfetch.NewClient(nil), yt, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/youtube/search?query=gopher", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gopher", yt.lastQuery)
}

func TestLinkedInProfileNotConfigured(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodPost, "/api/linkedin/profile", `{"profileUrl":"https://linkedin.com/in/x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "RapidAPI key not configured")
}

func TestZerodhaHoldingsRequireToken(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/api/zerodha/holdings", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Access token required")
}

func TestMarketIndices(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/api/market/indices", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var indices []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &indices))
	require.Len(t, indices, 3)
	require.Equal(t, "NIFTY 50", indices[0]["symbol"])
}

func TestCompanySearchRequiresQuery(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/api/company/search", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Company query parameter is required")
}

func TestCompanySearchEnvelopeAndQueryAlias(t *testing.T) {
	search := stubSearchAPI{hits: []brandfetch.SearchResult{
		{Name: "Acme", Domain: "acme.com", Icon: "https://cdn/acme.png"},
	}}
	router := newRouterWith(t, search, nil, nil)

	// The portfolio frontend sends "query" and expects a companies wrapper.
	rec := doRequest(t, router, http.MethodGet, "/api/company/search?query=acme", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Companies []map[string]any `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Companies, 1)
	require.Equal(t, "Acme", payload.Companies[0]["name"])
}

func TestCompanyLogo(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/api/company/logo?domain=acme.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"logoUrl":"https://img.logo.dev/acme.com"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	rec := doRequest(t, newRouter(t), http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
