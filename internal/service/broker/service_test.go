package broker_test

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atharv2285/Stage-portdesign/internal/adapter/kite"
	"github.com/atharv2285/Stage-portdesign/internal/config"
	"github.com/atharv2285/Stage-portdesign/internal/domain"
	brokersvc "github.com/atharv2285/Stage-portdesign/internal/service/broker"
)

type fakeBrokerAPI struct {
	session   *kite.Session
	exchErr   error
	holdings  json.RawMessage
	positions json.RawMessage
	dataErr   error

	lastToken string
}

func (f *fakeBrokerAPI) ExchangeToken(_ context.Context, _, _, _ string) (*kite.Session, error) {
	return f.session, f.exchErr
}

func (f *fakeBrokerAPI) Holdings(_ context.Context, _, accessToken string) (json.RawMessage, error) {
	f.lastToken = accessToken
	return f.holdings, f.dataErr
}

func (f *fakeBrokerAPI) Positions(_ context.Context, _, accessToken string) (json.RawMessage, error) {
	f.lastToken = accessToken
	return f.positions, f.dataErr
}

func configured() config.Config {
	return config.Config{
		KiteAPIKey:       "kite-key",
		KiteAPISecret:    "kite-secret",
		OAuthRedirectURI: "http://localhost:5000/github-callback",
	}
}

func TestAuthorizeURL(t *testing.T) {
	svc := brokersvc.NewService(configured(), &fakeBrokerAPI{})

	out, err := svc.AuthorizeURL()
	require.NoError(t, err)

	parsed, err := url.Parse(out.AuthURL)
	require.NoError(t, err)
	require.Equal(t, "kite.zerodha.com", parsed.Host)
	require.Equal(t, "kite-key", parsed.Query().Get("api_key"))
	require.Contains(t, parsed.Query().Get("redirect_params"), "/zerodha-callback")
}

func TestAuthorizeURLNotConfigured(t *testing.T) {
	svc := brokersvc.NewService(config.Config{}, &fakeBrokerAPI{})

	_, err := svc.AuthorizeURL()
	var gerr *domain.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, domain.KindConfiguration, gerr.Kind)
}

func TestExchangeToken(t *testing.T) {
	api := &fakeBrokerAPI{session: &kite.Session{AccessToken: "access", UserID: "AB1234"}}
	svc := brokersvc.NewService(configured(), api)

	grant, err := svc.ExchangeToken(context.Background(), "one-time")
	require.NoError(t, err)
	require.Equal(t, "access", grant.AccessToken)
	require.Equal(t, "AB1234", grant.UserID)
}

func TestExchangeTokenRequiresCredentials(t *testing.T) {
	svc := brokersvc.NewService(config.Config{KiteAPIKey: "key-only"}, &fakeBrokerAPI{})

	_, err := svc.ExchangeToken(context.Background(), "one-time")
	var gerr *domain.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, domain.KindConfiguration, gerr.Kind)
	require.Equal(t, "Zerodha API credentials not configured", gerr.Message)
}

func TestExchangeTokenRequiresRequestToken(t *testing.T) {
	svc := brokersvc.NewService(configured(), &fakeBrokerAPI{})

	_, err := svc.ExchangeToken(context.Background(), "  ")
	var gerr *domain.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, domain.KindValidation, gerr.Kind)
	require.Equal(t, "Request token is required", gerr.Message)
}

func TestExchangeTokenReplayPropagates(t *testing.T) {
	api := &fakeBrokerAPI{exchErr: domain.NewUpstream("Token is invalid or has expired.", "").WithStatus(400)}
	svc := brokersvc.NewService(configured(), api)

	_, err := svc.ExchangeToken(context.Background(), "already-used")
	var gerr *domain.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, domain.KindUpstream, gerr.Kind)
	require.Equal(t, 400, gerr.HTTPStatus())
}

func TestHoldingsRequireCallerToken(t *testing.T) {
	svc := brokersvc.NewService(configured(), &fakeBrokerAPI{})

	for _, header := range []string{"", "Bearer ", "token abc"} {
		_, err := svc.Holdings(context.Background(), header)
		var gerr *domain.Error
		require.ErrorAs(t, err, &gerr)
		require.Equal(t, domain.KindAuthentication, gerr.Kind)
		require.Equal(t, "Access token required", gerr.Message)
	}
}

func TestHoldings(t *testing.T) {
	api := &fakeBrokerAPI{holdings: json.RawMessage(`{"data":[]}`)}
	svc := brokersvc.NewService(configured(), api)

	data, err := svc.Holdings(context.Background(), "Bearer access-token")
	require.NoError(t, err)
	require.JSONEq(t, `{"data":[]}`, string(data))
	require.Equal(t, "access-token", api.lastToken)
}

func TestPositionsUpstreamStatusPassthrough(t *testing.T) {
	api := &fakeBrokerAPI{dataErr: domain.NewUpstream("Failed to fetch positions", "").WithStatus(403)}
	svc := brokersvc.NewService(configured(), api)

	_, err := svc.Positions(context.Background(), "Bearer expired-token")
	var gerr *domain.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, 403, gerr.HTTPStatus())
}

func TestMarketIndices(t *testing.T) {
	svc := brokersvc.NewService(config.Config{}, &fakeBrokerAPI{})

	indices := svc.MarketIndices()
	require.Len(t, indices, 3)
	symbols := []string{indices[0].Symbol, indices[1].Symbol, indices[2].Symbol}
	require.Equal(t, []string{"NIFTY 50", "SENSEX", "NIFTY BANK"}, symbols)
}
