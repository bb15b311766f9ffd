package github

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.Client())
	client.apiBaseURL = server.URL
	client.oauthBaseURL = server.URL
	return client
}

func TestExchangeCode(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login/oauth/access_token", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"access_token":"gho_abc","token_type":"bearer"}`))
	})

	token, err := client.ExchangeCode(context.Background(), "id", "secret", "code", "http://localhost/cb")
	require.NoError(t, err)
	require.Equal(t, "gho_abc", token)
}

func TestExchangeCodeErrorPayload(t *testing.T) {
	// GitHub answers 200 with an error object for replayed codes.
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"bad_verification_code","error_description":"The code passed is incorrect or expired."}`))
	})

	_, err := client.ExchangeCode(context.Background(), "id", "secret", "used", "http://localhost/cb")
	var gerr *domain.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, domain.KindUpstream, gerr.Kind)
	require.Equal(t, "The code passed is incorrect or expired.", gerr.Message)
	require.Equal(t, http.StatusBadRequest, gerr.HTTPStatus())
}

func TestListReposSendsBearer(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/repos", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "updated", r.URL.Query().Get("sort"))
		_, _ = w.Write([]byte(`[{"name":"gateway"}]`))
	})

	data, err := client.ListRepos(context.Background(), "tok")
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"gateway"}]`, string(data))
}

func TestGetReadmeDecodesBase64(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte("# Hello\n"))
	// GitHub wraps base64 content with newlines; escaped here so the JSON
	// string decodes to a real newline mid-content.
	wrapped := content[:8] + `\n` + content[8:]

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/gateway/readme", r.URL.Path)
		_, _ = w.Write([]byte(`{"content":"` + wrapped + `","encoding":"base64"}`))
	})

	readme, err := client.GetReadme(context.Background(), "tok", "octocat", "gateway")
	require.NoError(t, err)
	require.Equal(t, "# Hello\n", readme)
}

func TestGetRawStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		kind   domain.ErrorKind
	}{
		{http.StatusNotFound, domain.KindNotFound},
		{http.StatusUnauthorized, domain.KindAuthentication},
		{http.StatusForbidden, domain.KindAuthentication},
		{http.StatusBadGateway, domain.KindUpstream},
	}
	for _, tc := range cases {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := client.GetRepo(context.Background(), "tok", "octocat", "gateway")
		var gerr *domain.Error
		require.ErrorAs(t, err, &gerr)
		require.Equal(t, tc.kind, gerr.Kind, "status %d", tc.status)
	}
}

func TestListLanguages(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/gateway/languages", r.URL.Path)
		_, _ = w.Write([]byte(`{"Go":120000,"Makefile":300}`))
	})

	languages, err := client.ListLanguages(context.Background(), "tok", "octocat", "gateway")
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"Go": 120000, "Makefile": 300}, languages)
}
