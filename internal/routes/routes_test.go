package routes_test

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casefolio/casefolio/internal/app"
	"github.com/casefolio/casefolio/internal/config"
	"github.com/casefolio/casefolio/internal/routes"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	cfg := &config.Config{
		AppName:       "casefolio-test",
		AppEnv:        "development",
		DataDir:       t.TempDir(),
		PublicDir:     t.TempDir(),
		StaticURL:     "/static",
		AdminPassword: "admin-secret",
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
	}

	server := httptest.NewServer(routes.SetupRoutes(app.New(cfg)))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return server, &http.Client{Jar: jar}
}

func TestAdminCaseFlow(t *testing.T) {
	server, client := newTestServer(t)

	// Guests cannot create cases
	resp, err := client.PostForm(server.URL+"/admin/cases", url.Values{"title": {"Кейс"}})
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin logs in, session lands in the cookie jar
	resp, err = client.PostForm(server.URL+"/admin/login", url.Values{"password": {"admin-secret"}})
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.PostForm(server.URL+"/admin/cases", url.Values{
		"title": {"Тестовый кейс"},
		"tags":  {"таргет, вк"},
	})
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = client.Get(server.URL + "/cases/" + url.PathEscape("тестовый-кейс"))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(server.URL + "/cases/missing")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSignupAndAccountAccess(t *testing.T) {
	server, client := newTestServer(t)

	// Linked accounts require a session
	resp, err := client.Get(server.URL + "/app/accounts")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = client.PostForm(server.URL+"/auth/signup", url.Values{
		"email":    {"anna@example.com"},
		"password": {"secret123"},
	})
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = client.Get(server.URL + "/app/accounts")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAboutFallsBackToDefaults(t *testing.T) {
	server, client := newTestServer(t)

	resp, err := client.Get(server.URL + "/about")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
