//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/2beens/fittracker/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestPublicEndpoints() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	resp, body := s.do(ctx, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","message":"Fitness Tracker API is running"}`, string(body))

	resp, body = s.do(ctx, http.MethodGet, "/api", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Fitness Tracker API v1")
}

func (s *IntegrationTestSuite) TestMe() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	resp, _ := s.do(ctx, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	user, token := s.newUser(ctx)
	resp, body := s.do(ctx, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var meResp struct {
		User auth.Identity `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body, &meResp))
	assert.Equal(t, user.ID, meResp.User.ID)
	assert.Equal(t, user.Email, meResp.User.Email)
	assert.Equal(t, user.Name, meResp.User.Name)

	otherIssuer, err := auth.NewTokenIssuer("some-other-secret", 0)
	require.NoError(t, err)
	forged, err := otherIssuer.Issue(user.Identity())
	require.NoError(t, err)
	resp, _ = s.do(ctx, http.MethodGet, "/api/auth/me", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestGoogleLoginRedirect() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	resp, _ := s.do(ctx, http.MethodGet, "/api/auth/google", "", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(location.String(), "https://accounts.google.com/"), location.String())
	assert.Equal(t, "test-client-id", location.Query().Get("client_id"))
	assert.NotEmpty(t, location.Query().Get("state"))

	// a state the server never issued fails the login
	resp, _ = s.do(ctx, http.MethodGet, "/api/auth/google/callback?code=abc&state=forged", "", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, frontendURL+"/login?error=auth_failed", resp.Header.Get("Location"))
}

func (s *IntegrationTestSuite) TestLogoutWithoutSession() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp, body := s.do(ctx, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.JSONEq(s.T(), `{"message":"Logged out successfully"}`, string(body))
}
