//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/fittracker/internal/auth"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// newUser registers a user the way a google login would and returns a bearer token for it.
func (s *IntegrationTestSuite) newUser(ctx context.Context) (*auth.User, string) {
	user, err := auth.NewUsersRepo(s.pool).UpsertGoogleUser(ctx, auth.GoogleProfile{
		GoogleID: gofakeit.UUID(),
		Email:    gofakeit.Email(),
		Name:     gofakeit.Name(),
	})
	require.NoError(s.T(), err)

	token, err := s.tokens.Issue(user.Identity())
	require.NoError(s.T(), err)

	return user, token
}

// do sends a JSON request and returns the response with its body already read.
func (s *IntegrationTestSuite) do(
	ctx context.Context,
	method string,
	path string,
	token string,
	payload any,
) (*http.Response, []byte) {
	var body io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		require.NoError(s.T(), err)
		body = bytes.NewReader(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return resp, respBytes
}

func (s *IntegrationTestSuite) doJSON(
	ctx context.Context,
	method string,
	path string,
	token string,
	payload any,
	expectedStatus int,
	dst any,
) {
	resp, respBytes := s.do(ctx, method, path, token, payload)
	require.Equal(s.T(), expectedStatus, resp.StatusCode, string(respBytes))
	if dst != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, dst))
	}
}

func (s *IntegrationTestSuite) countRows(query string, args ...any) int {
	var count int
	require.NoError(s.T(), s.DB.QueryRow(query, args...).Scan(&count))
	return count
}

