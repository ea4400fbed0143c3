package grouper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langedb/grouper-mcp/pkg/config"
)

// newTestClient starts an httptest server with the given handler and returns
// a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{
		BaseURL:  srv.URL,
		Username: "GrouperSystem",
		Password: "secret",
		Timeout:  5 * time.Second,
	})
}

func TestClient_Post_BasicAuth(t *testing.T) {
	t.Parallel()

	var gotUser, gotPass string
	var gotOK bool
	var gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	var out map[string]any
	err := client.post(context.Background(), pathMemberships, map[string]string{}, &out)
	require.NoError(t, err)

	assert.True(t, gotOK, "expected Basic-Auth header")
	assert.Equal(t, "GrouperSystem", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_Post_BackendError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"WsGetMembershipsResults":{"resultMetadata":{"resultCode":"EXCEPTION","success":"F"}}}`))
	})

	var out map[string]any
	err := client.post(context.Background(), pathMemberships, map[string]string{}, &out)
	require.Error(t, err)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusInternalServerError, backendErr.StatusCode)
	assert.Contains(t, backendErr.Body, "EXCEPTION")
	assert.True(t, IsBackendError(err, http.StatusInternalServerError))
	assert.False(t, IsBackendError(err, http.StatusNotFound))
}

func TestClient_Post_ParseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantHTML bool
	}{
		{
			name:     "html login page",
			body:     "<!DOCTYPE html>\n<html><body>Login required</body></html>",
			wantHTML: true,
		},
		{
			name:     "html without doctype",
			body:     "<html><head><title>Error</title></head></html>",
			wantHTML: true,
		},
		{
			name:     "malformed json",
			body:     `{"WsGetMembershipsResults": truncated`,
			wantHTML: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			var out map[string]any
			err := client.post(context.Background(), pathMemberships, map[string]string{}, &out)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantHTML, parseErr.HTMLPage)
			assert.True(t, IsParseError(err))
		})
	}
}

func TestClient_Post_ConnectionFailure(t *testing.T) {
	t.Parallel()

	client := NewClient(&config.Config{
		// Reserved TEST-NET address, nothing listens there.
		BaseURL:  "http://192.0.2.1:9",
		Username: "GrouperSystem",
		Password: "secret",
		Timeout:  200 * time.Millisecond,
	})

	var out map[string]any
	err := client.post(context.Background(), pathMemberships, map[string]string{}, &out)
	require.Error(t, err)
	assert.False(t, IsBackendError(err, 0))
	assert.False(t, IsParseError(err))
}

func TestCheckResult(t *testing.T) {
	t.Parallel()

	assert.NoError(t, checkResult(wsResultMetadata{Success: "T", ResultCode: "SUCCESS"}, "op"))
	assert.NoError(t, checkResult(wsResultMetadata{}, "op"))

	err := checkResult(wsResultMetadata{Success: "F", ResultCode: "GROUP_NOT_FOUND", ResultMessage: "no such group"}, "get members")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROUP_NOT_FOUND")
	assert.Contains(t, err.Error(), "get members")
}

// requestEnvelopeKey decodes the request body and returns its single
// top-level envelope key.
func requestEnvelopeKey(t *testing.T, r *http.Request) string {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
	require.Len(t, envelope, 1)
	for key := range envelope {
		return key
	}
	return ""
}
