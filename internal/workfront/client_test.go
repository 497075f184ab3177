// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workfront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/workfront-probe/pkg/types"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(types.WorkfrontConfig{
		BaseURL:    ts.URL + "/attask/api/v15.0/",
		APIKey:     "k3y",
		HTTPConfig: types.HTTPConfig{UserAgent: "workfront-probe/test"},
	}, ts.Client(), nil)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(types.WorkfrontConfig{}, nil, nil)
	assert.Equal(t, types.DefaultBaseURL, c.BaseURL)
	require.NotNil(t, c.HTTP)
	assert.Zero(t, c.HTTP.Timeout)
	assert.NotNil(t, c.Log)
}

func TestSearchURL(t *testing.T) {
	c := &Client{BaseURL: "https://tenant.example.com/attask/api/v15.0/", APIKey: "abc"}
	assert.Equal(t,
		"https://tenant.example.com/attask/api/v15.0/project/search?apiKey=abc&fields=name%2Cstatus&method=GET",
		c.SearchURL(ProbeObjCode, ProbeFields))
}

func TestSearch(t *testing.T) {
	var captured *http.Request
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"data":[{"ID":"1","name":"T"}]}`)
	})

	raw, err := c.Search(context.Background(), "task", "name")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"ID":"1","name":"T"}]}`, string(raw))
	assert.Equal(t, "/attask/api/v15.0/task/search", captured.URL.Path)
	assert.Equal(t, "workfront-probe/test", captured.Header.Get("User-Agent"))
	assert.Equal(t, "k3y", captured.URL.Query().Get("apiKey"))
}

func TestSearchHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"message":"not found"}}`)
	})

	_, err := c.Search(context.Background(), "nope", "name")
	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.True(t, re.HasResponse())
	assert.Equal(t, http.StatusNotFound, re.StatusCode)
	assert.Equal(t, `{"error":{"message":"not found"}}`, string(re.Body))
	assert.Contains(t, err.Error(), "404 Client Error: Not Found for url: ")
	assert.Contains(t, err.Error(), "apiKey=REDACTED")
	assert.NotContains(t, err.Error(), "k3y")
}

func TestSearchWithSession(t *testing.T) {
	var captured *http.Request
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `{"data":[]}`)
	})

	_, err := c.SearchWithSession(context.Background(), "sess-1", "project", "name,status")
	require.NoError(t, err)
	q := captured.URL.Query()
	assert.Equal(t, "sess-1", q.Get("sessionID"))
	assert.False(t, q.Has("apiKey"))
	assert.Equal(t, "name,status", q.Get("fields"))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Session
		errMsg string
	}{
		{
			name:   "returns session",
			status: http.StatusOK,
			body:   `{"data":{"sessionID":"abc123","userID":"u1"}}`,
			want:   Session{SessionID: "abc123", UserID: "u1"},
		},
		{
			name:   "missing session id",
			status: http.StatusOK,
			body:   `{"data":{}}`,
			errMsg: "no sessionID",
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `not json`,
			errMsg: "parsing login response",
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"error":{"message":"bad key"}}`,
			errMsg: "401 Client Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *http.Request
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				captured = r
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			got, err := c.Login(context.Background(), "user@example.com")
			require.NotNil(t, captured)
			assert.Equal(t, "/attask/api/v15.0/login", captured.URL.Path)
			assert.Equal(t, "user@example.com", captured.URL.Query().Get("username"))
			assert.Equal(t, "k3y", captured.URL.Query().Get("apiKey"))

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestErrorTransport(t *testing.T) {
	c := &Client{
		BaseURL: "http://127.0.0.1:1/attask/api/v15.0",
		APIKey:  "secret-key",
		HTTP:    http.DefaultClient,
		Log:     NewClient(types.WorkfrontConfig{}, nil, nil).Log,
	}

	_, err := c.Search(context.Background(), ProbeObjCode, ProbeFields)
	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.False(t, re.HasResponse())
	assert.Nil(t, re.Body)
	assert.True(t, strings.HasPrefix(err.Error(), "GET http://127.0.0.1:1/"), err.Error())
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"api key", "https://h/p?apiKey=abc&fields=name", "https://h/p?apiKey=REDACTED&fields=name"},
		{"session", "https://h/p?sessionID=s&fields=x", "https://h/p?fields=x&sessionID=REDACTED"},
		{"no credentials", "https://h/p?fields=name%2Cstatus", "https://h/p?fields=name%2Cstatus"},
		{"invalid", "://bad", "<invalid url>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactURL(tt.in))
		})
	}
}
