// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workfront is a small read-only client for the Workfront REST API
// (attask/api/v15.0). It builds search and login requests and reports every
// failure as a *RequestError.
package workfront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/workfront-probe/internal/httputil"
	"github.com/pdiddy/workfront-probe/pkg/types"
)

// Client issues GET requests against one Workfront tenant.
type Client struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	HTTP      *http.Client
	Log       logrus.FieldLogger
}

// NewClient returns a Client for cfg. A nil httpClient gets a client with
// cfg.Timeout, which is no timeout when unset.
func NewClient(cfg types.WorkfrontConfig, httpClient *http.Client, log logrus.FieldLogger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = types.DefaultBaseURL
	}
	return &Client{
		BaseURL:   baseURL,
		APIKey:    cfg.APIKey,
		UserAgent: cfg.UserAgent,
		HTTP:      httpClient,
		Log:       log,
	}
}

// SearchURL returns {base}/{objCode}/search with exactly the apiKey, fields
// and method=GET query parameters.
func (c *Client) SearchURL(objCode, fields string) string {
	params := url.Values{
		"apiKey": {c.APIKey},
		"fields": {fields},
		"method": {http.MethodGet},
	}
	return c.endpoint(objCode+"/search") + "?" + params.Encode()
}

// Search runs one search request and returns the raw JSON body.
func (c *Client) Search(ctx context.Context, objCode, fields string) (json.RawMessage, error) {
	return c.get(ctx, c.SearchURL(objCode, fields))
}

// SearchWithSession runs a search authenticated by a session ID from Login
// instead of the API key.
func (c *Client) SearchWithSession(ctx context.Context, sessionID, objCode, fields string) (json.RawMessage, error) {
	params := url.Values{
		"sessionID": {sessionID},
		"fields":    {fields},
	}
	return c.get(ctx, c.endpoint(objCode+"/search")+"?"+params.Encode())
}

// Session is the part of a login response the CLI uses.
type Session struct {
	SessionID string `json:"sessionID"`
	UserID    string `json:"userID,omitempty"`
}

// Login exchanges the API key and username for a session.
func (c *Client) Login(ctx context.Context, username string) (Session, error) {
	params := url.Values{
		"username": {username},
		"apiKey":   {c.APIKey},
	}
	body, err := c.get(ctx, c.endpoint("login")+"?"+params.Encode())
	if err != nil {
		return Session{}, err
	}

	var lr struct {
		Data Session `json:"data"`
	}
	if err := json.Unmarshal(body, &lr); err != nil {
		return Session{}, fmt.Errorf("parsing login response: %w", err)
	}
	if lr.Data.SessionID == "" {
		return Session{}, fmt.Errorf("login response carried no sessionID")
	}
	return lr.Data, nil
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// get performs one GET. Any failure, including a non-2xx status, comes back
// as *RequestError.
func (c *Client) get(ctx context.Context, rawURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, newRequestError(rawURL, nil, fmt.Errorf("creating request: %w", err))
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	c.Log.WithField("url", RedactURL(rawURL)).Debug("sending request")

	resp, err := httputil.Do(ctx, c.HTTP, req)
	if err != nil {
		re := newRequestError(rawURL, resp, err)
		c.Log.WithFields(logrus.Fields{
			"url":    re.URL,
			"status": re.StatusCode,
		}).Debugf("request failed: %v", re.Err)
		return nil, re
	}

	c.Log.WithFields(logrus.Fields{
		"url":    RedactURL(rawURL),
		"status": resp.StatusCode,
		"bytes":  len(resp.Body),
	}).Debug("response received")

	return json.RawMessage(resp.Body), nil
}
