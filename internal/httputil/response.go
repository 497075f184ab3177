// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across commands.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Response is a fully read HTTP response. The body has already been closed.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// StatusError reports a response whose status code is outside 2xx. The
// response is retained so callers can show the status and body.
type StatusError struct {
	Response *Response
}

// Error mirrors the wording operators know from other HTTP tooling, e.g.
// "401 Client Error: Unauthorized".
func (e *StatusError) Error() string {
	code := e.Response.StatusCode
	kind := "Unexpected Status"
	switch {
	case code >= 400 && code < 500:
		kind = "Client Error"
	case code >= 500 && code < 600:
		kind = "Server Error"
	}
	return fmt.Sprintf("%d %s: %s", code, kind, reason(e.Response))
}

func reason(r *Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(r.Status, fmt.Sprintf("%d", r.StatusCode))); text != "" {
		return text
	}
	if text := http.StatusText(r.StatusCode); text != "" {
		return text
	}
	return "unknown"
}

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}

// Do sends req on client and reads the whole body. Transport failures are
// returned unchanged with a nil response. A non-2xx status returns both the
// response and a *StatusError. There is no retry: each call is exactly one
// round trip.
func Do(ctx context.Context, client *http.Client, req *http.Request) (*Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	r := &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}
	if !IsSuccess(resp.StatusCode) {
		return r, &StatusError{Response: r}
	}
	return r, nil
}
