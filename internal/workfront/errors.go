// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workfront

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/pdiddy/workfront-probe/internal/httputil"
)

// redacted replaces credential query values in URLs shown to operators.
const redacted = "REDACTED"

// credentialParams are query parameters whose values are never printed.
var credentialParams = []string{"apiKey", "sessionID"}

// RequestError is the single failure type for calls to the Workfront API.
// It covers both transport failures (no response) and non-2xx responses.
type RequestError struct {
	// URL is the request URL with credentials redacted.
	URL string

	// StatusCode and Body are set only when a response was received.
	StatusCode int
	Body       []byte

	// Err is the underlying cause.
	Err error
}

func (e *RequestError) Error() string {
	if e.HasResponse() {
		return fmt.Sprintf("%v for url: %s", e.Err, e.URL)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// HasResponse reports whether the server answered, i.e. whether StatusCode
// and Body are meaningful.
func (e *RequestError) HasResponse() bool {
	return e.StatusCode != 0
}

// newRequestError builds a RequestError from the outcome of httputil.Do.
func newRequestError(rawURL string, resp *httputil.Response, err error) *RequestError {
	re := &RequestError{URL: RedactURL(rawURL), Err: err}

	// url.Error embeds the full request URL, credentials included.
	var ue *url.Error
	if errors.As(err, &ue) {
		re.Err = ue.Err
	}

	var se *httputil.StatusError
	if errors.As(err, &se) && resp != nil {
		re.StatusCode = resp.StatusCode
		re.Body = resp.Body
	}
	return re
}

// RedactURL returns rawURL with credential query values replaced.
// Unparseable input is returned as a fixed placeholder.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	changed := false
	for _, p := range credentialParams {
		if q.Has(p) {
			q.Set(p, redacted)
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
