// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package probe implements the one-shot Workfront connectivity check: a
// single project search whose outcome is reported to a human operator.
// Failures are reported, never returned, so the calling process always
// terminates normally.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/workfront-probe/internal/workfront"
)

const (
	successMarker = "API Connection Successful!"
	errorPrefix   = "Error connecting to Workfront API"
)

// Searcher is the subset of *workfront.Client the probe needs.
type Searcher interface {
	Search(ctx context.Context, objCode, fields string) (json.RawMessage, error)
}

// Probe checks that the configured credentials and endpoint reach Workfront.
type Probe struct {
	client Searcher
}

// New returns a Probe that sends its request through client.
func New(client Searcher) *Probe {
	return &Probe{client: client}
}

// Result summarizes one probe run. It is informational; the report written
// to w is the primary output.
type Result struct {
	OK bool

	// StatusCode is set when the server answered with a non-2xx status.
	StatusCode int

	Err error
}

// Run sends exactly one GET to {base}/project/search?fields=name,status and
// writes the outcome to w. On success the payload is printed indented. On
// failure the error is printed, followed by the status code and raw body
// when the server answered.
func (p *Probe) Run(ctx context.Context, w io.Writer) Result {
	body, err := p.client.Search(ctx, workfront.ProbeObjCode, workfront.ProbeFields)
	if err == nil {
		var pretty bytes.Buffer
		if err = json.Indent(&pretty, bytes.TrimSpace(body), "", "  "); err == nil {
			fmt.Fprintln(w, successMarker)
			fmt.Fprintf(w, "Response: %s\n", pretty.Bytes())
			return Result{OK: true}
		}
		// A 2xx with an unparseable body has no response worth echoing.
		err = fmt.Errorf("parsing response: %w", err)
	}

	fmt.Fprintf(w, "%s: %v\n", errorPrefix, err)

	res := Result{Err: err}
	var re *workfront.RequestError
	if errors.As(err, &re) && re.HasResponse() {
		res.StatusCode = re.StatusCode
		fmt.Fprintf(w, "Status Code: %d\n", re.StatusCode)
		fmt.Fprintf(w, "Response: %s\n", re.Body)
	}
	return res
}
