// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultBaseURL is the Workfront tenant API root used when no base_url is configured.
const DefaultBaseURL = "https://productmgmtaemaebeta.my.workfront.com/attask/api/v15.0"

// HTTPConfig holds shared HTTP settings used by commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client timeout,
	// which is the net/http default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "workfront-probe/0.1"). Empty leaves the Go default.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// WorkfrontConfig holds the tenant endpoint and credentials.
type WorkfrontConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root, e.g. https://<tenant>/attask/api/v15.0.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is the Workfront API key sent as the apiKey query parameter.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Username is used only by the login check.
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// ReportFormat selects the output format of the status report.
type ReportFormat string

const (
	ReportTable ReportFormat = "table"
	ReportJSON  ReportFormat = "json"
	ReportYAML  ReportFormat = "yaml"
)
