// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for workfront-probe:
// Workfront objects as returned by the search endpoints, and the
// configuration consumed by the CLI.
package types

// Project status codes used by Workfront.
const (
	StatusPlanning  = "PLN"
	StatusCurrent   = "CUR"
	StatusCompleted = "CPL"
)

// Project is a Workfront project as returned by project/search.
type Project struct {
	ID                    string  `json:"ID" yaml:"id"`
	Name                  string  `json:"name" yaml:"name"`
	Status                string  `json:"status,omitempty" yaml:"status,omitempty"`
	ObjCode               string  `json:"objCode,omitempty" yaml:"obj_code,omitempty"`
	PercentComplete       float64 `json:"percentComplete,omitempty" yaml:"percent_complete,omitempty"`
	PlannedCompletionDate string  `json:"plannedCompletionDate,omitempty" yaml:"planned_completion_date,omitempty"`
}

// SearchResponse is the envelope Workfront wraps search results in.
type SearchResponse[T any] struct {
	Data []T `json:"data"`
}
