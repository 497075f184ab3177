// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report summarizes Workfront projects into a status distribution
// and a completion distribution.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/workfront-probe/pkg/types"
)

// Bucket is one labelled count in a distribution.
type Bucket struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Report is the summary of a set of projects.
type Report struct {
	Total      int      `json:"total" yaml:"total"`
	Status     []Bucket `json:"status" yaml:"status"`
	Completion []Bucket `json:"completion" yaml:"completion"`
}

var statusLabels = []struct {
	code  string
	label string
}{
	{types.StatusPlanning, "Planned"},
	{types.StatusCurrent, "Current"},
	{types.StatusCompleted, "Completed"},
}

// completionBuckets are upper-inclusive: 25 lands in 0-25%, 25.5 in 26-50%.
var completionBuckets = []struct {
	label string
	upper float64
}{
	{"0-25%", 25},
	{"26-50%", 50},
	{"51-75%", 75},
	{"76-100%", -1},
}

// Build counts projects by status and by percent complete. Statuses other
// than planned, current and completed are counted under "Other", which is
// omitted when empty.
func Build(projects []types.Project) Report {
	r := Report{Total: len(projects)}

	byStatus := make(map[string]int)
	for _, p := range projects {
		byStatus[p.Status]++
	}
	known := 0
	for _, s := range statusLabels {
		r.Status = append(r.Status, Bucket{Label: s.label, Count: byStatus[s.code]})
		known += byStatus[s.code]
	}
	if other := len(projects) - known; other > 0 {
		r.Status = append(r.Status, Bucket{Label: "Other", Count: other})
	}

	counts := make([]int, len(completionBuckets))
	for _, p := range projects {
		counts[completionIndex(p.PercentComplete)]++
	}
	for i, b := range completionBuckets {
		r.Completion = append(r.Completion, Bucket{Label: b.label, Count: counts[i]})
	}
	return r
}

func completionIndex(pct float64) int {
	for i, b := range completionBuckets {
		if b.upper < 0 || pct <= b.upper {
			return i
		}
	}
	return len(completionBuckets) - 1
}

// Write renders r to w in the given format.
func Write(r Report, format types.ReportFormat, w io.Writer) error {
	switch format {
	case types.ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case types.ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	case types.ReportTable, "":
		writeTable(r, w)
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeTable(r Report, w io.Writer) {
	fmt.Fprintf(w, "Project Status Distribution (%d projects)\n", r.Total)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, b := range r.Status {
		fmt.Fprintf(w, "%-12s  %5d\n", b.Label, b.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Project Completion Distribution")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, b := range r.Completion {
		fmt.Fprintf(w, "%-12s  %5d\n", b.Label, b.Count)
	}
}
