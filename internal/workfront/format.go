// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workfront

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/workfront-probe/pkg/types"
)

const maxCellWidth = 30

// Item is one object from a search response, keyed by field name.
type Item map[string]any

// DecodeItems unpacks the data array of a search response. Numbers are kept
// as json.Number so they print exactly as received.
func DecodeItems(raw json.RawMessage) ([]Item, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var sr types.SearchResponse[Item]
	if err := dec.Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}
	return sr.Data, nil
}

// DecodeProjects unpacks a project/search response.
func DecodeProjects(raw json.RawMessage) ([]types.Project, error) {
	var sr types.SearchResponse[types.Project]
	if err := json.Unmarshal(raw, &sr); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}
	return sr.Data, nil
}

// Columns returns the table columns for a fields list: ID first, then each
// requested field in order.
func Columns(fields string) []string {
	cols := []string{"ID"}
	for _, f := range strings.Split(fields, ",") {
		if f = strings.TrimSpace(f); f != "" && f != "ID" {
			cols = append(cols, f)
		}
	}
	return cols
}

// FormatTable writes items as a fixed-width table to w.
func FormatTable(items []Item, columns []string, w io.Writer) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	widths := make([]int, len(columns))
	rows := make([][]string, len(items))
	for i, c := range columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for r, item := range items {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cell(item, c)
			widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
		}
		rows[r] = row
	}

	writeRow(w, columns, widths)
	total := 0
	for _, wd := range widths {
		total += wd + 2
	}
	fmt.Fprintln(w, strings.Repeat("-", total-2))
	for _, row := range rows {
		writeRow(w, row, widths)
	}

	fmt.Fprintf(w, "\n%d results\n", len(items))
}

// writeRow pads each cell to its column width. fmt measures widths in runes.
func writeRow(w io.Writer, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], c)
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
}

// cell renders a field value. Nested references such as project:name are
// looked up through the nested object Workfront returns.
func cell(item Item, field string) string {
	var v any = map[string]any(item)
	for _, part := range strings.Split(field, ":") {
		m, ok := v.(map[string]any)
		if !ok {
			return ""
		}
		v = m[part]
	}
	if v == nil {
		return ""
	}
	return truncate(fmt.Sprint(v), maxCellWidth)
}

// truncate shortens s to at most max runes, never splitting a character.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
