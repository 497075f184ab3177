// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workfront

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLookupObjectType(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantObjCode string
		wantErr     bool
	}{
		{"projects", "projects", "project", false},
		{"mixed case", "Tasks", "task", false},
		{"whitespace", "  issues ", "issue", false},
		{"customers", "customers", "customer", false},
		{"documents", "DOCUMENTS", "document", false},
		{"unknown", "portfolios", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupObjectType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("LookupObjectType(%q) succeeded, want error", tt.input)
				}
				if !strings.Contains(err.Error(), "projects") {
					t.Errorf("error %q should list the known object types", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupObjectType(%q): %v", tt.input, err)
			}
			if got.ObjCode != tt.wantObjCode {
				t.Errorf("ObjCode = %q, want %q", got.ObjCode, tt.wantObjCode)
			}
			if got.Fields == "" {
				t.Error("Fields is empty")
			}
		})
	}
}

func TestObjectTypeNamesSorted(t *testing.T) {
	want := []string{"customers", "documents", "issues", "projects", "tasks"}
	got := ObjectTypeNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ObjectTypeNames() = %v, want %v", got, want)
	}
}

func TestColumns(t *testing.T) {
	got := Columns("name, status,,ID,project:name")
	want := []string{"ID", "name", "status", "project:name"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
}

func TestDecodeItemsAndFormatTable(t *testing.T) {
	raw := json.RawMessage(`{"data":[
		{"ID":"1","name":"Launch","percentComplete":42.5,"project":{"name":"Alpha"}},
		{"ID":"2","name":"A very long task name that will not fit in the table"}
	]}`)

	items, err := DecodeItems(raw)
	if err != nil {
		t.Fatalf("DecodeItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	var buf bytes.Buffer
	FormatTable(items, []string{"ID", "name", "percentComplete", "project:name"}, &buf)
	out := buf.String()

	for _, want := range []string{"Launch", "42.5", "Alpha", "A very long task name that ...", "2 results"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, []string{"ID"}, &buf)
	if got := buf.String(); got != "No results found.\n" {
		t.Errorf("FormatTable(nil) = %q", got)
	}
}

func TestDecodeProjects(t *testing.T) {
	projects, err := DecodeProjects(json.RawMessage(`{"data":[{"ID":"p1","name":"P","status":"CUR","percentComplete":60}]}`))
	if err != nil {
		t.Fatalf("DecodeProjects: %v", err)
	}
	if len(projects) != 1 || projects[0].Status != "CUR" || projects[0].PercentComplete != 60 {
		t.Errorf("DecodeProjects = %+v", projects)
	}

	if _, err := DecodeProjects(json.RawMessage(`[`)); err == nil {
		t.Error("DecodeProjects accepted malformed JSON")
	}
}

func TestFormatTableMultibyte(t *testing.T) {
	items := []Item{
		{"ID": "p1", "name": strings.Repeat("é", 40), "status": "CUR"},
		{"ID": "p2", "name": "日本語プロジェクト", "status": "PLN"},
	}

	var buf bytes.Buffer
	FormatTable(items, []string{"ID", "name", "status"}, &buf)
	out := buf.String()

	if !utf8.ValidString(out) {
		t.Fatalf("table is not valid UTF-8: %q", out)
	}
	if want := strings.Repeat("é", 27) + "..."; !strings.Contains(out, want) {
		t.Errorf("table missing rune-truncated name %q:\n%s", want, out)
	}

	// The status column starts at the same rune offset on every row.
	lines := strings.Split(out, "\n")
	var offsets []int
	for _, line := range lines[2:4] {
		i := strings.LastIndex(line, "  ")
		if i < 0 {
			t.Fatalf("no column separator in %q", line)
		}
		offsets = append(offsets, utf8.RuneCountInString(line[:i]))
	}
	header := utf8.RuneCountInString(lines[0][:strings.LastIndex(lines[0], "  ")])
	for _, off := range offsets {
		if off != header {
			t.Errorf("status column misaligned: offsets %v, header %d\n%s", offsets, header, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"ééééééééééé", 10, "ééééééé..."},
		{"日本語のとても長い名前", 8, "日本語のと..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.max)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
		}
	}
}
