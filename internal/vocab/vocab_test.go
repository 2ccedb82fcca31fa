package vocab

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"a":          "A",
		"created_at": "Created At",
		"author_id":  "Author",
		"firstName":  "First Name",
		"line2":      "Line 2",
		"élan_vital": "Élan Vital",
		"ürünAdı":    "Ürün Adı",
		"straße":     "Straße",
		"":           "",
	}
	for input, want := range cases {
		if got := Humanize(input); got != want {
			t.Fatalf("Humanize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestActionLabel(t *testing.T) {
	cases := map[string]string{
		"destroy":          "Delete",
		"new":              "Create New",
		"edit":             "Edit",
		"show_search":      "Search",
		"hello_world":      "Hello World",
		"articles/publish": "Publish",
	}
	for input, want := range cases {
		if got := ActionLabel(input); got != want {
			t.Fatalf("ActionLabel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestUnderscore(t *testing.T) {
	if got := Underscore("ModelStub"); got != "model_stub" {
		t.Fatalf("expected model_stub, got %q", got)
	}
	if got := Underscore("line-item"); got != "line_item" {
		t.Fatalf("expected line_item, got %q", got)
	}
	if got := Underscore("ÉlanVital"); got != "élan_vital" {
		t.Fatalf("expected élan_vital, got %q", got)
	}
}

func TestCheckKeysNamesOffendingOption(t *testing.T) {
	err := CheckKeys("sort", map[string]any{"sql": "x", "proc": "y"}, "sql", "method")
	if err == nil {
		t.Fatalf("expected error")
	}
	var optErr *OptionError
	if !errors.As(err, &optErr) {
		t.Fatalf("expected OptionError, got %T", err)
	}
	if optErr.Option != "proc" || optErr.Scope != "sort" {
		t.Fatalf("unexpected error fields: %#v", optErr)
	}
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected errors.Is(ErrInvalidOption)")
	}
	if err := CheckKeys("sort", map[string]any{"sql": "x"}, "sql", "method"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStringsAndMaps(t *testing.T) {
	got, ok := Strings([]any{"a", "b"})
	if !ok {
		t.Fatalf("expected list conversion")
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("strings mismatch (-want +got):\n%s", diff)
	}
	if _, ok := Strings([]any{"a", 1}); ok {
		t.Fatalf("expected mixed list to be rejected")
	}

	m, ok := StringMap(map[string]any{"class": "danger", "tabindex": 2})
	if !ok {
		t.Fatalf("expected map conversion")
	}
	if diff := cmp.Diff(map[string]string{"class": "danger", "tabindex": "2"}, m); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}

	if v, ok := Bool("true"); !ok || !v {
		t.Fatalf("expected textual bool to parse")
	}
	if _, ok := Bool(3); ok {
		t.Fatalf("expected int to be rejected")
	}
}
