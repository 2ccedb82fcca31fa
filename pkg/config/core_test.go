package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/actionlink"
	"github.com/goliatone/go-scaffold/pkg/column"
	"github.com/goliatone/go-scaffold/pkg/config"
	"github.com/goliatone/go-scaffold/pkg/testsupport"
)

var articleModel = testsupport.ArticleModel

func TestDeleteLinkDefaults(t *testing.T) {
	core := config.New(articleModel())
	link := core.Delete.Link

	if link.Page || link.Popup {
		t.Fatalf("expected page and popup to be false")
	}
	if !link.Confirm || !link.Inline {
		t.Fatalf("expected confirm and inline")
	}
	if link.Action != "destroy" || link.Label != "Delete" {
		t.Fatalf("unexpected action/label %q/%q", link.Action, link.Label)
	}
	if diff := cmp.Diff(map[string]string{}, link.HTMLOptions); diff != "" {
		t.Fatalf("html options mismatch (-want +got):\n%s", diff)
	}
	if link.Method != actionlink.MethodDelete || link.Type != actionlink.TypeMember || link.CrudType != actionlink.CrudDelete {
		t.Fatalf("unexpected method/type/crud %s/%s/%s", link.Method, link.Type, link.CrudType)
	}
	if got := link.ResolvedSecurityMethod(); got != "delete_authorized?" {
		t.Fatalf("unexpected security method %q", got)
	}
}

func TestSettingDeleteLink(t *testing.T) {
	core := config.New(articleModel())
	defaultLink := core.Delete.Link

	core.Delete.Link = actionlink.New("update", actionlink.WithLabel("Monkeys"))
	if defaultLink.Equal(core.Delete.Link) {
		t.Fatalf("expected replaced link to differ from the default")
	}

	core.Delete.ResetLink()
	if core.Delete.Link == defaultLink {
		t.Fatalf("reset should build a fresh link")
	}
	if !core.Delete.Link.Equal(defaultLink) {
		t.Fatalf("reset link should equal the default by value")
	}
}

func TestSubConfigLinkDefaults(t *testing.T) {
	core := config.New(articleModel())

	cases := []struct {
		link     *actionlink.ActionLink
		action   string
		label    string
		linkType actionlink.Type
		crud     actionlink.CrudType
		security string
	}{
		{core.Create.Link, "new", "Create New", actionlink.TypeCollection, actionlink.CrudCreate, "create_authorized?"},
		{core.Update.Link, "edit", "Edit", actionlink.TypeMember, actionlink.CrudUpdate, "update_authorized?"},
		{core.Show.Link, "show", "Show", actionlink.TypeMember, actionlink.CrudRead, "read_authorized?"},
		{core.Search.Link, "show_search", "Search", actionlink.TypeCollection, actionlink.CrudRead, "search_authorized?"},
	}
	for _, tc := range cases {
		if tc.link.Action != tc.action || tc.link.Label != tc.label || tc.link.Type != tc.linkType ||
			tc.link.CrudType != tc.crud || tc.link.ResolvedSecurityMethod() != tc.security {
			t.Fatalf("unexpected link for %s: %#v", tc.action, tc.link)
		}
	}
	if core.List.ActionLink() != nil {
		t.Fatalf("list has no link")
	}
}

func TestLabels(t *testing.T) {
	core := config.New(articleModel())
	if core.Label != "Articles" || core.List.Label != "Articles" {
		t.Fatalf("unexpected labels %q/%q", core.Label, core.List.Label)
	}
	if core.Create.Label != "Create Article" || core.Update.Label != "Update Article" || core.Show.Label != "Show Article" {
		t.Fatalf("unexpected form labels %q/%q/%q", core.Create.Label, core.Update.Label, core.Show.Label)
	}

	custom := config.New(articleModel(), config.WithLabel("Posts"), config.WithPerPage(50))
	if custom.Label != "Posts" || custom.List.PerPage != 50 {
		t.Fatalf("options not applied: %q %d", custom.Label, custom.List.PerPage)
	}
}

func TestColumnsAreLazyAndShared(t *testing.T) {
	core := config.New(articleModel())
	columns := core.Columns()
	if columns != core.Columns() {
		t.Fatalf("expected the column set to be built once")
	}
	want := []string{"id", "title", "body", "author_id", "created_at", "author", "comments"}
	if diff := cmp.Diff(want, columns.Names()); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestActionColumnDefaults(t *testing.T) {
	core := config.New(articleModel())

	cases := map[string][]string{
		config.ActionCreate: {"title", "body", "author_id", "author", "comments"},
		config.ActionUpdate: {"title", "body", "author_id", "author", "comments"},
		config.ActionList:   {"title", "body", "author_id", "author", "comments"},
		config.ActionShow:   {"id", "title", "body", "author_id", "author", "comments"},
		config.ActionSearch: {"id", "title", "body", "author_id", "author"},
	}
	for action, want := range cases {
		columns, ok := core.ActionColumns(action)
		if !ok {
			t.Fatalf("expected columns for %s", action)
		}
		if diff := cmp.Diff(want, columns.Names()); diff != "" {
			t.Fatalf("%s columns mismatch (-want +got):\n%s", action, diff)
		}
		if columns.Action != action {
			t.Fatalf("expected action %q on list, got %q", action, columns.Action)
		}
	}
	if _, ok := core.ActionColumns(config.ActionDelete); ok {
		t.Fatalf("delete has no columns")
	}
}

func TestActionColumnsAreIndependent(t *testing.T) {
	core := config.New(articleModel())
	core.List.Columns().Remove("body")
	core.Create.SetColumns("title", "word_count")

	if core.Columns().Len() != 7 {
		t.Fatalf("action edits must not change the column set")
	}
	if !core.Update.Columns().Include("body") {
		t.Fatalf("list edits leaked into update")
	}
	resolved := core.Create.Columns().Resolve(core.Columns().Plus("word_count"))
	if len(resolved) != 2 || !resolved[1].Virtual() {
		t.Fatalf("expected title and a virtual word_count, got %v", resolved)
	}
}

func TestSortingDefaults(t *testing.T) {
	core := config.New(articleModel())
	if diff := cmp.Diff([]config.Sorting{{Column: "id", Direction: config.Ascending}}, core.List.Sorting); diff != "" {
		t.Fatalf("sorting mismatch (-want +got):\n%s", diff)
	}
	if core.List.PerPage != 15 || core.List.EmptyFieldText != "-" {
		t.Fatalf("unexpected list defaults")
	}
	if core.Search.TextSearch != config.TextSearchFull {
		t.Fatalf("unexpected text search %q", core.Search.TextSearch)
	}
}

func TestWithActions(t *testing.T) {
	core := config.New(articleModel(), config.WithActions("list", "show", "bogus"))
	if diff := cmp.Diff([]string{"list", "show"}, core.Actions()); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
	if _, ok := core.Action(config.ActionDelete); ok {
		t.Fatalf("delete should be disabled")
	}
	if action, ok := core.Action(config.ActionShow); !ok || action.Name() != config.ActionShow {
		t.Fatalf("show should be enabled")
	}
	if core.Delete == nil || core.Delete.Link == nil {
		t.Fatalf("disabled sub-configurations still exist")
	}

	repeated := config.New(articleModel(), config.WithActions("list", " LIST ", "show", "list"))
	if diff := cmp.Diff([]string{"list", "show"}, repeated.Actions()); diff != "" {
		t.Fatalf("repeated actions mismatch (-want +got):\n%s", diff)
	}
}

func TestActionLinks(t *testing.T) {
	core := config.New(articleModel())
	links := core.ActionLinks()

	var actions []string
	for link := range links.All() {
		actions = append(actions, link.Action)
	}
	want := []string{"new", "show_search", "edit", "destroy", "show"}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
	if n := len(links.OfType(actionlink.TypeMember)); n != 3 {
		t.Fatalf("expected 3 member links, got %d", n)
	}
}

func TestNestedConfigure(t *testing.T) {
	core := config.New(articleModel())
	core.Configure(func(c *config.Core) {
		c.Label = "Posts"
		c.Columns().Column("title").Configure(func(col *column.Column) {
			col.SetFormUI(column.UITextarea)
			col.SetLabel("Headline")
		})
		c.Delete.Configure(func(d *config.DeleteConfig) {
			d.Link = actionlink.New("destroy", actionlink.WithConfirm(false))
			d.RefreshList = true
		})
		c.List.Configure(func(l *config.ListConfig) {
			l.Columns().Remove("comments")
		})
	})

	title := core.Columns().Column("title")
	if core.Label != "Posts" || title.Label() != "Headline" || title.ListUI() != column.UITextarea {
		t.Fatalf("configure blocks resolved to the wrong target")
	}
	if core.Delete.Link.Confirm || !core.Delete.RefreshList {
		t.Fatalf("delete configure not applied")
	}
	if core.List.Columns().Include("comments") {
		t.Fatalf("list configure not applied")
	}
}

func TestCoreLogsColumnSetConstruction(t *testing.T) {
	var buf bytes.Buffer
	core := config.New(articleModel(), config.WithLogger(zerolog.New(&buf)))
	core.Columns().Add("word_count")

	out := buf.String()
	if !strings.Contains(out, `"model":"Article"`) || !strings.Contains(out, `"columns":7`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if !strings.Contains(out, `"column":"word_count"`) {
		t.Fatalf("expected virtual column to be logged: %s", out)
	}
}
