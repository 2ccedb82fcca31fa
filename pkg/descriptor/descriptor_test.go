package descriptor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scaffold/pkg/descriptor"
)

func TestTableizeAndSingularize(t *testing.T) {
	cases := []struct {
		model string
		table string
	}{
		{"ModelStub", "model_stubs"},
		{"category", "categories"},
		{"box", "boxes"},
		{"day", "days"},
		{"address", "addresses"},
	}
	for _, tc := range cases {
		if got := descriptor.Tableize(tc.model); got != tc.table {
			t.Fatalf("Tableize(%q) = %q, want %q", tc.model, got, tc.table)
		}
	}
	if got := descriptor.Singularize("categories"); got != "category" {
		t.Fatalf("expected category, got %q", got)
	}
	if got := descriptor.Singularize("authors"); got != "author" {
		t.Fatalf("expected author, got %q", got)
	}
	for table, want := range map[string]string{"blog_posts": "BlogPost", "categories": "Category", "boxes": "Box"} {
		if got := descriptor.Classify(table); got != want {
			t.Fatalf("Classify(%q) = %q, want %q", table, got, want)
		}
	}
}

func TestQualifyColumn(t *testing.T) {
	if got := descriptor.QualifyColumn("model_stubs", "a"); got != `"model_stubs"."a"` {
		t.Fatalf("unexpected qualified column %s", got)
	}
	if got := descriptor.QuoteIdentifier(`we"ird`); got != `"we""ird"` {
		t.Fatalf("unexpected quoting %s", got)
	}
}

func TestStaticModel(t *testing.T) {
	model := descriptor.NewStatic("ModelStub").
		WithAttribute(descriptor.Attribute{Name: "id", Type: descriptor.TypeInteger, PrimaryKey: true}).
		WithAttributes(descriptor.TypeString, "a", "b").
		WithAssociation(descriptor.Association{Name: "owner", Kind: descriptor.BelongsTo, Target: "User"}).
		WithAssociation(descriptor.Association{Name: "tags", Kind: descriptor.HasMany, Target: "Tag"})

	if model.TableName() != "model_stubs" {
		t.Fatalf("unexpected table %q", model.TableName())
	}
	if diff := cmp.Diff([]string{"id", "a", "b"}, model.AttributeNames()); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"owner", "tags"}, model.AssociationNames()); diff != "" {
		t.Fatalf("associations mismatch (-want +got):\n%s", diff)
	}

	owner, ok := model.Association("owner")
	if !ok || !owner.Singular() || owner.Cardinality() != descriptor.CardinalityOne {
		t.Fatalf("expected singular owner association, got %#v", owner)
	}
	tags, _ := model.Association("tags")
	if tags.Singular() {
		t.Fatalf("expected has_many to be plural")
	}

	pk, ok := descriptor.PrimaryKey(model)
	if !ok || pk.Name != "id" {
		t.Fatalf("expected id primary key, got %#v", pk)
	}
	if _, ok := model.Attribute("missing"); ok {
		t.Fatalf("expected missing attribute lookup to fail")
	}
	if got := model.QualifiedColumn("a"); got != `"model_stubs"."a"` {
		t.Fatalf("unexpected qualified column %s", got)
	}
}
