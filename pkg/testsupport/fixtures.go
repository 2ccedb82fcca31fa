package testsupport

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/go-scaffold/pkg/descriptor"
)

// ArticleModel returns a blog article: an integer key, plain attributes, an
// ignored timestamp, a belongs_to author and has_many comments. Attribute
// order is id, title, body, author_id, created_at.
func ArticleModel() *descriptor.Static {
	return descriptor.NewStatic("Article").
		WithAttribute(descriptor.Attribute{Name: "id", Type: descriptor.TypeInteger, PrimaryKey: true}).
		WithAttribute(descriptor.Attribute{Name: "title", Type: descriptor.TypeString}).
		WithAttribute(descriptor.Attribute{Name: "body", Type: descriptor.TypeText, Nullable: true}).
		WithAttribute(descriptor.Attribute{Name: "author_id", Type: descriptor.TypeInteger}).
		WithAttribute(descriptor.Attribute{Name: "created_at", Type: descriptor.TypeDateTime}).
		WithAssociation(descriptor.Association{Name: "author", Kind: descriptor.BelongsTo, Target: "Author", ForeignKey: "author_id"}).
		WithAssociation(descriptor.Association{Name: "comments", Kind: descriptor.HasMany, Target: "Comment"})
}

// AuthorModel returns the author referenced by ArticleModel.
func AuthorModel() *descriptor.Static {
	return descriptor.NewStatic("Author").
		WithAttribute(descriptor.Attribute{Name: "id", Type: descriptor.TypeInteger, PrimaryKey: true}).
		WithAttributes(descriptor.TypeString, "name")
}

// DecodeJSON unmarshals data into out, failing the test on error.
func DecodeJSON(t *testing.T, data []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decode json: %v\n%s", err, data)
	}
}
