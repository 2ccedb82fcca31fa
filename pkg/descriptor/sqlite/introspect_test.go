package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scaffold/pkg/descriptor"
	"github.com/goliatone/go-scaffold/pkg/descriptor/sqlite"
)

const blogSchema = `
CREATE TABLE authors (
	id INTEGER PRIMARY KEY,
	name VARCHAR(120) NOT NULL
);
CREATE TABLE articles (
	id INTEGER PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	body TEXT,
	score REAL DEFAULT 0,
	published BOOLEAN NOT NULL DEFAULT 0,
	published_at DATETIME,
	author_id INTEGER REFERENCES authors(id)
);
CREATE TABLE blog_comments (
	id INTEGER PRIMARY KEY,
	article_id INTEGER NOT NULL REFERENCES articles(id),
	body TEXT NOT NULL
);
`

func openBlog(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.ExecContext(ctx, blogSchema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func TestTables(t *testing.T) {
	db := openBlog(t)
	tables, err := sqlite.Tables(context.Background(), db)
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	if diff := cmp.Diff([]string{"articles", "authors", "blog_comments"}, tables); diff != "" {
		t.Fatalf("tables mismatch (-want +got):\n%s", diff)
	}
}

func TestIntrospectArticles(t *testing.T) {
	db := openBlog(t)
	model, err := sqlite.Introspect(context.Background(), db, "articles")
	if err != nil {
		t.Fatalf("introspect: %v", err)
	}
	if model.Name() != "Article" || model.TableName() != "articles" {
		t.Fatalf("unexpected model %q/%q", model.Name(), model.TableName())
	}

	wantNames := []string{"id", "title", "body", "score", "published", "published_at", "author_id"}
	if diff := cmp.Diff(wantNames, model.AttributeNames()); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}

	types := make(map[string]descriptor.AttributeType)
	for _, name := range model.AttributeNames() {
		attr, _ := model.Attribute(name)
		types[name] = attr.Type
	}
	wantTypes := map[string]descriptor.AttributeType{
		"id":           descriptor.TypeInteger,
		"title":        descriptor.TypeString,
		"body":         descriptor.TypeText,
		"score":        descriptor.TypeFloat,
		"published":    descriptor.TypeBoolean,
		"published_at": descriptor.TypeDateTime,
		"author_id":    descriptor.TypeInteger,
	}
	if diff := cmp.Diff(wantTypes, types); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	id, _ := model.Attribute("id")
	title, _ := model.Attribute("title")
	body, _ := model.Attribute("body")
	if !id.PrimaryKey || id.Nullable || title.Nullable || !body.Nullable {
		t.Fatalf("unexpected key/nullability: id=%+v title=%+v body=%+v", id, title, body)
	}
	published, _ := model.Attribute("published")
	if published.Default != "0" {
		t.Fatalf("expected default 0, got %#v", published.Default)
	}

	if diff := cmp.Diff([]string{"author"}, model.AssociationNames()); diff != "" {
		t.Fatalf("associations mismatch (-want +got):\n%s", diff)
	}
	author, _ := model.Association("author")
	want := descriptor.Association{Name: "author", Kind: descriptor.BelongsTo, Target: "Author", ForeignKey: "author_id"}
	if diff := cmp.Diff(want, author); diff != "" {
		t.Fatalf("author mismatch (-want +got):\n%s", diff)
	}
}

func TestIntrospectMissingTable(t *testing.T) {
	db := openBlog(t)
	_, err := sqlite.Introspect(context.Background(), db, "missing")
	if !errors.Is(err, sqlite.ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}

func TestSchemaAddsInverseAssociations(t *testing.T) {
	db := openBlog(t)
	models, err := sqlite.Schema(context.Background(), db, sqlite.WithModelName("blog_comments", "Comment"))
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	byName := make(map[string]*descriptor.Static)
	for _, model := range models {
		byName[model.Name()] = model
	}
	if len(byName) != 3 {
		t.Fatalf("expected 3 models, got %v", byName)
	}

	comments, ok := byName["Article"].Association("blog_comments")
	want := descriptor.Association{Name: "blog_comments", Kind: descriptor.HasMany, Target: "Comment", ForeignKey: "article_id"}
	if !ok {
		t.Fatalf("expected has_many blog_comments on Article")
	}
	if diff := cmp.Diff(want, comments); diff != "" {
		t.Fatalf("inverse mismatch (-want +got):\n%s", diff)
	}

	article, ok := byName["Comment"].Association("article")
	if !ok || article.Target != "Article" || article.Kind != descriptor.BelongsTo {
		t.Fatalf("unexpected comment article association %+v", article)
	}
	if _, ok := byName["Author"].Association("articles"); !ok {
		t.Fatalf("expected has_many articles on Author")
	}
}
