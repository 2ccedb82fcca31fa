package scaffold

import (
	"context"
	"database/sql"
	"errors"

	"github.com/goliatone/go-scaffold/pkg/descriptor"
	"github.com/goliatone/go-scaffold/pkg/descriptor/openapi"
	"github.com/goliatone/go-scaffold/pkg/descriptor/sqlite"
)

// Source yields the models a Builder configures.
type Source interface {
	Models(ctx context.Context) ([]descriptor.Model, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]descriptor.Model, error)

// Models calls f.
func (f SourceFunc) Models(ctx context.Context) ([]descriptor.Model, error) { return f(ctx) }

// Static serves the given models as is.
func Static(models ...descriptor.Model) Source {
	return SourceFunc(func(context.Context) ([]descriptor.Model, error) {
		return append([]descriptor.Model(nil), models...), nil
	})
}

// OpenAPI reads models from the component schemas of an OpenAPI document.
func OpenAPI(data []byte, options ...openapi.Option) Source {
	return SourceFunc(func(ctx context.Context) ([]descriptor.Model, error) {
		doc, err := openapi.Load(ctx, data, options...)
		if err != nil {
			return nil, err
		}
		return documentModels(doc), nil
	})
}

// OpenAPIFile is OpenAPI reading the document from path.
func OpenAPIFile(path string, options ...openapi.Option) Source {
	return SourceFunc(func(ctx context.Context) ([]descriptor.Model, error) {
		doc, err := openapi.LoadFile(ctx, path, options...)
		if err != nil {
			return nil, err
		}
		return documentModels(doc), nil
	})
}

// SQLite introspects every user table of db. The handle stays open.
func SQLite(db *sql.DB, options ...sqlite.Option) Source {
	return SourceFunc(func(ctx context.Context) ([]descriptor.Model, error) {
		if db == nil {
			return nil, errors.New("scaffold: sqlite source: database is nil")
		}
		models, err := sqlite.Schema(ctx, db, options...)
		if err != nil {
			return nil, err
		}
		out := make([]descriptor.Model, 0, len(models))
		for _, model := range models {
			out = append(out, model)
		}
		return out, nil
	})
}

func documentModels(doc *openapi.Document) []descriptor.Model {
	names := doc.Models()
	out := make([]descriptor.Model, 0, len(names))
	for _, name := range names {
		if model, ok := doc.Model(name); ok {
			out = append(out, model)
		}
	}
	return out
}
