package scaffold_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	scaffold "github.com/goliatone/go-scaffold"
	"github.com/goliatone/go-scaffold/pkg/config"
	"github.com/goliatone/go-scaffold/pkg/descriptor"
)

const document = `
openapi: 3.0.3
info: {title: Shop, version: "1"}
paths: {}
components:
  schemas:
    Product:
      type: object
      required: [name]
      properties:
        id: {type: integer}
        name: {type: string}
        price: {type: number, format: decimal}
    Category:
      type: object
      properties:
        id: {type: integer}
        title: {type: string}
`

func TestBuildFromOpenAPIWithOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"product.yaml": {Data: []byte(`
models:
  Product:
    label: Catalogue
    columns:
      price:
        calculate: sum
`)},
	}
	var configured []string
	builder := scaffold.New(
		scaffold.WithOverridesFS(fsys),
		scaffold.WithConfigOptions(config.WithPerPage(40)),
		scaffold.WithConfigure(func(core *config.Core) {
			configured = append(configured, core.Model().Name())
		}),
	)

	cores, err := builder.Build(context.Background(), scaffold.OpenAPI([]byte(document)))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]string{"Category", "Product"}, configured); diff != "" {
		t.Fatalf("configure hooks mismatch (-want +got):\n%s", diff)
	}

	product := cores[1]
	if product.Label != "Catalogue" || product.List.PerPage != 40 {
		t.Fatalf("unexpected product config %q %d", product.Label, product.List.PerPage)
	}
	price := product.Columns().Column("price")
	if !price.Calculation() || price.Type() != descriptor.TypeDecimal {
		t.Fatalf("unexpected price column")
	}
}

func TestBuildSelectsModels(t *testing.T) {
	source := scaffold.Static(descriptor.NewStatic("Tag"), descriptor.NewStatic("Post"))

	cores, err := scaffold.New(scaffold.WithModels("Post")).Build(context.Background(), source)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(cores) != 1 || cores[0].Model().Name() != "Post" {
		t.Fatalf("unexpected cores %v", cores)
	}

	_, err = scaffold.New(scaffold.WithModels("Post", "Missing")).Build(context.Background(), source)
	if err == nil || !strings.Contains(err.Error(), "Missing") {
		t.Fatalf("expected unknown model error, got %v", err)
	}
}

func TestBuildErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := scaffold.SourceFunc(func(context.Context) ([]descriptor.Model, error) { return nil, boom })
	if _, err := scaffold.New().Build(context.Background(), failing); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
	if _, err := scaffold.New().Build(context.Background(), nil); err == nil {
		t.Fatalf("expected missing source to fail")
	}

	badOverrides := fstest.MapFS{"bad.yaml": {Data: []byte("models:\n  Tag:\n    unknown: 1\n")}}
	if _, err := scaffold.New(scaffold.WithOverridesFS(badOverrides)).Build(context.Background(), scaffold.Static()); err == nil {
		t.Fatalf("expected override load error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := scaffold.New().Build(ctx, scaffold.Static()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestApplyErrorsSurfaceAsOptionErrors(t *testing.T) {
	fsys := fstest.MapFS{"tag.yaml": {Data: []byte("models:\n  Tag:\n    columns:\n      name:\n        sort: {by: name}\n")}}
	source := scaffold.Static(descriptor.NewStatic("Tag").WithAttributes(descriptor.TypeString, "name"))

	_, err := scaffold.New(scaffold.WithOverridesFS(fsys)).Build(context.Background(), source)
	var optErr *scaffold.OptionError
	if !errors.As(err, &optErr) || optErr.Option != "by" || !errors.Is(err, scaffold.ErrInvalidOption) {
		t.Fatalf("expected option error naming by, got %v", err)
	}
}

func TestRegistryAndLogging(t *testing.T) {
	var buf bytes.Buffer
	builder := scaffold.New(scaffold.WithLogger(zerolog.New(&buf)))
	registry, err := builder.Registry(context.Background(), scaffold.OpenAPI([]byte(document)))
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if diff := cmp.Diff([]string{"Category", "Product"}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "scaffold: built configurations") {
		t.Fatalf("expected build log, got %s", buf.String())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	col := scaffold.NewColumn("total", nil)
	if !col.Virtual() || col.Label() != "Total" {
		t.Fatalf("unexpected column %v", col)
	}
	link := scaffold.NewLink("destroy")
	if !link.Confirm {
		t.Fatalf("expected delete template")
	}
	core := scaffold.NewConfig(descriptor.NewStatic("Tag"))
	if core.Label != "Tags" {
		t.Fatalf("unexpected label %q", core.Label)
	}
}
