package openapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/descriptor"
)

// Options configures document loading.
type Options struct {
	// AllowExternalRefs lets the loader follow $ref values outside the document.
	AllowExternalRefs bool
	// Validate runs the kin-openapi validator before models are extracted.
	Validate bool
	Logger   zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithExternalRefs toggles resolution of external references.
func WithExternalRefs(enabled bool) Option {
	return func(o *Options) { o.AllowExternalRefs = enabled }
}

// WithValidation toggles document validation.
func WithValidation(enabled bool) Option {
	return func(o *Options) { o.Validate = enabled }
}

// WithLogger routes diagnostics about skipped schemas to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Document holds the models extracted from one OpenAPI document.
type Document struct {
	models map[string]*descriptor.Static
}

// LoadFile reads path and extracts its models.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi descriptor: read %s: %w", path, err)
	}
	return Load(ctx, data, opts...)
}

// Load parses a JSON or YAML OpenAPI document and extracts its models.
func Load(ctx context.Context, data []byte, opts ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options := Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi descriptor: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: options.AllowExternalRefs,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi descriptor: load document: %w", err)
	}
	if options.Validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi descriptor: validate: %w", err)
		}
	}

	doc := &Document{models: make(map[string]*descriptor.Static)}
	if spec.Components == nil {
		return doc, nil
	}
	for name, ref := range spec.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		if !isObject(ref.Value) {
			options.Logger.Debug().Str("schema", name).Msg("openapi descriptor: skipped non-object schema")
			continue
		}
		model, err := convertModel(name, ref.Value)
		if err != nil {
			return nil, err
		}
		doc.models[name] = model
	}
	return doc, nil
}

// Models lists the model names in sorted order.
func (d *Document) Models() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.models))
	for name := range d.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Model returns the named model.
func (d *Document) Model(name string) (descriptor.Model, bool) {
	if d == nil {
		return nil, false
	}
	model, ok := d.models[name]
	if !ok {
		return nil, false
	}
	return model, true
}

func isObject(schema *openapi3.Schema) bool {
	if schema.Type == nil || schema.Type.Is("object") {
		return len(schema.Properties) > 0
	}
	return false
}

// convertModel declares primary keys first, then the remaining properties in
// name order. Property maps carry no order of their own.
func convertModel(name string, schema *openapi3.Schema) (*descriptor.Static, error) {
	model := descriptor.NewStatic(name)
	if table, ok := schema.Extensions[tableExtensionKey].(string); ok {
		model.WithTable(table)
	}

	keys := primaryKeys(schema)
	names := make([]string, 0, len(schema.Properties))
	for prop := range schema.Properties {
		names = append(names, prop)
	}
	sort.SliceStable(names, func(i, j int) bool {
		ki, kj := slices.Contains(keys, names[i]), slices.Contains(keys, names[j])
		if ki != kj {
			return ki
		}
		return names[i] < names[j]
	})

	for _, prop := range names {
		ref := schema.Properties[prop]
		if ref == nil {
			continue
		}
		if raw, ok := relationshipExtension(ref); ok {
			assoc, err := convertAssociation(prop, ref, raw)
			if err != nil {
				return nil, fmt.Errorf("openapi descriptor: schema %s property %s: %w", name, prop, err)
			}
			model.WithAssociation(assoc)
			continue
		}
		model.WithAttribute(convertAttribute(prop, ref, schema.Required, keys))
	}
	return model, nil
}

func primaryKeys(schema *openapi3.Schema) []string {
	var keys []string
	for prop, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		if flag, ok := ref.Value.Extensions[primaryKeyExtensionKey].(bool); ok && flag {
			keys = append(keys, prop)
		}
	}
	if len(keys) == 0 {
		if _, ok := schema.Properties["id"]; ok {
			keys = append(keys, "id")
		}
	}
	sort.Strings(keys)
	return keys
}

func convertAttribute(name string, ref *openapi3.SchemaRef, required, keys []string) descriptor.Attribute {
	attr := descriptor.Attribute{
		Name:       name,
		Type:       attributeType(ref.Value),
		PrimaryKey: slices.Contains(keys, name),
	}
	attr.Nullable = !attr.PrimaryKey && !slices.Contains(required, name)
	if ref.Value != nil {
		if ref.Value.Nullable {
			attr.Nullable = true
		}
		attr.Default = ref.Value.Default
	}
	return attr
}

func attributeType(schema *openapi3.Schema) descriptor.AttributeType {
	if schema == nil {
		return descriptor.TypeString
	}
	switch firstSchemaType(schema.Type) {
	case "integer":
		return descriptor.TypeInteger
	case "number":
		if schema.Format == "decimal" {
			return descriptor.TypeDecimal
		}
		return descriptor.TypeFloat
	case "boolean":
		return descriptor.TypeBoolean
	case "object", "array":
		return descriptor.TypeJSON
	}
	switch schema.Format {
	case "date":
		return descriptor.TypeDate
	case "date-time":
		return descriptor.TypeDateTime
	case "time":
		return descriptor.TypeTime
	case "binary", "byte":
		return descriptor.TypeBinary
	case "text", "textarea", "markdown":
		return descriptor.TypeText
	}
	return descriptor.TypeString
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	for _, value := range values {
		if value != "null" {
			return value
		}
	}
	return ""
}
