package openapi

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-scaffold/internal/vocab"
	"github.com/goliatone/go-scaffold/pkg/descriptor"
)

const (
	relationshipExtensionKey = "x-relationships"
	primaryKeyExtensionKey   = "x-primary-key"
	tableExtensionKey        = "x-scaffold-table"
)

var relationshipKeys = []string{"type", "target", "foreignKey", "through", "polymorphic", "inverse", "cardinality"}

var relationshipKinds = map[string]descriptor.AssociationKind{
	"belongsto":               descriptor.BelongsTo,
	"belongs_to":              descriptor.BelongsTo,
	"hasone":                  descriptor.HasOne,
	"has_one":                 descriptor.HasOne,
	"hasmany":                 descriptor.HasMany,
	"has_many":                descriptor.HasMany,
	"manytomany":              descriptor.HasAndBelongsToMany,
	"has_and_belongs_to_many": descriptor.HasAndBelongsToMany,
}

func relationshipExtension(ref *openapi3.SchemaRef) (map[string]any, bool) {
	if ref.Value == nil {
		return nil, false
	}
	if raw, ok := ref.Value.Extensions[relationshipExtensionKey].(map[string]any); ok {
		return raw, true
	}
	if ref.Value.Items != nil && ref.Value.Items.Value != nil {
		if raw, ok := ref.Value.Items.Value.Extensions[relationshipExtensionKey].(map[string]any); ok {
			return raw, true
		}
	}
	return nil, false
}

func convertAssociation(name string, ref *openapi3.SchemaRef, raw map[string]any) (descriptor.Association, error) {
	if err := vocab.CheckKeys(relationshipExtensionKey, raw, relationshipKeys...); err != nil {
		return descriptor.Association{}, err
	}

	kindName, _ := vocab.String(raw["type"])
	kind, ok := relationshipKinds[strings.ToLower(kindName)]
	if !ok {
		return descriptor.Association{}, fmt.Errorf("unsupported relationship type %q", kindName)
	}

	assoc := descriptor.Association{Name: name, Kind: kind}
	assoc.Target, _ = vocab.String(raw["target"])
	if assoc.Target == "" {
		assoc.Target = refTarget(ref)
	}
	assoc.ForeignKey, _ = vocab.String(raw["foreignKey"])
	assoc.Through, _ = vocab.String(raw["through"])
	assoc.Polymorphic, _ = vocab.Bool(raw["polymorphic"])
	if assoc.Target == "" && !assoc.Polymorphic {
		return descriptor.Association{}, fmt.Errorf("relationship %q has no target", name)
	}
	return assoc, nil
}

// refTarget names the schema a property points at.
func refTarget(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return ""
	}
	if ref.Ref != "" {
		return ref.Ref[strings.LastIndex(ref.Ref, "/")+1:]
	}
	if ref.Value == nil {
		return ""
	}
	for _, part := range ref.Value.AllOf {
		if target := refTarget(part); target != "" {
			return target
		}
	}
	if ref.Value.Items != nil {
		return refTarget(ref.Value.Items)
	}
	return ""
}
