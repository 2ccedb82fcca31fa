// Package openapi builds descriptor models from the component schemas of an
// OpenAPI 3 document.
//
// Every object schema under components.schemas becomes a model. Plain
// properties become attributes; properties carrying the x-relationships
// extension become associations:
//
//	author:
//	  allOf:
//	    - $ref: '#/components/schemas/Author'
//	  x-relationships:
//	    type: belongsTo
//	    foreignKey: author_id
//
// The target defaults to the referenced schema (directly, through allOf or
// through array items) and can be set with the target key.
// x-primary-key marks key properties (defaulting to "id" when present) and
// x-scaffold-table overrides the derived table name.
package openapi
