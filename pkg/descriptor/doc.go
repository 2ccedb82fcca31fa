// Package descriptor defines the read-only model introspection contract that
// column metadata is built from. A Model reports its attributes (persisted
// columns), its associations and how to qualify a column for raw SQL. Static
// is an in-memory implementation; sub-packages build Models from OpenAPI
// documents and live SQLite schemas.
package descriptor
