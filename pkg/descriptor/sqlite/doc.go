// Package sqlite builds descriptor models by introspecting a SQLite database
// with PRAGMA table_info and PRAGMA foreign_key_list.
//
// Foreign keys declare belongs_to associations on the owning table and, when
// the whole schema is loaded with Schema, has_many associations on the
// referenced one. The database handle is borrowed; callers own its lifecycle.
package sqlite
