// Package config aggregates the per-action configuration of one scaffolded
// model. A Core lazily builds the model's ColumnSet and exposes one
// sub-configuration per built-in action (create, update, delete, show, list,
// search), each with its own ActionLink and, where relevant, its own ordered
// column list.
//
// Batch edits go through Configure, which hands the target to a callback:
//
//	core.Configure(func(c *config.Core) {
//		c.Delete.Link = actionlink.New("destroy", actionlink.WithConfirm(false))
//		c.Columns().Column("title").Configure(func(col *column.Column) {
//			col.SetFormUI(column.UITextarea)
//		})
//	})
//
// Every mutation goes through the explicit parameter; nested Configure calls
// each receive their own target.
package config
