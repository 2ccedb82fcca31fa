package config

import (
	"github.com/goliatone/go-scaffold/pkg/actionlink"
	"github.com/goliatone/go-scaffold/pkg/column"
)

// ActionConfig is implemented by every per-action sub-configuration.
type ActionConfig interface {
	// Name is the action name, one of the Action* constants.
	Name() string
	// ActionLink returns the link triggering the action, nil for list.
	ActionLink() *actionlink.ActionLink
	// ResetLink restores the default link.
	ResetLink()
}

// ColumnsConfig is implemented by sub-configurations that render columns.
type ColumnsConfig interface {
	ActionConfig
	Columns() *column.ActionColumns
	SetColumns(names ...string)
}

// Direction of a list sorting entry.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sorting is one default ordering entry of the list.
type Sorting struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// TextSearch selects how search terms match column values.
type TextSearch string

const (
	TextSearchFull  TextSearch = "full"
	TextSearchStart TextSearch = "start"
	TextSearchEnd   TextSearch = "end"
)

// columnList lazily seeds an action's column references from the core's
// ColumnSet the first time they are read.
type columnList struct {
	core    *Core
	action  string
	columns *column.ActionColumns
	seed    func(core *Core) []string
}

func (l *columnList) get() *column.ActionColumns {
	if l.columns == nil {
		l.columns = column.NewActionColumns(l.seed(l.core)...)
		l.columns.Action = l.action
	}
	return l.columns
}

func (l *columnList) set(names ...string) {
	l.columns = column.NewActionColumns(names...)
	l.columns.Action = l.action
}

// CreateConfig configures the create form.
type CreateConfig struct {
	Label string
	Link  *actionlink.ActionLink
	// Persistent keeps the form open after a successful create.
	Persistent bool
	columns    columnList
}

func (c *CreateConfig) Name() string                       { return ActionCreate }
func (c *CreateConfig) ActionLink() *actionlink.ActionLink { return c.Link }
func (c *CreateConfig) ResetLink()                         { c.Link = defaultCreateLink() }
func (c *CreateConfig) Columns() *column.ActionColumns     { return c.columns.get() }
func (c *CreateConfig) SetColumns(names ...string)         { c.columns.set(names...) }

// Configure passes c to fn and returns c.
func (c *CreateConfig) Configure(fn func(c *CreateConfig)) *CreateConfig {
	if fn != nil {
		fn(c)
	}
	return c
}

// UpdateConfig configures the edit form.
type UpdateConfig struct {
	Label      string
	Link       *actionlink.ActionLink
	Persistent bool
	columns    columnList
}

func (c *UpdateConfig) Name() string                       { return ActionUpdate }
func (c *UpdateConfig) ActionLink() *actionlink.ActionLink { return c.Link }
func (c *UpdateConfig) ResetLink()                         { c.Link = defaultUpdateLink() }
func (c *UpdateConfig) Columns() *column.ActionColumns     { return c.columns.get() }
func (c *UpdateConfig) SetColumns(names ...string)         { c.columns.set(names...) }

func (c *UpdateConfig) Configure(fn func(c *UpdateConfig)) *UpdateConfig {
	if fn != nil {
		fn(c)
	}
	return c
}

// DeleteConfig configures record deletion.
type DeleteConfig struct {
	Link *actionlink.ActionLink
	// RefreshList reloads the whole list instead of removing the row.
	RefreshList bool
}

func (c *DeleteConfig) Name() string                       { return ActionDelete }
func (c *DeleteConfig) ActionLink() *actionlink.ActionLink { return c.Link }
func (c *DeleteConfig) ResetLink()                         { c.Link = defaultDeleteLink() }

func (c *DeleteConfig) Configure(fn func(c *DeleteConfig)) *DeleteConfig {
	if fn != nil {
		fn(c)
	}
	return c
}

// ShowConfig configures the record detail view.
type ShowConfig struct {
	Label   string
	Link    *actionlink.ActionLink
	columns columnList
}

func (c *ShowConfig) Name() string                       { return ActionShow }
func (c *ShowConfig) ActionLink() *actionlink.ActionLink { return c.Link }
func (c *ShowConfig) ResetLink()                         { c.Link = defaultShowLink() }
func (c *ShowConfig) Columns() *column.ActionColumns     { return c.columns.get() }
func (c *ShowConfig) SetColumns(names ...string)         { c.columns.set(names...) }

func (c *ShowConfig) Configure(fn func(c *ShowConfig)) *ShowConfig {
	if fn != nil {
		fn(c)
	}
	return c
}

// ListConfig configures the record table.
type ListConfig struct {
	Label          string
	PerPage        int
	Sorting        []Sorting
	EmptyFieldText string
	columns        columnList
}

func (c *ListConfig) Name() string                       { return ActionList }
func (c *ListConfig) ActionLink() *actionlink.ActionLink { return nil }
func (c *ListConfig) ResetLink()                         {}
func (c *ListConfig) Columns() *column.ActionColumns     { return c.columns.get() }
func (c *ListConfig) SetColumns(names ...string)         { c.columns.set(names...) }

func (c *ListConfig) Configure(fn func(c *ListConfig)) *ListConfig {
	if fn != nil {
		fn(c)
	}
	return c
}

// SearchConfig configures the search form.
type SearchConfig struct {
	Link       *actionlink.ActionLink
	TextSearch TextSearch
	columns    columnList
}

func (c *SearchConfig) Name() string                       { return ActionSearch }
func (c *SearchConfig) ActionLink() *actionlink.ActionLink { return c.Link }
func (c *SearchConfig) ResetLink()                         { c.Link = defaultSearchLink() }
func (c *SearchConfig) Columns() *column.ActionColumns     { return c.columns.get() }
func (c *SearchConfig) SetColumns(names ...string)         { c.columns.set(names...) }

func (c *SearchConfig) Configure(fn func(c *SearchConfig)) *SearchConfig {
	if fn != nil {
		fn(c)
	}
	return c
}

func defaultCreateLink() *actionlink.ActionLink {
	return actionlink.New("new",
		actionlink.WithType(actionlink.TypeCollection),
		actionlink.WithPosition(actionlink.PositionTop),
		actionlink.WithIgnoreMethod("create_ignore?"),
	)
}

func defaultUpdateLink() *actionlink.ActionLink { return actionlink.New("edit") }

func defaultDeleteLink() *actionlink.ActionLink { return actionlink.New("destroy") }

func defaultShowLink() *actionlink.ActionLink { return actionlink.New("show") }

func defaultSearchLink() *actionlink.ActionLink {
	return actionlink.New("show_search",
		actionlink.WithType(actionlink.TypeCollection),
		actionlink.WithSecurityMethod("search_authorized?"),
		actionlink.WithIgnoreMethod("search_ignore?"),
	)
}

var (
	_ ColumnsConfig = (*CreateConfig)(nil)
	_ ColumnsConfig = (*UpdateConfig)(nil)
	_ ColumnsConfig = (*ShowConfig)(nil)
	_ ColumnsConfig = (*ListConfig)(nil)
	_ ColumnsConfig = (*SearchConfig)(nil)
	_ ActionConfig  = (*DeleteConfig)(nil)
)
