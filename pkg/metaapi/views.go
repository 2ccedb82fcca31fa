package metaapi

import (
	"github.com/goliatone/go-scaffold/pkg/actionlink"
	"github.com/goliatone/go-scaffold/pkg/column"
	"github.com/goliatone/go-scaffold/pkg/config"
	"github.com/goliatone/go-scaffold/pkg/descriptor"
)

type modelListItem struct {
	Name  string `json:"name"`
	Table string `json:"table"`
	Label string `json:"label"`
}

type actionView struct {
	Name    string                 `json:"name"`
	Label   string                 `json:"label,omitempty"`
	Link    *actionlink.ActionLink `json:"link,omitempty"`
	Columns []string               `json:"columns,omitempty"`
}

type listView struct {
	PerPage        int              `json:"perPage"`
	Sorting        []config.Sorting `json:"sorting"`
	EmptyFieldText string           `json:"emptyFieldText"`
}

// ModelView is the JSON description of a configuration.
type ModelView struct {
	Name    string                   `json:"name"`
	Table   string                   `json:"table"`
	Label   string                   `json:"label"`
	Actions []actionView             `json:"actions"`
	Links   []*actionlink.ActionLink `json:"links"`
	List    *listView                `json:"list,omitempty"`
}

// ColumnView is the JSON description of a resolved column.
type ColumnView struct {
	Name        string                   `json:"name"`
	Label       string                   `json:"label"`
	Description string                   `json:"description,omitempty"`
	Type        descriptor.AttributeType `json:"type,omitempty"`
	Virtual     bool                     `json:"virtual"`
	Association *descriptor.Association  `json:"association,omitempty"`
	Field       string                   `json:"field"`
	Required    bool                     `json:"required"`
	FormUI      column.UI                `json:"formUi,omitempty"`
	ListUI      column.UI                `json:"listUi,omitempty"`
	SearchUI    column.UI                `json:"searchUi,omitempty"`
	Sortable    bool                     `json:"sortable"`
	Sort        *column.Sort             `json:"sort,omitempty"`
	Searchable  bool                     `json:"searchable"`
	SearchSQL   []string                 `json:"searchSql,omitempty"`
	Calculate   column.Aggregate         `json:"calculate,omitempty"`
	Includes    []string                 `json:"includes,omitempty"`
	Options     map[string]string        `json:"options,omitempty"`
	CSSClass    string                   `json:"cssClass,omitempty"`
	Placeholder string                   `json:"placeholder,omitempty"`
	Weight      int                      `json:"weight"`
	InplaceEdit bool                     `json:"inplaceEdit"`
	Collapsed   bool                     `json:"collapsed"`
	Link        *actionlink.ActionLink   `json:"link,omitempty"`
}

// ColumnsView lists the resolved columns of one action.
type ColumnsView struct {
	Model   string       `json:"model"`
	Action  string       `json:"action"`
	Columns []ColumnView `json:"columns"`
}

// DescribeModel describes core's actions, links and list defaults.
func DescribeModel(core *config.Core) ModelView {
	view := ModelView{
		Name:  core.Model().Name(),
		Table: core.Model().TableName(),
		Label: core.Label,
	}
	for _, name := range core.Actions() {
		action, _ := core.Action(name)
		av := actionView{Name: name, Link: action.ActionLink()}
		switch a := action.(type) {
		case *config.CreateConfig:
			av.Label = a.Label
		case *config.UpdateConfig:
			av.Label = a.Label
		case *config.ShowConfig:
			av.Label = a.Label
		case *config.ListConfig:
			av.Label = a.Label
			view.List = &listView{PerPage: a.PerPage, Sorting: a.Sorting, EmptyFieldText: a.EmptyFieldText}
		}
		if withColumns, ok := action.(config.ColumnsConfig); ok {
			av.Columns = withColumns.Columns().Names()
		}
		view.Actions = append(view.Actions, av)
	}
	view.Links = core.ActionLinks().Items()
	return view
}

// DescribeColumns resolves the columns of an enabled action in order.
func DescribeColumns(core *config.Core, action string) (ColumnsView, bool) {
	columns, ok := core.ActionColumns(action)
	if !ok {
		return ColumnsView{}, false
	}
	resolved := columns.Resolve(core.Columns())
	out := ColumnsView{
		Model:   core.Model().Name(),
		Action:  action,
		Columns: make([]ColumnView, 0, len(resolved)),
	}
	for _, col := range resolved {
		out.Columns = append(out.Columns, DescribeColumn(col))
	}
	return out, true
}

// DescribeColumn describes one column after every default was resolved.
func DescribeColumn(col *column.Column) ColumnView {
	view := ColumnView{
		Name:        col.Name(),
		Label:       col.Label(),
		Description: col.Description(),
		Type:        col.Type(),
		Virtual:     col.Virtual(),
		Field:       col.Field(),
		Required:    col.Required(),
		FormUI:      col.FormUI(),
		ListUI:      col.ListUI(),
		SearchUI:    col.SearchUI(),
		Sortable:    col.Sortable(),
		Sort:        col.Sort(),
		Searchable:  col.Searchable(),
		SearchSQL:   col.SearchSQL(),
		Calculate:   col.Calculate(),
		Includes:    col.Includes(),
		Options:     col.Options(),
		CSSClass:    col.CSSClass(),
		Placeholder: col.Placeholder(),
		Weight:      col.Weight(),
		InplaceEdit: col.InplaceEdit(),
		Collapsed:   col.Collapsed(),
		Link:        col.Link(),
	}
	if assoc, ok := col.Association(); ok {
		view.Association = &assoc
	}
	return view
}
