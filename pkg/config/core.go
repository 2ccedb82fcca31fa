package config

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/internal/vocab"
	"github.com/goliatone/go-scaffold/pkg/actionlink"
	"github.com/goliatone/go-scaffold/pkg/column"
	"github.com/goliatone/go-scaffold/pkg/descriptor"
)

// Core is the configuration root for one model. Like the structures it
// holds, it is meant to be configured once and read afterwards.
type Core struct {
	Label string

	Create *CreateConfig
	Update *UpdateConfig
	Delete *DeleteConfig
	Show   *ShowConfig
	List   *ListConfig
	Search *SearchConfig

	model   descriptor.Model
	opts    Options
	logger  zerolog.Logger
	columns *column.ColumnSet
}

// New builds the configuration of model with default sub-configurations.
func New(model descriptor.Model, options ...Option) *Core {
	opts := defaultOptions()
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	c := &Core{
		model:  model,
		opts:   opts,
		logger: opts.Logger,
	}
	if model != nil {
		c.logger = c.logger.With().Str("model", model.Name()).Logger()
	}

	c.Label = opts.Label
	if c.Label == "" && model != nil {
		c.Label = vocab.Humanize(descriptor.Tableize(model.Name()))
	}
	singular := ""
	if model != nil {
		singular = vocab.Humanize(model.Name())
	}

	c.Create = &CreateConfig{
		Label:   joinLabel("Create", singular),
		Link:    defaultCreateLink(),
		columns: columnList{core: c, action: ActionCreate, seed: columnsWithoutKey},
	}
	c.Update = &UpdateConfig{
		Label:   joinLabel("Update", singular),
		Link:    defaultUpdateLink(),
		columns: columnList{core: c, action: ActionUpdate, seed: columnsWithoutKey},
	}
	c.Delete = &DeleteConfig{Link: defaultDeleteLink()}
	c.Show = &ShowConfig{
		Label:   joinLabel("Show", singular),
		Link:    defaultShowLink(),
		columns: columnList{core: c, action: ActionShow, seed: allColumns},
	}
	c.List = &ListConfig{
		Label:          c.Label,
		PerPage:        opts.PerPage,
		EmptyFieldText: "-",
		Sorting:        defaultSorting(model),
		columns:        columnList{core: c, action: ActionList, seed: columnsWithoutKey},
	}
	c.Search = &SearchConfig{
		Link:       defaultSearchLink(),
		TextSearch: TextSearchFull,
		columns:    columnList{core: c, action: ActionSearch, seed: searchColumns},
	}
	return c
}

// Model returns the descriptor the configuration was built from.
func (c *Core) Model() descriptor.Model { return c.model }

// Logger returns the logger scoped to the model.
func (c *Core) Logger() zerolog.Logger { return c.logger }

// Columns returns the model's ColumnSet, building it on first use.
func (c *Core) Columns() *column.ColumnSet {
	if c.columns == nil {
		c.columns = column.FromModel(c.model, column.WithLogger(c.logger))
		c.logger.Debug().Int("columns", c.columns.Len()).Msg("config: built column set")
	}
	return c.columns
}

// Actions lists the enabled action names.
func (c *Core) Actions() []string { return append([]string(nil), c.opts.Actions...) }

// Enabled reports whether action is enabled.
func (c *Core) Enabled(action string) bool { return slices.Contains(c.opts.Actions, action) }

// Action returns the sub-configuration of an enabled action.
func (c *Core) Action(name string) (ActionConfig, bool) {
	if !c.Enabled(name) {
		return nil, false
	}
	switch name {
	case ActionCreate:
		return c.Create, true
	case ActionUpdate:
		return c.Update, true
	case ActionDelete:
		return c.Delete, true
	case ActionShow:
		return c.Show, true
	case ActionList:
		return c.List, true
	case ActionSearch:
		return c.Search, true
	default:
		return nil, false
	}
}

// ActionColumns returns the column list of an enabled column-bearing action.
func (c *Core) ActionColumns(name string) (*column.ActionColumns, bool) {
	action, ok := c.Action(name)
	if !ok {
		return nil, false
	}
	withColumns, ok := action.(ColumnsConfig)
	if !ok {
		return nil, false
	}
	return withColumns.Columns(), true
}

// ActionLinks collects the links of the enabled actions, collection links
// first.
func (c *Core) ActionLinks() *actionlink.Links {
	links := actionlink.NewLinks()
	var member []*actionlink.ActionLink
	for _, name := range c.opts.Actions {
		action, _ := c.Action(name)
		link := action.ActionLink()
		if link == nil {
			continue
		}
		if link.Type == actionlink.TypeMember {
			member = append(member, link)
			continue
		}
		links.Add(link)
	}
	links.Add(member...)
	return links
}

// Configure passes c to fn and returns c.
func (c *Core) Configure(fn func(c *Core)) *Core {
	if fn != nil {
		fn(c)
	}
	return c
}

func joinLabel(verb, noun string) string {
	if noun == "" {
		return verb
	}
	return verb + " " + noun
}

func defaultSorting(model descriptor.Model) []Sorting {
	pk, ok := descriptor.PrimaryKey(model)
	if !ok {
		return nil
	}
	return []Sorting{{Column: pk.Name, Direction: Ascending}}
}

func (c *Core) ignored(withPrimaryKey bool) []string {
	names := append([]string(nil), c.opts.IgnoredColumns...)
	if withPrimaryKey {
		if pk, ok := descriptor.PrimaryKey(c.model); ok {
			names = append(names, pk.Name)
		}
	}
	return names
}

func columnsWithoutKey(c *Core) []string {
	return column.ForAction("", c.Columns(), c.ignored(true)...).Names()
}

func allColumns(c *Core) []string {
	return column.ForAction("", c.Columns(), c.ignored(false)...).Names()
}

func searchColumns(c *Core) []string {
	var names []string
	for _, col := range column.ForAction("", c.Columns(), c.ignored(false)...).Resolve(c.Columns()) {
		if col.Searchable() || col.SearchUI() != "" {
			names = append(names, col.Name())
		}
	}
	return names
}
