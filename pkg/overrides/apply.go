package overrides

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/goliatone/go-scaffold/internal/vocab"
	"github.com/goliatone/go-scaffold/pkg/actionlink"
	"github.com/goliatone/go-scaffold/pkg/column"
	"github.com/goliatone/go-scaffold/pkg/config"
)

// ErrUnknownColumn is returned when an override names a column the model
// does not have. Declare it under virtual_columns to create it.
var ErrUnknownColumn = errors.New("overrides: unknown column")

// Apply applies the overrides of core's model. Models without overrides are
// left untouched.
func (s *Store) Apply(core *config.Core) error {
	if core == nil || core.Model() == nil {
		return nil
	}
	model, ok := s.Model(core.Model().Name())
	if !ok {
		return nil
	}
	return model.Apply(core)
}

// Apply applies the model overrides to core. Every override is checked
// before the first change is made, so a failing document leaves core as it
// was.
func (m Model) Apply(core *config.Core) error {
	logger := core.Logger()
	var steps []func()

	for _, name := range sortedKeys(m.Columns) {
		col := core.Columns().Column(name)
		if col == nil && slices.Contains(m.VirtualColumns, name) {
			col = column.New(name, core.Model())
		}
		if col == nil {
			return m.errorf("column %s: %w", name, ErrUnknownColumn)
		}
		if err := m.Columns[name].apply(col.Clone()); err != nil {
			return m.errorf("column %s: %w", name, err)
		}
		override := m.Columns[name]
		steps = append(steps, func() {
			// checked against a clone above
			_ = override.apply(core.Columns().Column(name))
		})
	}

	for _, name := range sortedKeys(m.Actions) {
		action, ok := core.Action(name)
		if !ok {
			logger.Debug().Str("action", name).Msg("overrides: skipped disabled action")
			continue
		}
		commit, err := m.Actions[name].prepare(action)
		if err != nil {
			return m.errorf("action %s: %w", name, err)
		}
		steps = append(steps, commit)
	}

	if m.Label != nil {
		core.Label = sanitizeLabel(*m.Label)
		core.List.Label = core.Label
	}
	core.Columns().Add(m.VirtualColumns...)
	for _, step := range steps {
		step()
	}

	logger.Debug().Str("source", m.Source).
		Int("columns", len(m.Columns)).
		Int("actions", len(m.Actions)).
		Msg("overrides: applied")
	return nil
}

func (m Model) errorf(format string, args ...any) error {
	return fmt.Errorf("overrides: %s: model %s: "+format, append([]any{m.Source, m.Name}, args...)...)
}

func (o ColumnOverride) apply(col *column.Column) error {
	if o.Label != nil {
		col.SetLabel(sanitizeLabel(*o.Label))
	}
	if o.Description != nil {
		col.SetDescription(sanitizeDescription(*o.Description))
	}
	if o.CSSClass != nil {
		col.SetCSSClass(*o.CSSClass)
	}
	if o.Placeholder != nil {
		col.SetPlaceholder(sanitizeLabel(*o.Placeholder))
	}
	if o.Required != nil {
		col.SetRequired(*o.Required)
	}
	if o.Calculate != nil {
		col.SetCalculate(column.Aggregate(*o.Calculate))
	}
	if o.Includes != nil {
		col.SetIncludes(o.Includes...)
	}
	if o.FormUI != nil {
		col.SetFormUI(column.UI(*o.FormUI))
	}
	if o.ListUI != nil {
		col.SetListUI(column.UI(*o.ListUI))
	}
	if o.SearchUI != nil {
		col.SetSearchUI(column.UI(*o.SearchUI))
	}
	if o.Sort != nil {
		if err := col.SetSort(o.Sort); err != nil {
			return err
		}
	}
	if o.SearchSQL != nil {
		if err := col.SetSearchSQL(o.SearchSQL); err != nil {
			return err
		}
	}
	if o.Weight != nil {
		col.SetWeight(*o.Weight)
	}
	if o.InplaceEdit != nil {
		col.SetInplaceEdit(*o.InplaceEdit)
	}
	if o.Collapsed != nil {
		col.SetCollapsed(*o.Collapsed)
	}
	if o.Options != nil {
		col.SetOptions(o.Options)
	}
	if o.Link != nil {
		// Column links default to the column label as a member link
		// rendered after the value, like Column.SetLinkAction.
		options := withDefaults(o.Link.Options, map[string]any{
			actionlink.OptionLabel:    col.Label(),
			actionlink.OptionType:     string(actionlink.TypeMember),
			actionlink.OptionPosition: string(actionlink.PositionAfter),
		})
		link, err := o.Link.build("", options)
		if err != nil {
			return err
		}
		col.SetLink(link)
	}
	return nil
}

// prepare checks o against action and returns the function making the
// changes. Nothing is modified until the returned function runs.
func (o ActionOverride) prepare(action config.ActionConfig) (func(), error) {
	var steps []func()

	if o.Label != nil {
		set, err := labelSetter(action)
		if err != nil {
			return nil, err
		}
		label := sanitizeLabel(*o.Label)
		steps = append(steps, func() { set(label) })
	}
	if o.Columns != nil || o.Exclude != nil {
		withColumns, ok := action.(config.ColumnsConfig)
		if !ok {
			return nil, &vocab.OptionError{Scope: "overrides", Option: "columns", Reason: "action has no columns"}
		}
		steps = append(steps, func() {
			if o.Columns != nil {
				withColumns.SetColumns(o.Columns...)
			}
			withColumns.Columns().Remove(o.Exclude...)
		})
	}
	if o.PerPage > 0 {
		list, ok := action.(*config.ListConfig)
		if !ok {
			return nil, &vocab.OptionError{Scope: "overrides", Option: "per_page", Reason: "only the list action pages"}
		}
		steps = append(steps, func() { list.PerPage = o.PerPage })
	}
	if o.Link != nil {
		current := action.ActionLink()
		if current == nil {
			return nil, &vocab.OptionError{Scope: "overrides", Option: "link", Reason: "action has no link"}
		}
		link, err := o.Link.build(current.Action, o.Link.Options)
		if err != nil {
			return nil, err
		}
		set, err := linkSetter(action)
		if err != nil {
			return nil, err
		}
		steps = append(steps, func() { set(link) })
	}

	return func() {
		for _, step := range steps {
			step()
		}
	}, nil
}

// build creates the link through actionlink.FromMap, starting from the
// template of its action. fallback is used when no action is named.
func (l *LinkOverride) build(fallback string, options map[string]any) (*actionlink.ActionLink, error) {
	action := l.Action
	if action == "" {
		action = fallback
	}
	return actionlink.FromMap(action, options)
}

func labelSetter(action config.ActionConfig) (func(string), error) {
	switch a := action.(type) {
	case *config.CreateConfig:
		return func(label string) { a.Label = label }, nil
	case *config.UpdateConfig:
		return func(label string) { a.Label = label }, nil
	case *config.ShowConfig:
		return func(label string) { a.Label = label }, nil
	case *config.ListConfig:
		return func(label string) { a.Label = label }, nil
	default:
		return nil, &vocab.OptionError{Scope: "overrides", Option: "label", Reason: "action has no label"}
	}
}

func linkSetter(action config.ActionConfig) (func(*actionlink.ActionLink), error) {
	switch a := action.(type) {
	case *config.CreateConfig:
		return func(link *actionlink.ActionLink) { a.Link = link }, nil
	case *config.UpdateConfig:
		return func(link *actionlink.ActionLink) { a.Link = link }, nil
	case *config.DeleteConfig:
		return func(link *actionlink.ActionLink) { a.Link = link }, nil
	case *config.ShowConfig:
		return func(link *actionlink.ActionLink) { a.Link = link }, nil
	case *config.SearchConfig:
		return func(link *actionlink.ActionLink) { a.Link = link }, nil
	default:
		return nil, &vocab.OptionError{Scope: "overrides", Option: "link", Reason: "action has no link"}
	}
}

func withDefaults(options, defaults map[string]any) map[string]any {
	out := maps.Clone(defaults)
	maps.Copy(out, options)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
