package overrides

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Store keeps the parsed model overrides. It is safe for concurrent readers
// when treated as immutable after construction.
type Store struct {
	models map[string]Model
}

// Model holds the overrides declared for one model.
type Model struct {
	Name           string                    `yaml:"-"`
	Source         string                    `yaml:"-"`
	Label          *string                   `yaml:"label"`
	VirtualColumns []string                  `yaml:"virtual_columns" validate:"dive,required"`
	Columns        map[string]ColumnOverride `yaml:"columns" validate:"dive,keys,required,endkeys"`
	Actions        map[string]ActionOverride `yaml:"actions" validate:"dive,keys,oneof=create update delete show list search,endkeys"`
}

// ColumnOverride customises one column. Nil fields leave the column as is.
type ColumnOverride struct {
	Label       *string           `yaml:"label"`
	Description *string           `yaml:"description"`
	CSSClass    *string           `yaml:"css_class"`
	Placeholder *string           `yaml:"placeholder"`
	Required    *bool             `yaml:"required"`
	Calculate   *string           `yaml:"calculate" validate:"omitempty,oneof=sum avg count min max"`
	Includes    []string          `yaml:"includes"`
	FormUI      *string           `yaml:"form_ui"`
	ListUI      *string           `yaml:"list_ui"`
	SearchUI    *string           `yaml:"search_ui"`
	Sort        any               `yaml:"sort"`
	SearchSQL   any               `yaml:"search_sql"`
	Link        *LinkOverride     `yaml:"link"`
	Weight      *int              `yaml:"weight"`
	InplaceEdit *bool             `yaml:"inplace_edit"`
	Collapsed   *bool             `yaml:"collapsed"`
	Options     map[string]string `yaml:"options"`
}

// ActionOverride customises one action's sub-configuration.
type ActionOverride struct {
	Label   *string       `yaml:"label"`
	Columns []string      `yaml:"columns" validate:"dive,required"`
	Exclude []string      `yaml:"exclude" validate:"dive,required"`
	Link    *LinkOverride `yaml:"link"`
	PerPage int           `yaml:"per_page" validate:"omitempty,min=1"`
}

// LinkOverride declares an action link. A plain scalar names the action;
// a mapping may name it with the action key and carries link options.
type LinkOverride struct {
	Action  string         `yaml:"action"`
	Options map[string]any `yaml:",inline"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (l *LinkOverride) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		l.Action = strings.TrimSpace(node.Value)
		return nil
	}
	type plain LinkOverride
	return node.Decode((*plain)(l))
}

// Model returns the overrides of the named model.
func (s *Store) Model(name string) (Model, bool) {
	if s == nil {
		return Model{}, false
	}
	model, ok := s.models[name]
	return model, ok
}

// Models lists the model names with overrides.
func (s *Store) Models() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	return sortedStrings(names)
}

// Empty reports whether the store holds any model.
func (s *Store) Empty() bool {
	return s == nil || len(s.models) == 0
}
