package column

import (
	"fmt"
	"maps"
	"strings"

	"github.com/goliatone/go-scaffold/internal/vocab"
	"github.com/goliatone/go-scaffold/pkg/actionlink"
	"github.com/goliatone/go-scaffold/pkg/descriptor"
	"github.com/goliatone/go-scaffold/pkg/set"
)

// Column is the metadata for one model attribute, association or virtual
// value. Columns are mutated during configuration and read afterwards; they
// carry no locks.
type Column struct {
	name        set.Key
	model       descriptor.Model
	attribute   *descriptor.Attribute
	association *descriptor.Association

	label           string
	labelCustomized bool
	description     string
	cssClass        string
	placeholder     string
	required        bool
	calculate       Aggregate
	includes        []string
	sort            *Sort
	searchSQL       []string
	formUI          UI
	listUI          UI
	searchUI        UI
	options         map[string]string
	weight          int
	inplaceEdit     bool
	collapsed       bool
	link            *actionlink.ActionLink
}

var _ set.Keyer = (*Column)(nil)

// New builds the column name of model. Names the model cannot resolve to an
// attribute or association produce a virtual column with no type metadata.
// Persisted attributes start sortable and searchable on their qualified
// column; associations start with themselves as includes.
func New(name string, model descriptor.Model) *Column {
	c := &Column{
		name:  set.KeyOf(name),
		model: model,
		label: vocab.Humanize(name),
	}
	if model == nil {
		return c
	}

	if attr, ok := model.Attribute(string(c.name)); ok {
		c.attribute = &attr
	}
	if assoc, ok := model.Association(string(c.name)); ok {
		c.association = &assoc
	}

	switch {
	case c.association != nil:
		if !c.association.Polymorphic {
			c.includes = []string{c.association.Name}
		}
	case c.attribute != nil:
		c.sort = &Sort{SQL: c.Field()}
		c.searchSQL = []string{c.Field()}
	}
	return c
}

// Name returns the column name.
func (c *Column) Name() string { return string(c.name) }

// Key implements set.Keyer.
func (c *Column) Key() set.Key { return c.name }

// Model returns the descriptor the column was built from.
func (c *Column) Model() descriptor.Model { return c.model }

// Attribute returns the persisted attribute backing the column.
func (c *Column) Attribute() (descriptor.Attribute, bool) {
	if c.attribute == nil {
		return descriptor.Attribute{}, false
	}
	return *c.attribute, true
}

// Type is the attribute type, empty for associations and virtual columns.
func (c *Column) Type() descriptor.AttributeType {
	if c.attribute == nil {
		return ""
	}
	return c.attribute.Type
}

// Virtual reports whether the model knows nothing about the column.
func (c *Column) Virtual() bool { return c.attribute == nil && c.association == nil }

// Association returns the association metadata when the column is one.
func (c *Column) Association() (descriptor.Association, bool) {
	if c.association == nil {
		return descriptor.Association{}, false
	}
	return *c.association, true
}

func (c *Column) IsAssociation() bool { return c.association != nil }

func (c *Column) PolymorphicAssociation() bool {
	return c.association != nil && c.association.Polymorphic
}

func (c *Column) SingularAssociation() bool {
	return c.association != nil && c.association.Singular()
}

func (c *Column) PluralAssociation() bool {
	return c.association != nil && !c.association.Singular()
}

// Table returns the table the column belongs to.
func (c *Column) Table() string {
	if c.model == nil {
		return ""
	}
	return c.model.TableName()
}

// Field returns the qualified column expression, e.g. "model_stubs"."a".
func (c *Column) Field() string {
	if c.model == nil {
		return descriptor.QuoteIdentifier(string(c.name))
	}
	return c.model.QualifiedColumn(string(c.name))
}

// Label defaults to the humanized name.
func (c *Column) Label() string { return c.label }

func (c *Column) SetLabel(label string) {
	c.label = label
	c.labelCustomized = true
}

// LabelCustomized reports whether SetLabel was called.
func (c *Column) LabelCustomized() bool { return c.labelCustomized }

func (c *Column) Description() string              { return c.description }
func (c *Column) SetDescription(text string)       { c.description = text }
func (c *Column) CSSClass() string                 { return c.cssClass }
func (c *Column) SetCSSClass(class string)         { c.cssClass = class }
func (c *Column) Placeholder() string              { return c.placeholder }
func (c *Column) SetPlaceholder(text string)       { c.placeholder = text }
func (c *Column) Required() bool                   { return c.required }
func (c *Column) SetRequired(required bool)        { c.required = required }
func (c *Column) Weight() int                      { return c.weight }
func (c *Column) SetWeight(weight int)             { c.weight = weight }
func (c *Column) InplaceEdit() bool                { return c.inplaceEdit }
func (c *Column) SetInplaceEdit(enabled bool)      { c.inplaceEdit = enabled }
func (c *Column) Collapsed() bool                  { return c.collapsed }
func (c *Column) SetCollapsed(collapsed bool)      { c.collapsed = collapsed }
func (c *Column) Calculate() Aggregate             { return c.calculate }
func (c *Column) SetCalculate(spec Aggregate)      { c.calculate = spec }
func (c *Column) Link() *actionlink.ActionLink     { return c.link }
func (c *Column) SetLink(l *actionlink.ActionLink) { c.link = l }

// Calculation reports whether an aggregate is configured.
func (c *Column) Calculation() bool { return c.calculate != "" }

// Options returns a copy of the widget options.
func (c *Column) Options() map[string]string { return maps.Clone(c.options) }

// SetOptions replaces the widget options.
func (c *Column) SetOptions(options map[string]string) { c.options = maps.Clone(options) }

// Includes returns the associations to eager load, or nil.
func (c *Column) Includes() []string {
	if c.includes == nil {
		return nil
	}
	return append([]string(nil), c.includes...)
}

// SetIncludes stores names as the ordered includes list. Calling it with no
// names clears the list.
func (c *Column) SetIncludes(names ...string) {
	if len(names) == 0 {
		c.includes = nil
		return
	}
	c.includes = append([]string(nil), names...)
}

// FormUI returns the form widget.
func (c *Column) FormUI() UI { return c.formUI }

// SetFormUI sets the form widget and back-fills the list and search widgets
// that are still unset. Passing "" resets only the form widget.
func (c *Column) SetFormUI(ui UI) {
	c.formUI = ui
	if ui == "" {
		return
	}
	if c.listUI == "" {
		c.listUI = ui
	}
	if c.searchUI == "" {
		c.searchUI = ui
	}
}

// ListUI returns the list widget.
func (c *Column) ListUI() UI { return c.listUI }

// SetListUI sets only the list widget; "" resets it.
func (c *Column) SetListUI(ui UI) { c.listUI = ui }

// SearchUI returns the search widget. When unset, non-polymorphic singular
// associations default to UISelect.
func (c *Column) SearchUI() UI {
	if c.searchUI != "" {
		return c.searchUI
	}
	if c.SingularAssociation() && !c.PolymorphicAssociation() {
		return UISelect
	}
	return ""
}

// SetSearchUI sets only the search widget; "" resets it.
func (c *Column) SetSearchUI(ui UI) { c.searchUI = ui }

// Sort returns a copy of the sort configuration, or nil.
func (c *Column) Sort() *Sort {
	if c.sort == nil {
		return nil
	}
	out := *c.sort
	return &out
}

// Sortable reports whether a sort is configured.
func (c *Column) Sortable() bool { return c.sort != nil }

// SetSort normalises value into the sort configuration:
//
//	nil, false          clears the sort
//	true                sorts by the qualified column
//	Sort, *Sort         stored as given
//	map[string]any      validated by SortBy
func (c *Column) SetSort(value any) error {
	switch v := value.(type) {
	case nil:
		c.sort = nil
	case bool:
		if v {
			c.sort = &Sort{SQL: c.Field()}
		} else {
			c.sort = nil
		}
	case Sort:
		return c.setSortValue(v)
	case *Sort:
		if v == nil {
			c.sort = nil
			return nil
		}
		return c.setSortValue(*v)
	case map[string]any:
		_, err := c.SortBy(v)
		return err
	case map[string]string:
		_, err := c.SortBy(stringMapToAny(v))
		return err
	default:
		return &vocab.OptionError{Scope: "sort", Option: string(c.name), Reason: fmt.Sprintf("unsupported value of type %T", value)}
	}
	return nil
}

// SortBy validates options (see the package-level SortBy), stores the result
// and returns it.
func (c *Column) SortBy(options map[string]any) (Sort, error) {
	sort, err := SortBy(options)
	if err != nil {
		return Sort{}, err
	}
	c.sort = &sort
	return sort, nil
}

func (c *Column) setSortValue(v Sort) error {
	count := 0
	for _, present := range []bool{v.SQL != "", v.Method != nil, v.MethodName != ""} {
		if present {
			count++
		}
	}
	if count != 1 {
		return &vocab.OptionError{Scope: "sort", Option: string(c.name), Reason: "expected exactly one of sql or method"}
	}
	c.sort = &v
	return nil
}

// SearchSQL returns the SQL fragments searched for this column.
func (c *Column) SearchSQL() []string {
	if c.searchSQL == nil {
		return nil
	}
	return append([]string(nil), c.searchSQL...)
}

// Searchable reports whether any search fragment is configured.
func (c *Column) Searchable() bool { return len(c.searchSQL) > 0 }

// SetSearchSQL normalises value into the search fragments:
//
//	nil, false, ""      clears the search
//	true                searches the qualified column
//	string              one fragment
//	[]string            stored verbatim
func (c *Column) SetSearchSQL(value any) error {
	switch v := value.(type) {
	case nil:
		c.searchSQL = nil
	case bool:
		if v {
			c.searchSQL = []string{c.Field()}
		} else {
			c.searchSQL = nil
		}
	case string:
		if strings.TrimSpace(v) == "" {
			c.searchSQL = nil
		} else {
			c.searchSQL = []string{v}
		}
	case []string:
		if len(v) == 0 {
			c.searchSQL = nil
		} else {
			c.searchSQL = append([]string(nil), v...)
		}
	case []any:
		fragments, ok := vocab.Strings(v)
		if !ok {
			return &vocab.OptionError{Scope: "search_sql", Option: string(c.name), Reason: "expected a list of strings"}
		}
		return c.SetSearchSQL(fragments)
	default:
		return &vocab.OptionError{Scope: "search_sql", Option: string(c.name), Reason: fmt.Sprintf("unsupported value of type %T", value)}
	}
	return nil
}

// SetLinkAction builds a member link for action labelled like the column.
// opts are applied after those defaults.
func (c *Column) SetLinkAction(action string, opts ...actionlink.Option) *actionlink.ActionLink {
	defaults := []actionlink.Option{
		actionlink.WithLabel(c.label),
		actionlink.WithType(actionlink.TypeMember),
		actionlink.WithPosition(actionlink.PositionAfter),
	}
	c.link = actionlink.New(action, append(defaults, opts...)...)
	return c.link
}

// Equal compares by name. It accepts another Column, a set.Key or a string;
// the empty string, nil and any other type never match.
func (c *Column) Equal(other any) bool {
	if c == nil {
		return false
	}
	switch v := other.(type) {
	case *Column:
		return v != nil && v.name == c.name
	case Column:
		return v.name == c.name
	case set.Key:
		return c.name.Equal(v)
	case string:
		return c.name.Equal(v)
	default:
		return false
	}
}

// Configure passes c to fn and returns c.
func (c *Column) Configure(fn func(c *Column)) *Column {
	if fn != nil {
		fn(c)
	}
	return c
}

// Clone copies the column; slices, maps and the link are not shared.
func (c *Column) Clone() *Column {
	out := *c
	out.includes = c.Includes()
	out.searchSQL = c.SearchSQL()
	out.sort = c.Sort()
	out.options = maps.Clone(c.options)
	out.link = c.link.Clone()
	return &out
}

func (c *Column) String() string { return string(c.name) }
