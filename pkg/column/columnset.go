package column

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/descriptor"
	"github.com/goliatone/go-scaffold/pkg/set"
)

// ColumnSet is the ordered, name-unique set of Columns of one model.
type ColumnSet struct {
	set.Set[*Column]
	model  descriptor.Model
	logger zerolog.Logger
}

// SetOption configures a ColumnSet.
type SetOption func(*ColumnSet)

// WithLogger routes column population diagnostics to logger.
func WithLogger(logger zerolog.Logger) SetOption {
	return func(s *ColumnSet) {
		s.logger = logger
	}
}

// NewColumnSet returns a set holding a Column per name, in order.
func NewColumnSet(model descriptor.Model, names []string, opts ...SetOption) *ColumnSet {
	s := &ColumnSet{model: model, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.Add(names...)
	return s
}

// FromModel seeds a set with every attribute followed by every association of
// model.
func FromModel(model descriptor.Model, opts ...SetOption) *ColumnSet {
	var names []string
	if model != nil {
		names = append(model.AttributeNames(), model.AssociationNames()...)
	}
	return NewColumnSet(model, names, opts...)
}

// Model returns the descriptor columns are built from.
func (s *ColumnSet) Model() descriptor.Model { return s.model }

// Add creates a Column for every name not yet present. Names the model cannot
// resolve become virtual columns.
func (s *ColumnSet) Add(names ...string) {
	for _, name := range names {
		key := set.KeyOf(name)
		if key == "" {
			continue
		}
		if _, exists := s.FindByName(string(key)); exists {
			continue
		}
		col := New(string(key), s.model)
		if col.Virtual() {
			event := s.logger.Debug().Str("column", col.Name())
			if s.model != nil {
				event = event.Str("model", s.model.Name())
			}
			event.Msg("column: added virtual column")
		}
		s.Set.Add(col)
	}
}

// AddColumns appends prebuilt columns whose name is not present yet.
func (s *ColumnSet) AddColumns(cols ...*Column) {
	for _, col := range cols {
		if col == nil {
			continue
		}
		s.Set.Add(col)
	}
}

// Column is FindByName without the ok flag.
func (s *ColumnSet) Column(name string) *Column {
	col, _ := s.FindByName(name)
	return col
}

// Names lists the column names in order.
func (s *ColumnSet) Names() []string {
	names := make([]string, 0, s.Len())
	for col := range s.All() {
		names = append(names, col.Name())
	}
	return names
}

// Plus returns a new set with this set's columns followed by columns for
// names. The receiver is not modified; columns are shared with it.
func (s *ColumnSet) Plus(names ...string) *ColumnSet {
	out := &ColumnSet{Set: *s.Set.Clone(), model: s.model, logger: s.logger}
	out.Add(names...)
	return out
}

// Clone deep copies the set and every column in it.
func (s *ColumnSet) Clone() *ColumnSet {
	out := &ColumnSet{model: s.model, logger: s.logger}
	for col := range s.All() {
		out.Set.Add(col.Clone())
	}
	return out
}

// Configure passes s to fn and returns s.
func (s *ColumnSet) Configure(fn func(s *ColumnSet)) *ColumnSet {
	if fn != nil {
		fn(s)
	}
	return s
}
