package descriptor

import "strings"

// Static is an in-memory Model assembled from explicit declarations.
type Static struct {
	name         string
	table        string
	attributes   []Attribute
	associations []Association
}

var _ Model = (*Static)(nil)

// NewStatic creates an empty model whose table defaults to Tableize(name).
func NewStatic(name string) *Static {
	name = strings.TrimSpace(name)
	return &Static{name: name, table: Tableize(name)}
}

// WithTable overrides the table name.
func (s *Static) WithTable(table string) *Static {
	if trimmed := strings.TrimSpace(table); trimmed != "" {
		s.table = trimmed
	}
	return s
}

// WithAttribute declares (or replaces) an attribute.
func (s *Static) WithAttribute(attr Attribute) *Static {
	for idx, existing := range s.attributes {
		if existing.Name == attr.Name {
			s.attributes[idx] = attr
			return s
		}
	}
	s.attributes = append(s.attributes, attr)
	return s
}

// WithAttributes declares nullable attributes of the given type.
func (s *Static) WithAttributes(kind AttributeType, names ...string) *Static {
	for _, name := range names {
		s.WithAttribute(Attribute{Name: name, Type: kind, Nullable: true})
	}
	return s
}

// WithAssociation declares (or replaces) an association.
func (s *Static) WithAssociation(assoc Association) *Static {
	for idx, existing := range s.associations {
		if existing.Name == assoc.Name {
			s.associations[idx] = assoc
			return s
		}
	}
	s.associations = append(s.associations, assoc)
	return s
}

func (s *Static) Name() string      { return s.name }
func (s *Static) TableName() string { return s.table }

func (s *Static) Attribute(name string) (Attribute, bool) {
	for _, attr := range s.attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}

func (s *Static) Association(name string) (Association, bool) {
	for _, assoc := range s.associations {
		if assoc.Name == name {
			return assoc, true
		}
	}
	return Association{}, false
}

func (s *Static) AttributeNames() []string {
	names := make([]string, 0, len(s.attributes))
	for _, attr := range s.attributes {
		names = append(names, attr.Name)
	}
	return names
}

func (s *Static) AssociationNames() []string {
	names := make([]string, 0, len(s.associations))
	for _, assoc := range s.associations {
		names = append(names, assoc.Name)
	}
	return names
}

func (s *Static) QualifiedColumn(name string) string {
	return QualifyColumn(s.table, name)
}
