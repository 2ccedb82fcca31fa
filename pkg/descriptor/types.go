package descriptor

// AttributeType is the simplified enum of persisted attribute kinds.
type AttributeType string

const (
	TypeString   AttributeType = "string"
	TypeText     AttributeType = "text"
	TypeInteger  AttributeType = "integer"
	TypeFloat    AttributeType = "float"
	TypeDecimal  AttributeType = "decimal"
	TypeBoolean  AttributeType = "boolean"
	TypeDate     AttributeType = "date"
	TypeDateTime AttributeType = "datetime"
	TypeTime     AttributeType = "time"
	TypeJSON     AttributeType = "json"
	TypeBinary   AttributeType = "binary"
)

// Numeric reports whether values of the type can be aggregated.
func (t AttributeType) Numeric() bool {
	switch t {
	case TypeInteger, TypeFloat, TypeDecimal:
		return true
	default:
		return false
	}
}

// Attribute describes one persisted column.
type Attribute struct {
	Name       string        `json:"name"`
	Type       AttributeType `json:"type"`
	Nullable   bool          `json:"nullable"`
	PrimaryKey bool          `json:"primaryKey,omitempty"`
	Default    any           `json:"default,omitempty"`
}

// AssociationKind enumerates the supported association macros.
type AssociationKind string

const (
	BelongsTo           AssociationKind = "belongs_to"
	HasOne              AssociationKind = "has_one"
	HasMany             AssociationKind = "has_many"
	HasAndBelongsToMany AssociationKind = "has_and_belongs_to_many"
)

// Cardinality values returned by Association.Cardinality.
const (
	CardinalityOne  = "one"
	CardinalityMany = "many"
)

// Association describes a declared relationship to another model.
type Association struct {
	Name        string          `json:"name"`
	Kind        AssociationKind `json:"kind"`
	Target      string          `json:"target,omitempty"`
	Polymorphic bool            `json:"polymorphic,omitempty"`
	ForeignKey  string          `json:"foreignKey,omitempty"`
	Through     string          `json:"through,omitempty"`
}

// Cardinality reports whether the association targets one or many records.
func (a Association) Cardinality() string {
	switch a.Kind {
	case HasMany, HasAndBelongsToMany:
		return CardinalityMany
	default:
		return CardinalityOne
	}
}

// Singular reports whether the association targets a single record.
func (a Association) Singular() bool {
	return a.Cardinality() == CardinalityOne
}

// Model is the introspection contract consumed by the column layer.
type Model interface {
	// Name is the model's identifier, e.g. "article".
	Name() string
	// TableName is the unquoted table backing the model.
	TableName() string
	Attribute(name string) (Attribute, bool)
	Association(name string) (Association, bool)
	// AttributeNames lists persisted attributes in declaration order.
	AttributeNames() []string
	// AssociationNames lists declared associations in declaration order.
	AssociationNames() []string
	// QualifiedColumn returns the table-prefixed SQL expression for name.
	QualifiedColumn(name string) string
}

// PrimaryKey returns the first attribute flagged as primary key.
func PrimaryKey(model Model) (Attribute, bool) {
	if model == nil {
		return Attribute{}, false
	}
	for _, name := range model.AttributeNames() {
		attr, ok := model.Attribute(name)
		if ok && attr.PrimaryKey {
			return attr, true
		}
	}
	return Attribute{}, false
}
