package actionlink

// Template holds the defaults applied to a link of a given CRUD type.
type Template struct {
	Method  Method
	Type    Type
	Confirm bool
	Inline  bool
	Popup   bool
	Page    bool
}

// templates is populated once and never mutated; TemplateFor hands out copies.
var templates = map[CrudType]Template{
	CrudCreate: {Method: MethodGet, Type: TypeCollection, Inline: true},
	CrudRead:   {Method: MethodGet, Type: TypeMember, Inline: true},
	CrudUpdate: {Method: MethodGet, Type: TypeMember, Inline: true},
	CrudDelete: {Method: MethodDelete, Type: TypeMember, Confirm: true, Inline: true},
}

// TemplateFor returns the defaults for crud; unknown types use the read
// template.
func TemplateFor(crud CrudType) Template {
	if tpl, ok := templates[crud]; ok {
		return tpl
	}
	return templates[CrudRead]
}

// DefaultSecurityMethod is the authorization predicate name for crud, empty
// when crud is.
func DefaultSecurityMethod(crud CrudType) string {
	if crud == "" {
		return ""
	}
	return string(crud) + "_authorized?"
}
