package actionlink

import "strings"

// CrudType selects the default template for a link.
type CrudType string

const (
	CrudCreate CrudType = "create"
	CrudRead   CrudType = "read"
	CrudUpdate CrudType = "update"
	CrudDelete CrudType = "delete"
)

// Type tells renderers where a link applies.
type Type string

const (
	TypeMember     Type = "member"
	TypeCollection Type = "collection"
	TypeTable      Type = "table"
)

// Method is the HTTP verb a link submits with.
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodPatch  Method = "patch"
	MethodDelete Method = "delete"
)

// Position places a link relative to the content it belongs to.
type Position string

const (
	PositionNone   Position = ""
	PositionBefore Position = "before"
	PositionAfter  Position = "after"
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// InferCrudType derives the CRUD type from an action name.
func InferCrudType(action string) CrudType {
	name := strings.ToLower(strings.TrimSpace(action))
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	switch name {
	case "destroy", "delete", "delete_all", "destroy_all":
		return CrudDelete
	case "create", "new":
		return CrudCreate
	case "update", "edit":
		return CrudUpdate
	default:
		return CrudRead
	}
}

func parseCrudType(raw string) (CrudType, bool) {
	switch ct := CrudType(strings.ToLower(strings.TrimSpace(raw))); ct {
	case CrudCreate, CrudRead, CrudUpdate, CrudDelete:
		return ct, true
	default:
		return "", false
	}
}

func parseType(raw string) (Type, bool) {
	switch t := Type(strings.ToLower(strings.TrimSpace(raw))); t {
	case TypeMember, TypeCollection, TypeTable:
		return t, true
	default:
		return "", false
	}
}

func parseMethod(raw string) (Method, bool) {
	switch m := Method(strings.ToLower(strings.TrimSpace(raw))); m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return m, true
	default:
		return "", false
	}
}

func parsePosition(raw string) (Position, bool) {
	switch p := Position(strings.ToLower(strings.TrimSpace(raw))); p {
	case PositionNone, PositionBefore, PositionAfter, PositionTop, PositionBottom:
		return p, true
	case "false", "none":
		return PositionNone, true
	default:
		return "", false
	}
}
