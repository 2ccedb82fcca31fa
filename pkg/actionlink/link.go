package actionlink

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"github.com/goliatone/go-scaffold/internal/vocab"
	"github.com/goliatone/go-scaffold/pkg/set"
)

// ActionLink describes one UI action. Fields may be reassigned after
// construction; New is the only place template defaults are applied.
// SecurityMethod holds an explicit predicate only; when empty the predicate
// follows CrudType (see ResolvedSecurityMethod).
type ActionLink struct {
	Action         string            `json:"action"`
	Label          string            `json:"label"`
	Method         Method            `json:"method"`
	Type           Type              `json:"type"`
	CrudType       CrudType          `json:"crudType"`
	SecurityMethod string            `json:"securityMethod"`
	Confirm        bool              `json:"confirm"`
	Popup          bool              `json:"popup"`
	Page           bool              `json:"page"`
	Inline         bool              `json:"inline"`
	HTMLOptions    map[string]string `json:"htmlOptions"`
	Position       Position          `json:"position,omitempty"`
	IgnoreMethod   string            `json:"ignoreMethod,omitempty"`
	Parameters     map[string]string `json:"parameters,omitempty"`
}

// Option customises a link before defaults are resolved.
type Option func(*settings)

type settings struct {
	label          *string
	method         *Method
	linkType       *Type
	crudType       *CrudType
	securityMethod *string
	confirm        *bool
	popup          *bool
	page           *bool
	inline         *bool
	htmlOptions    map[string]string
	position       *Position
	ignoreMethod   *string
	parameters     map[string]string
}

func WithLabel(label string) Option { return func(s *settings) { s.label = &label } }

func WithMethod(method Method) Option { return func(s *settings) { s.method = &method } }

func WithType(t Type) Option { return func(s *settings) { s.linkType = &t } }

// WithCrudType pins the CRUD type, which also selects the template used for
// every other unset option.
func WithCrudType(crud CrudType) Option { return func(s *settings) { s.crudType = &crud } }

func WithSecurityMethod(name string) Option {
	return func(s *settings) { s.securityMethod = &name }
}

func WithConfirm(confirm bool) Option { return func(s *settings) { s.confirm = &confirm } }

func WithPopup(popup bool) Option { return func(s *settings) { s.popup = &popup } }

func WithPage(page bool) Option { return func(s *settings) { s.page = &page } }

func WithInline(inline bool) Option { return func(s *settings) { s.inline = &inline } }

// WithHTMLOptions merges attributes into the link's html options.
func WithHTMLOptions(attrs map[string]string) Option {
	return func(s *settings) {
		if s.htmlOptions == nil {
			s.htmlOptions = make(map[string]string, len(attrs))
		}
		maps.Copy(s.htmlOptions, attrs)
	}
}

func WithPosition(pos Position) Option { return func(s *settings) { s.position = &pos } }

func WithIgnoreMethod(name string) Option { return func(s *settings) { s.ignoreMethod = &name } }

// WithParameters merges extra URL parameters into the link.
func WithParameters(params map[string]string) Option {
	return func(s *settings) {
		if s.parameters == nil {
			s.parameters = make(map[string]string, len(params))
		}
		maps.Copy(s.parameters, params)
	}
}

// New builds a link for action. The CRUD type is taken from WithCrudType or
// inferred from the action name; its template fills every option left unset.
func New(action string, opts ...Option) *ActionLink {
	var cfg settings
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	crud := InferCrudType(action)
	if cfg.crudType != nil {
		crud = *cfg.crudType
	}
	tpl := TemplateFor(crud)

	link := &ActionLink{
		Action:      strings.TrimSpace(action),
		Label:       vocab.ActionLabel(action),
		Method:      tpl.Method,
		Type:        tpl.Type,
		CrudType:    crud,
		Confirm:     tpl.Confirm,
		Popup:       tpl.Popup,
		Page:        tpl.Page,
		Inline:      tpl.Inline,
		HTMLOptions: map[string]string{},
	}

	if cfg.label != nil {
		link.Label = *cfg.label
	}
	if cfg.method != nil {
		link.Method = *cfg.method
	}
	if cfg.linkType != nil {
		link.Type = *cfg.linkType
	}
	if cfg.securityMethod != nil {
		link.SecurityMethod = *cfg.securityMethod
	}
	if cfg.confirm != nil {
		link.Confirm = *cfg.confirm
	}
	if cfg.popup != nil {
		link.Popup = *cfg.popup
	}
	if cfg.page != nil {
		link.Page = *cfg.page
	}
	if cfg.inline != nil {
		link.Inline = *cfg.inline
	}
	if cfg.htmlOptions != nil {
		link.HTMLOptions = cfg.htmlOptions
	}
	if cfg.position != nil {
		link.Position = *cfg.position
	}
	if cfg.ignoreMethod != nil {
		link.IgnoreMethod = *cfg.ignoreMethod
	}
	if len(cfg.parameters) > 0 {
		link.Parameters = cfg.parameters
	}
	return link
}

// Option keys accepted by FromMap.
const (
	OptionLabel          = "label"
	OptionMethod         = "method"
	OptionType           = "type"
	OptionCrudType       = "crud_type"
	OptionSecurityMethod = "security_method"
	OptionConfirm        = "confirm"
	OptionPopup          = "popup"
	OptionPage           = "page"
	OptionInline         = "inline"
	OptionHTMLOptions    = "html_options"
	OptionPosition       = "position"
	OptionIgnoreMethod   = "ignore_method"
	OptionParameters     = "parameters"
)

var optionKeys = []string{
	OptionLabel, OptionMethod, OptionType, OptionCrudType, OptionSecurityMethod,
	OptionConfirm, OptionPopup, OptionPage, OptionInline, OptionHTMLOptions,
	OptionPosition, OptionIgnoreMethod, OptionParameters,
}

// OptionKeys lists the keys FromMap accepts.
func OptionKeys() []string { return append([]string(nil), optionKeys...) }

// FromMap builds a link from untyped options such as those decoded from a
// configuration file. Unknown keys and mistyped values fail with a
// *vocab.OptionError naming the option.
func FromMap(action string, options map[string]any) (*ActionLink, error) {
	if strings.TrimSpace(action) == "" {
		return nil, &vocab.OptionError{Scope: "actionlink", Option: "action", Reason: "action is required"}
	}
	if err := vocab.CheckKeys("actionlink", options, optionKeys...); err != nil {
		return nil, err
	}

	opts := make([]Option, 0, len(options))
	for key, raw := range options {
		opt, err := optionFromValue(key, raw)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return New(action, opts...), nil
}

func optionFromValue(key string, raw any) (Option, error) {
	invalid := func(reason string) error {
		return &vocab.OptionError{Scope: "actionlink", Option: key, Reason: reason}
	}

	switch key {
	case OptionConfirm, OptionPopup, OptionPage, OptionInline:
		value, ok := vocab.Bool(raw)
		if !ok {
			return nil, invalid("expected a boolean")
		}
		switch key {
		case OptionConfirm:
			return WithConfirm(value), nil
		case OptionPopup:
			return WithPopup(value), nil
		case OptionPage:
			return WithPage(value), nil
		default:
			return WithInline(value), nil
		}
	case OptionHTMLOptions, OptionParameters:
		value, ok := vocab.StringMap(raw)
		if !ok {
			return nil, invalid("expected a string map")
		}
		if key == OptionHTMLOptions {
			return WithHTMLOptions(value), nil
		}
		return WithParameters(value), nil
	}

	text, ok := raw.(string)
	if !ok {
		return nil, invalid(fmt.Sprintf("expected a string, got %T", raw))
	}
	switch key {
	case OptionLabel:
		return WithLabel(text), nil
	case OptionSecurityMethod:
		return WithSecurityMethod(text), nil
	case OptionIgnoreMethod:
		return WithIgnoreMethod(text), nil
	case OptionMethod:
		method, ok := parseMethod(text)
		if !ok {
			return nil, invalid("unknown method " + text)
		}
		return WithMethod(method), nil
	case OptionType:
		linkType, ok := parseType(text)
		if !ok {
			return nil, invalid("unknown type " + text)
		}
		return WithType(linkType), nil
	case OptionCrudType:
		crud, ok := parseCrudType(text)
		if !ok {
			return nil, invalid("unknown crud type " + text)
		}
		return WithCrudType(crud), nil
	case OptionPosition:
		pos, ok := parsePosition(text)
		if !ok {
			return nil, invalid("unknown position " + text)
		}
		return WithPosition(pos), nil
	}
	return nil, invalid("unsupported option")
}

// ResolvedSecurityMethod returns the explicit security method, or the
// default predicate of the link's current CRUD type.
func (l *ActionLink) ResolvedSecurityMethod() string {
	if l == nil {
		return ""
	}
	if l.SecurityMethod != "" {
		return l.SecurityMethod
	}
	return DefaultSecurityMethod(l.CrudType)
}

// MarshalJSON encodes the link with its resolved security method.
func (l ActionLink) MarshalJSON() ([]byte, error) {
	type plain ActionLink
	out := plain(l)
	out.SecurityMethod = l.ResolvedSecurityMethod()
	return json.Marshal(out)
}

// Key identifies the link by action inside link collections.
func (l *ActionLink) Key() set.Key {
	if l == nil {
		return ""
	}
	return set.KeyOf(l.Action)
}

// Equal compares links by value. It also accepts an action name so links can
// be stored in a set.Set and found by action.
func (l *ActionLink) Equal(other any) bool {
	if l == nil {
		return false
	}
	switch v := other.(type) {
	case *ActionLink:
		if v == nil {
			return false
		}
		return l == v || sameValue(l, v)
	case set.Key:
		return l.Key().Equal(v)
	case string:
		return l.Key().Equal(v)
	default:
		return false
	}
}

func sameValue(a, b *ActionLink) bool {
	return a.Action == b.Action &&
		a.Label == b.Label &&
		a.Method == b.Method &&
		a.Type == b.Type &&
		a.CrudType == b.CrudType &&
		a.ResolvedSecurityMethod() == b.ResolvedSecurityMethod() &&
		a.Confirm == b.Confirm &&
		a.Popup == b.Popup &&
		a.Page == b.Page &&
		a.Inline == b.Inline &&
		a.Position == b.Position &&
		a.IgnoreMethod == b.IgnoreMethod &&
		maps.Equal(a.HTMLOptions, b.HTMLOptions) &&
		maps.Equal(a.Parameters, b.Parameters)
}

// Clone returns a deep copy.
func (l *ActionLink) Clone() *ActionLink {
	if l == nil {
		return nil
	}
	out := *l
	out.HTMLOptions = maps.Clone(l.HTMLOptions)
	if out.HTMLOptions == nil {
		out.HTMLOptions = map[string]string{}
	}
	out.Parameters = maps.Clone(l.Parameters)
	return &out
}

// Authorizer gates links by their security method. It is implemented by the
// host application; this package never interprets the method name.
type Authorizer interface {
	Authorized(ctx context.Context, securityMethod string, record any) (bool, error)
}

// AuthorizerFunc adapts a function to Authorizer.
type AuthorizerFunc func(ctx context.Context, securityMethod string, record any) (bool, error)

func (f AuthorizerFunc) Authorized(ctx context.Context, securityMethod string, record any) (bool, error) {
	return f(ctx, securityMethod, record)
}

// Authorize asks auth whether the link may be used for record, passing the
// resolved security method. A nil authorizer allows the link.
func (l *ActionLink) Authorize(ctx context.Context, auth Authorizer, record any) (bool, error) {
	if l == nil {
		return false, nil
	}
	method := l.ResolvedSecurityMethod()
	if auth == nil || method == "" {
		return true, nil
	}
	ok, err := auth.Authorized(ctx, method, record)
	if err != nil {
		return false, fmt.Errorf("actionlink: authorize %s: %w", l.Action, err)
	}
	return ok, nil
}
