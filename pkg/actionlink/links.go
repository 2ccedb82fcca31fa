package actionlink

import "github.com/goliatone/go-scaffold/pkg/set"

// Links is an ordered collection of links unique by action.
type Links struct {
	set.Set[*ActionLink]
}

// NewLinks returns a collection seeded with links; nil entries are skipped.
func NewLinks(links ...*ActionLink) *Links {
	out := &Links{}
	out.Add(links...)
	return out
}

// Add appends links whose action is not present yet.
func (l *Links) Add(links ...*ActionLink) {
	for _, link := range links {
		if link == nil {
			continue
		}
		if _, exists := l.FindByName(link.Action); exists {
			continue
		}
		l.Set.Add(link)
	}
}

// OfType returns the links of the given type, in order.
func (l *Links) OfType(t Type) []*ActionLink {
	var out []*ActionLink
	for link := range l.All() {
		if link.Type == t {
			out = append(out, link)
		}
	}
	return out
}
