package column

import (
	"github.com/goliatone/go-scaffold/pkg/set"
)

// ActionColumns lists, for one action, which columns are shown and in which
// order. Entries are column references (set.Key) or labelled subgroups.
// Subgroups have no key, so Remove never drops them.
type ActionColumns struct {
	entries   set.Set[set.Item]
	Action    string
	Label     string
	Collapsed bool
}

// NewActionColumns returns a list referencing names in order.
func NewActionColumns(names ...string) *ActionColumns {
	ac := &ActionColumns{}
	ac.Add(names...)
	return ac
}

// ForAction seeds a list for action from the order of columns, skipping
// exclude.
func ForAction(action string, columns *ColumnSet, exclude ...string) *ActionColumns {
	ac := &ActionColumns{Action: action}
	if columns != nil {
		ac.Add(columns.Names()...)
	}
	ac.Remove(exclude...)
	return ac
}

// Add appends references to names not listed yet.
func (ac *ActionColumns) Add(names ...string) {
	for _, name := range names {
		key := set.KeyOf(name)
		if key == "" {
			continue
		}
		ac.entries.Add(key)
	}
}

// AddSubgroup appends (or reuses) the subgroup labelled label and passes it
// to fn.
func (ac *ActionColumns) AddSubgroup(label string, fn func(group *ActionColumns)) *ActionColumns {
	group := ac.Subgroup(label)
	if group == nil {
		group = &ActionColumns{Action: ac.Action, Label: label}
		ac.entries.Add(group)
	}
	if fn != nil {
		fn(group)
	}
	return group
}

// Subgroup returns the direct subgroup labelled label.
func (ac *ActionColumns) Subgroup(label string) *ActionColumns {
	for entry := range ac.entries.All() {
		if group, ok := entry.(*ActionColumns); ok && group.Label == label {
			return group
		}
	}
	return nil
}

// Remove drops column references by name. Subgroups are kept.
func (ac *ActionColumns) Remove(names ...string) { ac.entries.Remove(names...) }

// Include reports whether name is referenced directly or by a subgroup.
func (ac *ActionColumns) Include(name string) bool {
	key := set.KeyOf(name)
	for _, listed := range ac.Names() {
		if listed == string(key) {
			return true
		}
	}
	return false
}

// Len counts direct entries, subgroups included.
func (ac *ActionColumns) Len() int { return ac.entries.Len() }

func (ac *ActionColumns) Empty() bool { return ac.entries.Empty() }

// Entries returns the direct entries: set.Key values and *ActionColumns.
func (ac *ActionColumns) Entries() []set.Item { return ac.entries.Items() }

// Names flattens the list, subgroups inlined in place.
func (ac *ActionColumns) Names() []string {
	var names []string
	for entry := range ac.entries.All() {
		switch v := entry.(type) {
		case set.Key:
			names = append(names, string(v))
		case *ActionColumns:
			names = append(names, v.Names()...)
		}
	}
	return names
}

// Resolve maps the flattened names onto columns, skipping names columns does
// not hold.
func (ac *ActionColumns) Resolve(columns *ColumnSet) []*Column {
	if columns == nil {
		return nil
	}
	var out []*Column
	for _, name := range ac.Names() {
		if col, ok := columns.FindByName(name); ok {
			out = append(out, col)
		}
	}
	return out
}

// Set replaces every entry with references to names.
func (ac *ActionColumns) Set(names ...string) {
	ac.entries = set.Set[set.Item]{}
	ac.Add(names...)
}

// Plus returns a new list with the extra names appended.
func (ac *ActionColumns) Plus(names ...string) *ActionColumns {
	out := ac.Clone()
	out.Add(names...)
	return out
}

// Clone deep copies the list, subgroups included.
func (ac *ActionColumns) Clone() *ActionColumns {
	out := &ActionColumns{Action: ac.Action, Label: ac.Label, Collapsed: ac.Collapsed}
	for entry := range ac.entries.All() {
		if group, ok := entry.(*ActionColumns); ok {
			out.entries.Add(group.Clone())
			continue
		}
		out.entries.Add(entry)
	}
	return out
}

// Equal is identity: lists are never equal to a column name.
func (ac *ActionColumns) Equal(other any) bool {
	o, ok := other.(*ActionColumns)
	return ok && o == ac
}

// Configure passes ac to fn and returns ac.
func (ac *ActionColumns) Configure(fn func(ac *ActionColumns)) *ActionColumns {
	if fn != nil {
		fn(ac)
	}
	return ac
}
