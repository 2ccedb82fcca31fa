package column_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/column"
	"github.com/goliatone/go-scaffold/pkg/descriptor"
	"github.com/goliatone/go-scaffold/pkg/set"
)

func twoColumnModel() *descriptor.Static {
	return descriptor.NewStatic("ModelStub").WithAttributes(descriptor.TypeString, "a", "b")
}

func TestColumnSetFromModel(t *testing.T) {
	columns := column.FromModel(twoColumnModel())

	if diff := cmp.Diff([]string{"a", "b"}, columns.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	bySymbol, ok := columns.FindByName("a")
	if !ok {
		t.Fatalf("expected to find a")
	}
	byString := columns.Column(" a ")
	if bySymbol != byString {
		t.Fatalf("expected the same column for normalised names")
	}
}

func TestColumnSetPlusDoesNotMutate(t *testing.T) {
	columns := column.FromModel(twoColumnModel())
	sum := columns.Plus("c")

	if sum.Len() != 3 || columns.Len() != 2 {
		t.Fatalf("expected 3 and 2 columns, got %d and %d", sum.Len(), columns.Len())
	}
	if !sum.Column("c").Virtual() {
		t.Fatalf("expected c to be virtual")
	}
	if sum.Column("a") != columns.Column("a") {
		t.Fatalf("expected Plus to share existing columns")
	}
	if sum.Model() != columns.Model() {
		t.Fatalf("expected Plus to keep the model")
	}
}

func TestColumnSetAddIsIdempotent(t *testing.T) {
	columns := column.NewColumnSet(twoColumnModel(), []string{"a", "b"})
	columns.Add("a", "", "b")
	columns.AddColumns(column.New("a", columns.Model()), nil)
	if columns.Len() != 2 {
		t.Fatalf("expected duplicates to be ignored, got %d", columns.Len())
	}

	columns.Remove("a")
	if diff := cmp.Diff([]string{"b"}, columns.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnSetFindByNames(t *testing.T) {
	columns := column.FromModel(twoColumnModel()).Plus("c")
	found := columns.FindByNames("c", "a")
	if len(found) != 2 || found[0].Name() != "a" || found[1].Name() != "c" {
		t.Fatalf("expected set order a,c, got %v", found)
	}
}

func TestColumnSetCloneIsDeep(t *testing.T) {
	columns := column.FromModel(twoColumnModel())
	dup := columns.Clone()
	dup.Column("a").SetLabel("changed")
	dup.Add("c")

	if columns.Column("a").Label() != "A" || columns.Len() != 2 {
		t.Fatalf("clone leaked into original")
	}
}

func TestColumnSetLogsVirtualColumns(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	column.NewColumnSet(twoColumnModel(), []string{"a", "word_count"}, column.WithLogger(logger))

	out := buf.String()
	if !strings.Contains(out, `"column":"word_count"`) || strings.Contains(out, `"column":"a"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if !strings.Contains(out, `"model":"ModelStub"`) {
		t.Fatalf("expected model in log output: %s", out)
	}
}

func TestColumnSetConfigure(t *testing.T) {
	columns := column.FromModel(twoColumnModel()).Configure(func(s *column.ColumnSet) {
		s.Column("a").Configure(func(c *column.Column) {
			c.SetRequired(true)
		})
		s.Add("total")
	})
	if !columns.Column("a").Required() || columns.Len() != 3 {
		t.Fatalf("nested configure blocks did not apply")
	}
}

func TestActionColumns(t *testing.T) {
	columns := column.FromModel(twoColumnModel()).Plus("c", "d")
	list := column.ForAction("list", columns, "d")

	if diff := cmp.Diff([]string{"a", "b", "c"}, list.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	list.Remove("a")
	list.Add("a")
	if diff := cmp.Diff([]string{"b", "c", "a"}, list.Names()); diff != "" {
		t.Fatalf("reorder mismatch (-want +got):\n%s", diff)
	}
	if columns.Len() != 4 {
		t.Fatalf("action columns must not mutate the column set")
	}

	resolved := list.Resolve(columns)
	if len(resolved) != 3 || resolved[2] != columns.Column("a") {
		t.Fatalf("unexpected resolution %v", resolved)
	}
}

func TestActionColumnsSubgroups(t *testing.T) {
	columns := column.FromModel(twoColumnModel()).Plus("c")
	form := column.NewActionColumns("a")
	form.AddSubgroup("Details", func(g *column.ActionColumns) {
		g.Add("b", "missing")
		g.Collapsed = true
	})
	form.AddSubgroup("Details", func(g *column.ActionColumns) {
		g.Add("c")
	})

	if form.Len() != 2 {
		t.Fatalf("expected one reference and one subgroup, got %d", form.Len())
	}
	if diff := cmp.Diff([]string{"a", "b", "missing", "c"}, form.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	form.Remove("Details", "a")
	entries := form.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected only the subgroup to remain, got %v", entries)
	}
	group, ok := entries[0].(*column.ActionColumns)
	if !ok || group.Label != "Details" || !group.Collapsed {
		t.Fatalf("expected Details subgroup, got %#v", entries[0])
	}
	if !form.Include("c") || form.Include("a") {
		t.Fatalf("include should look into subgroups")
	}

	resolved := form.Resolve(columns)
	if len(resolved) != 2 || resolved[0].Name() != "b" || resolved[1].Name() != "c" {
		t.Fatalf("expected b,c, got %v", resolved)
	}
}

func TestActionColumnsPlusAndClone(t *testing.T) {
	base := column.NewActionColumns("a", "b")
	base.AddSubgroup("More", func(g *column.ActionColumns) { g.Add("x") })

	sum := base.Plus("c", "a")
	if diff := cmp.Diff([]string{"a", "b", "x", "c"}, sum.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	sum.Subgroup("More").Add("y")
	if diff := cmp.Diff([]string{"a", "b", "x"}, base.Names()); diff != "" {
		t.Fatalf("clone shares subgroups (-want +got):\n%s", diff)
	}

	base.Set("z")
	if diff := cmp.Diff([]string{"z"}, base.Names()); diff != "" {
		t.Fatalf("set mismatch (-want +got):\n%s", diff)
	}
	if base.Equal(set.Key("z")) || base.Equal("z") || !base.Equal(base) {
		t.Fatalf("action columns compare by identity only")
	}
}
