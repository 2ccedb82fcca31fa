package descriptor

import (
	"strings"

	"github.com/goliatone/go-scaffold/internal/vocab"
)

// QuoteIdentifier wraps name in ANSI double quotes, doubling embedded quotes.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QualifyColumn returns the fully-qualified column expression
// `"table"."column"`.
func QualifyColumn(table, column string) string {
	if table == "" {
		return QuoteIdentifier(column)
	}
	return QuoteIdentifier(table) + "." + QuoteIdentifier(column)
}

// Tableize derives a table name from a model name: "ModelStub" becomes
// "model_stubs", "category" becomes "categories".
func Tableize(model string) string {
	name := vocab.Underscore(strings.TrimSpace(model))
	if name == "" {
		return ""
	}
	switch {
	case strings.HasSuffix(name, "s"), strings.HasSuffix(name, "x"),
		strings.HasSuffix(name, "ch"), strings.HasSuffix(name, "sh"):
		return name + "es"
	case strings.HasSuffix(name, "y") && len(name) > 1 && !strings.ContainsRune("aeiou", rune(name[len(name)-2])):
		return name[:len(name)-1] + "ies"
	default:
		return name + "s"
	}
}

// Singularize undoes the common Tableize suffixes.
func Singularize(table string) string {
	switch {
	case strings.HasSuffix(table, "ies"):
		return strings.TrimSuffix(table, "ies") + "y"
	case strings.HasSuffix(table, "ches"), strings.HasSuffix(table, "shes"),
		strings.HasSuffix(table, "sses"), strings.HasSuffix(table, "xes"):
		return strings.TrimSuffix(table, "es")
	case strings.HasSuffix(table, "s") && !strings.HasSuffix(table, "ss"):
		return strings.TrimSuffix(table, "s")
	default:
		return table
	}
}

// Classify derives a model name from a table name: "blog_posts" becomes
// "BlogPost".
func Classify(table string) string {
	var b strings.Builder
	for _, part := range strings.Split(Singularize(strings.TrimSpace(table)), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
