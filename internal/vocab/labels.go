package vocab

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// actionLabels lists the action names whose label is not simply the
// humanized action.
var actionLabels = map[string]string{
	"destroy":      "Delete",
	"new":          "Create New",
	"show_search":  "Search",
	"field_search": "Search",
}

// Humanize converts a column or action name into a human-friendly label. It
// splits on underscores/dashes and camelCase boundaries and drops a trailing
// "_id" so foreign keys read like their association.
func Humanize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if trimmed := strings.TrimSuffix(name, "_id"); trimmed != "" {
		name = trimmed
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

// ActionLabel returns the default label for a link pointing at action.
func ActionLabel(action string) string {
	key := strings.ToLower(strings.TrimSpace(action))
	if label, ok := actionLabels[key]; ok {
		return label
	}
	// "articles/publish" labels as "Publish".
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		key = key[idx+1:]
	}
	return Humanize(key)
}

// Underscore converts CamelCase or dashed names into snake_case.
func Underscore(name string) string {
	var out strings.Builder
	var prev rune
	for i, r := range name {
		switch {
		case r == '-' || r == ' ':
			out.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && !isBoundaryRune(prev) {
				out.WriteRune('_')
			}
			out.WriteRune(unicode.ToLower(r))
		default:
			out.WriteRune(r)
		}
		prev = r
	}
	return out.String()
}

func splitCamel(input string) string {
	var out strings.Builder
	var prev rune
	for i, r := range input {
		if i > 0 && isBoundary(prev, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
		prev = r
	}
	return out.String()
}

func isBoundary(prev, r rune) bool {
	return (unicode.IsLower(prev) && unicode.IsUpper(r)) ||
		(unicode.IsLetter(prev) && unicode.IsDigit(r)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(r))
}

func isBoundaryRune(r rune) bool { return r == '_' || r == '-' || r == ' ' || unicode.IsUpper(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	parts := strings.Fields(word)
	for i, part := range parts {
		lower := strings.ToLower(part)
		first, size := utf8.DecodeRuneInString(lower)
		parts[i] = string(unicode.ToUpper(first)) + lower[size:]
	}
	return strings.Join(parts, " ")
}
