package schema

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// splitWords splits a service name on non-alphanumeric separators.
func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
}

// CamelCase converts a service name like "my-db" into "myDb" for embedding
// in schema field names.
func CamelCase(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(titleCaser.String(strings.ToLower(w)))
	}
	return b.String()
}

// TitleWords converts a service name like "my-db" into "My Db" for field
// titles.
func TitleWords(name string) string {
	words := splitWords(name)
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// ProjectNameField is the seed field every schema carries.
const ProjectNameField = "projectName"

// ServiceNameField returns the field name holding a service's runtime name.
func ServiceNameField(service string) string {
	return CamelCase(service) + "ServiceName"
}

// ServiceImageField returns the field name holding a service's image reference.
func ServiceImageField(service string) string {
	return CamelCase(service) + "ServiceImage"
}

// EnvField returns the field name for one environment entry, scoped by the
// declaring service.
func EnvField(service, key string) string {
	return service + "_" + key
}
