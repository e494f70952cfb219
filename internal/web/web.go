// Package web holds the server-side HTML templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded page. fieldKeys is exposed to the
// templates so provider fields render in a stable order.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"fieldKeys": fieldKeys,
		"display":   display,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

func fieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func display(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
