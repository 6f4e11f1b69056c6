package http

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

// LoadTemplates parses every templates/<module>/<view>.html file into a
// single template set. Templates are named "<module>/<view>" so that view
// files in different modules never collide, and so the names line up with
// what the theme resolver produces.
func LoadTemplates(root string) (*template.Template, error) {
	tmpl := template.New("")

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory %s: %w", root, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		module := entry.Name()

		files, err := filepath.Glob(filepath.Join(root, module, "*.html"))
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			raw, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read template %s: %w", file, err)
			}
			name := module + "/" + strings.TrimSuffix(filepath.Base(file), ".html")
			if _, err := tmpl.New(name).Parse(string(raw)); err != nil {
				return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
			}
		}
	}

	return tmpl, nil
}
