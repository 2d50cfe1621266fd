// Package scaffold generates C# source stubs for domain entities and
// application use cases.
//
// Generated files are starting points, not production code: the templates
// emit the conventional shape (audit fields, soft delete, EF Core
// configuration, request/result/handler triple) and leave the behavior to
// the developer. Existing files are never overwritten.
package scaffold

import (
	"fmt"
	"os"
	"strings"
	"text/template"
	"unicode"
)

// ValidateName checks that a type name is usable as a C# class name:
// non-empty and starting with an uppercase letter.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	first := []rune(name)[0]
	if !unicode.IsLetter(first) || !unicode.IsUpper(first) {
		return fmt.Errorf("name must start with an uppercase letter")
	}
	return nil
}

// writeNew renders tmpl with data into path, refusing to overwrite an
// existing file.
func writeNew(path string, tmpl *template.Template, data any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("file already exists: %s", path)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
