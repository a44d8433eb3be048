// Package charmaps loads the character tables shipped with the module.
//
// Tables are YAML documents embedded at build time. Each one carries a
// single-code-point map (chars) and an optional multi-code-point map (multi).
// Tables are parsed once, on first use, and shared read-only afterwards.
package charmaps

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// BaseName is the name of the table every slugifier starts from.
const BaseName = "base"

//go:embed data/*.yaml
var dataFS embed.FS

// Table is a named pair of character maps.
type Table struct {
	Chars       map[string]string `yaml:"chars"`
	Multi       map[string]string `yaml:"multi"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
}

var (
	loadOnce sync.Once
	embedded map[string]Table
	loadErr  error
)

func load() (map[string]Table, error) {
	loadOnce.Do(func() {
		sub, err := fs.Sub(dataFS, "data")
		if err != nil {
			loadErr = err
			return
		}
		embedded, loadErr = LoadFS(sub)
	})
	return embedded, loadErr
}

// Get returns the embedded table with the given name.
// The returned maps are shared and must not be modified.
func Get(name string) (Table, error) {
	tables, err := load()
	if err != nil {
		return Table{}, err
	}
	t, ok := tables[name]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return t, nil
}

// Base returns the embedded base table. It panics if the embedded data
// is broken, which can only happen with a bad build.
func Base() Table {
	t, err := Get(BaseName)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the names of all embedded tables in sorted order.
func Names() []string {
	tables, err := load()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadFS parses every .yaml or .yml file found in fsys.
// Table names must be unique across files.
func LoadFS(fsys fs.FS) (map[string]Table, error) {
	tables := make(map[string]Table)
	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		t, err := Parse(data)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", filePath, err)
		}
		if _, exists := tables[t.Name]; exists {
			return fmt.Errorf("%w: %q in %q", ErrDuplicateTable, t.Name, filePath)
		}
		tables[t.Name] = t

		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// Parse decodes a single YAML table and validates its keys.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("%w: %s", ErrInvalidTable, err)
	}

	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return Table{}, fmt.Errorf("%w: missing name", ErrInvalidTable)
	}

	for key, value := range t.Chars {
		if !utf8.ValidString(key) || utf8.RuneCountInString(key) != 1 {
			return Table{}, fmt.Errorf("%w: chars key %q must be a single code point", ErrInvalidTable, key)
		}
		if !utf8.ValidString(value) {
			return Table{}, fmt.Errorf("%w: chars value for %q is not valid UTF-8", ErrInvalidTable, key)
		}
	}
	for key, value := range t.Multi {
		if key == "" || !utf8.ValidString(key) {
			return Table{}, fmt.Errorf("%w: multi key %q must be a non-empty UTF-8 sequence", ErrInvalidTable, key)
		}
		if !utf8.ValidString(value) {
			return Table{}, fmt.Errorf("%w: multi value for %q is not valid UTF-8", ErrInvalidTable, key)
		}
	}

	if t.Chars == nil {
		t.Chars = map[string]string{}
	}
	if t.Multi == nil {
		t.Multi = map[string]string{}
	}

	return t, nil
}
