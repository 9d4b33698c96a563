// Package presets holds the static mapping from short text codes to
// object-storage paths. The registry is built once at startup and read-only
// afterwards.
package presets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Registry maps message codes to object paths.
type Registry struct {
	entries map[string]string
	codes   []string
}

// Default returns the built-in registry.
func Default() *Registry {
	return New(map[string]string{
		"menu1": "images/menu1.jpg",
		"menu2": "images/menu2.jpg",
		"menu3": "images/menu3.jpg",
		"menu4": "images/menu4.jpg",
	})
}

// New builds a registry from a code→path map. Codes and paths are trimmed;
// empty entries are dropped.
func New(entries map[string]string) *Registry {
	r := &Registry{entries: make(map[string]string, len(entries))}
	for code, path := range entries {
		code = strings.TrimSpace(code)
		path = strings.TrimSpace(path)
		if code == "" || path == "" {
			continue
		}
		r.entries[code] = path
	}
	r.codes = make([]string, 0, len(r.entries))
	for code := range r.entries {
		r.codes = append(r.codes, code)
	}
	sort.Strings(r.codes)
	return r
}

type presetsFile struct {
	Presets map[string]string `toml:"presets"`
}

// LoadFile reads a registry from a TOML file with a [presets] table of
// code = "object/path" pairs.
func LoadFile(path string) (*Registry, error) {
	var file presetsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("load presets %s: %w", path, err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("load presets %s: no [presets] entries", path)
	}
	return New(file.Presets), nil
}

// Lookup resolves a code to its object path by exact match.
func (r *Registry) Lookup(code string) (string, bool) {
	path, ok := r.entries[code]
	return path, ok
}

// Codes returns all codes in sorted order.
func (r *Registry) Codes() []string {
	return r.codes
}

// Len returns the number of registered codes.
func (r *Registry) Len() int {
	return len(r.entries)
}
