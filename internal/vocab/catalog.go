package vocab

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/vocabulary.yaml
var defaultVocabularyYAML []byte

// Scope is a named, ordered bucket of entries (e.g. a grade level).
type Scope struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

type catalogFile struct {
	Scopes []Scope `yaml:"scopes"`
}

// Catalog maps scope names to their entries, preserving scope order.
type Catalog struct {
	scopes []Scope
	index  map[string]int
}

// Parse decodes and validates a YAML vocabulary pack.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("vocab: cannot parse catalog: %w", err)
	}
	return New(f.Scopes)
}

// New builds a catalog from scopes. Scope names must be unique and non-empty,
// every entry needs both terms, and term identities must be unique across
// the whole catalog.
func New(scopes []Scope) (*Catalog, error) {
	if len(scopes) == 0 {
		return nil, errors.New("vocab: catalog has no scopes")
	}

	c := &Catalog{
		scopes: make([]Scope, len(scopes)),
		index:  make(map[string]int, len(scopes)),
	}
	ids := make(map[string]string)

	for i, s := range scopes {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("vocab: scope %d has no name", i)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("vocab: duplicate scope %q", name)
		}
		for j, e := range s.Entries {
			if e.Primary == "" || e.Secondary == "" {
				return nil, fmt.Errorf("vocab: scope %q entry %d is missing a term", name, j)
			}
			if prev, dup := ids[e.ID()]; dup {
				return nil, fmt.Errorf("vocab: term %q appears in both %q and %q", e.ID(), prev, name)
			}
			ids[e.ID()] = name
		}
		c.index[name] = i
		c.scopes[i] = Scope{Name: name, Entries: s.Entries}
	}

	return c, nil
}

// Default returns the embedded vocabulary pack.
func Default() *Catalog {
	c, err := Parse(defaultVocabularyYAML)
	if err != nil {
		panic(err) // embedded data is validated by tests
	}
	return c
}

// Load loads a vocabulary pack.
// Search order: customPath -> ~/.moles/vocabulary.yaml -> ./configs/vocabulary.yaml -> embedded default
func Load(customPath string) (*Catalog, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("vocab: failed to read %s: %w", customPath, err)
		}
		return Parse(data)
	}

	// Try user config directory
	if home, err := os.UserHomeDir(); err == nil {
		if data, err := os.ReadFile(filepath.Join(home, ".moles", "vocabulary.yaml")); err == nil {
			if c, err := Parse(data); err == nil {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/vocabulary.yaml"); err == nil {
		if c, err := Parse(data); err == nil {
			return c, nil
		}
	}

	return Default(), nil
}

// Scopes returns scope names in catalog order.
func (c *Catalog) Scopes() []string {
	names := make([]string, len(c.scopes))
	for i, s := range c.scopes {
		names[i] = s.Name
	}
	return names
}

// Entries returns the entries of a scope. Unknown scopes fall back to the
// first scope.
func (c *Catalog) Entries(scope string) []Entry {
	i, ok := c.index[scope]
	if !ok {
		i = 0
	}
	return append([]Entry(nil), c.scopes[i].Entries...)
}

// Has reports whether the scope exists.
func (c *Catalog) Has(scope string) bool {
	_, ok := c.index[scope]
	return ok
}

// Index returns the position of a scope, or -1 if unknown.
func (c *Catalog) Index(scope string) int {
	if i, ok := c.index[scope]; ok {
		return i
	}
	return -1
}

// Resolve returns the scope name that Entries would serve for scope.
func (c *Catalog) Resolve(scope string) string {
	if c.Has(scope) {
		return scope
	}
	return c.scopes[0].Name
}

// Sizes maps every scope name to its entry count.
func (c *Catalog) Sizes() map[string]int {
	sizes := make(map[string]int, len(c.scopes))
	for _, s := range c.scopes {
		sizes[s.Name] = len(s.Entries)
	}
	return sizes
}
