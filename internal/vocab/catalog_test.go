package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	scopes := c.Scopes()
	require.NotEmpty(t, scopes)
	assert.Equal(t, "1年级", scopes[0])

	entries := c.Entries("1年级")
	require.NotEmpty(t, entries)
	assert.Equal(t, "书", entries[0].Primary)
	assert.Equal(t, "book", entries[0].ID())
	assert.Equal(t, []string{"pencil", "pen", "ruler"}, entries[0].SecondaryDistractors)

	sizes := c.Sizes()
	assert.Equal(t, len(entries), sizes["1年级"])
}

func TestEntriesFallsBackToFirstScope(t *testing.T) {
	c := Default()

	assert.Equal(t, c.Entries("1年级"), c.Entries("no-such-scope"))
	assert.Equal(t, "1年级", c.Resolve("no-such-scope"))
	assert.Equal(t, -1, c.Index("no-such-scope"))
	assert.False(t, c.Has("no-such-scope"))
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := Default()

	entries := c.Entries("1年级")
	entries[0] = Entry{Primary: "x", Secondary: "y"}

	assert.Equal(t, "book", c.Entries("1年级")[0].Secondary)
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "no scopes", yaml: "scopes: []"},
		{name: "unnamed scope", yaml: "scopes:\n  - entries: []"},
		{
			name: "duplicate scope",
			yaml: "scopes:\n  - name: a\n  - name: a",
		},
		{
			name: "missing term",
			yaml: "scopes:\n  - name: a\n    entries:\n      - primary: 猫",
		},
		{
			name: "duplicate identity across scopes",
			yaml: "scopes:\n  - name: a\n    entries:\n      - {primary: 猫, secondary: cat}\n  - name: b\n    entries:\n      - {primary: 小猫, secondary: cat}",
		},
		{name: "not yaml", yaml: "scopes: [:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	data := `
scopes:
  - name: animals
    entries:
      - primary: 猫
        secondary: cat
        secondary_distractors: [dog, pig, duck]
        primary_distractors: [狗, 猪, 鸭子]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"animals"}, c.Scopes())
	assert.Equal(t, []string{"狗", "猪", "鸭子"}, c.Entries("animals")[0].PrimaryDistractors)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEntryClone(t *testing.T) {
	e := Entry{Primary: "猫", Secondary: "cat", SecondaryDistractors: []string{"dog"}}
	c := e.Clone()
	c.SecondaryDistractors[0] = "pig"

	assert.Equal(t, "dog", e.SecondaryDistractors[0])
}
