package charmaps_test

import (
	"testing"
	"testing/fstest"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugify/internal/charmaps"
)

func TestEmbeddedTables(t *testing.T) {
	t.Parallel()

	names := charmaps.Names()
	assert.Equal(t, []string{"ar", "base", "de", "fr", "hi", "sv", "zh"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			table, err := charmaps.Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, table.Name)
			assert.NotEmpty(t, table.Description)
			assert.NotEmpty(t, table.Chars)
			assert.NotNil(t, table.Multi)

			for key, value := range table.Chars {
				assert.Equal(t, 1, utf8.RuneCountInString(key), "chars key %q", key)
				assert.NotEmpty(t, value, "chars value for %q", key)
			}
			for key, value := range table.Multi {
				assert.NotEmpty(t, key)
				assert.NotEmpty(t, value, "multi value for %q", key)
			}
		})
	}
}

func TestBase(t *testing.T) {
	t.Parallel()

	base := charmaps.Base()
	assert.Equal(t, charmaps.BaseName, base.Name)
	assert.Equal(t, "and", base.Chars["&"])
	assert.Equal(t, "ss", base.Chars["ß"])
	assert.Empty(t, base.Multi)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	_, err := charmaps.Get("xx")
	require.Error(t, err)
	assert.ErrorIs(t, err, charmaps.ErrNotFound)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid table", func(t *testing.T) {
		t.Parallel()

		table, err := charmaps.Parse([]byte(`
name: " pirate "
description: Pirate speak
chars:
  "&": "an'"
multi:
  "you": "ye"
`))
		require.NoError(t, err)
		assert.Equal(t, "pirate", table.Name)
		assert.Equal(t, "Pirate speak", table.Description)
		assert.Equal(t, map[string]string{"&": "an'"}, table.Chars)
		assert.Equal(t, map[string]string{"you": "ye"}, table.Multi)
	})

	t.Run("missing maps become empty", func(t *testing.T) {
		t.Parallel()

		table, err := charmaps.Parse([]byte("name: empty\n"))
		require.NoError(t, err)
		assert.NotNil(t, table.Chars)
		assert.NotNil(t, table.Multi)
		assert.Empty(t, table.Chars)
		assert.Empty(t, table.Multi)
	})

	tests := []struct {
		name string
		data string
	}{
		{name: "missing name", data: "chars:\n  \"&\": \"and\"\n"},
		{name: "blank name", data: "name: \"  \"\n"},
		{name: "multi code point chars key", data: "name: x\nchars:\n  \"ab\": \"c\"\n"},
		{name: "empty chars key", data: "name: x\nchars:\n  \"\": \"c\"\n"},
		{name: "empty multi key", data: "name: x\nmulti:\n  \"\": \"c\"\n"},
		{name: "malformed yaml", data: "name: [x\n"},
		{name: "wrong shape", data: "name: x\nchars: [a, b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := charmaps.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, charmaps.ErrInvalidTable)
		})
	}
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml and yml files", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"one.yaml":        {Data: []byte("name: one\nchars:\n  \"a\": \"b\"\n")},
			"nested/two.yml":  {Data: []byte("name: two\n")},
			"README.md":       {Data: []byte("# not a table")},
			"nested/skip.txt": {Data: []byte("name: skip\n")},
		}

		tables, err := charmaps.LoadFS(fsys)
		require.NoError(t, err)
		require.Len(t, tables, 2)
		assert.Equal(t, "b", tables["one"].Chars["a"])
		assert.Contains(t, tables, "two")
	})

	t.Run("duplicate names", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"a.yaml": {Data: []byte("name: same\n")},
			"b.yaml": {Data: []byte("name: same\n")},
		}

		_, err := charmaps.LoadFS(fsys)
		require.Error(t, err)
		assert.ErrorIs(t, err, charmaps.ErrDuplicateTable)
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"bad.yaml": {Data: []byte("chars: {}\n")},
		}

		_, err := charmaps.LoadFS(fsys)
		require.Error(t, err)
		assert.ErrorIs(t, err, charmaps.ErrInvalidTable)
		assert.Contains(t, err.Error(), "bad.yaml")
	})
}
