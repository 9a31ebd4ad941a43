package tablo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tablo/entity"
)

func TestLayout(t *testing.T) {

	t.Run("sample round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		require.NoError(t, WriteSampleLayout(path))

		layout, err := LoadLayout(path)
		require.NoError(t, err)

		assert.Len(t, layout.Columns, 5)
		assert.Equal(t, nt.KindString, layout.Columns[0].Kind)
		assert.Equal(t, nt.KindNatural, layout.Columns[2].Kind)
		assert.Equal(t, "money", layout.Columns[3].Renderer)
		assert.Equal(t, &nt.Sort{Column: "title", Direction: nt.Asc}, layout.SortDefault)
		assert.Equal(t, Local, layout.Mode)
		assert.Equal(t, 30, layout.PageSize)
		assert.Equal(t, []string{"ru", "en"}, layout.Locales)
	})

	t.Run("existing file kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("columns: [{id: a}]\n"), 0644))
		require.NoError(t, WriteSampleLayout(path))

		layout, err := LoadLayout(path)
		require.NoError(t, err)
		assert.Equal(t, nt.Columns{{Id: "a", Kind: nt.KindString}}, layout.Columns)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("columns: [{id: a}, {id: a}]\n"), 0644))

		layout, err := LoadLayout(path)
		assert.ErrorContains(t, err, "duplicate column id")
		assert.Nil(t, layout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read")
	})
}
