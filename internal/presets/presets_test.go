package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := Default()
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []string{"menu1", "menu2", "menu3", "menu4"}, r.Codes())

	path, ok := r.Lookup("menu1")
	require.True(t, ok)
	assert.Equal(t, "images/menu1.jpg", path)

	_, ok = r.Lookup("menu9")
	assert.False(t, ok)
	_, ok = r.Lookup(" menu1")
	assert.False(t, ok, "lookup is exact match; callers trim")
}

func TestNewDropsEmptyEntries(t *testing.T) {
	t.Parallel()

	r := New(map[string]string{
		"a":  "images/a.jpg",
		"":   "images/ignored.jpg",
		"b ": " images/b.jpg ",
		"c":  "",
	})
	assert.Equal(t, []string{"a", "b"}, r.Codes())

	path, ok := r.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "images/b.jpg", path)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	content := "[presets]\nlunch = \"images/lunch.jpg\"\ndinner = \"images/dinner.jpg\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dinner", "lunch"}, r.Codes())
}

func TestLoadFileEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
