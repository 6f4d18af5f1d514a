package files

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueName(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/cache"

	name, err := UniqueName(fs, dir, "ciao-data-export-2020-7-3", ".csv")
	require.NoError(t, err)
	assert.Equal(t, "/cache/ciao-data-export-2020-7-3.csv", name)

	require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0o600))
	name, err = UniqueName(fs, dir, "ciao-data-export-2020-7-3", ".csv")
	require.NoError(t, err)
	assert.Equal(t, "/cache/ciao-data-export-2020-7-3-1.csv", name)

	require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0o600))
	name, err = UniqueName(fs, dir, "ciao-data-export-2020-7-3", ".csv")
	require.NoError(t, err)
	assert.Equal(t, "/cache/ciao-data-export-2020-7-3-2.csv", name)
}

func TestListFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/docs/archive"

	files, err := ListFiles(fs, dir)
	require.NoError(t, err)
	assert.Empty(t, files)

	base := time.Date(2020, time.July, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"a.csv", "b.csv", "c.csv"} {
		p := dir + "/" + name
		require.NoError(t, afero.WriteFile(fs, p, []byte(name), 0o600))
		require.NoError(t, fs.Chtimes(p, base, base.Add(time.Duration(i)*time.Hour)))
	}
	require.NoError(t, fs.MkdirAll(dir+"/nested", 0o700))

	files, err = ListFiles(fs, dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "c.csv", files[0].Name())
	assert.Equal(t, "b.csv", files[1].Name())
	assert.Equal(t, "a.csv", files[2].Name())
}

func TestSafeJoin(t *testing.T) {
	p, err := SafeJoin("/docs/archive", "ciao-data-export-2020-7-3.csv")
	require.NoError(t, err)
	assert.Equal(t, "/docs/archive/ciao-data-export-2020-7-3.csv", p)

	for _, bad := range []string{"", ".", "..", "../secret", "a/b.csv", `a\b.csv`} {
		_, err := SafeJoin("/docs/archive", bad)
		assert.ErrorIs(t, err, ErrInvalidName, bad)
	}
}

func TestLayout_ArchiveDir(t *testing.T) {
	l := NewLayout(afero.NewMemMapFs(), "/cache", "/docs")
	assert.Equal(t, "/docs/archive", l.ArchiveDir())
}
