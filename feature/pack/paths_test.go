package pack

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath_CaseInsensitive(t *testing.T) {
	fsys := afero.NewMemMapFs()
	stored := filepath.FromSlash("client/Data/Strings/StringTable_Dialog.xml")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(stored), 0o755))
	require.NoError(t, afero.WriteFile(fsys, stored, []byte("x"), 0o644))

	resolved := ResolvePath(fsys, "client", filepath.FromSlash("data/strings/stringtable_dialog.xml"))

	exists, err := afero.Exists(fsys, resolved)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestResolvePath_MissingComponentsPassThrough(t *testing.T) {
	fsys := afero.NewMemMapFs()

	resolved := ResolvePath(fsys, "base", filepath.FromSlash("no/such/file.xml"))
	assert.Equal(t, filepath.FromSlash("base/no/such/file.xml"), resolved)
}

func TestResolvePath_ExactMatchPreferred(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(filepath.FromSlash("base/data"), 0o755))

	resolved := ResolvePath(fsys, "base", "data")
	assert.Equal(t, filepath.FromSlash("base/data"), resolved)
}
