package style_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfmt/pkg/style"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	catalog := NewCatalog()
	require.Equal(t, []string{"compact", "default"}, catalog.Names())

	s, ok := catalog.Get("Default")
	require.True(t, ok)
	require.Equal(t, Default, s)

	custom := Compact
	custom.KeywordCasing = Lower
	catalog.Save(" Team ", custom)

	s, ok = catalog.Get("team")
	require.True(t, ok)
	require.Equal(t, custom, s)
	require.Equal(t, []string{"compact", "default", "team"}, catalog.Names())

	require.True(t, catalog.Remove("TEAM"))
	require.False(t, catalog.Remove("team"))

	_, ok = catalog.Get("team")
	require.False(t, ok)
}

func TestCatalogsAreIndependent(t *testing.T) {
	a := NewCatalog()
	b := NewCatalog()

	a.Remove(DefaultPreset)

	_, ok := b.Get(DefaultPreset)
	require.True(t, ok)
}
