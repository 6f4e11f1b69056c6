package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver_DefaultMustBeAvailable(t *testing.T) {
	_, err := NewResolver([]string{"generic", "bulma"}, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestNewResolver_EmptyAllowList(t *testing.T) {
	_, err := NewResolver(nil, "generic")
	assert.Error(t, err)
}

func TestResolve_NoOverrideUsesDefault(t *testing.T) {
	r, err := NewResolver([]string{"generic", "bulma"}, "generic")
	require.NoError(t, err)

	assert.Equal(t, "generic/list", r.Resolve("list", ""))
	assert.Equal(t, "generic/form", r.Resolve("form", ""))
}

func TestResolve_OverrideUsedVerbatim(t *testing.T) {
	r, err := NewResolver([]string{"generic", "bulma"}, "generic")
	require.NoError(t, err)

	assert.Equal(t, "bulma/list", r.Resolve("list", "bulma"))

	// Resolution does not re-validate: a stale override passes through.
	assert.Equal(t, "retired/view", r.Resolve("view", "retired"))
}

func TestValid(t *testing.T) {
	r, err := NewResolver([]string{"generic", "bulma"}, "generic")
	require.NoError(t, err)

	assert.True(t, r.Valid("bulma"))
	assert.False(t, r.Valid("not-a-real-theme"))
}

func TestModules_ReturnsCopy(t *testing.T) {
	r, err := NewResolver([]string{"generic", "bulma"}, "generic")
	require.NoError(t, err)

	mods := r.Modules()
	require.Equal(t, []string{"generic", "bulma"}, mods)

	mods[0] = "mutated"
	assert.Equal(t, []string{"generic", "bulma"}, r.Modules())
}
