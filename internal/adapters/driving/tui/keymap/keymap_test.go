package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_UpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Up.Keys()
	assert.Contains(t, keys, "up")
	assert.Contains(t, keys, "k")
}

func TestDefaultKeyMap_DownBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Down.Keys()
	assert.Contains(t, keys, "down")
	assert.Contains(t, keys, "j")
}

func TestDefaultKeyMap_PageBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.NextPage.Keys(), "right")
	assert.Contains(t, km.NextPage.Keys(), "l")
	assert.Contains(t, km.PrevPage.Keys(), "left")
	assert.Contains(t, km.PrevPage.Keys(), "h")
}

func TestDefaultKeyMap_FilterBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Filter.Keys(), "/")
}

func TestDefaultKeyMap_DeleteBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Delete.Keys(), "d")
}

func TestDefaultKeyMap_ConfirmBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Confirm.Keys(), "enter")
}

func TestDefaultKeyMap_CancelBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Cancel.Keys(), "esc")
}

func TestBrowseHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.BrowseHelp()

	assert.NotEmpty(t, bindings)
	for _, binding := range bindings {
		assert.NotEmpty(t, binding.Help().Key)
		assert.NotEmpty(t, binding.Help().Desc)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
}
