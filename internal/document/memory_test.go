package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Elements(t *testing.T) {
	d := NewMemory()

	require.NoError(t, d.Root().AddClass(ClassLight))
	assert.True(t, d.Root().HasClass(ClassLight))
	assert.False(t, d.Body().HasClass(ClassLight))

	// adding twice leaves a single marker
	require.NoError(t, d.Root().AddClass(ClassLight))
	assert.Equal(t, []string{ClassLight}, d.RootElement().Classes())

	require.NoError(t, d.Root().RemoveClass(ClassLight))
	assert.False(t, d.Root().HasClass(ClassLight))

	// removing an absent marker is a no-op
	require.NoError(t, d.Root().RemoveClass(ClassLight))
	assert.Empty(t, d.RootElement().Classes())
}

func TestMemory_Icon(t *testing.T) {
	d := NewMemory()
	require.NotNil(t, d.Icon())

	require.NoError(t, d.Icon().SetGlyph("☾"))
	assert.Equal(t, "☾", d.IconState().Glyph)
	assert.Equal(t, 1, d.IconState().Sets)
}

func TestMemory_WithoutIcon(t *testing.T) {
	d := NewMemory(WithoutIcon())
	assert.Nil(t, d.Icon())
	assert.NotNil(t, d.Control())
}

func TestMemory_Control(t *testing.T) {
	d := NewMemory()

	fired := 0
	d.Control().OnActivate(func() { fired++ })
	assert.True(t, d.ControlState().Registered())

	d.ControlState().Activate()
	d.ControlState().Activate()
	assert.Equal(t, 2, fired)

	// re-registration replaces the handler
	d.Control().OnActivate(func() { fired += 10 })
	d.ControlState().Activate()
	assert.Equal(t, 12, fired)
}

func TestMemory_WithoutControl(t *testing.T) {
	d := NewMemory(WithoutControl())
	assert.Nil(t, d.Control())

	// activation on the detached control is harmless
	assert.NotPanics(t, func() {
		(&MemoryControl{}).Activate()
	})
}
