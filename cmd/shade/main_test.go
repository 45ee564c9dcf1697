package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkawower/shade/internal/controller"
	"github.com/darkawower/shade/internal/document"
	"github.com/darkawower/shade/internal/platform"
	"github.com/darkawower/shade/internal/server"
	"github.com/darkawower/shade/internal/store"
	"github.com/darkawower/shade/internal/theme"
)

type lightSystem struct{}

func (lightSystem) Detect() platform.Theme { return platform.ThemeLight }

func TestSwappableController(t *testing.T) {
	doc := document.NewMemory()
	st := store.NewMemory()
	swap := &swappableController{ctrl: controller.New(st, lightSystem{}, doc)}

	// satisfies the server-side interface
	var _ server.ThemeController = swap

	resolved, source := swap.ResolveWithSource()
	assert.Equal(t, theme.Light, resolved)
	assert.Equal(t, controller.SourceSystem, source)

	require.NoError(t, swap.Toggle())
	resolved, source = swap.ResolveWithSource()
	assert.Equal(t, theme.Dark, resolved)
	assert.Equal(t, controller.SourceStored, source)

	// replacement swaps the delegate
	other := document.NewMemory()
	swap.replace(controller.New(store.NewMemory(), lightSystem{}, other))
	require.NoError(t, swap.Set(theme.Dark))
	assert.Equal(t, theme.GlyphSun, other.IconState().Glyph)
	// the old document is untouched by the new controller
	assert.Equal(t, theme.GlyphSun, doc.IconState().Glyph)
}
