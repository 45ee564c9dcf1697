// Package controller owns the theme lifecycle: resolving the active theme
// from storage and the system signal, applying it to a document, and
// toggling it.
package controller

import (
	"fmt"
	"sync"

	"github.com/darkawower/shade/internal/document"
	"github.com/darkawower/shade/internal/platform"
	"github.com/darkawower/shade/internal/store"
	"github.com/darkawower/shade/internal/theme"
)

// Source identifies which collaborator decided the resolved theme.
type Source string

const (
	SourceStored Source = "stored"
	SourceSystem Source = "system"
)

// Controller reconciles the theme between persistent storage and the
// system preference and applies it to a document. The current theme is
// never cached: every decision re-reads both collaborators.
type Controller struct {
	store  store.Store
	system platform.ThemeService
	doc    document.Document

	afterApply func(theme.Theme)

	initOnce sync.Once
	initErr  error
}

// Option is a function that configures the Controller.
type Option func(*Controller)

// WithAfterApply registers a callback invoked after every successful
// Apply with the applied theme. Used to chain side channels such as hook
// commands.
func WithAfterApply(fn func(theme.Theme)) Option {
	return func(c *Controller) {
		c.afterApply = fn
	}
}

// New creates a Controller wired to the given collaborators.
func New(st store.Store, system platform.ThemeService, doc document.Document, opts ...Option) *Controller {
	c := &Controller{
		store:  st,
		system: system,
		doc:    doc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the active theme. A valid persisted preference takes
// strict priority; otherwise the system signal decides. Absent or
// unreadable storage and unknown stored values degrade to the signal.
func (c *Controller) Resolve() theme.Theme {
	t, _ := c.ResolveWithSource()
	return t
}

// ResolveWithSource returns the active theme and which collaborator
// decided it.
func (c *Controller) ResolveWithSource() (theme.Theme, Source) {
	if v, ok, err := c.store.Get(store.ThemeKey); err == nil && ok {
		if t, valid := theme.Parse(v); valid {
			return t, SourceStored
		}
	}

	if c.system.Detect() == platform.ThemeDark {
		return theme.Dark, SourceSystem
	}
	return theme.Light, SourceSystem
}

// Apply renders the theme onto the document. The light marker is removed
// from root and body unconditionally, then added to the root only for
// light. The icon glyph is synchronized when the document has one.
// Applying the same theme twice yields the same visual state.
func (c *Controller) Apply(t theme.Theme) error {
	root := c.doc.Root()
	body := c.doc.Body()

	if err := root.RemoveClass(document.ClassLight); err != nil {
		return fmt.Errorf("failed to reset root marker: %w", err)
	}
	if err := body.RemoveClass(document.ClassLight); err != nil {
		return fmt.Errorf("failed to reset body marker: %w", err)
	}

	if t == theme.Light {
		if err := root.AddClass(document.ClassLight); err != nil {
			return fmt.Errorf("failed to set root marker: %w", err)
		}
	}

	if ic := c.doc.Icon(); ic != nil {
		if err := ic.SetGlyph(t.Glyph()); err != nil {
			return fmt.Errorf("failed to set icon glyph: %w", err)
		}
	}

	if c.afterApply != nil {
		c.afterApply(t)
	}

	return nil
}

// Toggle flips the resolved theme, persists the new value and applies it.
// Exactly one storage write and one visual update per call. Storage write
// failures propagate.
func (c *Controller) Toggle() error {
	next := c.Resolve().Toggle()

	if err := c.store.Set(store.ThemeKey, next.String()); err != nil {
		return err
	}

	return c.Apply(next)
}

// Set persists an explicit theme choice and applies it.
func (c *Controller) Set(t theme.Theme) error {
	if err := c.store.Set(store.ThemeKey, t.String()); err != nil {
		return err
	}
	return c.Apply(t)
}

// Init resolves and applies the theme exactly once, then registers Toggle
// as the activation handler of the document control when one exists.
// Repeat calls are no-ops returning the first result.
func (c *Controller) Init() error {
	c.initOnce.Do(func() {
		c.initErr = c.Apply(c.Resolve())

		if ctl := c.doc.Control(); ctl != nil {
			ctl.OnActivate(func() {
				_ = c.Toggle()
			})
		}
	})
	return c.initErr
}
