// Package document abstracts the visual state a theme is applied to: two
// marker-bearing elements (root and body), an optional toggle icon, and an
// optional toggle control.
package document

// ClassLight is the marker class identifying light mode. Dark mode is the
// absence of the marker.
const ClassLight = "light-mode"

// Document is the visual-state collaborator. Icon and Control may return
// nil; callers skip the corresponding step silently.
type Document interface {
	// Root returns the root element. Theme markers cascade from here.
	Root() Element

	// Body returns the body element.
	Body() Element

	// Icon returns the toggle icon, or nil if the document has none.
	Icon() Icon

	// Control returns the toggle control, or nil if the document has none.
	Control() Control
}

// Element carries a mutable set of classification markers.
type Element interface {
	AddClass(name string) error
	RemoveClass(name string) error
	HasClass(name string) bool
}

// Icon is a glyph display synchronized with the active theme.
type Icon interface {
	SetGlyph(glyph string) error
}

// Control is a user-activatable toggle. OnActivate registers the handler
// invoked on each activation, replacing any prior handler.
type Control interface {
	OnActivate(handler func())
}
