// Package session implements the document abstraction over a state
// directory. Markers are files, the icon is a glyph file plus an optional
// rendered PNG, all consumable by status-bar modules and scripts.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/darkawower/shade/internal/document"
	"github.com/darkawower/shade/internal/icon"
	"github.com/darkawower/shade/internal/theme"
)

// File names within the session directory.
const (
	glyphFileName = "glyph"
	iconFileName  = "icon.png"
)

// Document is a file-backed document.Document rooted at a directory.
// Marker state is the presence of "<element>.<class>" files.
type Document struct {
	dir       string
	glyphFile bool
	iconFile  bool
	iconSize  int
}

// Option configures a session document.
type Option func(*Document)

// WithGlyphFile toggles writing the textual glyph file.
func WithGlyphFile(enabled bool) Option {
	return func(d *Document) {
		d.glyphFile = enabled
	}
}

// WithIconFile toggles rendering the PNG icon.
func WithIconFile(enabled bool) Option {
	return func(d *Document) {
		d.iconFile = enabled
	}
}

// WithIconSize sets the rendered icon size in pixels.
func WithIconSize(size int) Option {
	return func(d *Document) {
		d.iconSize = size
	}
}

// NewDocument creates a session document. The directory is created on the
// first mutation.
func NewDocument(dir string, opts ...Option) *Document {
	d := &Document{
		dir:       dir,
		glyphFile: true,
		iconFile:  true,
		iconSize:  icon.DefaultSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dir returns the session directory.
func (d *Document) Dir() string {
	return d.dir
}

// Root returns the root element.
func (d *Document) Root() document.Element {
	return &fileElement{dir: d.dir, name: "root"}
}

// Body returns the body element.
func (d *Document) Body() document.Element {
	return &fileElement{dir: d.dir, name: "body"}
}

// Icon returns the session icon, or nil when both outputs are disabled.
func (d *Document) Icon() document.Icon {
	if !d.glyphFile && !d.iconFile {
		return nil
	}
	return &fileIcon{doc: d}
}

// Control returns nil: the CLI and the HTTP server act as controls for a
// session document.
func (d *Document) Control() document.Control {
	return nil
}

// Compile-time check that Document implements document.Document.
var _ document.Document = (*Document)(nil)

// fileElement stores markers as empty files named "<element>.<class>".
type fileElement struct {
	dir  string
	name string
}

func (e *fileElement) markerPath(class string) string {
	return filepath.Join(e.dir, e.name+"."+class)
}

// AddClass creates the marker file. Idempotent.
func (e *fileElement) AddClass(class string) error {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(e.markerPath(class), nil, 0644); err != nil {
		return fmt.Errorf("failed to write marker: %w", err)
	}
	return nil
}

// RemoveClass removes the marker file. Removing an absent marker is a no-op.
func (e *fileElement) RemoveClass(class string) error {
	if err := os.Remove(e.markerPath(class)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove marker: %w", err)
	}
	return nil
}

// HasClass reports whether the marker file exists.
func (e *fileElement) HasClass(class string) bool {
	_, err := os.Stat(e.markerPath(class))
	return err == nil
}

// fileIcon writes the glyph file and renders the PNG icon.
type fileIcon struct {
	doc *Document
}

// SetGlyph updates the enabled icon outputs.
func (i *fileIcon) SetGlyph(glyph string) error {
	d := i.doc

	if d.glyphFile {
		if err := os.MkdirAll(d.dir, 0755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
		path := filepath.Join(d.dir, glyphFileName)
		if err := os.WriteFile(path, []byte(glyph+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write glyph file: %w", err)
		}
	}

	if d.iconFile {
		// the moon glyph is shown while light is active
		t := theme.Dark
		if glyph == theme.GlyphMoon {
			t = theme.Light
		}
		if err := icon.WriteFile(filepath.Join(d.dir, iconFileName), t, d.iconSize); err != nil {
			return err
		}
	}

	return nil
}

// GlyphPath returns the glyph file path.
func (d *Document) GlyphPath() string {
	return filepath.Join(d.dir, glyphFileName)
}

// IconPath returns the rendered icon path.
func (d *Document) IconPath() string {
	return filepath.Join(d.dir, iconFileName)
}
