// Package theme defines the binary light/dark theme value.
package theme

// Theme represents the active theme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Toggle-icon glyphs. The icon shows the theme a toggle would switch to:
// moon while light is active, sun while dark is active.
const (
	GlyphMoon = "☾"
	GlyphSun  = "☀"
)

// Parse converts a stored string into a Theme. Only the exact literals
// "light" and "dark" are accepted.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Glyph returns the toggle-icon glyph for the theme.
func (t Theme) Glyph() string {
	if t == Light {
		return GlyphMoon
	}
	return GlyphSun
}

// String returns the string representation of the theme.
func (t Theme) String() string {
	return string(t)
}
