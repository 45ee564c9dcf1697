// Package platform provides OS-agnostic access to the system color-scheme
// preference.
package platform

// Theme represents the system color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Platform provides access to OS-specific services.
type Platform interface {
	// Name returns the platform identifier (e.g., "darwin", "linux", "windows").
	Name() string

	// IsSupported returns true if this platform is fully supported.
	IsSupported() bool

	// Theme returns the theme detection service.
	Theme() ThemeService
}

// ThemeService reports the system color-scheme preference.
type ThemeService interface {
	// Detect returns the current system theme (light or dark).
	// Detection failures degrade to light.
	Detect() Theme
}
