// Package windows provides Windows-specific platform implementations.
package windows

import "github.com/darkawower/shade/internal/platform"

func init() {
	platform.Register("windows", func() platform.Platform {
		return New()
	})
}

// Platform implements platform.Platform for Windows.
type Platform struct {
	theme *ThemeService
}

// New creates a new Windows platform instance.
func New() *Platform {
	return &Platform{
		theme: NewThemeService(),
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return "windows"
}

// IsSupported returns true as Windows is fully supported.
func (p *Platform) IsSupported() bool {
	return true
}

// Theme returns the theme detection service.
func (p *Platform) Theme() platform.ThemeService {
	return p.theme
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)
