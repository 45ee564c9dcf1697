// Package linux provides Linux-specific platform implementations.
package linux

import "github.com/darkawower/shade/internal/platform"

func init() {
	platform.Register("linux", func() platform.Platform {
		return New()
	})
}

// Platform implements platform.Platform for Linux desktops.
type Platform struct {
	theme *ThemeService
}

// New creates a new Linux platform instance.
func New() *Platform {
	return &Platform{
		theme: NewThemeService(),
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return "linux"
}

// IsSupported returns true as Linux is fully supported.
func (p *Platform) IsSupported() bool {
	return true
}

// Theme returns the theme detection service.
func (p *Platform) Theme() platform.ThemeService {
	return p.theme
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)
