// Package stub provides a fallback platform implementation for unsupported systems.
package stub

import (
	"runtime"

	"github.com/darkawower/shade/internal/platform"
)

func init() {
	// Register stub as fallback for unsupported platforms
	// This will be overridden if a specific platform registers itself
	for _, os := range []string{"freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "aix"} {
		platform.Register(os, func() platform.Platform {
			return New()
		})
	}
}

// Platform implements platform.Platform as a fallback for unsupported systems.
type Platform struct {
	name string
}

// New creates a new stub platform instance.
func New() *Platform {
	return &Platform{
		name: runtime.GOOS,
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return p.name
}

// IsSupported returns false as this is a fallback implementation.
func (p *Platform) IsSupported() bool {
	return false
}

// Theme returns the theme detection service (stub).
func (p *Platform) Theme() platform.ThemeService {
	return &stubThemeService{}
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)

// stubThemeService always returns light theme.
type stubThemeService struct{}

func (s *stubThemeService) Detect() platform.Theme {
	return platform.ThemeLight
}
