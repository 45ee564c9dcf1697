package linux

import (
	"testing"

	"github.com/darkawower/shade/internal/platform"
	"github.com/stretchr/testify/assert"
)

func TestPlatform(t *testing.T) {
	p := New()

	assert.Equal(t, "linux", p.Name())
	assert.True(t, p.IsSupported())
	assert.NotNil(t, p.Theme())
}

func TestThemeService_Detect(t *testing.T) {
	// Depends on the desktop environment; without gsettings the service
	// falls back to light.
	svc := NewThemeService()
	result := svc.Detect()
	assert.True(t, result == platform.ThemeLight || result == platform.ThemeDark)
}
