package linux

import (
	"os/exec"
	"strings"

	"github.com/darkawower/shade/internal/platform"
)

// ThemeService implements platform.ThemeService for Linux desktops using
// gsettings. The freedesktop color-scheme key is checked first, with the
// GTK theme name as a fallback for older environments.
type ThemeService struct{}

// NewThemeService creates a new Linux theme service.
func NewThemeService() *ThemeService {
	return &ThemeService{}
}

// Detect returns the current system theme.
func (s *ThemeService) Detect() platform.Theme {
	cmd := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	output, err := cmd.Output()
	if err == nil {
		scheme := strings.Trim(strings.TrimSpace(string(output)), "'")
		if scheme == "prefer-dark" {
			return platform.ThemeDark
		}
		if scheme == "prefer-light" {
			return platform.ThemeLight
		}
	}

	cmd = exec.Command("gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	output, err = cmd.Output()
	if err != nil {
		return platform.ThemeLight
	}

	name := strings.Trim(strings.TrimSpace(string(output)), "'")
	if strings.Contains(strings.ToLower(name), "dark") {
		return platform.ThemeDark
	}

	return platform.ThemeLight
}
