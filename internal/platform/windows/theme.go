package windows

import (
	"os/exec"
	"strings"

	"github.com/darkawower/shade/internal/platform"
)

// ThemeService implements platform.ThemeService for Windows by querying
// the AppsUseLightTheme registry value.
type ThemeService struct{}

// NewThemeService creates a new Windows theme service.
func NewThemeService() *ThemeService {
	return &ThemeService{}
}

// Detect returns the current system theme.
func (s *ThemeService) Detect() platform.Theme {
	cmd := exec.Command("reg", "query",
		`HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`,
		"/v", "AppsUseLightTheme")
	output, err := cmd.Output()
	if err != nil {
		return platform.ThemeLight
	}

	// AppsUseLightTheme is 0x0 when apps use the dark theme
	out := string(output)
	if strings.Contains(out, "REG_DWORD") && strings.Contains(out, "0x0") {
		return platform.ThemeDark
	}

	return platform.ThemeLight
}
