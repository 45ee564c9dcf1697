package session

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/darkawower/shade/internal/theme"
)

// defaultHookTimeout bounds a single hook command.
const defaultHookTimeout = 10 * time.Second

// Hooks runs user-configured shell commands after a theme is applied.
type Hooks struct {
	light   []string
	dark    []string
	timeout time.Duration
}

// NewHooks creates a hook runner with per-theme command lists.
func NewHooks(light, dark []string) *Hooks {
	return &Hooks{
		light:   light,
		dark:    dark,
		timeout: defaultHookTimeout,
	}
}

// Run executes the commands for the theme, in order, via the shell.
// The first failure aborts the remaining commands.
func (h *Hooks) Run(ctx context.Context, t theme.Theme) error {
	commands := h.dark
	if t == theme.Light {
		commands = h.light
	}

	for _, command := range commands {
		runCtx, cancel := context.WithTimeout(ctx, h.timeout)
		cmd := exec.CommandContext(runCtx, "sh", "-c", command)
		out, err := cmd.CombinedOutput()
		cancel()
		if err != nil {
			return fmt.Errorf("hook %q failed: %w (output: %s)", command, err, out)
		}
	}

	return nil
}

// Empty reports whether no hooks are configured for either theme.
func (h *Hooks) Empty() bool {
	return len(h.light) == 0 && len(h.dark) == 0
}
