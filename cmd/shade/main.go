// Package main is the entry point for the shade CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/spf13/cobra"

	"github.com/darkawower/shade/internal/config"
	"github.com/darkawower/shade/internal/controller"
	"github.com/darkawower/shade/internal/platform"
	"github.com/darkawower/shade/internal/server"
	"github.com/darkawower/shade/internal/session"
	"github.com/darkawower/shade/internal/store"
	"github.com/darkawower/shade/internal/theme"
	"github.com/darkawower/shade/internal/ui"

	// register platform implementations
	_ "github.com/darkawower/shade/internal/platform/darwin"
	_ "github.com/darkawower/shade/internal/platform/linux"
	_ "github.com/darkawower/shade/internal/platform/stub"
	_ "github.com/darkawower/shade/internal/platform/windows"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile string
	dryRun  bool
	verbose bool
	quiet   bool

	// Global output
	out *ui.Output
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shade",
		Short: "Light/dark theme controller",
		Long: `Shade keeps a desktop session's light/dark theme in sync with an
explicitly persisted preference or, when none exists, with the system's
reported color scheme. It exposes the active theme to status bars via
marker files, a glyph file and a rendered icon, and runs user hooks on
every change.`,
	}

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/shade/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "show what would be done without doing it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Add commands
	rootCmd.AddCommand(
		newInitCmd(),
		newStatusCmd(),
		newApplyCmd(),
		newToggleCmd(),
		newSetCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// initOutput initializes the output.
func initOutput() {
	out = ui.DefaultOutput()
	out.SetVerbose(verbose)
	out.SetQuiet(quiet)
}

// newController builds a controller from the config, wiring the file
// store, the platform theme service, the session document and the hooks.
func newController(ctx context.Context, cfg *config.Config) *controller.Controller {
	doc := session.NewDocument(cfg.Session.Dir,
		session.WithGlyphFile(cfg.Session.GlyphFile),
		session.WithIconFile(cfg.Session.IconFile),
		session.WithIconSize(cfg.Session.IconSize),
	)

	var opts []controller.Option
	hooks := session.NewHooks(cfg.Hooks.Light, cfg.Hooks.Dark)
	if !hooks.Empty() {
		opts = append(opts, controller.WithAfterApply(func(t theme.Theme) {
			if err := hooks.Run(ctx, t); err != nil {
				out.Warning("Hook failed: %v", err)
			}
		}))
	}

	st := store.NewFileStore(cfg.State.Path)
	return controller.New(st, platform.Current().Theme(), doc, opts...)
}

// loadConfig loads the configuration with a consistent error hint.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		out.ErrorWithHint(err.Error(), "Run 'shade init' to create a default configuration")
		return nil, err
	}
	return cfg, nil
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize shade configuration",
		Long:  "Creates default configuration file and directories.",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			configDir := config.DefaultConfigDir()
			configPath := filepath.Join(configDir, "config.toml")

			// Check if already exists
			if _, err := os.Stat(configPath); err == nil && !force {
				out.Warning("Configuration already exists at %s", configPath)
				out.Info("Use --force to overwrite")
				return nil
			}

			// Create default config
			cfg := config.DefaultConfig()

			// Create directories
			if err := cfg.EnsureDirectories(); err != nil {
				out.Error("Failed to create directories: %v", err)
				return err
			}

			// Write config
			if err := cfg.Save(configPath); err != nil {
				out.Error("Failed to write config: %v", err)
				return err
			}

			out.Success("Shade initialized")
			out.Field("Config", configPath)
			out.Field("State", cfg.State.Path)
			out.Field("Session", cfg.Session.Dir)
			out.Print("")
			out.Info("Edit %s to configure hooks", configPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration")

	return cmd
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the resolved theme and session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctrl := newController(cmd.Context(), cfg)
			resolved, source := ctrl.ResolveWithSource()

			doc := session.NewDocument(cfg.Session.Dir)

			out.Print("")
			out.ThemeInfo(resolved.String(), string(source), resolved.Glyph())
			out.Field("Platform", platform.Current().Name())
			out.Field("State", cfg.State.Path)
			out.Field("Session", cfg.Session.Dir)
			if cfg.Session.GlyphFile {
				out.Field("Glyph file", doc.GlyphPath())
			}
			if cfg.Session.IconFile {
				out.Field("Icon", doc.IconPath())
			}
			out.Print("")

			return nil
		},
	}
}

// newApplyCmd creates the apply command.
func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Resolve the theme and apply it to the session",
		Long: `Resolves the active theme (persisted preference first, system
preference otherwise) and renders it: marker files, glyph file, icon
and hooks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctrl := newController(cmd.Context(), cfg)
			resolved, source := ctrl.ResolveWithSource()

			if dryRun {
				out.Info("Would apply theme: %s (from %s)", resolved, source)
				return nil
			}

			if err := ctrl.Init(); err != nil {
				out.Error("Failed to apply theme: %v", err)
				return err
			}

			out.Success("Theme applied")
			out.ThemeInfo(resolved.String(), string(source), resolved.Glyph())

			return nil
		},
	}
}

// newToggleCmd creates the toggle command.
func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip the theme and persist the choice",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctrl := newController(cmd.Context(), cfg)
			current := ctrl.Resolve()

			if dryRun {
				out.Info("Would switch theme: %s -> %s", current, current.Toggle())
				return nil
			}

			if err := ctrl.Toggle(); err != nil {
				out.Error("Failed to toggle theme: %v", err)
				return err
			}

			next := current.Toggle()
			out.Success("Theme switched")
			out.ThemeInfo(next.String(), string(controller.SourceStored), next.Glyph())

			return nil
		},
	}
}

// newSetCmd creates the set command.
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Persist an explicit theme choice and apply it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			t, ok := theme.Parse(args[0])
			if !ok {
				out.Error("Unknown theme: %s (must be light or dark)", args[0])
				return fmt.Errorf("unknown theme: %s", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctrl := newController(cmd.Context(), cfg)

			if dryRun {
				out.Info("Would set theme: %s", t)
				return nil
			}

			if err := ctrl.Set(t); err != nil {
				out.Error("Failed to set theme: %v", err)
				return err
			}

			out.Success("Theme set")
			out.ThemeInfo(t.String(), string(controller.SourceStored), t.Glyph())

			return nil
		},
	}
}

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP toggle control",
		Long: `Applies the resolved theme, then serves an HTTP control surface:
GET /theme, POST /theme/toggle, PUT /theme/{theme}, GET /icon.png.
The config file is watched for changes and re-applied on edit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()
			setupLogs()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}

			ctx := cmd.Context()

			swap := &swappableController{ctrl: newController(ctx, cfg)}
			if err := swap.ctrl.Init(); err != nil {
				out.Error("Failed to apply theme: %v", err)
				return err
			}

			srv := server.New(swap, server.Config{
				Listen:          cfg.Server.Listen,
				ReadTimeout:     cfg.Server.ReadTimeout.Duration,
				WriteTimeout:    cfg.Server.WriteTimeout.Duration,
				ShutdownTimeout: cfg.Server.ShutdownTimeout.Duration,
				Version:         version,
				IconSize:        cfg.Session.IconSize,
			})

			// hot-reload: rebuild the controller from the fresh config and
			// re-apply the resolved theme
			srv.Reload = func() error {
				fresh, err := config.Load(cfg.ConfigPath())
				if err != nil {
					return fmt.Errorf("failed to reload config: %w", err)
				}
				ctrl := newController(ctx, fresh)
				swap.replace(ctrl)
				return ctrl.Apply(ctrl.Resolve())
			}

			if cfg.Server.WatchConfig {
				if _, err := os.Stat(cfg.ConfigPath()); err == nil {
					if err := srv.StartWatcher(ctx, cfg.ConfigPath()); err != nil {
						return err
					}
				}
			}

			out.Info("Serving theme control on %s", cfg.Server.Listen)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			initOutput()
			out.Print("shade version %s", version)
		},
	}
}

// setupLogs configures lgr for serve mode.
func setupLogs() {
	log.Setup(log.Msec)
	if verbose {
		log.Setup(log.Debug, log.CallerFunc, log.CallerFile)
	}
}

// swappableController delegates to the current controller and allows the
// config watcher to replace it atomically.
type swappableController struct {
	mu   sync.RWMutex
	ctrl *controller.Controller
}

func (s *swappableController) get() *controller.Controller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctrl
}

func (s *swappableController) replace(c *controller.Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl = c
}

func (s *swappableController) ResolveWithSource() (theme.Theme, controller.Source) {
	return s.get().ResolveWithSource()
}

func (s *swappableController) Toggle() error {
	return s.get().Toggle()
}

func (s *swappableController) Set(t theme.Theme) error {
	return s.get().Set(t)
}
