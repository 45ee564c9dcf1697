package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type StateConfig struct {
	Path string `toml:"path"`
}

type SessionConfig struct {
	Dir       string `toml:"dir"`
	GlyphFile bool   `toml:"glyph-file"`
	IconFile  bool   `toml:"icon-file"`
	IconSize  int    `toml:"icon-size"`
}

type HooksConfig struct {
	Light []string `toml:"light"`
	Dark  []string `toml:"dark"`
}

type ServerConfig struct {
	Listen          string   `toml:"listen"`
	ReadTimeout     duration `toml:"read-timeout"`
	WriteTimeout    duration `toml:"write-timeout"`
	ShutdownTimeout duration `toml:"shutdown-timeout"`
	WatchConfig     bool     `toml:"watch-config"`
}

type Config struct {
	State   StateConfig   `toml:"state"`
	Session SessionConfig `toml:"session"`
	Hooks   HooksConfig   `toml:"hooks"`
	Server  ServerConfig  `toml:"server"`

	configPath string
}

// duration is a TOML-friendly wrapper around time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "shade")
}

func DefaultConfig() *Config {
	configDir := DefaultConfigDir()

	return &Config{
		State: StateConfig{
			Path: filepath.Join(configDir, "prefs.json"),
		},
		Session: SessionConfig{
			Dir:       filepath.Join(configDir, "session"),
			GlyphFile: true,
			IconFile:  true,
			IconSize:  32,
		},
		Server: ServerConfig{
			Listen:          "localhost:8253",
			ReadTimeout:     duration{5 * time.Second},
			WriteTimeout:    duration{5 * time.Second},
			ShutdownTimeout: duration{5 * time.Second},
			WatchConfig:     true,
		},
	}
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	cfg := DefaultConfig()
	cfg.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.postProcess()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) postProcess() {
	c.State.Path = expandPath(c.State.Path)
	c.Session.Dir = expandPath(c.Session.Dir)

	for i, cmd := range c.Hooks.Light {
		c.Hooks.Light[i] = expandEnv(cmd)
	}
	for i, cmd := range c.Hooks.Dark {
		c.Hooks.Dark[i] = expandEnv(cmd)
	}
}

func (c *Config) Validate() error {
	if c.State.Path == "" {
		return fmt.Errorf("state path is required")
	}

	if c.Session.Dir == "" {
		return fmt.Errorf("session dir is required")
	}

	if c.Session.IconSize < 0 {
		return fmt.Errorf("invalid icon size: %d", c.Session.IconSize)
	}

	if c.Server.Listen == "" {
		return fmt.Errorf("server listen address is required")
	}

	return nil
}

func (c *Config) ConfigPath() string {
	return c.configPath
}

// HookCommands returns the hook commands for a theme name.
func (c *Config) HookCommands(theme string) []string {
	if theme == "light" {
		return c.Hooks.Light
	}
	return c.Hooks.Dark
}

func (c *Config) Save(path string) error {
	if path == "" {
		path = c.configPath
	}
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.State.Path),
		c.Session.Dir,
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func expandEnv(s string) string {
	if s == "" {
		return ""
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		inner := s[2 : len(s)-1]

		if idx := strings.Index(inner, ":-"); idx != -1 {
			varName := inner[:idx]
			defaultVal := inner[idx+2:]
			if val := os.Getenv(varName); val != "" {
				return val
			}
			return defaultVal
		}

		return os.Getenv(inner)
	}

	return s
}
