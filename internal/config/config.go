// Package config handles the XDG configuration directory, the config file,
// and resolution of the lists directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskcli"

	// ConfigFile is the YAML config filename inside the config directory.
	ConfigFile = "config.yml"

	// DefaultListsDir is used when neither a flag nor the config file names one.
	// Relative to the working directory.
	DefaultListsDir = "lists"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// ListsDir is the base directory holding one file per list.
	ListsDir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses success messages.
	Quiet bool

	// ClearScreen clears the terminal between REPL iterations.
	ClearScreen bool
}

// File is the on-disk shape of config.yml.
type File struct {
	ListsDir    string `yaml:"lists_dir,omitempty"`
	Quiet       bool   `yaml:"quiet,omitempty"`
	ClearScreen *bool  `yaml:"clear_screen,omitempty"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskcli or $HOME/.config/taskcli.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, ListsDir: DefaultListsDir, ClearScreen: true}, nil
}

// Load creates a Config for configDir and applies config.yml if present.
// A missing file is not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.FilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", cfg.FilePath(), err)
	}
	cfg.apply(f)
	return cfg, nil
}

func (c *Config) apply(f File) {
	if f.ListsDir != "" {
		dir := ExpandTilde(f.ListsDir)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(c.Dir, dir)
		}
		c.ListsDir = dir
	}
	c.Quiet = f.Quiet
	if f.ClearScreen != nil {
		c.ClearScreen = *f.ClearScreen
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// FilePath returns the path to config.yml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// SetListsDir overrides the lists directory (from a flag).
func (c *Config) SetListsDir(dir string) {
	if dir == "" {
		return
	}
	c.ListsDir = ExpandTilde(dir)
}

// EnsureListsDir creates the lists directory if it doesn't exist.
func (c *Config) EnsureListsDir() error {
	if err := os.MkdirAll(c.ListsDir, 0o755); err != nil {
		return fmt.Errorf("creating lists directory: %w", err)
	}
	return nil
}
