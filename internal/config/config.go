// Package config loads and validates strata.json project configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/strata-dev/strata/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "strata.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultPages is the default pages directory.
	DefaultPages = "app/pages"

	// DefaultOutput is the default static export directory.
	DefaultOutput = "dist"
)

// Config represents the complete strata.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Host is the server host.
	Host string `json:"host,omitempty"`

	// Port is the server port.
	Port int `json:"port,omitempty"`

	// Paths contains path configuration for project directories.
	Paths PathsConfig `json:"paths,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// configPath is where the config was loaded from.
	configPath string
}

// PathsConfig holds the project directory layout.
type PathsConfig struct {
	// Pages is the directory holding page sources, relative to the
	// project root.
	Pages string `json:"pages,omitempty"`

	// Output is the static export directory.
	Output string `json:"output,omitempty"`
}

// DevConfig holds development server settings.
type DevConfig struct {
	// Watch enables the file watcher and browser live reload.
	Watch bool `json:"watch,omitempty"`

	// DebounceMS is the watcher debounce delay in milliseconds.
	DebounceMS int `json:"debounceMs,omitempty"`
}

// New returns a Config with defaults applied.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from dir/strata.json.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E001").
				WithDetail("No strata.json found in " + filepath.Dir(path)).
				WithSuggestion("Create strata.json in the project root")
		}
		return nil, errors.New("E002").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E002").
			WithDetail("Failed to parse strata.json: " + err.Error()).
			WithSuggestion("Check that strata.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromWorkingDir walks up from the current directory to find and load
// the nearest strata.json.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// FindProjectRoot walks up directories to find the one containing
// strata.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E001").
				WithDetail("No strata.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Paths.Pages == "" {
		c.Paths.Pages = DefaultPages
	}
	if c.Paths.Output == "" {
		c.Paths.Output = DefaultOutput
	}
	if c.Dev.DebounceMS == 0 {
		c.Dev.DebounceMS = 250
	}
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.New("E003").
			WithDetail("Port must be between 0 and 65535")
	}
	if c.Dev.DebounceMS < 0 {
		return errors.New("E003").
			WithDetail("Watcher debounce must not be negative")
	}
	return nil
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// Address returns the host:port address for the server.
func (c *Config) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// PagesPath returns the absolute path to the pages directory.
func (c *Config) PagesPath() string {
	if filepath.IsAbs(c.Paths.Pages) {
		return c.Paths.Pages
	}
	return filepath.Join(c.Dir(), c.Paths.Pages)
}

// OutputPath returns the absolute path to the static export directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Paths.Output) {
		return c.Paths.Output
	}
	return filepath.Join(c.Dir(), c.Paths.Output)
}
