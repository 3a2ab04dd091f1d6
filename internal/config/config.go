package config

import (
	"os"
	"path/filepath"

	"github.com/dori/gestor/internal/db"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DataDir       string `yaml:"data_dir"`
	Theme         string `yaml:"theme"`
	Notifications bool   `yaml:"notifications"`
	Log           Log    `yaml:"log"`
}

// Log configures the application logger
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
	File   string `yaml:"file"`   // path, "stderr", or empty for <data_dir>/gestor.log
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		DataDir: db.DefaultDataDir(),
		Theme:   "nord",
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file and applies environment overrides.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DBPath returns the database file inside the data directory
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "gestor.db")
}

// LogPath returns where log output goes
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, "gestor.log")
}

// Path returns the config file location: GESTOR_CONFIG, then
// $XDG_CONFIG_HOME/gestor/config.yaml, then ~/.config/gestor/config.yaml
func Path() (string, error) {
	if p := os.Getenv("GESTOR_CONFIG"); p != "" {
		return p, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gestor", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "gestor", "config.yaml"), nil
}

func (c *Config) applyEnv() {
	if dir := os.Getenv("GESTOR_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if theme := os.Getenv("GESTOR_THEME"); theme != "" {
		c.Theme = theme
	}
}

// applyDefaults fills in values a partial config file left empty
func (c *Config) applyDefaults() {
	d := Default()
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}
