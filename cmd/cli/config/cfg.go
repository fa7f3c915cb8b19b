package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/lucax88x/datestamp/internal/homedir"
	"github.com/lucax88x/datestamp/internal/timefmt"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	KeyConfig   = "config"
	KeyLogLevel = "log-level"
	KeyPattern  = "pattern"
	KeyZone     = "zone"

	DefaultLogLevel = "info"
	DefaultPattern  = "normal"
	LocalZone       = "local"
)

type Cfg struct {
	LogLevel string            `yaml:"log_level"`
	Pattern  string            `yaml:"pattern"`
	Zone     string            `yaml:"zone"`
	Patterns map[string]string `yaml:"patterns"`
}

type ConfigData struct {
	LogLevel string            `yaml:"log_level"`
	Pattern  string            `yaml:"pattern"`
	Zone     string            `yaml:"zone"`
	Patterns map[string]string `yaml:"patterns"`
}

func Defaults() *Cfg {
	return &Cfg{
		LogLevel: DefaultLogLevel,
		Pattern:  DefaultPattern,
		Zone:     LocalZone,
	}
}

// DefaultPath is config.yaml inside the user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := homedir.Get()

	if err != nil {
		//nolint:errorlint // no wrap
		return "", fmt.Errorf("config: error getting home dir. %v", err)
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// ReadYaml reads the file at path over the defaults. A missing file yields
// the defaults.
func ReadYaml(path string) (*Cfg, error) {
	var configData ConfigData

	cfg := Defaults()

	yamlData, err := os.ReadFile(path)

	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not read file. %v", err)
	}

	err = yaml.Unmarshal(yamlData, &configData)

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not unmarshal cfg. %v", err)
	}

	if configData.LogLevel != "" {
		cfg.LogLevel = configData.LogLevel
	}

	if configData.Pattern != "" {
		cfg.Pattern = configData.Pattern
	}

	if configData.Zone != "" {
		cfg.Zone = configData.Zone
	}

	cfg.Patterns = configData.Patterns

	return cfg, nil
}

// Load reads the config file named by viper (or the default path) and
// applies flag and environment overrides on top.
func Load(v *viper.Viper) (*Cfg, error) {
	path := v.GetString(KeyConfig)

	if path == "" {
		defaultPath, err := DefaultPath()

		if err != nil {
			return nil, err
		}

		path = defaultPath
	}

	cfg, err := ReadYaml(path)

	if err != nil {
		return nil, err
	}

	if s := v.GetString(KeyLogLevel); s != "" {
		cfg.LogLevel = s
	}

	if s := v.GetString(KeyPattern); s != "" {
		cfg.Pattern = s
	}

	if s := v.GetString(KeyZone); s != "" {
		cfg.Zone = s
	}

	return cfg, nil
}

func (c *Cfg) Level() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// Location resolves the configured zone. "local" is the zone the process
// started with.
func (c *Cfg) Location() (*time.Location, error) {
	if c.Zone == "" || strings.EqualFold(c.Zone, LocalZone) {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Zone)

	if err != nil {
		return nil, fmt.Errorf("config: invalid zone %q: %w", c.Zone, err)
	}

	return loc, nil
}

// Registry anchors the built-in patterns to the configured zone and adds
// the custom ones. A custom pattern cannot reuse a built-in name.
func (c *Cfg) Registry() (*timefmt.Registry, error) {
	loc, err := c.Location()

	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(c.Patterns))
	for name := range c.Patterns {
		names = append(names, name)
	}
	slices.Sort(names)

	registry := timefmt.NewRegistry(loc)

	for _, name := range names {
		p, err := timefmt.Compile(name, c.Patterns[name], loc)

		if err != nil {
			return nil, fmt.Errorf("config: pattern %q: %w", name, err)
		}

		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("config: pattern %q: %w", name, err)
		}
	}

	if _, err := registry.Lookup(c.Pattern); err != nil {
		return nil, fmt.Errorf("config: default pattern: %w", err)
	}

	return registry, nil
}
