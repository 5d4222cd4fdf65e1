// Package config provides reading of optional tag configuration.
// Supports both global (~/.tag/config.yaml) and local (.tag/config.yaml)
// scopes; reading uses local if it exists, otherwise global. The tool never
// writes configuration itself - absence of any config file is the default
// and fully supported state.
//
// Config values only seed flag defaults; an explicit flag always wins.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.tag/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .tag/config.yaml
	ScopeLocal
)

// Config contains configuration for tag. Unset fields fall back to the
// built-in defaults via the accessor methods.
type Config struct {
	All       *bool `yaml:"all,omitempty"`       // include hidden files by default
	Recursive *bool `yaml:"recursive,omitempty"` // recurse by default
	Color     *bool `yaml:"color,omitempty"`     // colourise verbose output

	scope Scope
}

// AllDefault returns whether hidden files are included by default.
func (c *Config) AllDefault() bool {
	if c.All == nil {
		return false
	}
	return *c.All
}

// RecursiveDefault returns whether searches recurse by default.
func (c *Config) RecursiveDefault() bool {
	if c.Recursive == nil {
		return false
	}
	return *c.Recursive
}

// ColorEnabled returns whether verbose output may be colourised.
func (c *Config) ColorEnabled() bool {
	if c.Color == nil {
		return true
	}
	return *c.Color
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".tag", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.tag/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tag", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.scope = scope
	return &cfg, nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
