// Where: internal/infra/config/global.go
// What: Generator configuration load and merge.
// Why: Let users pin defaults (name, package manager, extra placeholders) in YAML instead of flags.
package config

import (
	"bytes"
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/openmfp/create-portal/internal/constants"
	"github.com/openmfp/create-portal/internal/infra/envutil"
	"github.com/openmfp/create-portal/internal/infra/fileops"
	"github.com/openmfp/create-portal/internal/meta"
)

// Config holds generator defaults. Pointer fields distinguish "unset" from false.
type Config struct {
	DefaultName    string            `yaml:"default_name,omitempty"`
	PackageManager string            `yaml:"package_manager,omitempty"`
	SkipInstall    *bool             `yaml:"skip_install,omitempty"`
	Emoji          *bool             `yaml:"emoji,omitempty"`
	LogLevel       string            `yaml:"log_level,omitempty"`
	Values         map[string]string `yaml:"values,omitempty"`
}

// Name returns the configured default project name or the built-in one.
func (c Config) Name() string {
	if name := strings.TrimSpace(c.DefaultName); name != "" {
		return name
	}
	return meta.DefaultProjectName
}

// Installer returns the package manager command, defaulting to npm.
func (c Config) Installer() string {
	if pm := strings.TrimSpace(c.PackageManager); pm != "" {
		return pm
	}
	return meta.DefaultPackageManager
}

// ShouldSkipInstall reports whether the install step is disabled.
func (c Config) ShouldSkipInstall() bool {
	return c.SkipInstall != nil && *c.SkipInstall
}

// EmojiEnabled reports whether console output uses emoji prefixes.
func (c Config) EmojiEnabled() bool {
	return c.Emoji == nil || *c.Emoji
}

// GlobalConfigPath returns the per-user config file below home.
func GlobalConfigPath(home string) string {
	return filepath.Join(home, meta.HomeDir, meta.ConfigFileName)
}

// LoadConfig reads, validates, and decodes a config file.
// An empty file yields a zero Config.
func LoadConfig(fsys afero.Fs, path string) (Config, error) {
	payload, err := fileops.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return Config{}, nil
	}
	if err := ValidateConfig(payload); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays the set fields of override onto base.
// Values maps are merged key by key.
func Merge(base, override Config) Config {
	merged := base
	if override.DefaultName != "" {
		merged.DefaultName = override.DefaultName
	}
	if override.PackageManager != "" {
		merged.PackageManager = override.PackageManager
	}
	if override.SkipInstall != nil {
		merged.SkipInstall = override.SkipInstall
	}
	if override.Emoji != nil {
		merged.Emoji = override.Emoji
	}
	if override.LogLevel != "" {
		merged.LogLevel = override.LogLevel
	}
	if len(override.Values) > 0 {
		values := make(map[string]string, len(base.Values)+len(override.Values))
		maps.Copy(values, base.Values)
		maps.Copy(values, override.Values)
		merged.Values = values
	}
	return merged
}

// ApplyEnv overlays CREATE_PORTAL_* variables reported by lookup onto cfg.
// A nil lookup reads the process environment.
func ApplyEnv(cfg Config, lookup envutil.LookupFunc) (Config, error) {
	env := Config{
		DefaultName:    envutil.GetHostEnv(lookup, constants.HostSuffixDefaultName),
		PackageManager: envutil.GetHostEnv(lookup, constants.HostSuffixPackageManager),
		LogLevel:       envutil.GetHostEnv(lookup, constants.HostSuffixLogLevel),
	}
	skip, ok, err := envutil.LookupHostBool(lookup, constants.HostSuffixSkipInstall)
	if err != nil {
		return Config{}, err
	}
	if ok {
		env.SkipInstall = &skip
	}
	noEmoji, ok, err := envutil.LookupHostBool(lookup, constants.HostSuffixNoEmoji)
	if err != nil {
		return Config{}, err
	}
	if ok {
		emoji := !noEmoji
		env.Emoji = &emoji
	}
	return Merge(cfg, env), nil
}
