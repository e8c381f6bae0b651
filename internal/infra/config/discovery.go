// Where: internal/infra/config/discovery.go
// What: Config file discovery.
// Why: Pick up a project-local config from the working directory or any parent, then the user config.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/openmfp/create-portal/internal/constants"
	"github.com/openmfp/create-portal/internal/infra/envutil"
	"github.com/openmfp/create-portal/internal/infra/fileops"
	"github.com/openmfp/create-portal/internal/meta"
)

var errConfigNotFound = errors.New("config file not found")

// ResolveOptions controls where Resolve looks for configuration.
// Lookup reads CREATE_PORTAL_* variables; nil means the process environment.
type ResolveOptions struct {
	FS       afero.Fs
	WorkDir  string
	HomeDir  string
	Explicit string
	Lookup   envutil.LookupFunc
}

// Resolved is the effective configuration plus the files it came from.
type Resolved struct {
	Config  Config
	Sources []string
}

// Resolve builds the effective configuration.
// Priority order.
// 1. Explicit path (flag or CREATE_PORTAL_CONFIG); it must exist and is the only file read.
// 2. Otherwise the user config in HomeDir, overlaid by the nearest .create-portal.yaml
// found upward from WorkDir.
// Environment variables are applied last.
func Resolve(opts ResolveOptions) (Resolved, error) {
	explicit := strings.TrimSpace(opts.Explicit)
	if explicit == "" {
		explicit = envutil.GetHostEnv(opts.Lookup, constants.HostSuffixConfigPath)
	}

	var resolved Resolved
	if explicit != "" {
		if !filepath.IsAbs(explicit) && opts.WorkDir != "" {
			explicit = filepath.Join(opts.WorkDir, explicit)
		}
		if !fileops.FileExists(opts.FS, explicit) {
			return Resolved{}, fmt.Errorf("%w: %s", errConfigNotFound, explicit)
		}
		cfg, err := LoadConfig(opts.FS, explicit)
		if err != nil {
			return Resolved{}, err
		}
		resolved = Resolved{Config: cfg, Sources: []string{explicit}}
	} else {
		if opts.HomeDir != "" {
			path := GlobalConfigPath(opts.HomeDir)
			if fileops.FileExists(opts.FS, path) {
				cfg, err := LoadConfig(opts.FS, path)
				if err != nil {
					return Resolved{}, err
				}
				resolved.Config = cfg
				resolved.Sources = append(resolved.Sources, path)
			}
		}
		if path, ok := FindLocalConfig(opts.FS, opts.WorkDir); ok {
			cfg, err := LoadConfig(opts.FS, path)
			if err != nil {
				return Resolved{}, err
			}
			resolved.Config = Merge(resolved.Config, cfg)
			resolved.Sources = append(resolved.Sources, path)
		}
	}

	cfg, err := ApplyEnv(resolved.Config, opts.Lookup)
	if err != nil {
		return Resolved{}, err
	}
	resolved.Config = cfg
	return resolved, nil
}

// FindLocalConfig searches upward from start for .create-portal.yaml.
func FindLocalConfig(fsys afero.Fs, start string) (string, bool) {
	if strings.TrimSpace(start) == "" {
		return "", false
	}
	dir := filepath.Clean(start)
	for {
		candidate := filepath.Join(dir, meta.LocalConfig)
		if fileops.FileExists(fsys, candidate) {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}
