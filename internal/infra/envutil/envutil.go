// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/openmfp/create-portal/internal/meta"
)

// LookupFunc reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// WithFallback returns a LookupFunc that consults the process environment first
// and then fallback. A nil or empty fallback yields os.LookupEnv.
func WithFallback(fallback map[string]string) LookupFunc {
	if len(fallback) == 0 {
		return os.LookupEnv
	}
	return func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := fallback[key]
		return value, ok
	}
}

// HostEnvKey constructs a host-level environment variable name
// by combining meta.EnvPrefix with the given suffix.
// Example: HostEnvKey("SKIP_INSTALL") returns "CREATE_PORTAL_SKIP_INSTALL".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable through lookup, trimmed.
// A nil lookup reads the process environment.
func GetHostEnv(lookup LookupFunc, suffix string) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	value, _ := lookup(HostEnvKey(suffix))
	return strings.TrimSpace(value)
}

// LookupHostBool parses a host-level boolean.
// The second result is false when the variable is unset or empty.
func LookupHostBool(lookup LookupFunc, suffix string) (bool, bool, error) {
	raw := GetHostEnv(lookup, suffix)
	if raw == "" {
		return false, false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("parse %s: %w", HostEnvKey(suffix), err)
	}
	return value, true, nil
}
