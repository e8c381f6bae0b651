// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Host-level suffixes, combined with meta.EnvPrefix by envutil.
// Example: HostSuffixPackageManager resolves to CREATE_PORTAL_PACKAGE_MANAGER.
const (
	HostSuffixConfigPath     = "CONFIG"
	HostSuffixDefaultName    = "DEFAULT_NAME"
	HostSuffixPackageManager = "PACKAGE_MANAGER"
	HostSuffixSkipInstall    = "SKIP_INSTALL"
	HostSuffixLogLevel       = "LOG_LEVEL"
	HostSuffixNoEmoji        = "NO_EMOJI"
)
