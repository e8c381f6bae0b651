// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep branding, defaults, and file names in one place.
package meta

const (
	// Project Identity
	AppName   = "create-portal"
	EnvPrefix = "CREATE_PORTAL"
	Product   = "OpenMFP Portal"

	// Generation Defaults
	DefaultProjectName    = "my-portal"
	DefaultPackageManager = "npm"
	ProjectNameKey        = "projectName"

	// Configuration Layout
	HomeDir        = ".create-portal"
	ConfigFileName = "config.yaml"
	LocalConfig    = ".create-portal.yaml"

	// Development servers started by the generated project
	FrontendURL = "http://localhost:4300"
	BackendURL  = "http://localhost:3000"
)
