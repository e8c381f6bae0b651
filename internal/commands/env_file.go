// Where: internal/commands/env_file.go
// What: .env loading for CLI runs.
// Why: Let CREATE_PORTAL_* settings live next to the project without exporting them.
package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/openmfp/create-portal/internal/infra/fileops"
)

// loadEnvFile parses an explicit env file, or .env in the working directory when
// present. The values are returned rather than exported into the process.
func loadEnvFile(deps Dependencies, explicit string) (map[string]string, error) {
	if deps.FS == nil {
		return nil, errFilesystemNil
	}
	path := strings.TrimSpace(explicit)
	if path == "" {
		path = filepath.Join(deps.WorkDir, ".env")
		if !fileops.FileExists(deps.FS, path) {
			return nil, nil
		}
	} else {
		path = resolvePath(deps.WorkDir, path)
	}

	file, err := deps.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file %s: %w", path, err)
	}
	defer file.Close()

	values, err := godotenv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}
	return values, nil
}
