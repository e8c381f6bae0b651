// Where: internal/infra/install/installer.go
// What: Dependency installation for a generated portal.
// Why: Run the configured package manager in the root and in each subtree, in a fixed order.
package install

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/openmfp/create-portal/internal/meta"
	"github.com/openmfp/create-portal/internal/ports"
)

// Step is one package manager invocation.
type Step struct {
	Name    string
	Message string
	Dir     string
	Args    []string
}

// Installer runs the install steps through an injected CommandRunner.
type Installer struct {
	Runner         CommandRunner
	PackageManager string
	UI             ports.UserInterface
	Logger         *log.Logger
}

// Steps returns the install plan for root: the root manifest first, then the
// frontend and backend subtrees in their own directories.
func (i Installer) Steps(root string) []Step {
	args := []string{"install"}
	return []Step{
		{Name: "root", Message: "Installing root dependencies...", Dir: root, Args: args},
		{Name: "frontend", Message: "Installing frontend dependencies...", Dir: filepath.Join(root, "frontend"), Args: args},
		{Name: "backend", Message: "Installing backend dependencies...", Dir: filepath.Join(root, "backend"), Args: args},
	}
}

// Install runs every step in order and stops at the first failure.
func (i Installer) Install(ctx context.Context, root string) error {
	if i.Runner == nil {
		return errRunnerNil
	}
	pm := strings.TrimSpace(i.PackageManager)
	if pm == "" {
		pm = meta.DefaultPackageManager
	}
	if strings.TrimSpace(root) == "" {
		return errInstallRootNone
	}
	logger := i.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for _, step := range i.Steps(root) {
		if i.UI != nil {
			i.UI.Info(step.Message)
		}
		logger.Debug("install step", "step", step.Name, "dir", step.Dir, "command", pm, "args", step.Args)
		if err := i.Runner.Run(ctx, step.Dir, pm, step.Args...); err != nil {
			return &SubprocessError{
				Step:    step.Name,
				Command: append([]string{pm}, step.Args...),
				Dir:     step.Dir,
				Err:     err,
			}
		}
	}
	return nil
}
