// Where: cmd/create-portal/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/openmfp/create-portal/assets"
	"github.com/openmfp/create-portal/internal/commands"
	"github.com/openmfp/create-portal/internal/infra/install"
	"github.com/openmfp/create-portal/internal/infra/interaction"
)

var (
	getwd       = os.Getwd
	userHomeDir = os.UserHomeDir
)

// buildDependencies constructs the runtime dependencies required by the CLI:
// the real filesystem, the embedded templates, and a runner that inherits stdio.
// A missing home directory only disables the user config lookup.
func buildDependencies() (commands.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return commands.Dependencies{}, err
	}
	homeDir, err := userHomeDir()
	if err != nil {
		homeDir = ""
	}

	return commands.Dependencies{
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		In:        os.Stdin,
		WorkDir:   workDir,
		HomeDir:   homeDir,
		FS:        afero.NewOsFs(),
		Templates: assets.PortalTemplatesFS,
		Runner:    install.ExecRunner{},
		Prompter:  interaction.HuhPrompter{},
	}, nil
}
