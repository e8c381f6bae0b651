// Where: internal/commands/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/openmfp/create-portal/assets"
	"github.com/openmfp/create-portal/internal/infra/install"
	"github.com/openmfp/create-portal/internal/infra/interaction"
	"github.com/openmfp/create-portal/internal/meta"
	"github.com/openmfp/create-portal/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Streams, directories, and templates fall back to the process defaults in Run.
// FS, Runner, and Prompter are supplied by the entrypoint.
type Dependencies struct {
	Out       io.Writer
	ErrOut    io.Writer
	In        *os.File
	WorkDir   string
	HomeDir   string
	FS        afero.Fs
	Templates fs.FS
	Runner    install.CommandRunner
	Prompter  interaction.Prompter
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Config     string        `short:"c" help:"Path to a config file"`
	EnvFile    string        `name:"env-file" help:"Path to .env file (read by create)"`
	LogLevel   string        `name:"log-level" help:"Log level (debug, info, warn, error)"`
	NoEmoji    bool          `name:"no-emoji" help:"Disable emoji in output"`
	Create     CreateCmd     `cmd:"" default:"withargs" help:"Create a new portal project"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Scaffold an "+meta.Product+" project with a NestJS backend and an Angular frontend."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps); handled {
		return exitCode
	}

	newUI(deps.ErrOut, true).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies) int

func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"completion bash": func(cli CLI, deps Dependencies) int { return runCompletionBash(cli, deps.Out) },
		"completion zsh":  func(cli CLI, deps Dependencies) int { return runCompletionZsh(cli, deps.Out) },
		"completion fish": func(cli CLI, deps Dependencies) int { return runCompletionFish(cli, deps.Out) },
		"version":         runVersion,
	}
	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps), true
	}

	// "create" and "create <name>" both land here.
	if command == "create" || strings.HasPrefix(command, "create ") {
		return runCreate(cli, deps), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies) int {
	writeLine(deps.Out, fmt.Sprintf("%s %s", meta.AppName, version.GetVersion()))
	return 0
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Templates == nil {
		deps.Templates = assets.PortalTemplatesFS
	}
	if strings.TrimSpace(deps.WorkDir) == "" {
		if wd, err := os.Getwd(); err == nil {
			deps.WorkDir = wd
		}
	}
	if strings.TrimSpace(deps.HomeDir) == "" {
		if home, err := os.UserHomeDir(); err == nil {
			deps.HomeDir = home
		}
	}
	return deps
}

func resolvePath(workDir, path string) string {
	if filepath.IsAbs(path) || workDir == "" {
		return path
	}
	return filepath.Join(workDir, path)
}
