// Where: internal/commands/create.go
// What: The create command.
// Why: Resolve settings, materialize the portal tree, and install dependencies.
package commands

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/openmfp/create-portal/internal/domain/portal"
	"github.com/openmfp/create-portal/internal/domain/template"
	"github.com/openmfp/create-portal/internal/infra/config"
	"github.com/openmfp/create-portal/internal/infra/envutil"
	"github.com/openmfp/create-portal/internal/infra/install"
	"github.com/openmfp/create-portal/internal/infra/interaction"
	"github.com/openmfp/create-portal/internal/infra/logging"
	"github.com/openmfp/create-portal/internal/infra/ui"
	"github.com/openmfp/create-portal/internal/materialize"
	"github.com/openmfp/create-portal/internal/meta"
	"github.com/openmfp/create-portal/internal/ports"
)

// CreateCmd is the default command: `create-portal [name]`.
type CreateCmd struct {
	Name           string `arg:"" optional:"" help:"Project directory name (default: my-portal)"`
	SkipInstall    bool   `name:"skip-install" help:"Do not install dependencies"`
	DryRun         bool   `name:"dry-run" help:"Show the files that would be written"`
	Interactive    bool   `short:"i" help:"Prompt for missing values"`
	PackageManager string `name:"package-manager" help:"Package manager used for installation (default: npm)"`
}

var (
	errInteractiveNoTTY = errors.New("interactive mode requires a terminal")
	errFilesystemNil    = errors.New("filesystem not configured")
	errPrompterNil      = errors.New("prompter not configured")
)

func runCreate(cli CLI, deps Dependencies) int {
	cmd := cli.Create
	if deps.FS == nil {
		return exitWithError(deps.ErrOut, errFilesystemNil)
	}

	dotenv, err := loadEnvFile(deps, cli.EnvFile)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	resolved, err := config.Resolve(config.ResolveOptions{
		FS:       deps.FS,
		WorkDir:  deps.WorkDir,
		HomeDir:  deps.HomeDir,
		Explicit: cli.Config,
		Lookup:   envutil.WithFallback(dotenv),
	})
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	cfg := applyFlags(resolved.Config, cli)

	logger, err := logging.New(deps.ErrOut, cfg.LogLevel)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	logger.Debug("config resolved", "sources", resolved.Sources)

	out := newUI(deps.Out, cfg.EmojiEnabled())
	errUI := newUI(deps.ErrOut, cfg.EmojiEnabled())

	name, err := resolveProjectName(cmd, cfg, deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	req, err := portal.NewProjectRequest(name)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	values, err := template.RenderValues(cfg.Values, template.Data{Name: req.Name, Product: meta.Product})
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	tree := portal.BuildTree(req, values)
	root := filepath.Join(deps.WorkDir, req.Name)

	out.Info("")
	out.Info(fmt.Sprintf("%sCreating portal: %s", emojiPrefix(cfg, "🚀"), req.Name))
	out.Info("")

	m := materialize.New(deps.FS, deps.Templates,
		materialize.WithLogger(logger),
		materialize.WithDryRun(cmd.DryRun),
	)
	result, err := m.Materialize(tree, root)
	if err != nil {
		return reportMaterializeError(errUI, req.Name, result, err)
	}

	if result.DryRun {
		lines := make([]string, 0, len(tree.Files))
		for _, rel := range tree.Paths() {
			lines = append(lines, path.Join(req.Name, rel))
		}
		out.List("📝", fmt.Sprintf("Dry run: %d files would be written", len(lines)), lines)
		return 0
	}

	out.Success("Project structure created successfully!")
	if err := ui.RenderTree(deps.Out, deps.FS, root, req.Name, ui.TreeOptions{Styled: interaction.IsTerminal(deps.In) && cfg.EmojiEnabled()}); err != nil {
		logger.Warn("render project tree", "err", err)
	}

	doInstall, err := shouldInstall(cmd, cfg, deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if !doInstall {
		out.Info("")
		out.Info("Skipping dependency installation.")
		printGettingStarted(out, cfg, req.Name, true)
		return 0
	}

	return runInstall(out, errUI, logger, cfg, deps, req.Name, root)
}

func applyFlags(cfg config.Config, cli CLI) config.Config {
	cmd := cli.Create
	override := config.Config{
		PackageManager: strings.TrimSpace(cmd.PackageManager),
		LogLevel:       strings.TrimSpace(cli.LogLevel),
	}
	if cmd.SkipInstall {
		skip := true
		override.SkipInstall = &skip
	}
	if cli.NoEmoji {
		emoji := false
		override.Emoji = &emoji
	}
	return config.Merge(cfg, override)
}

// resolveProjectName picks the argument, then the prompt answer, then the configured default.
func resolveProjectName(cmd CreateCmd, cfg config.Config, deps Dependencies) (string, error) {
	if name := strings.TrimSpace(cmd.Name); name != "" {
		return name, nil
	}
	if !cmd.Interactive {
		return cfg.Name(), nil
	}
	if !interaction.IsTerminal(deps.In) {
		return "", errInteractiveNoTTY
	}
	if deps.Prompter == nil {
		return "", errPrompterNil
	}
	answer, err := deps.Prompter.Input("Project name", []string{cfg.Name()})
	if err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer != "" {
		return answer, nil
	}
	return cfg.Name(), nil
}

func shouldInstall(cmd CreateCmd, cfg config.Config, deps Dependencies) (bool, error) {
	if cfg.ShouldSkipInstall() {
		return false, nil
	}
	if cmd.Interactive && interaction.IsTerminal(deps.In) {
		if deps.Prompter == nil {
			return false, errPrompterNil
		}
		return deps.Prompter.Confirm("Install dependencies now?", true)
	}
	return true, nil
}

func runInstall(
	out, errUI ports.UserInterface,
	logger *log.Logger,
	cfg config.Config,
	deps Dependencies,
	name, root string,
) int {
	out.Info("")
	out.Info(emojiPrefix(cfg, "📦") + "Installing dependencies...")
	out.Info("")

	installer := install.Installer{
		Runner:         deps.Runner,
		PackageManager: cfg.Installer(),
		UI:             out,
		Logger:         logger,
	}
	if err := installer.Install(context.Background(), root); err != nil {
		var subErr *install.SubprocessError
		if errors.As(err, &subErr) {
			errUI.Error(fmt.Sprintf("Error installing dependencies: %v", subErr.Err))
		} else {
			errUI.Error(fmt.Sprintf("Error installing dependencies: %v", err))
		}
		pm := cfg.Installer()
		errUI.List("", "You can install dependencies manually:", []string{
			"cd " + name,
			pm + " install",
			"(cd frontend && " + pm + " install)",
			"(cd backend && " + pm + " install)",
		})
		return 1
	}

	out.Success("All dependencies installed successfully!")
	printGettingStarted(out, cfg, name, false)
	return 0
}

func printGettingStarted(out ports.UserInterface, cfg config.Config, name string, needsInstall bool) {
	out.Info("")
	out.Info(emojiPrefix(cfg, "🎉") + "Portal created successfully!")

	steps := []string{"cd " + name}
	if needsInstall {
		steps = append(steps, cfg.Installer()+" install")
	}
	steps = append(steps, cfg.Installer()+" start")
	out.List("", "To get started:", steps)
	out.Block("", "Endpoints", []ports.KeyValue{
		{Key: "Frontend", Value: meta.FrontendURL},
		{Key: "Backend", Value: meta.BackendURL},
	})
}

func reportMaterializeError(errUI ports.UserInterface, name string, result materialize.Result, err error) int {
	var existsErr *materialize.AlreadyExistsError
	if errors.As(err, &existsErr) {
		errUI.Error(fmt.Sprintf("Directory %q already exists!", name))
		return 1
	}
	var ioErr *materialize.IOError
	if errors.As(err, &ioErr) && len(result.Files) > 0 {
		errUI.Error(fmt.Sprintf("Failed after writing %d files: %v", len(result.Files), err))
		errUI.Info(fmt.Sprintf("Remove %q and run the command again.", name))
		return 1
	}
	errUI.Error(err.Error())
	return 1
}
