// Where: internal/domain/portal/layout.go
// What: Declarative table of the generated portal project.
// Why: One table drives generation instead of per-file write plumbing.
package portal

import (
	"maps"
	"strings"

	"github.com/openmfp/create-portal/internal/meta"
)

// layoutEntry maps an output path to its source.
// An empty Source means the file is written from Literal.
type layoutEntry struct {
	Path    string
	Source  string
	Literal string
}

var portalLayout = []layoutEntry{
	{Path: "package.json", Source: "root/package.json"},
	{Path: "README.md", Source: "root/README.md"},
	{Path: ".gitignore", Source: "root/gitignore"},

	{Path: "backend/package.json", Source: "backend/package.json"},
	{Path: "backend/tsconfig.json", Source: "backend/tsconfig.json"},
	{Path: "backend/tsconfig.build.json", Source: "backend/tsconfig.build.json"},
	{Path: "backend/nest-cli.json", Source: "backend/nest-cli.json"},
	{Path: "backend/src/main.ts", Source: "backend/src/main.ts"},
	{Path: "backend/src/app.module.ts", Source: "backend/src/app.module.ts"},

	{Path: "frontend/package.json", Source: "frontend/package.json"},
	{Path: "frontend/tsconfig.json", Source: "frontend/tsconfig.json"},
	{Path: "frontend/tsconfig.app.json", Source: "frontend/tsconfig.app.json"},
	{Path: "frontend/angular.json", Source: "frontend/angular.json"},
	{Path: "frontend/proxy.config.json", Source: "frontend/proxy.config.json"},
	{Path: "frontend/src/main.ts", Source: "frontend/src/main.ts"},
	{Path: "frontend/src/index.html", Source: "frontend/src/index.html"},
	{Path: "frontend/src/styles.scss", Source: "frontend/src/styles.scss"},
	{Path: "frontend/src/app/app.routes.ts", Source: "frontend/src/app/app.routes.ts"},
	{Path: "frontend/src/environments/environment.ts", Source: "frontend/src/environments/environment.ts"},
	{Path: "frontend/src/environments/environment.prod.ts", Source: "frontend/src/environments/environment.prod.ts"},
	{Path: "frontend/build-scripts/extract-versions.js", Source: "frontend/build-scripts/extract-versions.js"},
	{Path: "frontend/src/assets/.gitkeep", Literal: ""},
	{Path: "frontend/src/favicon.ico", Literal: ""},
}

// BuildTree expands the portal layout for req.
// Extra values become additional placeholders; the project name placeholder
// always carries req.Name and cannot be overridden.
func BuildTree(req ProjectRequest, values map[string]string) DirectoryTree {
	mapping := make(map[string]string, len(values)+1)
	maps.Copy(mapping, values)
	mapping[meta.ProjectNameKey] = req.Name

	files := make([]FileSpec, 0, len(portalLayout))
	for _, entry := range portalLayout {
		spec := FileSpec{Path: strings.Split(entry.Path, "/")}
		if entry.Source == "" {
			spec.Content = Literal(entry.Literal)
		} else {
			spec.Content = Template(entry.Source, mapping)
		}
		files = append(files, spec)
	}
	return DirectoryTree{Files: files}
}
