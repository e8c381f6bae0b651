// Where: assets/portal_templates_embed.go
// What: Embed the portal project templates.
// Why: Ship the root/backend/frontend skeleton inside the binary so generation never reads from disk.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed portal
var portalFS embed.FS

// PortalTemplatesFS exposes the portal templates rooted at the template directory,
// so references look like "root/package.json" or "frontend/src/main.ts".
var PortalTemplatesFS = mustSub(portalFS, "portal")

func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
