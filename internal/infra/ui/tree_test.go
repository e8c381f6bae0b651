// Where: internal/infra/ui/tree_test.go
// What: Tests for the directory tree printer.
// Why: Keep ordering, hidden entries, and glyphs stable.
package ui

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmfp/create-portal/internal/infra/fileops"
)

func TestRenderTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, path := range []string{
		"/p/package.json",
		"/p/README.md",
		"/p/.gitignore",
		"/p/backend/package.json",
		"/p/backend/src/main.ts",
		"/p/frontend/src/assets/.gitkeep",
		"/p/node_modules/left-pad/index.js",
	} {
		require.NoError(t, fileops.WriteFile(fsys, path, "x"))
	}

	var out bytes.Buffer
	require.NoError(t, RenderTree(&out, fsys, "/p", "p", TreeOptions{}))

	want := `p/
├── backend/
│   ├── src/
│   │   └── main.ts
│   └── package.json
├── frontend/
│   └── src/
│       └── assets/
├── README.md
└── package.json
`
	assert.Equal(t, want, out.String())
}

func TestRenderTreeStyledKeepsLabels(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fileops.WriteFile(fsys, "/p/src/app.ts", "x"))

	var out bytes.Buffer
	require.NoError(t, RenderTree(&out, fsys, "/p", "p", TreeOptions{Styled: true}))
	assert.Contains(t, out.String(), "src/")
	assert.Contains(t, out.String(), "└── app.ts")
}

func TestRenderTreeMissingRoot(t *testing.T) {
	var out bytes.Buffer
	err := RenderTree(&out, afero.NewMemMapFs(), "/missing", "missing", TreeOptions{})
	require.Error(t, err)
}
