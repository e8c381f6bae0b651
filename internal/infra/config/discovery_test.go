// Where: internal/infra/config/discovery_test.go
// What: Tests for config discovery and resolution.
// Why: Ensure explicit, local, and user configs are layered in the documented order.
package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmfp/create-portal/internal/infra/fileops"
)

func writeConfig(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fileops.WriteFile(fsys, path, content))
}

func TestResolveWithoutFiles(t *testing.T) {
	resolved, err := Resolve(ResolveOptions{FS: afero.NewMemMapFs(), WorkDir: "/work", HomeDir: "/home/dev"})
	require.NoError(t, err)
	assert.Empty(t, resolved.Sources)
	assert.Equal(t, "my-portal", resolved.Config.Name())
}

func TestResolveLayersLocalOverGlobal(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/home/dev/.create-portal/config.yaml", "default_name: global\npackage_manager: yarn\n")
	writeConfig(t, fsys, "/work/.create-portal.yaml", "default_name: local\n")

	resolved, err := Resolve(ResolveOptions{FS: fsys, WorkDir: "/work/sub/dir", HomeDir: "/home/dev"})
	require.NoError(t, err)
	assert.Equal(t, "local", resolved.Config.Name())
	assert.Equal(t, "yarn", resolved.Config.Installer())
	assert.Equal(t, []string{"/home/dev/.create-portal/config.yaml", "/work/.create-portal.yaml"}, resolved.Sources)
}

func TestResolveExplicitPathWins(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/work/.create-portal.yaml", "default_name: local\n")
	writeConfig(t, fsys, "/work/custom.yaml", "default_name: explicit\n")

	resolved, err := Resolve(ResolveOptions{FS: fsys, WorkDir: "/work", Explicit: "custom.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "explicit", resolved.Config.Name())
	assert.Equal(t, []string{"/work/custom.yaml"}, resolved.Sources)
}

func TestResolveExplicitPathFromEnv(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/etc/portal.yaml", "package_manager: pnpm\n")
	t.Setenv("CREATE_PORTAL_CONFIG", "/etc/portal.yaml")

	resolved, err := Resolve(ResolveOptions{FS: fsys, WorkDir: "/work"})
	require.NoError(t, err)
	assert.Equal(t, "pnpm", resolved.Config.Installer())
}

func TestResolveExplicitPathMissing(t *testing.T) {
	_, err := Resolve(ResolveOptions{FS: afero.NewMemMapFs(), WorkDir: "/work", Explicit: "/nope.yaml"})
	require.ErrorIs(t, err, errConfigNotFound)
}

func TestResolveEnvOverridesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/work/.create-portal.yaml", "default_name: local\nskip_install: false\n")
	t.Setenv("CREATE_PORTAL_SKIP_INSTALL", "true")

	resolved, err := Resolve(ResolveOptions{FS: fsys, WorkDir: "/work"})
	require.NoError(t, err)
	assert.Equal(t, "local", resolved.Config.Name())
	assert.True(t, resolved.Config.ShouldSkipInstall())
}

func TestResolveInvalidLocalConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/work/.create-portal.yaml", "unknown: true\n")

	_, err := Resolve(ResolveOptions{FS: fsys, WorkDir: "/work"})
	require.Error(t, err)
}

func TestFindLocalConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/repo/.create-portal.yaml", "")

	path, ok := FindLocalConfig(fsys, "/repo/a/b")
	require.True(t, ok)
	assert.Equal(t, "/repo/.create-portal.yaml", path)

	_, ok = FindLocalConfig(fsys, "/other")
	assert.False(t, ok)

	_, ok = FindLocalConfig(fsys, "")
	assert.False(t, ok)
}

func TestResolveUsesInjectedLookup(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/etc/portal.yaml", "default_name: from-lookup-config\n")
	env := map[string]string{
		"CREATE_PORTAL_CONFIG":          "/etc/portal.yaml",
		"CREATE_PORTAL_PACKAGE_MANAGER": "pnpm",
	}

	resolved, err := Resolve(ResolveOptions{
		FS:      fsys,
		WorkDir: "/work",
		Lookup: func(key string) (string, bool) {
			value, ok := env[key]
			return value, ok
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "from-lookup-config", resolved.Config.Name())
	assert.Equal(t, "pnpm", resolved.Config.Installer())
	assert.Equal(t, []string{"/etc/portal.yaml"}, resolved.Sources)
}
