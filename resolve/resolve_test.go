/*
File    : mylang/resolve/resolve_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestModule_ResolvesInCurrentDirectoryFirst(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.mylang"), []byte(`k = 1;`), 0644))
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	path, err := Module("lib")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".", "lib.mylang"), path)
}

func TestModule_FallsBackToPackageRoot(t *testing.T) {
	chdir(t, t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	pkgDir := filepath.Join(home, ".mylang", "packages")
	require.NoError(t, os.MkdirAll(pkgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "lib.mylang"), []byte(`k = 1;`), 0644))

	path, err := Module("lib")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pkgDir, "lib.mylang"), path)
}

func TestModule_FallsBackToVersionedFilename(t *testing.T) {
	chdir(t, t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	pkgDir := filepath.Join(home, ".mylang", "packages")
	require.NoError(t, os.MkdirAll(pkgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "lib-1.0.0.mylang"), []byte(`k = 1;`), 0644))

	path, err := Module("lib")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pkgDir, "lib-1.0.0.mylang"), path)
}

func TestModule_NotFoundReportsError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := Module("nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestModule_CurrentDirectoryBeatsPackageRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.mylang"), []byte(`k = 1;`), 0644))
	chdir(t, dir)

	home := t.TempDir()
	t.Setenv("HOME", home)
	pkgDir := filepath.Join(home, ".mylang", "packages")
	require.NoError(t, os.MkdirAll(pkgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "lib.mylang"), []byte(`k = 2;`), 0644))

	path, err := Module("lib")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".", "lib.mylang"), path)
}
