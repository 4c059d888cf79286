/*
File    : mylang/eval/eval_import_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTempCwd runs fn with the process working directory switched to
// a fresh temp dir, restoring the original directory afterward.
func withTempCwd(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func TestEval_ImportSplicesIntoCallerEnvironment(t *testing.T) {
	dir := withTempCwd(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.mylang"), []byte(`k = 42;`), 0644))

	out, err := run(t, `导入 "lib"; 打印(k);`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestEval_ImportIsIdempotent(t *testing.T) {
	dir := withTempCwd(t)
	path := filepath.Join(dir, "lib.mylang")
	// The module prints once per load, so a second load would show up
	// as a second "loaded" line.
	require.NoError(t, os.WriteFile(path, []byte(`k = 42; 打印("loaded");`), 0644))

	out, err := run(t, `导入 "lib"; 导入 "lib"; 打印(k);`)
	require.NoError(t, err)
	assert.Equal(t, "loaded\n42\n", out)
}

func TestEval_ImportMissingModuleIsRuntimeError(t *testing.T) {
	withTempCwd(t)
	_, err := run(t, `导入 "does-not-exist";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestEval_ImportFailureCaughtByTryCatch(t *testing.T) {
	withTempCwd(t)
	out, err := run(t, `
尝试 { 导入 "does-not-exist"; } 捕获 (e) { 打印("caught:" + e); }
`)
	require.NoError(t, err)
	assert.Contains(t, out, "caught:")
}

func TestEval_ImportPropagatesModuleRuntimeError(t *testing.T) {
	dir := withTempCwd(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.mylang"), []byte(`x = 1 / 0;`), 0644))

	_, err := run(t, `导入 "broken";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
