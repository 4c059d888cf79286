/*
File    : mylang/resolve/resolve.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package resolve implements the three-step `.mylang` module resolution
order of §6, grounded directly on the original interpreter's
find_module (original_source/mylang_interpreter.py): current
directory, then the package root ($HOME/.mylang/packages), then a
versioned-filename scan of the package root with no semver comparison
(§9 open question, deliberately left as directory-enumeration order).
*/
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PackageRoot returns $HOME/.mylang/packages, the package directory
// §6 names.
func PackageRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mylang", "packages"), nil
}

// Module locates the `.mylang` file backing an `import "name"`
// statement, trying each step of §6's resolution order in turn.
// It returns an error naming the module when no step succeeds.
func Module(name string) (string, error) {
	if path := filepath.Join(".", name+".mylang"); fileExists(path) {
		return path, nil
	}

	root, err := PackageRoot()
	if err != nil {
		return "", fmt.Errorf("could not determine package root: %w", err)
	}

	if path := filepath.Join(root, name+".mylang"); fileExists(path) {
		return path, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("module '%s' not found", name)
	}
	prefix := name + "-"
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		n := entry.Name()
		if strings.HasPrefix(n, prefix) && strings.HasSuffix(n, ".mylang") {
			return filepath.Join(root, n), nil
		}
	}

	return "", fmt.Errorf("module '%s' not found", name)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
