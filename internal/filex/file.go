// Package filex holds small path helpers shared by the watcher and the
// upload client.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BaseNameWithoutExt returns the base file name with its extension removed.
// "/a/b/Screen Shot.png" -> "Screen Shot".
func BaseNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ext returns the file extension without the leading dot, lower-cased.
// Returns "" if the path has no extension.
func Ext(path string) string {
	ext := filepath.Ext(path)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// InDir reports whether path's containing directory equals dir after
// normalization. Comparison is purely lexical.
func InDir(path string, dir string) bool {
	return filepath.Clean(filepath.Dir(path)) == filepath.Clean(dir)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates dir (and parents) if needed and returns its cleaned path.
func EnsureDir(dir string) (string, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
