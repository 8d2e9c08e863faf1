// Package filex contains small filesystem helpers for files the CLI writes
// next to its working directory (downloaded exports, rendered receipts).
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubDir creates dirName under the current working directory if it
// does not exist yet and returns its absolute path.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// WriteFileUnique writes data to dir/name. If that file already exists, a
// numeric suffix is inserted before the extension ("name (1).ext", ...) so
// repeated downloads never overwrite earlier ones. The final path is
// returned.
func WriteFileUnique(dir, name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	base := name[:len(name)-len(ext)]

	path := filepath.Join(dir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
	}

	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
