package lists

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindListFiles recursively collects every file under dir whose name ends
// with ext. Results come back in directory-walk order, which is
// filesystem-dependent.
func FindListFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory '%s': %v", dir, err)
	}

	return files, nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
