package lists

import (
	"fmt"
	"os"
	"strings"
)

// ReadListLines reads a list file into its ordered lines. Decoding is
// permissive: invalid UTF-8 byte sequences are dropped rather than failing
// the whole file. "\r\n", "\r" and "\n" are all accepted as terminators,
// and a trailing terminator does not produce a phantom empty line.
func ReadListLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file '%s': %v", path, err)
	}

	text := strings.ToValidUTF8(string(content), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if text == "" {
		return []string{}, nil
	}

	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// WriteListLines overwrites a list file with the given lines joined by a
// single newline, with exactly one trailing newline. Whole-file overwrite,
// no atomic rename: an interruption mid-write leaves the file partial,
// which is an accepted risk for a maintenance tool.
func WriteListLines(path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write list file '%s': %v", path, err)
	}
	return nil
}

// WriteBackup writes a backup copy of a list file's original line content.
// The backup holds exactly the lines joined by newlines, with no added
// trailing terminator.
func WriteBackup(path string, lines []string, backupExt string) error {
	backupPath := path + backupExt
	content := strings.Join(lines, "\n")
	if err := os.WriteFile(backupPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write backup file '%s': %v", backupPath, err)
	}
	return nil
}
