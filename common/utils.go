package common

import (
	"os"
	"path/filepath"
	"strings"
)

// IsEqualIgnoreCase returns if s1 and s2 are equal ignore case
func IsEqualIgnoreCase(s1, s2 string) bool {
	return strings.EqualFold(s1, s2)
}

// FileExist checks if a file exists at filePath.
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	if err != nil && os.IsNotExist(err) {
		return false
	}
	return true
}

// CurrentDir returns the working directory
func CurrentDir() (string, error) {
	return os.Getwd()
}

// AbsolutePath returns datadir + filename, or filename if it is absolute.
func AbsolutePath(datadir, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(datadir, filename)
}

// EnsureDir creates the parent directory of filePath when missing
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o700)
}
