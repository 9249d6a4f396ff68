package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// AllowedUploadExtensions lists the document types the backend accepts.
var AllowedUploadExtensions = []string{".xlsx", ".xls", ".csv"}

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "getting user home dir")
	}
	return filepath.Join(home, path[2:]), nil
}

// HasAllowedExtension reports whether the path carries an uploadable extension.
// The check runs before any network call so bad files never leave the client.
func HasAllowedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range AllowedUploadExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// SplitUploadPaths partitions candidate upload paths into accepted paths and
// a count of skipped ones.
func SplitUploadPaths(paths []string) ([]string, int) {
	var accepted []string
	skipped := 0
	for _, path := range paths {
		if path == "" {
			continue
		}
		if !HasAllowedExtension(path) {
			skipped++
			continue
		}
		accepted = append(accepted, path)
	}
	return accepted, skipped
}
