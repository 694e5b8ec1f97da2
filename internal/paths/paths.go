// Package paths resolves user-supplied file paths: surrounding whitespace is
// trimmed, a leading ~ becomes the home directory and the result is absolute.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// Expand resolves path. An empty path is an error.
func Expand(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home dir")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// ExpandOr resolves path, or fallback when path is blank.
func ExpandOr(path, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return Expand(fallback)
	}
	return Expand(path)
}

// MustExpand resolves path, returning it unchanged when it cannot be resolved.
func MustExpand(path string) string {
	expanded, err := Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
