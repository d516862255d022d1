package files

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// cleanedSuffix is appended to the input basename when no output path is
// supplied.
const cleanedSuffix = "_cleaned"

// DefaultCleanedPath derives the default output path for a cleaned dataset:
// the input path with "_cleaned" inserted before the extension.
func DefaultCleanedPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + cleanedSuffix + ext
}

// Exists checks whether a file exists at the given path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	exists := err == nil

	slog.Debug("Exists check",
		slog.String("path", path),
		slog.Bool("exists", exists))

	return exists
}

// EnsureDir creates the directory and all parents if needed.
func EnsureDir(path string) error {
	slog.Debug("Ensuring directory", slog.String("path", path))
	return os.MkdirAll(path, 0755)
}
