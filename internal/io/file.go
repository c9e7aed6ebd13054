package ioutils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultOutputPathFormat names the export after the player.
const DefaultOutputPathFormat = "{username}_games.csv"

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// OutputPath expands the {username} placeholder of format.
//
// The username is sanitized before substitution so it can never introduce
// path separators. An empty format means DefaultOutputPathFormat.
//
// Example:
//
//	OutputPath("", "hikaru")                   // "hikaru_games.csv"
//	OutputPath("exports/{username}.csv", "hikaru") // "exports/hikaru.csv"
func OutputPath(format, username string) string {
	if format == "" {
		format = DefaultOutputPathFormat
	}
	return strings.ReplaceAll(format, "{username}", SanitizeFileName(username))
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("a/b")   // Returns "a_b"
//	SanitizeFileName("name.") // Returns "name"
func SanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = whitespaceRun.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// EnsureParentDir creates the directory that will hold the file at path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return EnsureDir(dir)
}
