package utils

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// commentPrefix starts a line that ReadLines skips.
const commentPrefix = "#"

//nolint:gochecknoglobals // Immutable list used as a constant.
var windowsReservedNames = []string{
	"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
}

// SanitizeFilename makes a name safe to use as a file name on Windows and Unix-like systems.
// Control characters and < > : " / \ | ? * become underscores, runs of spaces collapse into one.
func SanitizeFilename(name string) string {
	if name == "" {
		return ""
	}

	result := strings.Map(func(r rune) rune {
		if r < ' ' || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}

		return r
	}, name)

	result = strings.Join(strings.Fields(result), " ")
	result = strings.TrimRight(result, ".")

	baseName, _, _ := strings.Cut(result, ".")
	if slices.Contains(windowsReservedNames, strings.ToUpper(baseName)) {
		result = "_" + result
	}

	if result == "" {
		return "_"
	}

	return result
}

// SetFileExtension appends the extension unless the file name already ends with it.
// The comparison ignores case, so "Moscow.XLSX" is left alone.
func SetFileExtension(filename, extension string) string {
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	if strings.EqualFold(filepath.Ext(filename), extension) {
		return filename
	}

	return filename + extension
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) (bool, error) {
	stat, err := os.Stat(path)

	switch {
	case err == nil:
		return stat.Mode().IsRegular(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// ReadLines returns the trimmed lines of r.
// Blank lines and lines starting with "#" are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var (
		lines   []string
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReadLinesFromFile reads the file at path with ReadLines.
func ReadLinesFromFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	defer file.Close() //nolint:errcheck // Read-only file, close error carries nothing.

	return ReadLines(file)
}

// IsTextContentType reports whether a body of the given content type can be written to a log.
// text/*, application/json and application/*+json qualify when the charset is absent, utf-8 or us-ascii.
func IsTextContentType(contentType string) bool {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	kind, subtype, _ := strings.Cut(mediaType, "/")

	switch {
	case kind == "text" && subtype != "":
	case kind == "application" && (subtype == "json" || strings.HasSuffix(subtype, "+json")):
	default:
		return false
	}

	switch strings.ToLower(params["charset"]) {
	case "", "utf-8", "us-ascii":
		return true
	default:
		return false
	}
}

// Map applies transformFunc to every element of v.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}

// Unique returns the values without duplicates, keeping the first occurrence of each.
func Unique[T comparable](values []T) []T {
	var (
		result = make([]T, 0, len(values))
		seen   = make(map[T]struct{}, len(values))
	)

	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}

		seen[value] = struct{}{}
		result = append(result, value)
	}

	return result
}
