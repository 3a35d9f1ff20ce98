// Package fileutil reads and writes JSON files, lists a directory and
// describes file sizes for people.
package fileutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amp-labs/daily-dev-lab/sorting"
)

// DefaultIndent is the indent WriteJSON callers normally want.
const DefaultIndent = 2

const unitStep = 1024

// ReadJSON decodes the JSON document at path into a T.
func ReadJSON[T any](path string) (T, error) {
	var out T

	data, err := os.ReadFile(path) // #nosec G304 -- reading the caller's file is the point
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("parsing %s: %w", path, err)
	}

	return out, nil
}

// WriteJSON encodes v into path, replacing the file. Each nesting level is
// indented by indent spaces; indent <= 0 writes compact JSON.
func WriteJSON(path string, v any, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o600)
}

var globEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`, "[", `\[`)

// ListFiles returns the paths of the entries in dir, in natural order
// ("img2" before "img10"). With a non-empty extension ("json" or ".json")
// only files whose names end in it are returned; without one, subdirectories
// are listed too.
func ListFiles(dir, extension string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	pattern := "*"
	if extension != "" {
		pattern += "." + strings.TrimPrefix(extension, ".")
	}

	matches, err := filepath.Glob(filepath.Join(globEscaper.Replace(dir), pattern))
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(matches))

	for _, m := range matches {
		if extension != "" {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
		}

		paths = append(paths, m)
	}

	return sorting.Natural(paths), nil
}

// HumanSize renders a byte count with two decimals in B, KB, MB, GB or TB,
// stepping by 1024.
func HumanSize(n int64) string {
	size := float64(n)

	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < unitStep {
			return fmt.Sprintf("%.2f %s", size, unit)
		}

		size /= unitStep
	}

	return fmt.Sprintf("%.2f TB", size)
}

// FileSize returns the size of the file at path as HumanSize text.
func FileSize(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	return HumanSize(info.Size()), nil
}
