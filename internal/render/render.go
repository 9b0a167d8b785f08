// Package render prepares a finished letter for the terminal or a file.
package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// Title returns "Cover Letter for <role> at <company>", or
// "Cover Letter at <company>" when role is blank.
func Title(companyName, role string) string {
	companyName = strings.TrimSpace(companyName)
	if role = strings.TrimSpace(role); role != "" {
		return fmt.Sprintf("Cover Letter for %s at %s", role, companyName)
	}
	return fmt.Sprintf("Cover Letter at %s", companyName)
}

// Filename turns a title into a lowercase .txt file name where every
// character outside [a-zA-Z0-9] becomes an underscore.
func Filename(title string) string {
	return strings.ToLower(unsafeFilenameChars.ReplaceAllString(title, "_")) + ".txt"
}

// PlainText strips markup such as <b> emphasis and decodes entities.
func PlainText(letter string) string {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(strictPolicy.Sanitize(letter))
}

// Save writes the letter under dir using Filename(title) and returns the path.
// The directory is created when missing.
func Save(dir, title, letter string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, Filename(title))
	if !strings.HasSuffix(letter, "\n") {
		letter += "\n"
	}

	if err := os.WriteFile(path, []byte(letter), 0o644); err != nil {
		return "", fmt.Errorf("write cover letter to %q: %w", path, err)
	}

	return path, nil
}
