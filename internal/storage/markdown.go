// ABOUTME: Markdown file helpers: YAML frontmatter rendering/parsing and atomic writes.
// ABOUTME: Shared by the record store for durable, human-readable persistence.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// timeLayout is the timestamp format used in frontmatter.
const timeLayout = time.RFC3339

// formatTime renders a timestamp for frontmatter.
func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// parseTime parses a frontmatter timestamp.
func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// renderFrontmatter marshals fm as YAML frontmatter followed by the body.
func renderFrontmatter(fm interface{}, body string) (string, error) {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}
	return frontmatterDelimiter + "\n" + string(data) + frontmatterDelimiter + "\n" + body, nil
}

// parseFrontmatter splits a file into its YAML frontmatter and body.
// Returns an empty yaml string when no frontmatter block is present.
func parseFrontmatter(content string) (yamlStr, body string) {
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return "", content
	}
	rest := content[len(frontmatterDelimiter)+1:]
	idx := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
	if idx < 0 {
		return "", content
	}
	return rest[:idx+1], rest[idx+len(frontmatterDelimiter)+2:]
}

// atomicWrite writes data to path via a temp file and rename, creating
// parent directories as needed.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
