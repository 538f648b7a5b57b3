// Package index defines the JSON shape of the generated release index as
// consumed by downstream installers.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FileName is the pretty-printed index written for humans and diffs.
	FileName = "index.0.json"
	// MinifiedFileName is the compact index served to installers.
	MinifiedFileName = "index.0-min.json"
)

type Entry struct {
	ReleaseName             string         `json:"release_name"`
	JarVersion              string         `json:"jar_version"`
	JarURL                  string         `json:"jar_url"`
	YTPluginVersion         string         `json:"yt_plugin_version"`
	JavaVersions            []int          `json:"java_versions"`
	RedVersion              string         `json:"red_version"`
	ReleaseStream           string         `json:"release_stream"`
	ApplicationYMLOverrides map[string]any `json:"application_yml_overrides"`
}

// Parse decodes a previously generated index document.
func Parse(data []byte) ([]*Entry, error) {
	var entries []*Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Write writes the pretty-printed and minified index files into outputDir,
// creating the directory if needed. Both files carry identical content and
// differ only in whitespace.
func Write(outputDir string, entries []*Entry) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	pretty, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, FileName), pretty, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	minified, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, MinifiedFileName), minified, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", MinifiedFileName, err)
	}
	return nil
}
