package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testEntries() []*Entry {
	return []*Entry{
		{
			ReleaseName:     "3.7.11+red.4",
			JarVersion:      "3.7.11+red.4",
			JarURL:          "https://github.com/Cog-Creators/Lavalink-Jars/releases/download/3.7.11+red.4/Lavalink.jar",
			YTPluginVersion: "1.11.3",
			JavaVersions:    []int{11, 17},
			RedVersion:      ">=3.5.0",
			ReleaseStream:   "stable",
			ApplicationYMLOverrides: map[string]any{
				"lavalink": map[string]any{"server": map[string]any{"bufferDurationMs": float64(400)}},
			},
		},
		{
			ReleaseName:             "3.7.11+red.3",
			JarVersion:              "3.7.11+red.3",
			JarURL:                  "https://github.com/Cog-Creators/Lavalink-Jars/releases/download/3.7.11+red.3/Lavalink.jar",
			YTPluginVersion:         "1.7.2",
			JavaVersions:            []int{},
			RedVersion:              ">=3.0.0,<3.5.0",
			ReleaseStream:           "preview",
			ApplicationYMLOverrides: map[string]any{},
		},
	}
}

func TestWrite(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "output", "red-index")
	entries := testEntries()
	require.NoError(t, Write(outputDir, entries))

	pretty, err := os.ReadFile(filepath.Join(outputDir, FileName))
	require.NoError(t, err)
	minified, err := os.ReadFile(filepath.Join(outputDir, MinifiedFileName))
	require.NoError(t, err)

	// both files carry the same content, differing only in formatting
	prettyEntries, err := Parse(pretty)
	require.NoError(t, err)
	minifiedEntries, err := Parse(minified)
	require.NoError(t, err)
	require.Equal(t, entries, prettyEntries)
	require.Equal(t, entries, minifiedEntries)

	require.Contains(t, string(pretty), "\n    {")
	require.NotContains(t, string(minified), "\n")
	require.NotContains(t, string(minified), ": ")
}

func TestWriteFieldOrderAndEmptyValues(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, Write(outputDir, testEntries()))

	minified, err := os.ReadFile(filepath.Join(outputDir, MinifiedFileName))
	require.NoError(t, err)
	doc := string(minified)
	require.Contains(t, doc, `"java_versions":[],`)
	require.Contains(t, doc, `"application_yml_overrides":{}`)

	fieldOrder := []string{
		`"release_name"`, `"jar_version"`, `"jar_url"`, `"yt_plugin_version"`,
		`"java_versions"`, `"red_version"`, `"release_stream"`, `"application_yml_overrides"`,
	}
	last := -1
	for _, field := range fieldOrder {
		pos := strings.Index(doc, field)
		require.Greater(t, pos, last, "expected %s to come later in the document", field)
		last = pos
	}
}

func TestWriteEmptyIndex(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, Write(outputDir, []*Entry{}))

	minified, err := os.ReadFile(filepath.Join(outputDir, MinifiedFileName))
	require.NoError(t, err)
	require.Equal(t, "[]", string(minified))
}
