package release

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexEntries(t *testing.T) {
	releases := []*Info{
		{
			ReleaseName:   "3.7.11+red.4",
			JarVersion:    "3.7.11+red.4",
			JarURL:        "https://github.com/Cog-Creators/Lavalink-Jars/releases/download/3.7.11+red.4/Lavalink.jar",
			YTPlugin:      Plugin{Group: "dev.lavalink.youtube", Name: "youtube-plugin", Version: "1.11.3"},
			JavaVersions:  []int{11, 17},
			Stream:        StreamStable,
			MinRedVersion: "3.5.0",
		},
		{
			ReleaseName:   "3.7.11+red.3",
			JarVersion:    "3.7.11+red.3",
			YTPlugin:      Plugin{Version: "1.7.2"},
			Stream:        StreamPreview,
			MinRedVersion: "3.0.0",
			MaxRedVersion: "3.5.0",
		},
	}

	entries, err := IndexEntries(releases)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "3.7.11+red.4", entries[0].ReleaseName)
	require.Equal(t, "1.11.3", entries[0].YTPluginVersion)
	require.Equal(t, ">=3.5.0", entries[0].RedVersion)
	require.Equal(t, "stable", entries[0].ReleaseStream)

	require.Equal(t, ">=3.0.0,<3.5.0", entries[1].RedVersion)
	require.Equal(t, "preview", entries[1].ReleaseStream)
	// nil slices and maps serialize as empty, not null
	require.NotNil(t, entries[1].JavaVersions)
	require.Empty(t, entries[1].JavaVersions)
	require.NotNil(t, entries[1].ApplicationYMLOverrides)
	require.Empty(t, entries[1].ApplicationYMLOverrides)
}

func TestIndexEntriesInvalidRange(t *testing.T) {
	_, err := IndexEntries([]*Info{{ReleaseName: "broken", MinRedVersion: "not-a-version"}})
	require.ErrorContains(t, err, `failed to build Red version range for "broken"`)
}
