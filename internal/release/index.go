package release

import (
	"fmt"

	"github.com/Cog-Creators/lavalink-release-index/pkg/index"
)

// IndexEntries converts resolved release records into the serialized index
// shape, preserving manifest order.
func IndexEntries(releases []*Info) ([]*index.Entry, error) {
	entries := make([]*index.Entry, 0, len(releases))
	for _, r := range releases {
		if _, err := r.RedVersionConstraint(); err != nil {
			return nil, fmt.Errorf("failed to build Red version range for %q: %w", r.ReleaseName, err)
		}
		entries = append(entries, r.indexEntry())
	}
	return entries, nil
}

func (i *Info) indexEntry() *index.Entry {
	javaVersions := i.JavaVersions
	if javaVersions == nil {
		javaVersions = []int{}
	}
	overrides := i.ApplicationYMLOverrides
	if overrides == nil {
		overrides = map[string]any{}
	}
	return &index.Entry{
		ReleaseName:             i.ReleaseName,
		JarVersion:              i.JarVersion,
		JarURL:                  i.JarURL,
		YTPluginVersion:         i.YTPlugin.Version,
		JavaVersions:            javaVersions,
		RedVersion:              i.RedVersionRange(),
		ReleaseStream:           string(i.Stream),
		ApplicationYMLOverrides: overrides,
	}
}
