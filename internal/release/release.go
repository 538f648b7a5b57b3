// Package release validates manifest entries and turns them into typed
// release records with resolved artifact URLs and Red version windows.
package release

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

type Stream string

const (
	StreamStable  Stream = "stable"
	StreamPreview Stream = "preview"
)

// Plugin identifies a Maven-hosted plugin artifact.
type Plugin struct {
	Group      string
	Name       string
	Version    string
	Repository string
}

func (p *Plugin) URL() string {
	return fmt.Sprintf(
		"%s/%s/%s/%s/%s-%s.jar",
		p.Repository, strings.ReplaceAll(p.Group, ".", "/"),
		p.Name, p.Version, p.Name, p.Version,
	)
}

// Info is a fully validated release entry.
type Info struct {
	ReleaseName  string
	JarVersion   string
	JarURL       string
	YTPlugin     Plugin
	JavaVersions []int
	Stream       Stream
	// MinRedVersion is inclusive; MaxRedVersion is exclusive and derived
	// by ResolveRedVersionRanges, "" meaning unbounded above.
	MinRedVersion           string
	MaxRedVersion           string
	ApplicationYMLOverrides map[string]any
}

// RedVersionRange returns the compatibility window as a constraint
// expression, e.g. ">=3.0.0,<3.5.0".
func (i *Info) RedVersionRange() string {
	r := ">=" + i.MinRedVersion
	if i.MaxRedVersion != "" {
		r += ",<" + i.MaxRedVersion
	}
	return r
}

// RedVersionConstraint parses the compatibility window for matching against
// concrete Red versions.
func (i *Info) RedVersionConstraint() (*semver.Constraints, error) {
	return semver.NewConstraint(i.RedVersionRange())
}

// ResolveRedVersionRanges derives each record's exclusive MaxRedVersion from
// the record immediately preceding it in manifest order: a release's window
// ends where the next newer release's minimum begins. Consecutive records
// sharing a minimum share the same upper bound. The first record stays
// unbounded above.
func ResolveRedVersionRanges(releases []*Info) {
	for i := 1; i < len(releases); i++ {
		prev, cur := releases[i-1], releases[i]
		if prev.MinRedVersion != cur.MinRedVersion {
			cur.MaxRedVersion = prev.MinRedVersion
		} else {
			cur.MaxRedVersion = prev.MaxRedVersion
		}
	}
}
