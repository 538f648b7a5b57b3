package release

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"

	"github.com/Cog-Creators/lavalink-release-index/internal/config"
	"github.com/Cog-Creators/lavalink-release-index/internal/manifest"
)

const (
	ytPluginGroup = "dev.lavalink.youtube"
	ytPluginName  = "youtube-plugin"
)

// Lavalink release versions are semver with an optional -rc.N pre-release
// and an optional +red.N build tag used when an upstream release is altered
// downstream.
var jarVersionRe = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-rc\.(0|[1-9]\d*))?(\+red\.[1-9]\d*)?$`,
)

// Parser validates raw manifest entries and resolves their artifact URLs.
type Parser struct {
	log              *logrus.Logger
	jarsRepository   string
	pluginRepository string
	checker          ArtifactChecker
}

func NewParser(log *logrus.Logger, cfg *config.Config, checker ArtifactChecker) *Parser {
	return &Parser{
		log:              log,
		jarsRepository:   cfg.JarsRepository,
		pluginRepository: cfg.PluginRepository,
		checker:          checker,
	}
}

// ParseAll validates every manifest entry in order. Failing entries do not
// stop the pass; all schema errors are collected and returned together as a
// *ValidationError once every entry has been attempted.
func (p *Parser) ParseAll(ctx context.Context, m *manifest.Manifest) ([]*Info, error) {
	var errs []error
	releases := make([]*Info, 0, len(m.Releases))
	for _, r := range m.Releases {
		p.log.Infof("processing release %q...", r.Name)
		info, err := p.parseRelease(ctx, r.Name, r.Data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		releases = append(releases, info)
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}
	p.warnOnOrdering(releases)
	return releases, nil
}

// warnOnOrdering flags manifests that are not ordered newest to oldest by
// min_red_version, since range resolution derives each window from the
// preceding entry.
func (p *Parser) warnOnOrdering(releases []*Info) {
	for i := 1; i < len(releases); i++ {
		prev := semver.MustParse(releases[i-1].MinRedVersion)
		cur := semver.MustParse(releases[i].MinRedVersion)
		if cur.GreaterThan(prev) {
			p.log.Warnf(
				"release %q has a higher min_red_version (%s) than the preceding release %q (%s)",
				releases[i].ReleaseName, cur, releases[i-1].ReleaseName, prev,
			)
		}
	}
}

func (p *Parser) parseRelease(ctx context.Context, name string, data any) (*Info, error) {
	fields, ok := data.(map[string]any)
	if !ok {
		return nil, schemaErrorf(name, "expected release info to be a mapping")
	}

	jarVersion, err := stringField(name, fields, "jar_version")
	if err != nil {
		return nil, err
	}
	if !jarVersionRe.MatchString(jarVersion) {
		return nil, schemaErrorf(name, "expected jar_version to be a Lavalink release version, got %q", jarVersion)
	}
	jarURL := fmt.Sprintf("%s/releases/download/%s/Lavalink.jar", p.jarsRepository, jarVersion)
	if err := p.checker.Check(ctx, jarURL); err != nil {
		return nil, schemaErrorf(name, "expected Lavalink.jar to be available at: %s (%v)", jarURL, err)
	}

	ytPluginVersion, err := stringField(name, fields, "yt_plugin_version")
	if err != nil {
		return nil, err
	}
	ytPlugin := Plugin{
		Group:      ytPluginGroup,
		Name:       ytPluginName,
		Version:    ytPluginVersion,
		Repository: p.pluginRepository,
	}
	if err := p.checker.Check(ctx, ytPlugin.URL()); err != nil {
		return nil, schemaErrorf(name, "expected YT plugin to be available at: %s (%v)", ytPlugin.URL(), err)
	}

	javaVersions, err := intListField(name, fields, "java_versions")
	if err != nil {
		return nil, err
	}

	minRedVersion, err := stringField(name, fields, "min_red_version")
	if err != nil {
		return nil, err
	}
	if _, vErr := semver.NewVersion(minRedVersion); vErr != nil {
		return nil, schemaErrorf(name, "expected min_red_version to be a valid version, got %q", minRedVersion)
	}

	stream, err := streamField(name, fields)
	if err != nil {
		return nil, err
	}

	overrides, err := overridesField(name, fields)
	if err != nil {
		return nil, err
	}

	return &Info{
		ReleaseName:             name,
		JarVersion:              jarVersion,
		JarURL:                  jarURL,
		YTPlugin:                ytPlugin,
		JavaVersions:            javaVersions,
		Stream:                  stream,
		MinRedVersion:           minRedVersion,
		ApplicationYMLOverrides: overrides,
	}, nil
}

func stringField(release string, fields map[string]any, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", schemaErrorf(release, "expected %s to be set", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", schemaErrorf(release, "expected %s to be a string", key)
	}
	return s, nil
}

func intListField(release string, fields map[string]any, key string) ([]int, error) {
	v, ok := fields[key]
	if !ok {
		return nil, schemaErrorf(release, "expected %s to be set", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, schemaErrorf(release, "expected %s to be a list of version numbers (integers)", key)
	}
	versions := make([]int, len(raw))
	for i, elem := range raw {
		n, ok := elem.(int)
		if !ok {
			return nil, schemaErrorf(release, "expected %s to be a list of version numbers (integers)", key)
		}
		versions[i] = n
	}
	return versions, nil
}

func streamField(release string, fields map[string]any) (Stream, error) {
	v, ok := fields["release_stream"]
	if !ok {
		return "", schemaErrorf(release, "expected release_stream to be set to one of: %s, %s", StreamStable, StreamPreview)
	}
	raw, ok := v.(string)
	if !ok {
		return "", schemaErrorf(release, "expected release_stream to be a string")
	}
	stream := Stream(raw)
	switch stream {
	case StreamStable, StreamPreview:
		return stream, nil
	}
	return "", schemaErrorf(release, "expected release_stream to be one of: %s, %s", StreamStable, StreamPreview)
}

func overridesField(release string, fields map[string]any) (map[string]any, error) {
	v, ok := fields["application_yml_overrides"]
	if !ok {
		return map[string]any{}, nil
	}
	overrides, ok := v.(map[string]any)
	if !ok {
		return nil, schemaErrorf(release, "expected application_yml_overrides to be a mapping")
	}
	return overrides, nil
}
