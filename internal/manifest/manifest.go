// Package manifest loads the releases.yaml manifest into an ordered list of
// raw release entries. Entry order follows the document, which downstream
// range resolution depends on.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FormatError reports a structurally invalid manifest document.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid releases manifest: %s", e.Reason)
}

// Release is a single named entry with its body decoded into a generic
// mapping/sequence/scalar tree. Field-level validation happens later.
type Release struct {
	Name string
	Data any
}

type Manifest struct {
	Releases []Release
}

func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &FormatError{Reason: "expected top-level value to be a mapping"}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &FormatError{Reason: "expected top-level value to be a mapping"}
	}

	releasesNode := findMappingValue(root, "releases")
	if releasesNode == nil {
		return nil, &FormatError{Reason: "expected releases to be set"}
	}
	if releasesNode.Kind != yaml.MappingNode {
		return nil, &FormatError{Reason: "expected releases to be a mapping of release name to release info"}
	}

	m := &Manifest{Releases: make([]Release, 0, len(releasesNode.Content)/2)}
	seen := make(map[string]struct{})
	for i := 0; i+1 < len(releasesNode.Content); i += 2 {
		keyNode, valueNode := releasesNode.Content[i], releasesNode.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &FormatError{Reason: fmt.Sprintf("expected release name on line %d to be a string", keyNode.Line)}
		}
		name := keyNode.Value
		if _, ok := seen[name]; ok {
			return nil, &FormatError{Reason: fmt.Sprintf("duplicate release name %q", name)}
		}
		seen[name] = struct{}{}

		var data any
		if err := valueNode.Decode(&data); err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("failed to decode release %q: %v", name, err)}
		}
		m.Releases = append(m.Releases, Release{Name: name, Data: data})
	}
	return m, nil
}

func findMappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Kind == yaml.ScalarNode && mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
