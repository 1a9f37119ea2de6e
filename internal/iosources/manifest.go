// Package iosources finds and reads input documents on the local file
// system and in S3-compatible object storage.
package iosources

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/datablock/pkg/sources"
	"github.com/gnames/gn"
	"gopkg.in/yaml.v3"
)

type manifestLoader struct{}

// NewManifest creates a loader of manifest YAML files.
func NewManifest() sources.Sources {
	return manifestLoader{}
}

// Load reads, validates and normalizes a manifest. Validation warnings
// are printed and logged, they do not stop loading.
func (manifestLoader) Load(path string) (*sources.Manifest, error) {
	res, err := loadManifest(path)
	if err != nil {
		return nil, ManifestError(path, err)
	}

	for _, w := range res.Warnings {
		slog.Warn("Manifest entry issue",
			"index", w.Index, "field", w.Field, "message", w.Message)
		gn.Warn(
			fmt.Sprintf("Document %d: %s. %s", w.Index, w.Message, w.Suggestion),
		)
	}
	return res, nil
}

func loadManifest(path string) (*sources.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var res sources.Manifest
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
