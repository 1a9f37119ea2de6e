// Package sources describes the documents a load run reads.
//
// Documents are given on the command line or in a manifest YAML file. Each
// entry is a local file, a directory (all *.json files inside, recursively),
// a glob pattern or an s3://bucket/key URL. An S3 URL ending with '/' is a
// prefix and means all *.json objects under it.
//
// Example manifest:
//
//	documents:
//	  - path: ./data/acme_companyinfo.json
//	  - path: ./data/events/
//	    category: eventsfilings
//	  - path: s3://datablocks/2025-06/
package sources

import "context"

// Sources loads the manifest of a load run.
type Sources interface {
	Load(path string) (*Manifest, error)
}

// Manifest is the content of a manifest YAML file.
type Manifest struct {
	// Documents is the list of inputs in load order.
	Documents []DocumentConfig `yaml:"documents"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal manifest issue.
type ValidationWarning struct {
	Index      int    // 1-based position of the entry
	Field      string // Field name that has the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// DocumentConfig is one manifest entry.
type DocumentConfig struct {
	// Path is a file, directory, glob pattern or s3:// URL.
	Path string `yaml:"path" validate:"required"`

	// Category is a fallback category for documents that carry neither
	// blockIDs nor a recognizable shape.
	Category string `yaml:"category,omitempty"`

	// Skip excludes the entry without removing it from the file.
	Skip bool `yaml:"skip,omitempty"`
}

// Input is a single document to read. Name is a local path or an
// s3://bucket/key URL.
type Input struct {
	Name     string
	Category string
}

// Inputs converts manifest entries to inputs, skipped entries excluded.
// Directories, globs and S3 prefixes are expanded later by the reader.
func (m *Manifest) Inputs() []Input {
	res := make([]Input, 0, len(m.Documents))
	for _, d := range m.Documents {
		if d.Skip {
			continue
		}
		res = append(res, Input{Name: d.Path, Category: d.Category})
	}
	return res
}

// NewInputs creates inputs from command line arguments sharing the same
// category hint.
func NewInputs(names []string, category string) []Input {
	res := make([]Input, 0, len(names))
	for _, n := range names {
		res = append(res, Input{Name: n, Category: category})
	}
	return res
}

// Reader expands inputs to single documents and reads their content.
type Reader interface {
	// Expand replaces directories, glob patterns and S3 prefixes with the
	// documents they contain. The result keeps the order of inputs, and
	// the names found inside one input are sorted.
	Expand(ctx context.Context, inputs []Input) ([]Input, error)

	// Read returns the raw content of a single document.
	Read(ctx context.Context, in Input) ([]byte, error)
}
