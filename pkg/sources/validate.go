package sources

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/datablock/pkg/document"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the manifest for errors and normalizes its entries.
func (m *Manifest) Validate() error {
	if len(m.Documents) == 0 {
		return fmt.Errorf("no documents specified in manifest")
	}

	seen := make(map[string]int)
	for i := range m.Documents {
		d := &m.Documents[i]
		warnings, err := d.Validate(i + 1)
		if err != nil {
			return fmt.Errorf("document %d: %w", i+1, err)
		}
		m.Warnings = append(m.Warnings, warnings...)

		if j, ok := seen[d.Path]; ok && !d.Skip {
			d.Skip = true
			m.Warnings = append(m.Warnings, ValidationWarning{
				Index:      i + 1,
				Field:      "path",
				Message:    fmt.Sprintf("path %s duplicates document %d", d.Path, j),
				Suggestion: "Remove the duplicate entry",
			})
			continue
		}
		seen[d.Path] = i + 1
	}

	return nil
}

// Validate checks a single manifest entry. It returns non-fatal issues
// as warnings and fatal issues as an error.
func (d *DocumentConfig) Validate(index int) ([]ValidationWarning, error) {
	var warnings []ValidationWarning
	d.Path = strings.TrimSpace(d.Path)

	if err := validate.Struct(d); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			fe := ves[0]
			return nil, fmt.Errorf("field %s failed on '%s'", fe.Field(), fe.Tag())
		}
		return nil, err
	}

	if IsS3(d.Path) {
		if _, _, err := ParseS3(d.Path); err != nil {
			return nil, err
		}
	}

	if d.Category != "" {
		cat, ok := document.ParseCategory(d.Category)
		if !ok {
			warnings = append(warnings, ValidationWarning{
				Index:   index,
				Field:   "category",
				Message: fmt.Sprintf("unknown category '%s' is ignored", d.Category),
				Suggestion: fmt.Sprintf(
					"Use one of: %s, %s, %s",
					document.CompanyInfo, document.EventsFilings, document.Financials,
				),
			})
			d.Category = ""
		} else {
			d.Category = string(cat)
		}
	}

	return warnings, nil
}

// IsS3 checks if a name is an s3:// URL.
func IsS3(name string) bool {
	return strings.HasPrefix(name, "s3://")
}

// ParseS3 splits an s3://bucket/key URL. The key is empty or ends with
// '/' for a prefix.
func ParseS3(name string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(name, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 URL: %s", name)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("no bucket in s3 URL: %s", name)
	}
	return bucket, key, nil
}

// IsPrefix checks if an S3 key denotes a prefix rather than an object.
func IsPrefix(key string) bool {
	return key == "" || strings.HasSuffix(key, "/")
}

// IsGlob checks if a local name is a glob pattern.
func IsGlob(name string) bool {
	return strings.ContainsAny(name, "*?[")
}

// IsJSON checks if a file or object name has a .json extension.
func IsJSON(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json")
}
