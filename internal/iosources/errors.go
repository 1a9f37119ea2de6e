package iosources

import (
	"fmt"

	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/gn"
)

// ManifestError creates an error for a manifest file that cannot be
// read or is invalid.
func ManifestError(path string, err error) error {
	msg := `Cannot load manifest

<em>Manifest file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Entry without a path

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Make sure every entry under <em>documents</em> has a <em>path</em>`

	return &gn.Error{
		Code: errcode.SourceManifestError,
		Msg:  msg,
		Vars: []any{path, path},
		Err:  fmt.Errorf("failed to load manifest: %w", err),
	}
}

// OpenError creates an error for a local input that cannot be opened.
func OpenError(name string, err error) error {
	msg := `Cannot open input <em>%s</em>

<em>Possible causes:</em>
  - File or directory does not exist
  - Permission denied
  - Malformed glob pattern`

	return &gn.Error{
		Code: errcode.SourceOpenError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("cannot open %s: %w", name, err),
	}
}

// NoInputError creates an error when inputs expand to no JSON documents.
func NoInputError(names []string) error {
	msg := `No JSON documents found

<em>Inputs:</em> %v

<em>How to fix:</em>
  1. Give file names, directories or s3:// URLs as arguments
  2. Or use <em>--manifest</em> with a manifest YAML file
  3. Only files with <em>.json</em> extension are read from directories`

	return &gn.Error{
		Code: errcode.SourceNoInputError,
		Msg:  msg,
		Vars: []any{names},
		Err:  fmt.Errorf("no JSON documents in %v", names),
	}
}

// S3Error creates an error for a failed object storage request.
func S3Error(name string, err error) error {
	msg := `Cannot read from object storage <em>%s</em>

<em>Possible causes:</em>
  - Bucket or key does not exist
  - Missing or wrong AWS credentials
  - Wrong region or endpoint

<em>How to fix:</em>
  1. Check credentials: <em>AWS_ACCESS_KEY_ID</em>, <em>AWS_SECRET_ACCESS_KEY</em>
  2. Check <em>s3.region</em> and <em>s3.endpoint</em> in config.yaml
  3. Set <em>s3.path_style: true</em> for MinIO`

	return &gn.Error{
		Code: errcode.SourceS3Error,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("s3 request for %s failed: %w", name, err),
	}
}
