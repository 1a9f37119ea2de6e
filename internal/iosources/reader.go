package iosources

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gnames/datablock/internal/iofs"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/sources"
)

type reader struct {
	cfg *config.Config

	once      sync.Once
	client    *s3.Client
	clientErr error
}

// NewReader creates a reader of local and s3:// inputs. The S3 client
// is created on first use, so local-only runs never touch AWS settings.
func NewReader(cfg *config.Config) sources.Reader {
	return &reader{cfg: cfg}
}

// Expand implements sources.Reader.
func (r *reader) Expand(
	ctx context.Context,
	inputs []sources.Input,
) ([]sources.Input, error) {
	var res []sources.Input
	var resolved bool
	names := make([]string, 0, len(inputs))

	for _, in := range inputs {
		names = append(names, in.Name)
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var found []string
		var err error
		exists := true
		switch {
		case sources.IsS3(in.Name):
			found, err = r.expandS3(ctx, in.Name)
		case sources.IsGlob(in.Name):
			found, err = expandGlob(in.Name)
		default:
			found, exists, err = expandLocal(in.Name)
		}
		if err != nil {
			return nil, err
		}
		if exists && len(found) > 0 {
			resolved = true
		}

		for _, name := range found {
			res = append(res, sources.Input{Name: name, Category: in.Category})
		}
	}

	if !resolved {
		return nil, NoInputError(names)
	}
	return res, nil
}

// Read implements sources.Reader.
func (r *reader) Read(ctx context.Context, in sources.Input) ([]byte, error) {
	if sources.IsS3(in.Name) {
		return r.readS3(ctx, in.Name)
	}

	res, err := os.ReadFile(in.Name)
	if err != nil {
		return nil, iofs.ReadFileError(in.Name, err)
	}
	return res, nil
}

func expandGlob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, OpenError(pattern, err)
	}

	res := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		res = append(res, m)
	}
	sort.Strings(res)
	return res, nil
}

// expandLocal returns a file as is, and all *.json files of a directory
// tree in lexical order. A path that cannot be stat'ed is returned as is
// with exists set to false, so it fails on its own when read and the rest
// of the batch still loads.
func expandLocal(name string) (res []string, exists bool, err error) {
	info, err := os.Stat(name)
	if err != nil {
		slog.Warn("Input cannot be opened", "input", name, "error", err)
		return []string{name}, false, nil
	}
	if !info.IsDir() {
		return []string{name}, true, nil
	}

	err = filepath.WalkDir(name, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && sources.IsJSON(path) {
			res = append(res, path)
		}
		return nil
	})
	if err != nil {
		return nil, true, OpenError(name, err)
	}
	return res, true, nil
}
