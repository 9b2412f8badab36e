package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source loads a message catalog from somewhere: an in-memory map, files on
// disk, or any fs.FS (including an embedded one).
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// MapSource serves a catalog that is already in memory.
type MapSource Catalog

func (s MapSource) Load(context.Context) (Catalog, error) {
	catalog := make(Catalog, len(s))
	catalog.Merge(Catalog(s))
	return catalog, nil
}

// FileSource loads and merges catalog files from disk. Later files win on
// duplicate keys.
type FileSource struct {
	parser Parser
	paths  []string
}

// NewFileSource builds a file source over the given catalog files.
func NewFileSource(parser Parser, paths ...string) *FileSource {
	return &FileSource{parser: parser, paths: paths}
}

func (s *FileSource) Load(ctx context.Context) (Catalog, error) {
	if s.parser == nil {
		return nil, errors.New("i18n: nil parser")
	}

	catalog := make(Catalog)
	for _, path := range s.paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}
		parsed, err := s.parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", path, err)
		}
		catalog.Merge(parsed)
	}
	return catalog, nil
}

// FSSource loads every supported catalog file from a directory of an fs.FS.
// Works with embed.FS, which makes catalogs shippable inside the binary.
type FSSource struct {
	fsys fs.FS
	dir  string

	parser Parser
}

// NewFSSource builds a source over dir inside fsys.
func NewFSSource(fsys fs.FS, dir string, parser Parser) *FSSource {
	return &FSSource{fsys: fsys, dir: dir, parser: parser}
}

func (s *FSSource) Load(ctx context.Context) (Catalog, error) {
	if s.fsys == nil || s.parser == nil {
		return nil, errors.New("i18n: nil filesystem or parser")
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read dir %s: %w", s.dir, err)
	}

	catalog := make(Catalog)
	for _, entry := range entries {
		if entry.IsDir() || !extensionSupported(s.parser, filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}
		parsed, err := s.parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", path, err)
		}
		catalog.Merge(parsed)
	}

	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	return catalog, nil
}
