package describe

import (
	"context"
	"path/filepath"

	"github.com/WhiteAbeLincoln/sf-describe/errors"
	"github.com/WhiteAbeLincoln/sf-describe/fsys"
	"github.com/WhiteAbeLincoln/sf-describe/internal/scan"
)

// Importer reads describe documents from a directory tree.
//
// Supplied paths may mix files and directories: files are taken as-is (no
// extension or content filtering), directories contribute their immediate
// regular files, and subdirectories of a supplied directory are ignored.
type Importer struct {
	fs fsys.Filesystem
}

// NewImporter creates a new Importer with the provided options.
func NewImporter(opts ...Option) *Importer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Importer{fs: cfg.filesystem}
}

// ImportPaths scans the supplied paths and returns one PendingDocument per
// discovered file, without waiting for any parse to finish.
//
// The returned slice is ordered: directly-supplied files first, in input
// order, then directory-expanded files grouped by the order of the
// directories that produced them. Scan errors (a path that cannot be
// stat-ed, a directory that cannot be listed) abort the whole call before
// any file is opened. A file that fails to read or parse fails only its own
// pending result.
func (i *Importer) ImportPaths(ctx context.Context, paths ...string) ([]*PendingDocument, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	abs := make([]string, len(paths))
	for idx, path := range paths {
		a, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.NewPathError("abs", path, err)
		}
		abs[idx] = a
	}

	classified, err := scan.ClassifyAll(ctx, i.fs, abs)
	if err != nil {
		return nil, err
	}

	files := scan.OnlyFiles(classified)
	dirs := scan.OnlyDirectories(classified)

	expanded, err := scan.ExpandAll(ctx, i.fs, dirs)
	if err != nil {
		return nil, err
	}

	all := append(files, expanded...)

	pendings := make([]*PendingDocument, len(all))
	for idx, path := range all {
		p := newPending[*Document]()
		pendings[idx] = p
		go func(path string, p *PendingDocument) {
			p.complete(readDocument(i.fs, path))
		}(path, p)
	}
	return pendings, nil
}

// readDocument reads and parses a single metadata file.
func readDocument(filesystem fsys.Filesystem, path string) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.NewPathError("read", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errors.NewPathError("parse", path, err)
	}
	return doc, nil
}
