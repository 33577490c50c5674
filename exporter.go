package describe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/WhiteAbeLincoln/sf-describe/errors"
	"github.com/WhiteAbeLincoln/sf-describe/fsys"
)

// Exporter persists describe documents to a target directory, one file per
// document.
type Exporter struct {
	fs       fsys.Filesystem
	filePerm os.FileMode
	dirPerm  os.FileMode
}

// NewExporter creates a new Exporter with the provided options.
func NewExporter(opts ...Option) *Exporter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Exporter{
		fs:       cfg.filesystem,
		filePerm: cfg.filePerm,
		dirPerm:  cfg.dirPerm,
	}
}

// ExportAll writes every document into dir as {dir}/{name}.desc.json and
// returns one PendingWrite per document, each resolving to the written
// file's path.
//
// The directory is created if missing; a directory that already exists is
// not an error, but any other creation failure aborts before a single write
// is issued. Writes are fanned out concurrently and fail independently.
// There is no collision detection: two documents sharing a name overwrite
// one another, last write wins, and existing files at a computed path are
// overwritten without confirmation.
func (e *Exporter) ExportAll(ctx context.Context, docs []*Document, dir string) ([]*PendingWrite, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.NewPathError("abs", dir, err)
	}

	for _, doc := range docs {
		if !validDocumentName(doc.Name()) {
			return nil, errors.NewPathError("export", doc.Name(), errors.ErrInvalidName)
		}
	}

	if err := e.ensureDir(abs); err != nil {
		return nil, err
	}

	pendings := make([]*PendingWrite, len(docs))
	for idx, doc := range docs {
		target := filepath.Join(abs, doc.Filename())
		p := newPending[string]()
		pendings[idx] = p
		go func(doc *Document, target string, p *PendingWrite) {
			if err := e.fs.WriteFile(target, doc.Bytes(), e.filePerm); err != nil {
				p.complete("", errors.NewPathError("write", target, err))
				return
			}
			p.complete(target, nil)
		}(doc, target, p)
	}
	return pendings, nil
}

// ensureDir creates dir if it does not exist. Only the already-exists case
// is suppressed; the check is by kind, not a blanket swallow of creation
// errors.
func (e *Exporter) ensureDir(dir string) error {
	info, err := e.fs.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return errors.NewPathError("mkdir", dir, fmt.Errorf("%w: %s", errors.ErrNotDirectory, info.Mode()))
	case !errors.Is(err, os.ErrNotExist):
		return errors.NewPathError("stat", dir, err)
	}

	if err := e.fs.MkdirAll(dir, e.dirPerm); err != nil {
		// Another writer may have created it between the stat and here.
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return errors.NewPathError("mkdir", dir, err)
	}
	return nil
}

// validDocumentName reports whether a document name is usable as a filename
// component. Names come from remote instances, so path separators and dot
// entries are rejected rather than trusted.
func validDocumentName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
