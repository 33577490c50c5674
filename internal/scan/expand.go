package scan

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/WhiteAbeLincoln/sf-describe/errors"
	"github.com/WhiteAbeLincoln/sf-describe/fsys"
)

// Expand lists the directory's immediate entries and returns the absolute
// paths of the regular files among them, in the order the filesystem
// returned them. Child directories are discarded, not recursed into: a
// supplied directory is expanded exactly one level.
func Expand(ctx context.Context, filesystem fsys.Filesystem, dir string) ([]string, error) {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return nil, errors.NewPathError("readdir", dir, err)
	}

	// ReadDir already carries each entry's kind, so classification here
	// costs no extra stat.
	classified := make([]ClassifiedPath, 0, len(entries))
	for _, entry := range entries {
		classified = append(classified, classifyInfo(filepath.Join(dir, entry.Name()), entry))
	}
	return OnlyFiles(classified), nil
}

// ExpandAll expands every directory concurrently and merges the per-directory
// results into one flat list: directory order outer, entry order inner. Any
// single directory's failure fails the whole call; a silently incomplete
// scan would be worse than a hard failure.
func ExpandAll(ctx context.Context, filesystem fsys.Filesystem, dirs []string) ([]string, error) {
	perDir := make([][]string, len(dirs))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, dir := range dirs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(i int, dir string) {
			defer wg.Done()

			files, err := Expand(ctx, filesystem, dir)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			perDir[i] = files
		}(i, dir)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	var merged []string
	for _, files := range perDir {
		merged = append(merged, files...)
	}
	return merged, nil
}
