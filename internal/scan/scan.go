// Package scan turns a mixed batch of file and directory paths into a flat
// list of leaf files. It classifies each path with a single stat, filters by
// kind, and expands directories exactly one level deep.
package scan

import (
	"context"
	"os"
	"sync"

	"github.com/WhiteAbeLincoln/sf-describe/errors"
	"github.com/WhiteAbeLincoln/sf-describe/fsys"
)

// Kind is the filesystem kind of a classified path.
type Kind int

const (
	// KindOther covers symlinks, devices, and anything else that is neither
	// a regular file nor a directory. Other paths are never selected by the
	// filters below.
	KindOther Kind = iota

	// KindFile is a regular file.
	KindFile

	// KindDirectory is a directory.
	KindDirectory
)

// ClassifiedPath pairs a path with its filesystem kind. The kind is queried
// once when the value is created and never re-checked.
type ClassifiedPath struct {
	Path string
	Kind Kind
}

// Classify stats the path and returns it paired with its kind. A path that
// does not exist or cannot be stat-ed is an error; the error carries the
// failing path.
func Classify(filesystem fsys.Filesystem, path string) (ClassifiedPath, error) {
	info, err := filesystem.Stat(path)
	if err != nil {
		return ClassifiedPath{}, errors.NewPathError("stat", path, err)
	}
	return classifyInfo(path, info), nil
}

// classifyInfo derives a ClassifiedPath from an already-obtained FileInfo.
func classifyInfo(path string, info os.FileInfo) ClassifiedPath {
	switch {
	case info.IsDir():
		return ClassifiedPath{Path: path, Kind: KindDirectory}
	case info.Mode().IsRegular():
		return ClassifiedPath{Path: path, Kind: KindFile}
	default:
		return ClassifiedPath{Path: path, Kind: KindOther}
	}
}

// ClassifyAll classifies every path with all stats in flight at once.
// Results are indexed back to their input position, so the returned slice is
// in input order regardless of completion order. Any single failure fails
// the whole batch.
func ClassifyAll(ctx context.Context, filesystem fsys.Filesystem, paths []string) ([]ClassifiedPath, error) {
	results := make([]ClassifiedPath, len(paths))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, path := range paths {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()

			cp, err := Classify(filesystem, path)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = cp
		}(i, path)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// OnlyFiles returns the paths classified as regular files, preserving input
// order, in a single pass.
func OnlyFiles(paths []ClassifiedPath) []string {
	var files []string
	for _, cp := range paths {
		if cp.Kind == KindFile {
			files = append(files, cp.Path)
		}
	}
	return files
}

// OnlyDirectories returns the paths classified as directories, preserving
// input order, in a single pass.
func OnlyDirectories(paths []ClassifiedPath) []string {
	var dirs []string
	for _, cp := range paths {
		if cp.Kind == KindDirectory {
			dirs = append(dirs, cp.Path)
		}
	}
	return dirs
}
