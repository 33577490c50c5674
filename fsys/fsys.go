// Package fsys provides the filesystem abstraction used by the describe
// library. All file I/O in the core goes through the Filesystem interface so
// callers can substitute an in-memory filesystem in tests or a virtual
// filesystem in embedded use.
package fsys

import "os"

// Filesystem is the minimal filesystem surface the describe library needs.
// Implementations should behave consistently with the standard library: Stat
// on a missing path returns an error matching os.ErrNotExist, and ReadDir
// returns the immediate entries of a directory only.
type Filesystem interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(dirname string) ([]os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Exists(path string) (bool, error)
}
