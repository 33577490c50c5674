package describe

import (
	"os"

	"github.com/WhiteAbeLincoln/sf-describe/fsys"
)

// config holds shared configuration for importers and exporters.
type config struct {
	filesystem fsys.Filesystem
	filePerm   os.FileMode
	dirPerm    os.FileMode
}

func defaultConfig() *config {
	return &config{
		filesystem: fsys.NewOS(),
		filePerm:   0o644,
		dirPerm:    0o755,
	}
}

// Option configures an Importer or Exporter.
type Option func(*config)

// WithFilesystem sets a custom filesystem implementation for file operations.
// This allows using in-memory filesystems for testing or virtual filesystems
// in embedded use. If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem fsys.Filesystem) Option {
	return func(c *config) {
		if filesystem != nil {
			c.filesystem = filesystem
		}
	}
}

// WithFilePerm sets the permission bits for files written by the exporter.
// Default is 0o644.
func WithFilePerm(perm os.FileMode) Option {
	return func(c *config) {
		c.filePerm = perm
	}
}

// WithDirPerm sets the permission bits for directories created by the
// exporter. Default is 0o755.
func WithDirPerm(perm os.FileMode) Option {
	return func(c *config) {
		c.dirPerm = perm
	}
}
