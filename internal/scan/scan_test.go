package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhiteAbeLincoln/sf-describe/errors"
	"github.com/WhiteAbeLincoln/sf-describe/fsys"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		setupFS  func(*fsys.FS) error
		wantKind Kind
		wantErr  bool
	}{
		{
			name: "regular file",
			path: "/data/Account.desc.json",
			setupFS: func(fs *fsys.FS) error {
				return fs.WriteFile("/data/Account.desc.json", []byte(`{}`), 0o644)
			},
			wantKind: KindFile,
		},
		{
			name: "directory",
			path: "/data",
			setupFS: func(fs *fsys.FS) error {
				return fs.MkdirAll("/data", 0o755)
			},
			wantKind: KindDirectory,
		},
		{
			name:    "missing path",
			path:    "/nope",
			setupFS: func(fs *fsys.FS) error { return nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFS := fsys.NewInMemory()
			require.NoError(t, tt.setupFS(memFS))

			cp, err := Classify(memFS, tt.path)
			if tt.wantErr {
				require.Error(t, err)

				var derr *errors.Error
				require.True(t, errors.As(err, &derr))
				assert.Equal(t, "stat", derr.Op)
				assert.Equal(t, tt.path, derr.Path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path, cp.Path)
			assert.Equal(t, tt.wantKind, cp.Kind)
		})
	}
}

func TestClassifyAll_PreservesInputOrder(t *testing.T) {
	memFS := fsys.NewInMemory()
	require.NoError(t, memFS.MkdirAll("/dir", 0o755))
	require.NoError(t, memFS.WriteFile("/z.json", []byte(`{}`), 0o644))
	require.NoError(t, memFS.WriteFile("/a.json", []byte(`{}`), 0o644))

	paths := []string{"/z.json", "/dir", "/a.json"}
	classified, err := ClassifyAll(context.Background(), memFS, paths)
	require.NoError(t, err)
	require.Len(t, classified, len(paths))

	assert.Equal(t, ClassifiedPath{Path: "/z.json", Kind: KindFile}, classified[0])
	assert.Equal(t, ClassifiedPath{Path: "/dir", Kind: KindDirectory}, classified[1])
	assert.Equal(t, ClassifiedPath{Path: "/a.json", Kind: KindFile}, classified[2])
}

func TestClassifyAll_SingleFailureFailsBatch(t *testing.T) {
	memFS := fsys.NewInMemory()
	require.NoError(t, memFS.WriteFile("/ok.json", []byte(`{}`), 0o644))

	_, err := ClassifyAll(context.Background(), memFS, []string{"/ok.json", "/missing", "/ok.json"})
	require.Error(t, err)

	var derr *errors.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "/missing", derr.Path)
}

func TestClassifyAll_Empty(t *testing.T) {
	classified, err := ClassifyAll(context.Background(), fsys.NewInMemory(), nil)
	require.NoError(t, err)
	assert.Empty(t, classified)
}

func TestFilters(t *testing.T) {
	classified := []ClassifiedPath{
		{Path: "/b.json", Kind: KindFile},
		{Path: "/dir1", Kind: KindDirectory},
		{Path: "/sock", Kind: KindOther},
		{Path: "/a.json", Kind: KindFile},
		{Path: "/dir2", Kind: KindDirectory},
	}

	assert.Equal(t, []string{"/b.json", "/a.json"}, OnlyFiles(classified))
	assert.Equal(t, []string{"/dir1", "/dir2"}, OnlyDirectories(classified))
}

func TestFilters_NeverSelectOther(t *testing.T) {
	classified := []ClassifiedPath{{Path: "/sock", Kind: KindOther}}
	assert.Empty(t, OnlyFiles(classified))
	assert.Empty(t, OnlyDirectories(classified))
}
