package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/swiftl.go/internal/exc"
	"gopkg.microglot.org/swiftl.go/internal/idl"
)

func newMapFS() fstest.MapFS {
	return fstest.MapFS{
		"src/b.swift":     {Data: []byte("let b = 2")},
		"src/a.swift":     {Data: []byte("let a = 1")},
		"src/notes.txt":   {Data: []byte("not swift")},
		"src/sub/c.swift": {Data: []byte("let c = 3")},
		"empty/readme.md": {Data: []byte("# nothing")},
	}
}

func newLocal(t *testing.T, options ...FileSystemLocalOption) idl.FileSystem {
	t.Helper()
	mfs := newMapFS()
	options = append([]FileSystemLocalOption{WithOptionFSFactory(func(string) iofs.FS { return mfs })}, options...)
	fsys, err := NewFileSystemLocal("/", options...)
	require.NoError(t, err)
	return fsys
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var e exc.Exception
	require.True(t, errors.As(err, &e), err.Error())
	require.Equal(t, code, e.Code())
}

func TestFileSystemLocalOpen(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		uri      string
		paths    []string
		contents []string
		kind     idl.FileKind
	}{
		{
			name:     "directory",
			uri:      "src",
			paths:    []string{"/src/a.swift", "/src/b.swift"},
			contents: []string{"let a = 1", "let b = 2"},
			kind:     idl.FileKindSwift,
		},
		{
			name:     "rooted file",
			uri:      "/src/a.swift",
			paths:    []string{"/src/a.swift"},
			contents: []string{"let a = 1"},
			kind:     idl.FileKindSwift,
		},
		{
			name:     "file uri",
			uri:      "file:///src/sub/c.swift",
			paths:    []string{"/src/sub/c.swift"},
			contents: []string{"let c = 3"},
			kind:     idl.FileKindSwift,
		},
		{
			name:     "explicit file ignores filter",
			uri:      "src/notes.txt",
			paths:    []string{"/src/notes.txt"},
			contents: []string{"not swift"},
			kind:     idl.FileKindNone,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			files, err := newLocal(t).Open(ctx, testCase.uri)
			require.NoError(t, err)
			require.Len(t, files, len(testCase.paths))
			for x, f := range files {
				require.Equal(t, testCase.paths[x], f.Path(ctx))
				require.Equal(t, testCase.kind, f.Kind(ctx))
				b, err := ReadAll(ctx, f)
				require.NoError(t, err)
				require.Equal(t, testCase.contents[x], string(b))
			}
		})
	}
}

func TestFileSystemLocalOpenErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := newLocal(t)

	_, err := fsys.Open(ctx, "missing.swift")
	requireCode(t, err, exc.CodeFileNotFound)

	_, err = fsys.Open(ctx, "empty")
	requireCode(t, err, exc.CodeFileNotFound)
}

func TestFileSystemLocalFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := newLocal(t, WithOptionFileFilter(func(ctx context.Context, fname string) bool {
		return filepath.Ext(fname) == ".txt"
	}))
	files, err := fsys.Open(ctx, "src")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "/src/notes.txt", files[0].Path(ctx))
}

func TestFileSystemLocalWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	fsys, err := NewFileSystemLocal(root)
	require.NoError(t, err)

	require.NoError(t, fsys.Write(ctx, "out/main.swift", "let x = 1"))
	b, err := os.ReadFile(filepath.Join(root, "out", "main.swift"))
	require.NoError(t, err)
	require.Equal(t, "let x = 1", string(b))

	files, err := fsys.Open(ctx, "out")
	require.NoError(t, err)
	require.Len(t, files, 1)
	b, err = ReadAll(ctx, files[0])
	require.NoError(t, err)
	require.Equal(t, "let x = 1", string(b))
}

func TestFileSystemMulti(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	other := fstest.MapFS{"only.swift": {Data: []byte("x")}}
	second, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) iofs.FS { return other }))
	require.NoError(t, err)
	multi := FileSystemMulti{newLocal(t), second}

	files, err := multi.Open(ctx, "only.swift")
	require.NoError(t, err)
	require.Len(t, files, 1)

	files, err = multi.Open(ctx, "src/a.swift")
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = multi.Open(ctx, "nowhere.swift")
	requireCode(t, err, exc.CodeFileNotFound)

	requireCode(t, multi.Write(ctx, "x.swift", ""), exc.CodeUnsuportedFileSystemOperation)
}

func TestFileString(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := NewFileString("-", "let s = \"hi\"", idl.FileKindSwift)
	require.Equal(t, "-", f.Path(ctx))
	require.Equal(t, idl.FileKindSwift, f.Kind(ctx))
	for x := 0; x < 2; x = x + 1 {
		b, err := ReadAll(ctx, f)
		require.NoError(t, err)
		require.Equal(t, "let s = \"hi\"", string(b))
	}
}

func TestReadAllErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := NewFileFN("/denied.swift", func() (io.ReadCloser, error) {
		return nil, &iofs.PathError{Op: "open", Path: "denied.swift", Err: iofs.ErrPermission}
	}, idl.FileKindSwift)
	_, err := ReadAll(ctx, f)
	requireCode(t, err, exc.CodePermissionDenied)

	f = NewFileFN("/broken.swift", func() (io.ReadCloser, error) {
		return nil, errors.New("boom")
	}, idl.FileKindSwift)
	_, err = ReadAll(ctx, f)
	requireCode(t, err, exc.CodeUnknownFatal)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, idl.FileKindSwift, KindOf("a/b.swift"))
	require.Equal(t, idl.FileKindNone, KindOf("a/b.mgdl"))
	require.Equal(t, idl.FileKindNone, KindOf("-"))
}
