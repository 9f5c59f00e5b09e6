// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.microglot.org/swiftl.go/internal/exc"
	"gopkg.microglot.org/swiftl.go/internal/idl"
)

const (
	swiftExt = ".swift" // Swift source text
)

var knownExts = map[string]idl.FileKind{
	swiftExt: idl.FileKindSwift,
}

// KindOf returns the file kind implied by the extension of path.
func KindOf(path string) idl.FileKind {
	return knownExts[filepath.Ext(path)]
}

var _ idl.FileSystem = FileSystemMulti{}

// FileSystemMulti is an ordered set of FileSystem implementations that are
// tried in order. Note that this type does not implement write operations.
// Those must be performed on individual backends.
type FileSystemMulti []idl.FileSystem

func (r FileSystemMulti) Open(ctx context.Context, uri string) ([]idl.File, error) {
	for _, fs := range r {
		files, err := fs.Open(ctx, uri)
		if err != nil {
			continue
		}
		return files, nil
	}
	return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("could not open %s from any file system", uri))
}

func (r FileSystemMulti) Write(ctx context.Context, uri string, content string) error {
	return exc.New(exc.Location{URI: uri}, exc.CodeUnsuportedFileSystemOperation, "cannot write to a composite file system")
}

// FileFilter is a filter function type used to select which files to open when
// the path being opened is a directory. Implementations should return true if
// the file should be opened, false otherwise.
type FileFilter func(ctx context.Context, fname string) bool

type FileSystemLocalOption func(*fileSystemLocal)

// WithOptionFSFactory installs a custom factory function used to generate the
// underlying file system handle. The default value is os.DirFS. The string
// value provided to the factory function is the root directory of the file
// system. All paths given to open are considered relative to this root.
// Writes always go to the real file system.
func WithOptionFSFactory(v func(root string) fs.FS) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fsFactory = v
	}
}

// WithOptionFileFilter installs a custom filter function used to select files
// when a target is a directory. The default selects Swift source files.
func WithOptionFileFilter(v FileFilter) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fileFilter = v
	}
}

type fileSystemLocal struct {
	root       string
	fsFactory  func(string) fs.FS
	fileFilter FileFilter
}

// NewFileSystemLocal creates a new FileSystem rooted at the given directory.
func NewFileSystemLocal(root string, options ...FileSystemLocalOption) (idl.FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: root}, err)
	}
	result := &fileSystemLocal{
		root:      absroot,
		fsFactory: os.DirFS,
		fileFilter: func(ctx context.Context, fname string) bool {
			return KindOf(fname) != idl.FileKindNone
		},
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

// Open resolves uri against the root. A regular file yields itself. A
// directory yields its immediate children that pass the filter, in name
// order.
func (r *fileSystemLocal) Open(ctx context.Context, uri string) ([]idl.File, error) {
	path := uri
	u, err := url.Parse(uri)
	if err == nil {
		path = u.Path
	}
	path = filepath.Join("/", path)

	dir := r.fsFactory(r.root)
	p := filepath.Clean(path)
	if p == "" || p == "/" {
		// fs.ValidPath only allows, and requires, '.' when it is
		// expressing the root path.
		p = "."
	}
	// fs.FS requires an un-rooted path.
	p = strings.TrimPrefix(p, "/")
	d, err := dir.Open(p)
	if err != nil {
		return nil, fsErr(p, err)
	}
	defer d.Close()
	stat, err := d.Stat()
	if err != nil {
		return nil, fsErr(p, err)
	}
	if !stat.IsDir() {
		f := NewFileFN(path, func() (io.ReadCloser, error) {
			return dir.Open(p)
		}, KindOf(p))
		return []idl.File{f}, nil
	}
	rdf, ok := d.(fs.ReadDirFile)
	if !ok {
		return nil, exc.New(exc.Location{URI: path}, exc.CodeUnsuportedFileSystemOperation, fmt.Sprintf("cannot list directory %s", path))
	}
	dfs, err := rdf.ReadDir(-1)
	if err != nil {
		return nil, fsErr(p, err)
	}
	files := make([]idl.File, 0, len(dfs))
	for _, df := range dfs {
		if df.IsDir() {
			continue
		}
		if !r.fileFilter(ctx, df.Name()) {
			continue
		}
		dfPath := filepath.ToSlash(filepath.Join(p, df.Name()))
		f := NewFileFN(filepath.Join("/", dfPath), func() (io.ReadCloser, error) {
			return dir.Open(dfPath)
		}, KindOf(dfPath))
		files = append(files, f)
	}
	if len(files) < 1 {
		return nil, exc.New(exc.Location{URI: path}, exc.CodeFileNotFound, fmt.Sprintf("found directory %s but it has no source files", path))
	}
	return files, nil
}

func (r *fileSystemLocal) Write(ctx context.Context, uri string, content string) error {
	path := uri
	u, err := url.Parse(uri)
	if err == nil {
		path = u.Path
	}
	path = filepath.Join(r.root, "/", path)
	p := filepath.Clean(path)

	d := filepath.Dir(p)
	if err = os.MkdirAll(d, os.ModeDir|0o755); err != nil {
		return fsErr(d, err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		return fsErr(p, err)
	}
	return nil
}

// ReadAll reads the complete body of a file and closes the handle.
func ReadAll(ctx context.Context, f idl.File) ([]byte, error) {
	path := f.Path(ctx)
	rc, err := f.Body(ctx)
	if err != nil {
		return nil, fsErr(path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fsErr(path, err)
	}
	return b, nil
}

func fsErr(path string, err error) error {
	var excT exc.Exception
	if errors.As(err, &excT) {
		return excT
	}
	var errT *fs.PathError
	if errors.As(err, &errT) {
		switch {
		case errors.Is(errT.Err, fs.ErrNotExist):
			return exc.Wrap(exc.Location{URI: errT.Path}, exc.CodeFileNotFound, errT)
		case errors.Is(errT.Err, fs.ErrPermission):
			return exc.Wrap(exc.Location{URI: errT.Path}, exc.CodePermissionDenied, errT)
		default:
			return exc.WrapUnknown(exc.Location{URI: errT.Path}, errT)
		}
	}
	return exc.WrapUnknown(exc.Location{URI: path}, err)
}
