// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"path/filepath"

	"gopkg.microglot.org/swiftl.go/internal/fs"
	"gopkg.microglot.org/swiftl.go/internal/idl"
)

// NewDefaultFS searches the given roots in order. Relative roots are resolved
// against the working directory.
func NewDefaultFS(roots ...string) (idl.FileSystem, error) {
	f := make(fs.FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			return nil, errAbs
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}
