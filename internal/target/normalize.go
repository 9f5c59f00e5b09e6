// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package target

import (
	"net/url"
	"path/filepath"
)

// Stdin is the target that names standard input rather than a file.
const Stdin = "-"

// Normalize processes a given tokenize target and converts it into a standard
// form.
//
// Targets may be any valid URI or file path. When the target is a file path or
// a file URI then we convert the paths to an absolute form relative to the
// root of the file system. All non-file URIs are left as-is with the
// expectation that they will be handled by some other implementation. The
// Stdin target is never rewritten.
func Normalize(target string) string {
	if target == Stdin {
		return target
	}
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return target
	}
	if u.Scheme == "file" {
		target = u.Path
	}
	if !filepath.IsAbs(target) {
		return filepath.Join("/", target)
	}
	return target
}
