// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"sort"
)

// Lines maps byte offsets of one source to line and column positions. A CR
// LF pair is a single line break and a lone CR is a line break of its own.
type Lines struct {
	uri     string
	content []byte
	// starts holds the offset of the first byte of every line in ascending
	// order. The first entry is always zero.
	starts []int
}

func NewLines(uri string, content []byte) *Lines {
	starts := []int{0}
	for x := 0; x < len(content); x = x + 1 {
		switch content[x] {
		case '\n':
			starts = append(starts, x+1)
		case '\r':
			if x+1 < len(content) && content[x+1] == '\n' {
				continue
			}
			starts = append(starts, x+1)
		}
	}
	return &Lines{uri: uri, content: content, starts: starts}
}

// Location finds the line holding offset with a binary search over the line
// starts. Offsets outside of the content are clamped to it.
func (self *Lines) Location(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(self.content) {
		offset = len(self.content)
	}
	line := sort.SearchInts(self.starts, offset+1) - 1
	col := offset - self.starts[line] + 1
	if offset > self.starts[line] && self.content[offset-1] == '\r' {
		// The LF of a CR LF pair shares the column of its CR.
		col = col - 1
	}
	return Location{
		URI:    self.uri,
		Line:   int32(line + 1),
		Column: int32(col),
		Offset: int64(offset),
	}
}
