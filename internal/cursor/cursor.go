// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package cursor provides a read position over an immutable byte buffer.
//
// A Cursor is a value. Copying one snapshots its position, which is how the
// lexer looks ahead and backtracks: copy, probe, then either keep the copy or
// drop it.
package cursor

type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Cursor never points outside of [0, len(content)]. The position equal to
// the content length is the end of the buffer.
type Cursor struct {
	content []byte
	index   int
}

func New(content []byte) Cursor {
	return Cursor{content: content}
}

// Get returns the byte under the cursor or NUL at the end of the buffer.
func (c Cursor) Get() byte {
	if c.index >= len(c.content) {
		return 0
	}
	return c.content[c.index]
}

// Consume returns Get and then moves forward by one.
func (c *Cursor) Consume() byte {
	b := c.Get()
	c.Move(Forward, 1)
	return b
}

func (c Cursor) AtEnd() bool {
	return c.index == len(c.content)
}

// Move shifts the position by count bytes in the given direction. The result
// is clamped to the buffer bounds.
func (c *Cursor) Move(d Direction, count int) {
	if count <= 0 {
		return
	}
	switch d {
	case Backward:
		if count > c.index {
			c.index = 0
			return
		}
		c.index = c.index - count
	default:
		if count > len(c.content)-c.index {
			c.index = len(c.content)
			return
		}
		c.index = c.index + count
	}
}

// Extract copies up to count bytes starting at the position and moves past
// them. It stops early at the end of the buffer.
func (c *Cursor) Extract(count int) string {
	if count <= 0 {
		return ""
	}
	end := c.index + count
	if count > len(c.content)-c.index {
		end = len(c.content)
	}
	v := string(c.content[c.index:end])
	c.index = end
	return v
}

func (c Cursor) Offset() int {
	return c.index
}
