// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"gopkg.microglot.org/swiftl.go/internal/ascii"
	"gopkg.microglot.org/swiftl.go/internal/cursor"
	"gopkg.microglot.org/swiftl.go/internal/exc"
)

// skipLineComment consumes through the next line feed or to the end.
func (self *Lexer) skipLineComment() {
	for !self.cursor.AtEnd() && self.cursor.Consume() != ascii.LF {
	}
}

// skipBlockComment is entered with the opening "/*" consumed. Block comments
// nest, so every "/*" needs its own "*/".
func (self *Lexer) skipBlockComment(start int) {
	depth := 1
	for {
		if self.cursor.AtEnd() {
			self.report(start, exc.CodeUnterminatedComment, "unterminated block comment")
			return
		}
		offset := self.cursor.Offset()
		switch self.cursor.Consume() {
		case '*':
			if self.cursor.Get() == ascii.Slash {
				self.cursor.Move(cursor.Forward, 1)
				depth = depth - 1
				if depth == 0 {
					return
				}
			}
		case ascii.Slash:
			if self.cursor.Get() == '*' {
				self.cursor.Move(cursor.Forward, 1)
				depth = depth + 1
			}
		case ascii.NUL:
			if !self.report(offset, exc.CodeNullInComment, "null character embedded in block comment") {
				return
			}
		}
	}
}
