// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"gopkg.microglot.org/swiftl.go/internal/ascii"
	"gopkg.microglot.org/swiftl.go/internal/cursor"
	"gopkg.microglot.org/swiftl.go/internal/exc"
	"gopkg.microglot.org/swiftl.go/internal/token"
)

func (self *Lexer) lexIdentifier() token.Token {
	start := self.startOfCurrent()
	for ascii.IsIdentifierBody(self.cursor.Get()) {
		self.cursor.Move(cursor.Forward, 1)
	}
	return token.Lookup(self.span(start))
}

// lexDollarIdent is entered one byte past the "$". The payload is the digits
// only.
func (self *Lexer) lexDollarIdent() token.Token {
	start := self.cursor
	for ascii.IsDigit(self.cursor.Get()) {
		self.cursor.Move(cursor.Forward, 1)
	}
	if self.cursor.Offset() == start.Offset() {
		self.report(start.Offset()-1, exc.CodeInvalidDollarIdent, `expected a digit after "$"`)
		return token.Token{Type: token.TypeUnknown}
	}
	return token.Token{Type: token.TypeDollarIdent, Value: self.span(start)}
}
