// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"fmt"

	"gopkg.microglot.org/swiftl.go/internal/ascii"
	"gopkg.microglot.org/swiftl.go/internal/cursor"
	"gopkg.microglot.org/swiftl.go/internal/exc"
	"gopkg.microglot.org/swiftl.go/internal/token"
)

// lexNumber is entered one byte past the leading digit. Literal payloads are
// the exact source text of the literal.
func (self *Lexer) lexNumber() token.Token {
	tokStart := self.startOfCurrent()
	if tokStart.Get() == '0' {
		switch self.cursor.Get() {
		case 'x':
			return self.lexHexNumber(tokStart)
		case 'o':
			// 0o[0-7][0-7_]*
			return self.lexRadixNumber(tokStart, ascii.IsOctalDigit, "octal")
		case 'b':
			// 0b[01][01_]*
			return self.lexRadixNumber(tokStart, ascii.IsBinaryDigit, "binary")
		}
	}

	self.skipDecimalDigits()

	if self.cursor.Get() == '.' {
		// The lookahead still holds the previous token here. After a period
		// "x.0.1" is a chain of tuple member accesses, not x followed by a
		// floating point literal.
		probe := self.cursor
		probe.Move(cursor.Forward, 1)
		if !ascii.IsDigit(probe.Get()) || self.lookahead.Type == token.TypeOpPeriod {
			return token.Token{Type: token.TypeIntegerLiteral, Value: self.span(tokStart)}
		}
		self.cursor = probe
		self.skipDecimalDigits()
	} else if c := self.cursor.Get(); c != 'e' && c != 'E' {
		return token.Token{Type: token.TypeIntegerLiteral, Value: self.span(tokStart)}
	}

	if c := self.cursor.Get(); c == 'e' || c == 'E' {
		self.cursor.Move(cursor.Forward, 1)
		if c := self.cursor.Get(); c == '+' || c == '-' {
			self.cursor.Move(cursor.Forward, 1)
		}
		if !ascii.IsDigit(self.cursor.Get()) {
			self.report(self.cursor.Offset(), exc.CodeInvalidNumber, "expected a digit in the exponent of a floating point literal")
			return token.Token{Type: token.TypeUnknown}
		}
		self.skipDecimalDigits()
	}

	return token.Token{Type: token.TypeFloatingLiteral, Value: self.span(tokStart)}
}

func (self *Lexer) lexRadixNumber(tokStart cursor.Cursor, isDigit func(byte) bool, base string) token.Token {
	self.cursor.Move(cursor.Forward, 1)
	if !isDigit(self.cursor.Get()) {
		self.report(self.cursor.Offset(), exc.CodeInvalidNumber, fmt.Sprintf("expected a digit in %s integer literal", base))
		return token.Token{Type: token.TypeUnknown}
	}
	for isDigit(self.cursor.Get()) || self.cursor.Get() == '_' {
		self.cursor.Move(cursor.Forward, 1)
	}
	return token.Token{Type: token.TypeIntegerLiteral, Value: self.span(tokStart)}
}

// lexHexNumber consumes the literal so that a caller who downgrades the
// problem to non-fatal resumes after it.
func (self *Lexer) lexHexNumber(tokStart cursor.Cursor) token.Token {
	self.cursor.Move(cursor.Forward, 1)
	for ascii.IsHexDigit(self.cursor.Get()) || self.cursor.Get() == '_' {
		self.cursor.Move(cursor.Forward, 1)
	}
	self.report(tokStart.Offset(), exc.CodeUnsupportedHexLiteral, "hexadecimal integer literals are not supported")
	return token.Token{Type: token.TypeUnknown}
}

func (self *Lexer) skipDecimalDigits() {
	for ascii.IsDigit(self.cursor.Get()) || self.cursor.Get() == '_' {
		self.cursor.Move(cursor.Forward, 1)
	}
}
