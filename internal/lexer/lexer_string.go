// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"gopkg.microglot.org/swiftl.go/internal/ascii"
	"gopkg.microglot.org/swiftl.go/internal/cursor"
	"gopkg.microglot.org/swiftl.go/internal/exc"
	"gopkg.microglot.org/swiftl.go/internal/token"
)

type scalarResult uint8

const (
	scalarValue scalarResult = iota
	scalarClosed
	scalarInvalid
)

// lexStringLiteral is entered one byte past the opening quote. The payload is
// the decoded value of the literal with every escape resolved.
func (self *Lexer) lexStringLiteral() token.Token {
	var builder strings.Builder
	for {
		// Literals cannot span lines.
		if c := self.cursor.Get(); self.cursor.AtEnd() || c == ascii.LF || c == ascii.CR {
			self.report(self.cursor.Offset(), exc.CodeUnterminatedString, "unterminated string literal")
			return token.Token{Type: token.TypeUnknown}
		}
		r, result := self.lexUnicodeScalar()
		switch result {
		case scalarClosed:
			return token.Token{Type: token.TypeStringLiteral, Value: builder.String()}
		case scalarInvalid:
			self.skipStringRemainder()
			return token.Token{Type: token.TypeUnknown}
		}
		builder.WriteRune(r)
	}
}

// lexUnicodeScalar decodes the next scalar of a string literal body. Bytes
// that are not valid UTF-8 decode to the scalar with the same value.
func (self *Lexer) lexUnicodeScalar() (rune, scalarResult) {
	start := self.cursor.Offset()
	c := self.cursor.Get()
	switch c {
	case '"':
		self.cursor.Move(cursor.Forward, 1)
		return 0, scalarClosed
	case ascii.Backslash:
		self.cursor.Move(cursor.Forward, 1)
	default:
		if c < utf8.RuneSelf {
			self.cursor.Move(cursor.Forward, 1)
			return rune(c), scalarValue
		}
		r, size := utf8.DecodeRune(self.content[start:])
		if r == utf8.RuneError && size <= 1 {
			self.cursor.Move(cursor.Forward, 1)
			return rune(c), scalarValue
		}
		self.cursor.Move(cursor.Forward, size)
		return r, scalarValue
	}

	escape := self.cursor.Get()
	switch escape {
	case '0':
		self.cursor.Move(cursor.Forward, 1)
		return 0, scalarValue
	case 'n':
		self.cursor.Move(cursor.Forward, 1)
		return '\n', scalarValue
	case 'r':
		self.cursor.Move(cursor.Forward, 1)
		return '\r', scalarValue
	case 't':
		self.cursor.Move(cursor.Forward, 1)
		return '\t', scalarValue
	case '"', '\'', ascii.Backslash:
		self.cursor.Move(cursor.Forward, 1)
		return rune(escape), scalarValue
	case 'u':
		self.cursor.Move(cursor.Forward, 1)
		return self.lexUnicodeEscape(start)
	}
	self.report(start, exc.CodeInvalidEscape, fmt.Sprintf("invalid escape sequence %q in string literal", "\\"+string(rune(escape))))
	return 0, scalarInvalid
}

// lexUnicodeEscape decodes \u{h...} with one to eight hex digits. It is
// entered just past the u.
func (self *Lexer) lexUnicodeEscape(start int) (rune, scalarResult) {
	if self.cursor.Get() != '{' {
		self.report(start, exc.CodeInvalidUnicodeEscape, `expected "{" after \u`)
		return 0, scalarInvalid
	}
	self.cursor.Move(cursor.Forward, 1)
	digits := self.cursor
	count := 0
	for ascii.IsHexDigit(self.cursor.Get()) {
		count = count + 1
		self.cursor.Move(cursor.Forward, 1)
	}
	if self.cursor.Get() != '}' {
		self.report(start, exc.CodeInvalidUnicodeEscape, `expected "}" to close unicode escape`)
		return 0, scalarInvalid
	}
	self.cursor.Move(cursor.Forward, 1)
	if count < 1 || count > 8 {
		self.report(start, exc.CodeInvalidUnicodeEscape, "unicode escape requires between 1 and 8 hex digits")
		return 0, scalarInvalid
	}
	value, err := strconv.ParseUint(digits.Extract(count), 16, 64)
	if err != nil {
		self.report(start, exc.CodeInvalidUnicodeEscape, err.Error())
		return 0, scalarInvalid
	}
	r, err := safecast.Convert[rune](value)
	if err != nil || !utf8.ValidRune(r) {
		self.report(start, exc.CodeInvalidUnicodeEscape, fmt.Sprintf("U+%X is not a valid unicode scalar value", value))
		return 0, scalarInvalid
	}
	return r, scalarValue
}

// skipStringRemainder resynchronizes after a bad escape. It consumes through
// the closing quote of the current literal, or stops in front of the line
// break or end that leaves it unterminated.
func (self *Lexer) skipStringRemainder() {
	for !self.cursor.AtEnd() {
		switch self.cursor.Get() {
		case ascii.LF, ascii.CR:
			return
		case '"':
			self.cursor.Move(cursor.Forward, 1)
			return
		case ascii.Backslash:
			self.cursor.Move(cursor.Forward, 1)
			if c := self.cursor.Get(); self.cursor.AtEnd() || c == ascii.LF || c == ascii.CR {
				return
			}
		}
		self.cursor.Move(cursor.Forward, 1)
	}
}
