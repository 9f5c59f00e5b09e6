// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package lexer converts source bytes into a stream of tokens.
//
// A Lexer always holds one computed token of lookahead. Peek returns it and
// Advance returns it and then scans the next one. Problems found while
// scanning are handed to an exc.Reporter. Problems the reporter treats as
// non-fatal become Unknown tokens, or are skipped when they occur inside a
// comment. A fatal problem ends the stream: the lookahead becomes EOF and Err
// returns the exception.
package lexer

import (
	"fmt"

	"gopkg.microglot.org/swiftl.go/internal/ascii"
	"gopkg.microglot.org/swiftl.go/internal/cursor"
	"gopkg.microglot.org/swiftl.go/internal/exc"
	"gopkg.microglot.org/swiftl.go/internal/token"
)

type Option func(*Lexer)

// OptionWithReporter installs the reporter that receives every diagnostic.
// The default is exc.NewReporter(nil).
func OptionWithReporter(reporter exc.Reporter) Option {
	return func(l *Lexer) {
		l.reporter = reporter
	}
}

// OptionWithURI sets the URI used in the location of reported exceptions.
func OptionWithURI(uri string) Option {
	return func(l *Lexer) {
		l.uri = uri
	}
}

// Lexer is not safe for concurrent use.
type Lexer struct {
	content   []byte
	cursor    cursor.Cursor
	lookahead token.Token
	reporter  exc.Reporter
	uri       string
	err       exc.Exception
	// lines is built on the first report.
	lines *exc.Lines
}

// New creates a Lexer over content and scans the first token. The content
// must not be modified while the Lexer is in use.
func New(content []byte, opts ...Option) *Lexer {
	self := &Lexer{
		content: content,
		cursor:  cursor.New(content),
	}
	for _, opt := range opts {
		opt(self)
	}
	if self.reporter == nil {
		self.reporter = exc.NewReporter(nil)
	}
	self.lex()
	return self
}

// Peek returns the lookahead token without consuming it.
func (self *Lexer) Peek() token.Token {
	return self.lookahead
}

// Advance returns the lookahead token and scans the next one. Once EOF has
// been returned every further call returns EOF again.
func (self *Lexer) Advance() token.Token {
	result := self.lookahead
	if result.Type != token.TypeEOF {
		self.lex()
	}
	return result
}

// Err returns the fatal exception that ended the stream early, if any.
func (self *Lexer) Err() error {
	if self.err == nil {
		return nil
	}
	return self.err
}

func (self *Lexer) lex() {
	for !self.cursor.AtEnd() {
		start := self.cursor.Offset()
		c := self.cursor.Consume()
		if ascii.IsWhitespace(c) {
			continue
		}
		switch c {
		case ascii.NUL:
			// A null byte before the end of the buffer is malformed input
			// rather than whitespace.
			self.report(start, exc.CodeNullCharacter, "unexpected null character")
			self.emit(token.Token{Type: token.TypeUnknown})
			return
		case '@':
			self.emit(token.Token{Type: token.TypeAtSign})
			return
		case '{':
			self.emit(token.Token{Type: token.TypeLbrace})
			return
		case '}':
			self.emit(token.Token{Type: token.TypeRbrace})
			return
		case '[':
			self.emit(token.Token{Type: token.TypeLsquare})
			return
		case ']':
			self.emit(token.Token{Type: token.TypeRsquare})
			return
		case '(':
			self.emit(token.Token{Type: token.TypeLparen})
			return
		case ')':
			self.emit(token.Token{Type: token.TypeRparen})
			return
		case ',':
			self.emit(token.Token{Type: token.TypeComma})
			return
		case ';':
			self.emit(token.Token{Type: token.TypeSemi})
			return
		case ':':
			self.emit(token.Token{Type: token.TypeColon})
			return
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			self.emit(self.lexNumber())
			return
		case '"':
			self.emit(self.lexStringLiteral())
			return
		case '$':
			self.emit(self.lexDollarIdent())
			return
		case ascii.Slash:
			switch self.cursor.Get() {
			case ascii.Slash:
				self.cursor.Move(cursor.Forward, 1)
				self.skipLineComment()
			case '*':
				self.cursor.Move(cursor.Forward, 1)
				self.skipBlockComment(start)
			default:
				self.emit(self.lexOperator())
				return
			}
			if self.err != nil {
				self.emit(token.Token{Type: token.TypeEOF})
				return
			}
		default:
			if ascii.IsIdentifierHead(c) {
				self.emit(self.lexIdentifier())
				return
			}
			if ascii.IsOperatorBody(c) {
				self.emit(self.lexOperator())
				return
			}
			self.report(start, exc.CodeUnknownCharacter, fmt.Sprintf("unexpected character 0x%02X", c))
			self.emit(token.Token{Type: token.TypeUnknown})
			return
		}
	}
	self.emit(token.Token{Type: token.TypeEOF})
}

// emit publishes t as the new lookahead. After a fatal report the stream is
// over and the lookahead is EOF regardless of t.
func (self *Lexer) emit(t token.Token) {
	if self.err != nil {
		t = token.Token{Type: token.TypeEOF}
	}
	self.lookahead = t
}

// report hands a problem found at the given byte offset to the reporter. It
// returns false when the reporter considers the problem fatal.
func (self *Lexer) report(offset int, code string, message string) bool {
	if self.lines == nil {
		self.lines = exc.NewLines(self.uri, self.content)
	}
	e := exc.New(self.lines.Location(offset), code, message)
	if err := self.reporter.Report(e); err != nil {
		if self.err == nil {
			self.err = err
		}
		return false
	}
	return true
}

// startOfCurrent returns a cursor positioned on the byte that was consumed
// last. Sub-scanners use it to capture the beginning of their token.
func (self *Lexer) startOfCurrent() cursor.Cursor {
	start := self.cursor
	start.Move(cursor.Backward, 1)
	return start
}

// span extracts the text between start and the current position.
func (self *Lexer) span(start cursor.Cursor) string {
	return start.Extract(self.cursor.Offset() - start.Offset())
}
