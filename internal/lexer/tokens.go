// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"context"

	"gopkg.microglot.org/swiftl.go/internal/idl"
	"gopkg.microglot.org/swiftl.go/internal/optional"
	"gopkg.microglot.org/swiftl.go/internal/token"
)

// Iterator adapts the Lexer to idl.Iterator. The final element produced is
// the EOF token. Close reports the fatal exception, if any, that cut the
// stream short.
func (self *Lexer) Iterator() idl.Iterator[token.Token] {
	return &tokenIterator{lexer: self}
}

type tokenIterator struct {
	lexer *Lexer
	done  bool
}

func (self *tokenIterator) Next(ctx context.Context) optional.Optional[token.Token] {
	if self.done {
		return optional.None[token.Token]()
	}
	t := self.lexer.Advance()
	if t.Type == token.TypeEOF {
		self.done = true
	}
	return optional.Some(t)
}

func (self *tokenIterator) Close(ctx context.Context) error {
	return self.lexer.Err()
}
