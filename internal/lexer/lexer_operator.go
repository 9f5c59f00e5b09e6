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

// lexOperator munches the longest run of operator bytes and classifies it by
// whether the bytes on either side bind to it. The start of the buffer counts
// as an unbound left neighbor and the end as an unbound right neighbor.
func (self *Lexer) lexOperator() token.Token {
	start := self.startOfCurrent()
	for ascii.IsOperatorBody(self.cursor.Get()) {
		self.cursor.Move(cursor.Forward, 1)
	}

	leftBound := false
	if start.Offset() > 0 {
		before := start
		before.Move(cursor.Backward, 1)
		leftBound = !ascii.IsLeftUnbound(before.Get())
	}
	next := self.cursor.Get()
	rightBound := !ascii.IsRightUnbound(next)
	if next == '.' {
		// A trailing period binds only when the left side does not.
		rightBound = !leftBound
	}

	spelling := self.span(start)
	switch spelling {
	case "=":
		return token.Token{Type: token.TypeOpEqual}
	case "&":
		if rightBound && !leftBound {
			return token.Token{Type: token.TypeOpAmpPrefix}
		}
	case ".":
		switch {
		case leftBound == rightBound:
			return token.Token{Type: token.TypeOpPeriod}
		case rightBound:
			return token.Token{Type: token.TypeOpPeriodPrefix}
		default:
			self.report(start.Offset(), exc.CodeAmbiguousOperator, `expected a member name after "."`)
			return token.Token{Type: token.TypeUnknown}
		}
	case "?":
		if leftBound {
			return token.Token{Type: token.TypeOpQuestionPostfix}
		}
		return token.Token{Type: token.TypeOpQuestionInfix}
	case "->":
		return token.Token{Type: token.TypeOpArrow}
	}

	switch {
	case leftBound && rightBound:
		return token.Token{Type: token.TypeOpBinaryUnspaced, Value: spelling}
	case !leftBound && !rightBound:
		return token.Token{Type: token.TypeOpBinarySpaced, Value: spelling}
	case leftBound:
		return token.Token{Type: token.TypeOpPostfix, Value: spelling}
	default:
		return token.Token{Type: token.TypeOpPrefix, Value: spelling}
	}
}
